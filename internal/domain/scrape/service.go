package scrape

import (
	"context"
	"fmt"
)

// PageFetcher retrieves the raw document behind a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Service turns a URL into readable plain text: one fetch, one extraction,
// one size cut. No caching; every call re-fetches.
type Service struct {
	fetcher PageFetcher
}

// NewService creates a scrape service backed by the given fetcher.
func NewService(fetcher PageFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Scrape fetches the page, extracts its readable text, and enforces the
// output byte ceiling. Fetch and parse errors propagate wrapped.
func (s *Service) Scrape(ctx context.Context, url string) (string, error) {
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	text, err := ExtractText(body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}

	return Truncate(text, MaxTextBytes), nil
}
