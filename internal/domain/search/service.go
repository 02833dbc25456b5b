package search

import (
	"context"
	"errors"
	"fmt"
)

// MaxResults caps how many hits one invocation returns. The cap is part of
// the contract, not configuration.
const MaxResults = 10

// ErrNoResults reports that the search API answered without usable items.
var ErrNoResults = errors.New("search returned no results")

// Client calls the external search API.
type Client interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// Service runs queries against the configured client and applies the
// result cap.
type Service struct {
	client Client
}

// NewService creates a search service backed by the given client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Search returns at most MaxResults hits in upstream order. An upstream
// answer without items yields ErrNoResults; transport and decode errors
// propagate wrapped.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	results, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if len(results) == 0 {
		return nil, ErrNoResults
	}
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results, nil
}
