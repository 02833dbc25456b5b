package scrape_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/scrape"
)

// mockFetcher is a PageFetcher that serves canned documents and counts calls.
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
	calls     int
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, nil
}

func TestServiceScrape(t *testing.T) {
	fetcher := &mockFetcher{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte(`<html><head><title>t</title></head><body><p>page content</p></body></html>`), nil
		},
	}
	service := scrape.NewService(fetcher)

	got, err := service.Scrape(context.Background(), "https://example.com/article")
	if err != nil {
		t.Fatalf("Scrape returned error: %v", err)
	}
	if got != "page content" {
		t.Errorf("Scrape = %q, want %q", got, "page content")
	}
	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
}

func TestServiceScrapeFetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")
	fetcher := &mockFetcher{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return nil, fetchErr
		},
	}
	service := scrape.NewService(fetcher)

	_, err := service.Scrape(context.Background(), "https://example.com")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("error %v does not wrap the fetch error", err)
	}
}

func TestServiceScrapeTruncatesLongPages(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 4096) // ~48 KiB of body text
	fetcher := &mockFetcher{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte("<html><body><p>" + long + "</p></body></html>"), nil
		},
	}
	service := scrape.NewService(fetcher)

	got, err := service.Scrape(context.Background(), "https://example.com/long")
	if err != nil {
		t.Fatalf("Scrape returned error: %v", err)
	}

	if !strings.HasSuffix(got, "...") {
		t.Error("expected truncated text to end with the marker")
	}
	if len(got) > scrape.MaxTextBytes+len("...") {
		t.Errorf("returned %d bytes, ceiling is %d plus marker", len(got), scrape.MaxTextBytes)
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(got, "...")) {
		t.Error("truncated text is not a prefix of the page text")
	}
}
