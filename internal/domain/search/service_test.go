package search_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/search"
)

// mockClient is a search.Client serving canned results.
type mockClient struct {
	searchFunc func(ctx context.Context, query string) ([]search.Result, error)
	calls      int
}

func (m *mockClient) Search(ctx context.Context, query string) ([]search.Result, error) {
	m.calls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

func cannedResults(n int) []search.Result {
	results := make([]search.Result, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, search.Result{
			Title: fmt.Sprintf("result %d", i),
			Link:  fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return results
}

func TestServiceSearchCapsResults(t *testing.T) {
	client := &mockClient{
		searchFunc: func(ctx context.Context, query string) ([]search.Result, error) {
			return cannedResults(15), nil
		},
	}
	service := search.NewService(client)

	got, err := service.Search(context.Background(), "golang")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if len(got) != search.MaxResults {
		t.Fatalf("got %d results, want %d", len(got), search.MaxResults)
	}
	for i, r := range got {
		if r.Title != fmt.Sprintf("result %d", i) {
			t.Errorf("result %d out of order: %q", i, r.Title)
		}
	}
}

func TestServiceSearchKeepsShortLists(t *testing.T) {
	client := &mockClient{
		searchFunc: func(ctx context.Context, query string) ([]search.Result, error) {
			return cannedResults(3), nil
		},
	}
	service := search.NewService(client)

	got, err := service.Search(context.Background(), "golang")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d results, want 3", len(got))
	}
}

func TestServiceSearchNoResults(t *testing.T) {
	tests := []struct {
		name    string
		results []search.Result
	}{
		{name: "nil result list", results: nil},
		{name: "empty result list", results: []search.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{
				searchFunc: func(ctx context.Context, query string) ([]search.Result, error) {
					return tt.results, nil
				},
			}
			service := search.NewService(client)

			_, err := service.Search(context.Background(), "nothing matches this")
			if !errors.Is(err, search.ErrNoResults) {
				t.Errorf("error = %v, want ErrNoResults", err)
			}
		})
	}
}

func TestServiceSearchClientError(t *testing.T) {
	apiErr := errors.New("api quota exceeded")
	client := &mockClient{
		searchFunc: func(ctx context.Context, query string) ([]search.Result, error) {
			return nil, apiErr
		},
	}
	service := search.NewService(client)

	_, err := service.Search(context.Background(), "golang")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, apiErr) {
		t.Errorf("error %v does not wrap the client error", err)
	}
	if errors.Is(err, search.ErrNoResults) {
		t.Error("client errors must not map to ErrNoResults")
	}
}
