package googlesearch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/search"
)

// Config carries the client settings. The values come from the process
// configuration and never change after construction.
type Config struct {
	APIKey   string
	EngineID string
	BaseURL  string
	Timeout  time.Duration
}

// Client calls the Google Custom Search JSON API.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	engineID   string
	baseURL    string
}

var _ search.Client = (*Client)(nil)

// NewClient creates a Custom Search client.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: resty.New().SetTimeout(cfg.Timeout),
		apiKey:     cfg.APIKey,
		engineID:   cfg.EngineID,
		baseURL:    cfg.BaseURL,
	}
}

// searchResponse is the slice of the API answer this client consumes.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Search runs one query and maps the upstream items in order. An answer
// without items maps to an empty slice; the domain layer decides what that
// means. Transport errors, non-2xx statuses, and undecodable bodies come
// back as errors.
func (c *Client) Search(ctx context.Context, query string) ([]search.Result, error) {
	var result searchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("cx", c.engineID).
		SetQueryParam("q", query).
		SetResult(&result).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to query search API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	log.Debug().
		Str("query", query).
		Int("items", len(result.Items)).
		Msg("search API response received")

	results := make([]search.Result, 0, len(result.Items))
	for _, item := range result.Items {
		results = append(results, search.Result{Title: item.Title, Link: item.Link})
	}
	return results, nil
}
