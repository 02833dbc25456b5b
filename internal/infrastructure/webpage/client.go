package webpage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/scrape"
)

const userAgent = "bedrock-agents-webscraper/1.0"

// Client fetches raw documents over HTTP. One GET per call, no retries.
type Client struct {
	httpClient *resty.Client
}

var _ scrape.PageFetcher = (*Client)(nil)

// NewClient creates a page fetcher with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	httpClient := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)

	return &Client{httpClient: httpClient}
}

// Fetch issues one GET and returns the raw response body. Transport errors
// and non-2xx statuses come back as errors for the caller to propagate.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch HTTP %d: %s", resp.StatusCode(), resp.Status())
	}

	log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Str("content_type", resp.Header().Get("Content-Type")).
		Int("bytes", len(resp.Body())).
		Msg("page fetched")

	return resp.Body(), nil
}
