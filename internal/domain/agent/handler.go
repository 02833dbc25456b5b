package agent

import (
	"context"
	"errors"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/scrape"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/search"
)

// Error messages surfaced to the orchestrator on handler-detected failures.
const (
	msgFunctionNotFound = "Function not found"
	msgURLNotFound      = "URL not found in parameters"
	msgQueryNotFound    = "Query not found in parameters"
	msgNoResults        = "No results found"
)

// Handler routes invocations to the scrape and search services and wraps
// their outcome in the response envelope.
type Handler struct {
	scrapeService *scrape.Service
	searchService *search.Service
}

// NewHandler creates the invocation handler.
func NewHandler(scrapeService *scrape.Service, searchService *search.Service) *Handler {
	return &Handler{
		scrapeService: scrapeService,
		searchService: searchService,
	}
}

// Handle dispatches one invocation. Handler-detected failures (unknown
// function, missing parameter, empty result set) are returned as failure
// envelopes with a nil error; upstream faults are returned as errors and
// carry no envelope.
func (h *Handler) Handle(ctx context.Context, inv *Invocation) (*Response, error) {
	switch inv.Function {
	case FunctionScrape:
		return h.handleScrape(ctx, inv)
	case FunctionGoogleSearch:
		return h.handleSearch(ctx, inv)
	default:
		return NewFailureResponse(inv, msgFunctionNotFound), nil
	}
}

func (h *Handler) handleScrape(ctx context.Context, inv *Invocation) (*Response, error) {
	url := inv.Param("url")
	if url == "" {
		return NewFailureResponse(inv, msgURLNotFound), nil
	}

	text, err := h.scrapeService.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}
	return NewSuccessResponse(inv, ScrapePayload{Text: text})
}

func (h *Handler) handleSearch(ctx context.Context, inv *Invocation) (*Response, error) {
	query := inv.Param("query")
	if query == "" {
		return NewFailureResponse(inv, msgQueryNotFound), nil
	}

	results, err := h.searchService.Search(ctx, query)
	if err != nil {
		if errors.Is(err, search.ErrNoResults) {
			return NewFailureResponse(inv, msgNoResults), nil
		}
		return nil, err
	}
	return NewSuccessResponse(inv, SearchPayload{Results: results})
}
