package agent

import (
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/search"
)

// MessageVersion is the protocol version stamped on every response envelope.
const MessageVersion = "1.0"

// Function names recognized by the router.
const (
	FunctionScrape       = "scrape"
	FunctionGoogleSearch = "google_search"
)

// ResponseStateFailure marks a handler-detected failure on the function
// response. Successful responses omit the state field entirely.
const ResponseStateFailure = "FAILURE"

// Invocation is one action-group request received from the orchestrator.
// Fields beyond the ones consumed here are carried for log correlation only.
type Invocation struct {
	MessageVersion string      `json:"messageVersion,omitempty"`
	SessionID      string      `json:"sessionId,omitempty"`
	ActionGroup    string      `json:"actionGroup"`
	Function       string      `json:"function"`
	Parameters     []Parameter `json:"parameters,omitempty"`
}

// Parameter is a single named value on an invocation.
type Parameter struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// Param returns the value of the first parameter with the given name, or
// the empty string when no such parameter exists.
func (inv *Invocation) Param(name string) string {
	for _, p := range inv.Parameters {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// Response is the fixed envelope returned for every invocation.
type Response struct {
	MessageVersion string       `json:"messageVersion"`
	Response       ActionResult `json:"response"`
}

// ActionResult echoes the invocation coordinates and carries the outcome.
type ActionResult struct {
	ActionGroup      string           `json:"actionGroup"`
	Function         string           `json:"function"`
	FunctionResponse FunctionResponse `json:"functionResponse"`
}

// FunctionResponse holds the handler outcome. The absence of ResponseState,
// not a success value, signals success.
type FunctionResponse struct {
	ResponseState string       `json:"responseState,omitempty"`
	ResponseBody  ResponseBody `json:"responseBody"`
}

// ResponseBody wraps the payload under the TEXT content-type key.
type ResponseBody struct {
	Text TextBody `json:"TEXT"`
}

// TextBody carries the JSON-encoded payload string.
type TextBody struct {
	Body string `json:"body"`
}

// ScrapePayload is the success payload of the scrape function.
type ScrapePayload struct {
	Text string `json:"text"`
}

// SearchPayload is the success payload of the google_search function.
type SearchPayload struct {
	Results []search.Result `json:"results"`
}

// ErrorPayload is the failure payload of any function.
type ErrorPayload struct {
	Error string `json:"error"`
}
