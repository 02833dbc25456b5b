package search

// Result is one search hit in the orchestrator-facing shape.
type Result struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
