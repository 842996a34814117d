package results

// SearchMediaToolResult represents the result of the search media tool
type SearchMediaToolResult struct {
	Message   string            `json:"message"`
	Arguments SearchMediaArgs   `json:"arguments"`
	Results   []MediaItemResult `json:"results"`
}

// SearchMediaArgs represents the arguments for the search media tool
type SearchMediaArgs struct {
	Query     string `json:"query"`
	MediaType string `json:"media_type,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// GetMediaInfoToolResult represents the result of the get media info tool
type GetMediaInfoToolResult struct {
	Message string          `json:"message"`
	Item    MediaItemResult `json:"item"`
}
