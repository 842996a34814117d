package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Media types accepted by the search and library item tools.
var validMediaTypes = map[string]bool{
	"movie":   true,
	"show":    true,
	"season":  true,
	"episode": true,
	"artist":  true,
	"album":   true,
	"track":   true,
}

// validateMediaType checks an optional media_type parameter. Empty is valid
// and means "all types".
func validateMediaType(mediaType string) error {
	if mediaType == "" || validMediaTypes[mediaType] {
		return nil
	}
	return fmt.Errorf("invalid media_type %q, expected one of: movie, show, season, episode, artist, album, track", mediaType)
}

// newToolResultJSON marshals a tool result struct as indented JSON
func newToolResultJSON(result any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
