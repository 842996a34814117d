package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

const defaultSearchLimit = 25

// SearchMediaTool handles media search requests
type SearchMediaTool struct {
	client types.PlexClient
	config *types.Config
}

// NewSearchMediaTool creates a new search media tool
func NewSearchMediaTool(client types.PlexClient, config *types.Config) *SearchMediaTool {
	return &SearchMediaTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *SearchMediaTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSearchMedia,
		mcp.WithDescription("Search for media across all Plex libraries, returning a list of matching items"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text to search for in titles, summaries, and people")),
		mcp.WithString("media_type", mcp.Description("Restrict results to one media type: movie, show, season, episode, artist, album, or track")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results to return (default 25)")),
	)
}

// Handle processes the tool request
func (t *SearchMediaTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := mcp.ParseString(req, "query", "")
	if query == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	mediaType := mcp.ParseString(req, "media_type", "")
	if err := validateMediaType(mediaType); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	limit := int(mcp.ParseFloat64(req, "limit", defaultSearchLimit))
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	items, err := t.client.Search(ctx, query, types.SearchOptions{
		Type:  mediaType,
		Limit: limit,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search media: %v", err)), nil
	}

	toolResult := results.SearchMediaToolResult{
		Arguments: results.SearchMediaArgs{
			Query:     query,
			MediaType: mediaType,
			Limit:     limit,
		},
		Results: results.NewMediaItemResults(items),
	}

	if len(toolResult.Results) == 0 {
		toolResult.Message = "No media found. " +
			"This could mean that nothing matches the query, or that the media type filter is too narrow."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d media items.", len(toolResult.Results))
	}

	return newToolResultJSON(toolResult)
}
