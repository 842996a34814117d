package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

const defaultItemsLimit = 50

// GetLibraryItemsTool handles library item listing requests
type GetLibraryItemsTool struct {
	client types.PlexClient
	config *types.Config
}

// NewGetLibraryItemsTool creates a new get library items tool
func NewGetLibraryItemsTool(client types.PlexClient, config *types.Config) *GetLibraryItemsTool {
	return &GetLibraryItemsTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetLibraryItemsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetLibraryItems,
		mcp.WithDescription("List items in a Plex library section, with pagination"),
		mcp.WithString("library_key", mcp.Required(), mcp.Description("Key of the library section, as returned by "+ToolListLibraries)),
		mcp.WithString("media_type", mcp.Description("Restrict results to one media type: movie, show, season, episode, artist, album, or track")),
		mcp.WithNumber("start", mcp.Description("Zero-based offset of the first item to return (default 0)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items to return (default 50)")),
		mcp.WithString("sort_by", mcp.Description("Plex sort key, e.g. titleSort or addedAt:desc")),
	)
}

// Handle processes the tool request
func (t *GetLibraryItemsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	libraryKey := mcp.ParseString(req, "library_key", "")
	if libraryKey == "" {
		return mcp.NewToolResultError("library_key parameter is required"), nil
	}

	mediaType := mcp.ParseString(req, "media_type", "")
	if err := validateMediaType(mediaType); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := int(mcp.ParseFloat64(req, "start", 0))
	if start < 0 {
		start = 0
	}
	limit := int(mcp.ParseFloat64(req, "limit", defaultItemsLimit))
	if limit <= 0 {
		limit = defaultItemsLimit
	}
	sortBy := mcp.ParseString(req, "sort_by", "")

	items, total, err := t.client.LibraryItems(ctx, libraryKey, types.ItemsOptions{
		Type:   mediaType,
		Start:  start,
		Size:   limit,
		SortBy: sortBy,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get library items: %v", err)), nil
	}

	toolResult := results.GetLibraryItemsToolResult{
		Arguments: results.GetLibraryItemsArgs{
			LibraryKey: libraryKey,
			MediaType:  mediaType,
			Start:      start,
			Limit:      limit,
		},
		TotalCount: total,
		Items:      results.NewMediaItemResults(items),
	}

	if len(toolResult.Items) == 0 {
		toolResult.Message = "No items found. " +
			"This could mean that the library is empty, or that the start offset is past the end of the library."
	} else {
		toolResult.Message = fmt.Sprintf("Returning %d of %d items.", len(toolResult.Items), total)
	}

	return newToolResultJSON(toolResult)
}
