package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetPlaylistItemsTool handles playlist item listing requests
type GetPlaylistItemsTool struct {
	client types.PlexClient
	config *types.Config
}

// NewGetPlaylistItemsTool creates a new get playlist items tool
func NewGetPlaylistItemsTool(client types.PlexClient, config *types.Config) *GetPlaylistItemsTool {
	return &GetPlaylistItemsTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetPlaylistItemsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetPlaylistItems,
		mcp.WithDescription("List the items of a playlist by its rating key"),
		mcp.WithString("rating_key", mcp.Required(), mcp.Description("Rating key of the playlist, as returned by "+ToolListPlaylists)),
	)
}

// Handle processes the tool request
func (t *GetPlaylistItemsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ratingKey := mcp.ParseString(req, "rating_key", "")
	if ratingKey == "" {
		return mcp.NewToolResultError("rating_key parameter is required"), nil
	}

	items, err := t.client.PlaylistItems(ctx, ratingKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get playlist items: %v", err)), nil
	}

	toolResult := results.GetPlaylistItemsToolResult{
		Arguments: results.GetPlaylistItemsArgs{
			RatingKey: ratingKey,
		},
		Items: results.NewMediaItemResults(items),
	}

	if len(toolResult.Items) == 0 {
		toolResult.Message = "The playlist is empty."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d playlist items.", len(toolResult.Items))
	}

	return newToolResultJSON(toolResult)
}
