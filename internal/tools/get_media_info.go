package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetMediaInfoTool handles media metadata requests
type GetMediaInfoTool struct {
	client types.PlexClient
	config *types.Config
}

// NewGetMediaInfoTool creates a new get media info tool
func NewGetMediaInfoTool(client types.PlexClient, config *types.Config) *GetMediaInfoTool {
	return &GetMediaInfoTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetMediaInfoTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetMediaInfo,
		mcp.WithDescription("Get full metadata for a single media item by its rating key"),
		mcp.WithString("rating_key", mcp.Required(), mcp.Description("Rating key of the media item, as returned by search or listing tools")),
	)
}

// Handle processes the tool request
func (t *GetMediaInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ratingKey := mcp.ParseString(req, "rating_key", "")
	if ratingKey == "" {
		return mcp.NewToolResultError("rating_key parameter is required"), nil
	}

	item, err := t.client.MediaInfo(ctx, ratingKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get media info: %v", err)), nil
	}

	toolResult := results.GetMediaInfoToolResult{
		Message: fmt.Sprintf("Found media item %s.", ratingKey),
		Item:    results.NewMediaItemResult(item),
	}

	return newToolResultJSON(toolResult)
}
