package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListPlaylistsTool handles playlist listing requests
type ListPlaylistsTool struct {
	client types.PlexClient
	config *types.Config
}

// NewListPlaylistsTool creates a new list playlists tool
func NewListPlaylistsTool(client types.PlexClient, config *types.Config) *ListPlaylistsTool {
	return &ListPlaylistsTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *ListPlaylistsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListPlaylists,
		mcp.WithDescription("List all playlists on the Plex server"),
	)
}

// Handle processes the tool request
func (t *ListPlaylistsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playlists, err := t.client.Playlists(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list playlists: %v", err)), nil
	}

	toolResult := results.ListPlaylistsToolResult{
		Playlists: make([]results.PlaylistResult, 0, len(playlists)),
	}
	for _, playlist := range playlists {
		toolResult.Playlists = append(toolResult.Playlists, results.NewPlaylistResult(playlist))
	}

	if len(toolResult.Playlists) == 0 {
		toolResult.Message = "No playlists found on the Plex server."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d playlists.", len(toolResult.Playlists))
	}

	return newToolResultJSON(toolResult)
}
