package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListSessionsTool handles playback session listing requests
type ListSessionsTool struct {
	client types.PlexClient
	config *types.Config
}

// NewListSessionsTool creates a new list sessions tool
func NewListSessionsTool(client types.PlexClient, config *types.Config) *ListSessionsTool {
	return &ListSessionsTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *ListSessionsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListSessions,
		mcp.WithDescription("List active playback sessions on the Plex server, including who is watching what and where"),
	)
}

// Handle processes the tool request
func (t *ListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := t.client.Sessions(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list sessions: %v", err)), nil
	}

	toolResult := results.ListSessionsToolResult{
		Sessions: make([]results.SessionResult, 0, len(sessions)),
	}
	for _, session := range sessions {
		toolResult.Sessions = append(toolResult.Sessions, results.NewSessionResult(session))
	}

	if len(toolResult.Sessions) == 0 {
		toolResult.Message = "No active playback sessions."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d active sessions.", len(toolResult.Sessions))
	}

	return newToolResultJSON(toolResult)
}
