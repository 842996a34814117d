package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetServerStatusTool handles server status requests
type GetServerStatusTool struct {
	client types.PlexClient
	config *types.Config
}

// NewGetServerStatusTool creates a new get server status tool
func NewGetServerStatusTool(client types.PlexClient, config *types.Config) *GetServerStatusTool {
	return &GetServerStatusTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetServerStatusTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetServerStatus,
		mcp.WithDescription("Get Plex server identity, active session count, and library names"),
	)
}

// Handle processes the tool request
func (t *GetServerStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := t.client.ServerInfo(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get server info: %v", err)), nil
	}

	sessions, err := t.client.Sessions(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get sessions: %v", err)), nil
	}

	libraries, err := t.client.Libraries(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list libraries: %v", err)), nil
	}

	toolResult := results.NewServerStatusToolResult(info, sessions, libraries)
	toolResult.Message = fmt.Sprintf("Plex server %s is up.", info.Name)

	return newToolResultJSON(toolResult)
}
