package tools

import (
	"context"
	"fmt"

	"github.com/plexmcp/plexmcp/internal/results"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListLibrariesTool handles library listing requests
type ListLibrariesTool struct {
	client types.PlexClient
	config *types.Config
}

// NewListLibrariesTool creates a new list libraries tool
func NewListLibrariesTool(client types.PlexClient, config *types.Config) *ListLibrariesTool {
	return &ListLibrariesTool{
		client: client,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *ListLibrariesTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListLibraries,
		mcp.WithDescription("List all library sections on the Plex server, returning their keys, titles, and types"),
	)
}

// Handle processes the tool request
func (t *ListLibrariesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	libraries, err := t.client.Libraries(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list libraries: %v", err)), nil
	}

	toolResult := results.ListLibrariesToolResult{
		Libraries: make([]results.LibraryResult, 0, len(libraries)),
	}
	for _, library := range libraries {
		toolResult.Libraries = append(toolResult.Libraries, results.NewLibraryResult(library))
	}

	if len(toolResult.Libraries) == 0 {
		toolResult.Message = "No libraries found on the Plex server."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d libraries.", len(toolResult.Libraries))
	}

	return newToolResultJSON(toolResult)
}
