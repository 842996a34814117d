// Package server wires the Plex client and tools into an MCP stdio server.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plexmcp/plexmcp/internal/plex"
	"github.com/plexmcp/plexmcp/internal/tools"
	"github.com/plexmcp/plexmcp/pkg/project"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &PlexMCPServer{}

// PlexMCPServer represents the Plex MCP server
type PlexMCPServer struct {
	mcpServer   *server.MCPServer
	plexManager *plex.Manager
	config      *types.Config
}

// NewPlexMCPServer creates a new Plex MCP server
func NewPlexMCPServer(config *types.Config) *PlexMCPServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version)
	plexManager := plex.NewManager(config)

	return &PlexMCPServer{
		mcpServer:   mcpServer,
		plexManager: plexManager,
		config:      config,
	}
}

// Start connects to the Plex server, registers the tools, and serves MCP
// over stdio until the host disconnects
func (s *PlexMCPServer) Start(ctx context.Context) error {
	slog.Info("Starting Plex MCP server", "server_url", s.config.ServerURL)

	if err := s.plexManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect Plex client: %w", err)
	}

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *PlexMCPServer) registerTools() {
	client := s.plexManager.GetClient()

	searchTool := tools.NewSearchMediaTool(client, s.config)
	s.mcpServer.AddTool(searchTool.GetTool(), searchTool.Handle)

	librariesTool := tools.NewListLibrariesTool(client, s.config)
	s.mcpServer.AddTool(librariesTool.GetTool(), librariesTool.Handle)

	itemsTool := tools.NewGetLibraryItemsTool(client, s.config)
	s.mcpServer.AddTool(itemsTool.GetTool(), itemsTool.Handle)

	mediaInfoTool := tools.NewGetMediaInfoTool(client, s.config)
	s.mcpServer.AddTool(mediaInfoTool.GetTool(), mediaInfoTool.Handle)

	statusTool := tools.NewGetServerStatusTool(client, s.config)
	s.mcpServer.AddTool(statusTool.GetTool(), statusTool.Handle)

	sessionsTool := tools.NewListSessionsTool(client, s.config)
	s.mcpServer.AddTool(sessionsTool.GetTool(), sessionsTool.Handle)

	playlistsTool := tools.NewListPlaylistsTool(client, s.config)
	s.mcpServer.AddTool(playlistsTool.GetTool(), playlistsTool.Handle)

	playlistItemsTool := tools.NewGetPlaylistItemsTool(client, s.config)
	s.mcpServer.AddTool(playlistItemsTool.GetTool(), playlistItemsTool.Handle)
}

// Shutdown gracefully shuts down the server
func (s *PlexMCPServer) Shutdown(ctx context.Context) error {
	if err := s.plexManager.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown Plex client: %w", err)
	}

	return nil
}
