package results

import "github.com/plexmcp/plexmcp/pkg/types"

// ServerStatusToolResult represents the result of the get server status tool
type ServerStatusToolResult struct {
	Message        string   `json:"message"`
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	Platform       string   `json:"platform,omitempty"`
	ActiveSessions int      `json:"active_sessions"`
	Libraries      []string `json:"libraries"`
}

// NewServerStatusToolResult creates a server status result from the server
// identity plus current sessions and libraries
func NewServerStatusToolResult(info types.ServerInfo, sessions []types.Session, libraries []types.Library) ServerStatusToolResult {
	titles := make([]string, 0, len(libraries))
	for _, library := range libraries {
		titles = append(titles, library.Title)
	}

	return ServerStatusToolResult{
		Name:           info.Name,
		Version:        info.Version,
		Platform:       info.Platform,
		ActiveSessions: len(sessions),
		Libraries:      titles,
	}
}
