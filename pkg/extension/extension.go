// Package extension implements the editor-facing context server registry.
// The host asks for a context server by identifier and gets back the command
// it should launch; the host owns the process from there.
package extension

import (
	"fmt"

	"github.com/plexmcp/plexmcp/pkg/types"
)

// ServerPlexMCP is the identifier for the Plex Media Server integration.
const ServerPlexMCP types.ContextServerID = "plex-mcp"

// UnknownServerError reports a resolution request for an identifier outside
// the registry. The identifier is carried verbatim for display by the host.
type UnknownServerError struct {
	ID types.ContextServerID
}

// Error implements the error interface
func (e *UnknownServerError) Error() string {
	return fmt.Sprintf("unknown context server: %s", e.ID)
}

var _ types.Extension = &PlexMediaServerExtension{}

// PlexMediaServerExtension resolves context server identifiers to launch
// descriptors. It holds no state and is safe for concurrent use.
type PlexMediaServerExtension struct{}

// New creates a new PlexMediaServerExtension
func New() *PlexMediaServerExtension {
	return &PlexMediaServerExtension{}
}

// ContextServerCommand returns the launch descriptor for the given server
// identifier. The project handle is accepted for host compatibility but
// resolution never depends on it.
func (e *PlexMediaServerExtension) ContextServerCommand(id types.ContextServerID, project types.Project) (types.Command, error) {
	switch id {
	case ServerPlexMCP:
		return types.Command{
			Command: "uv",
			Args:    []string{"run", "plex-mcp"},
			Env:     map[string]string{},
		}, nil
	default:
		return types.Command{}, &UnknownServerError{ID: id}
	}
}
