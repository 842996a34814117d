package extension

import (
	"testing"

	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextServerCommand_PlexMCP(t *testing.T) {
	ext := New()

	cmd, err := ext.ContextServerCommand(ServerPlexMCP, nil)
	require.NoError(t, err)

	assert.Equal(t, "uv", cmd.Command)
	assert.Equal(t, []string{"run", "plex-mcp"}, cmd.Args)
	assert.Empty(t, cmd.Env)
	assert.NotNil(t, cmd.Env)
}

func TestContextServerCommand_UnknownServer(t *testing.T) {
	tests := []struct {
		name string
		id   types.ContextServerID
	}{
		{
			name: "unregistered identifier",
			id:   "nonexistent",
		},
		{
			name: "empty identifier",
			id:   "",
		},
		{
			name: "identifier matching is case sensitive",
			id:   "Plex-MCP",
		},
		{
			name: "whitespace is not trimmed",
			id:   " plex-mcp",
		},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ext.ContextServerCommand(tt.id, nil)
			require.Error(t, err)
			assert.Equal(t, types.Command{}, cmd)

			var unknownErr *UnknownServerError
			require.ErrorAs(t, err, &unknownErr)
			assert.Equal(t, tt.id, unknownErr.ID)
			assert.Contains(t, err.Error(), string(tt.id))
		})
	}
}

func TestContextServerCommand_Idempotent(t *testing.T) {
	ext := New()

	first, err := ext.ContextServerCommand(ServerPlexMCP, nil)
	require.NoError(t, err)

	second, err := ext.ContextServerCommand(ServerPlexMCP, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestContextServerCommand_IgnoresProject(t *testing.T) {
	ext := New()

	projects := []types.Project{
		nil,
		struct{}{},
		map[string]string{"root": "/tmp/workspace"},
		"some-project-handle",
	}

	base, err := ext.ContextServerCommand(ServerPlexMCP, nil)
	require.NoError(t, err)

	for _, project := range projects {
		cmd, err := ext.ContextServerCommand(ServerPlexMCP, project)
		require.NoError(t, err)
		assert.Equal(t, base, cmd)

		_, err = ext.ContextServerCommand("nonexistent", project)
		require.Error(t, err)
	}
}
