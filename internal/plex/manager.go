package plex

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/plexmcp/plexmcp/pkg/types"
)

// Manager manages the Plex client connection lifecycle
type Manager struct {
	client    *Client
	cfg       *types.Config
	connected bool
	mu        sync.RWMutex
}

// NewManager creates a new Plex connection manager
func NewManager(cfg *types.Config) *Manager {
	return &Manager{
		cfg: cfg,
	}
}

// Connect establishes the connection, verifying the server is reachable and
// the token is accepted. Calling Connect on a connected manager is a no-op.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return nil
	}

	client := NewClient(m.cfg)
	info, err := client.ServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to Plex server: %w", err)
	}

	slog.Info("Connected to Plex server", "name", info.Name, "version", info.Version)

	m.client = client
	m.connected = true
	return nil
}

// GetClient returns the connected Plex client, or nil when not connected
func (m *Manager) GetClient() types.PlexClient {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return nil
	}
	return m.client
}

// IsConnected returns whether the manager holds a verified connection
func (m *Manager) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.connected
}

// Shutdown drops the connection. The underlying HTTP client has no
// persistent resources to release beyond idle connections.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.client.httpClient.CloseIdleConnections()
	m.client = nil
	m.connected = false

	return nil
}
