// Package config loads plex-mcp server settings from the environment and an
// optional JSON file. Environment variables win over the file, the file wins
// over defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/plexmcp/plexmcp/pkg/types"
)

const (
	DefaultServerURL = "http://localhost:32400"
	DefaultTimeout   = 30
	DefaultLogLevel  = "info"

	minTimeout = 5
	maxTimeout = 300
)

// Load builds the server configuration. path may be empty; a missing file at
// an empty path is not an error, a missing file at an explicit path is.
func Load(path string) (*types.Config, error) {
	cfg := &types.Config{
		ServerURL: DefaultServerURL,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("PLEX_TOKEN is required")
	}
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.ServerURL = NormalizeServerURL(cfg.ServerURL)
	cfg.Timeout = ClampTimeout(cfg.Timeout)

	return cfg, nil
}

func loadFile(path string, cfg *types.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *types.Config) {
	if url := firstEnv("PLEX_URL", "PLEX_SERVER_URL"); url != "" {
		cfg.ServerURL = url
	}
	if token := os.Getenv("PLEX_TOKEN"); token != "" {
		cfg.Token = token
	}
	if raw := os.Getenv("PLEX_TIMEOUT"); raw != "" {
		if timeout, err := strconv.Atoi(raw); err == nil {
			cfg.Timeout = timeout
		}
	}
	if level := os.Getenv("PLEX_MCP_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// NormalizeServerURL ensures the URL carries a scheme and no trailing slash.
func NormalizeServerURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return DefaultServerURL
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return strings.TrimRight(url, "/")
}

// ClampTimeout bounds the request timeout to [5, 300] seconds.
func ClampTimeout(timeout int) int {
	if timeout < minTimeout {
		return minTimeout
	}
	if timeout > maxTimeout {
		return maxTimeout
	}
	return timeout
}
