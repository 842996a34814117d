// Package plex implements a client for the Plex Media Server HTTP API.
package plex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/plexmcp/plexmcp/pkg/project"
	"github.com/plexmcp/plexmcp/pkg/types"
)

var (
	// ErrUnauthorized indicates the Plex token was rejected
	ErrUnauthorized = errors.New("plex: unauthorized, check PLEX_TOKEN")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("plex: resource not found")
)

// Plex metadata type codes, per the Plex Media Server API.
var mediaTypeCodes = map[string]string{
	"movie":   "1",
	"show":    "2",
	"season":  "3",
	"episode": "4",
	"artist":  "8",
	"album":   "9",
	"track":   "10",
}

var _ types.PlexClient = &Client{}

// Client implements the PlexClient interface over the Plex HTTP API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Plex client from the server configuration
func NewClient(cfg *types.Config) *Client {
	slog.Debug("Creating new Plex client", "server_url", cfg.ServerURL, "timeout", cfg.Timeout)

	return &Client{
		baseURL: cfg.ServerURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// ServerInfo returns the Plex server identity
func (c *Client) ServerInfo(ctx context.Context) (types.ServerInfo, error) {
	mc, err := c.get(ctx, "/", nil)
	if err != nil {
		return types.ServerInfo{}, err
	}

	return types.ServerInfo{
		Name:              mc.FriendlyName,
		Version:           mc.Version,
		Platform:          mc.Platform,
		MachineIdentifier: mc.MachineIdentifier,
	}, nil
}

// Libraries returns all library sections
func (c *Client) Libraries(ctx context.Context) ([]types.Library, error) {
	mc, err := c.get(ctx, "/library/sections", nil)
	if err != nil {
		return nil, err
	}

	libraries := make([]types.Library, 0, len(mc.Directory))
	for _, dir := range mc.Directory {
		libraries = append(libraries, dir.toLibrary())
	}
	return libraries, nil
}

// LibraryItems returns items in a library section, with the total item count
// before pagination
func (c *Client) LibraryItems(ctx context.Context, libraryKey string, opts types.ItemsOptions) ([]types.MediaItem, int, error) {
	query := url.Values{}
	if opts.Type != "" {
		code, ok := mediaTypeCodes[opts.Type]
		if !ok {
			return nil, 0, fmt.Errorf("plex: unsupported media type: %s", opts.Type)
		}
		query.Set("type", code)
	}
	if opts.SortBy != "" {
		query.Set("sort", opts.SortBy)
	}
	query.Set("X-Plex-Container-Start", strconv.Itoa(opts.Start))
	if opts.Size > 0 {
		query.Set("X-Plex-Container-Size", strconv.Itoa(opts.Size))
	}

	mc, err := c.get(ctx, "/library/sections/"+url.PathEscape(libraryKey)+"/all", query)
	if err != nil {
		return nil, 0, err
	}

	total := mc.TotalSize
	if total == 0 {
		total = mc.Size
	}
	return toMediaItems(mc.Metadata), total, nil
}

// Search performs a text search across all libraries
func (c *Client) Search(ctx context.Context, queryText string, opts types.SearchOptions) ([]types.MediaItem, error) {
	query := url.Values{}
	query.Set("query", queryText)
	if opts.Type != "" {
		code, ok := mediaTypeCodes[opts.Type]
		if !ok {
			return nil, fmt.Errorf("plex: unsupported media type: %s", opts.Type)
		}
		query.Set("type", code)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	mc, err := c.get(ctx, "/search", query)
	if err != nil {
		return nil, err
	}
	return toMediaItems(mc.Metadata), nil
}

// MediaInfo returns full metadata for a single item
func (c *Client) MediaInfo(ctx context.Context, ratingKey string) (types.MediaItem, error) {
	mc, err := c.get(ctx, "/library/metadata/"+url.PathEscape(ratingKey), nil)
	if err != nil {
		return types.MediaItem{}, err
	}
	if len(mc.Metadata) == 0 {
		return types.MediaItem{}, fmt.Errorf("%w: rating key %s", ErrNotFound, ratingKey)
	}
	return mc.Metadata[0].toMediaItem(), nil
}

// Sessions returns all active playback sessions
func (c *Client) Sessions(ctx context.Context) ([]types.Session, error) {
	mc, err := c.get(ctx, "/status/sessions", nil)
	if err != nil {
		return nil, err
	}

	sessions := make([]types.Session, 0, len(mc.Metadata))
	for _, entry := range mc.Metadata {
		sessions = append(sessions, entry.toSession())
	}
	return sessions, nil
}

// Playlists returns all playlists
func (c *Client) Playlists(ctx context.Context) ([]types.Playlist, error) {
	mc, err := c.get(ctx, "/playlists", nil)
	if err != nil {
		return nil, err
	}

	playlists := make([]types.Playlist, 0, len(mc.Metadata))
	for _, entry := range mc.Metadata {
		playlists = append(playlists, entry.toPlaylist())
	}
	return playlists, nil
}

// PlaylistItems returns the items of a playlist
func (c *Client) PlaylistItems(ctx context.Context, ratingKey string) ([]types.MediaItem, error) {
	mc, err := c.get(ctx, "/playlists/"+url.PathEscape(ratingKey)+"/items", nil)
	if err != nil {
		return nil, err
	}
	return toMediaItems(mc.Metadata), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*mediaContainer, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("X-Plex-Product", project.Name)
	req.Header.Set("X-Plex-Version", project.Version)
	req.Header.Set("X-Plex-Client-Identifier", project.Name)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("plex request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("plex: unexpected status %d for %s", resp.StatusCode, path)
	}

	var envelope container
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode plex response: %w", err)
	}
	return &envelope.MediaContainer, nil
}
