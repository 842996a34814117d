package types

import "context"

// PlexClient defines the Plex Media Server client interface
type PlexClient interface {
	ServerInfo(ctx context.Context) (ServerInfo, error)
	Libraries(ctx context.Context) ([]Library, error)
	LibraryItems(ctx context.Context, libraryKey string, opts ItemsOptions) ([]MediaItem, int, error)
	Search(ctx context.Context, query string, opts SearchOptions) ([]MediaItem, error)
	MediaInfo(ctx context.Context, ratingKey string) (MediaItem, error)
	Sessions(ctx context.Context) ([]Session, error)
	Playlists(ctx context.Context) ([]Playlist, error)
	PlaylistItems(ctx context.Context, ratingKey string) ([]MediaItem, error)
}

// ServerInfo describes the Plex server identity
type ServerInfo struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	Platform          string `json:"platform"`
	MachineIdentifier string `json:"machine_identifier"`
}

// Library represents a Plex library section
type Library struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Agent     string `json:"agent,omitempty"`
	Scanner   string `json:"scanner,omitempty"`
	Language  string `json:"language,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
	ScannedAt int64  `json:"scanned_at,omitempty"`
}

// MediaItem represents a single piece of media metadata
type MediaItem struct {
	RatingKey        string  `json:"rating_key"`
	Type             string  `json:"type"`
	Title            string  `json:"title"`
	ParentTitle      string  `json:"parent_title,omitempty"`
	GrandparentTitle string  `json:"grandparent_title,omitempty"`
	Summary          string  `json:"summary,omitempty"`
	Year             int     `json:"year,omitempty"`
	Rating           float64 `json:"rating,omitempty"`
	DurationMillis   int64   `json:"duration_millis,omitempty"`
	Index            int     `json:"index,omitempty"`
	ParentIndex      int     `json:"parent_index,omitempty"`
	LibrarySectionID int     `json:"library_section_id,omitempty"`
	AddedAt          int64   `json:"added_at,omitempty"`
}

// Session represents an active playback session
type Session struct {
	Item         MediaItem `json:"item"`
	User         string    `json:"user,omitempty"`
	Player       string    `json:"player,omitempty"`
	PlayerState  string    `json:"player_state,omitempty"`
	ViewOffsetMS int64     `json:"view_offset_ms,omitempty"`
}

// Playlist represents a Plex playlist
type Playlist struct {
	RatingKey      string `json:"rating_key"`
	Title          string `json:"title"`
	Type           string `json:"type,omitempty"`
	Smart          bool   `json:"smart,omitempty"`
	DurationMillis int64  `json:"duration_millis,omitempty"`
	ItemCount      int    `json:"item_count,omitempty"`
}

// ItemsOptions controls pagination and filtering for library item listings
type ItemsOptions struct {
	Type   string
	Start  int
	Size   int
	SortBy string
}

// SearchOptions controls search scoping
type SearchOptions struct {
	Type  string
	Limit int
}

// Server defines the MCP server interface
type Server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
