package results

import "github.com/plexmcp/plexmcp/pkg/types"

// PlaylistResult represents a playlist in tool output
type PlaylistResult struct {
	RatingKey string `json:"rating_key"`
	Title     string `json:"title"`
	Type      string `json:"type,omitempty"`
	Smart     bool   `json:"smart"`
	Duration  string `json:"duration,omitempty"`
	ItemCount int    `json:"item_count"`
}

// NewPlaylistResult creates a PlaylistResult from a Plex playlist
func NewPlaylistResult(playlist types.Playlist) PlaylistResult {
	return PlaylistResult{
		RatingKey: playlist.RatingKey,
		Title:     playlist.Title,
		Type:      playlist.Type,
		Smart:     playlist.Smart,
		Duration:  FormatDuration(playlist.DurationMillis),
		ItemCount: playlist.ItemCount,
	}
}

// ListPlaylistsToolResult represents the result of the list playlists tool
type ListPlaylistsToolResult struct {
	Message   string           `json:"message"`
	Playlists []PlaylistResult `json:"playlists"`
}

// GetPlaylistItemsToolResult represents the result of the get playlist items tool
type GetPlaylistItemsToolResult struct {
	Message   string               `json:"message"`
	Arguments GetPlaylistItemsArgs `json:"arguments"`
	Items     []MediaItemResult    `json:"items"`
}

// GetPlaylistItemsArgs represents the arguments for the get playlist items tool
type GetPlaylistItemsArgs struct {
	RatingKey string `json:"rating_key"`
}
