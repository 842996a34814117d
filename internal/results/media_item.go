package results

import (
	"fmt"

	"github.com/plexmcp/plexmcp/pkg/types"
)

// MediaItemResult represents a media item in tool output
type MediaItemResult struct {
	RatingKey        string    `json:"rating_key"`
	Kind             MediaKind `json:"kind"`
	Title            string    `json:"title"`
	ParentTitle      string    `json:"parent_title,omitempty"`
	GrandparentTitle string    `json:"grandparent_title,omitempty"`
	Summary          string    `json:"summary,omitempty"`
	Year             int       `json:"year,omitempty"`
	Rating           float64   `json:"rating,omitempty"`
	Duration         string    `json:"duration,omitempty"`
	Index            int       `json:"index,omitempty"`
	ParentIndex      int       `json:"parent_index,omitempty"`
}

// NewMediaItemResult creates a MediaItemResult from a Plex media item
func NewMediaItemResult(item types.MediaItem) MediaItemResult {
	return MediaItemResult{
		RatingKey:        item.RatingKey,
		Kind:             NewMediaKind(item.Type),
		Title:            item.Title,
		ParentTitle:      item.ParentTitle,
		GrandparentTitle: item.GrandparentTitle,
		Summary:          item.Summary,
		Year:             item.Year,
		Rating:           item.Rating,
		Duration:         FormatDuration(item.DurationMillis),
		Index:            item.Index,
		ParentIndex:      item.ParentIndex,
	}
}

// NewMediaItemResults converts a slice of media items
func NewMediaItemResults(items []types.MediaItem) []MediaItemResult {
	converted := make([]MediaItemResult, 0, len(items))
	for _, item := range items {
		converted = append(converted, NewMediaItemResult(item))
	}
	return converted
}

// FormatDuration renders a millisecond duration as "1h52m" or "42m".
// Zero durations render as an empty string so they drop out of JSON.
func FormatDuration(millis int64) string {
	if millis <= 0 {
		return ""
	}

	totalMinutes := millis / 60000
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
