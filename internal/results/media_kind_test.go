package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMediaKind(t *testing.T) {
	tests := []struct {
		name     string
		plexType string
		expected MediaKind
	}{
		{
			name:     "movie",
			plexType: "movie",
			expected: MediaKindMovie,
		},
		{
			name:     "episode",
			plexType: "episode",
			expected: MediaKindEpisode,
		},
		{
			name:     "track",
			plexType: "track",
			expected: MediaKindTrack,
		},
		{
			name:     "unrecognized type",
			plexType: "hologram",
			expected: MediaKindUnknown,
		},
		{
			name:     "empty type",
			plexType: "",
			expected: MediaKindUnknown,
		},
		{
			name:     "matching is case sensitive",
			plexType: "Movie",
			expected: MediaKindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMediaKind(tt.plexType))
		})
	}
}
