package plex

import "github.com/plexmcp/plexmcp/pkg/types"

// Plex wraps every JSON response in a MediaContainer envelope.
type container struct {
	MediaContainer mediaContainer `json:"MediaContainer"`
}

type mediaContainer struct {
	Size              int         `json:"size"`
	TotalSize         int         `json:"totalSize"`
	FriendlyName      string      `json:"friendlyName"`
	Version           string      `json:"version"`
	Platform          string      `json:"platform"`
	MachineIdentifier string      `json:"machineIdentifier"`
	Directory         []directory `json:"Directory"`
	Metadata          []metadata  `json:"Metadata"`
}

type directory struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Agent     string `json:"agent"`
	Scanner   string `json:"scanner"`
	Language  string `json:"language"`
	UpdatedAt int64  `json:"updatedAt"`
	ScannedAt int64  `json:"scannedAt"`
}

type metadata struct {
	RatingKey        string     `json:"ratingKey"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	ParentTitle      string     `json:"parentTitle"`
	GrandparentTitle string     `json:"grandparentTitle"`
	Summary          string     `json:"summary"`
	Year             int        `json:"year"`
	Rating           float64    `json:"rating"`
	Duration         int64      `json:"duration"`
	Index            int        `json:"index"`
	ParentIndex      int        `json:"parentIndex"`
	LibrarySectionID int        `json:"librarySectionID"`
	AddedAt          int64      `json:"addedAt"`
	ViewOffset       int64      `json:"viewOffset"`
	PlaylistType     string     `json:"playlistType"`
	Smart            bool       `json:"smart"`
	LeafCount        int        `json:"leafCount"`
	User             *userRef   `json:"User,omitempty"`
	Player           *playerRef `json:"Player,omitempty"`
}

type userRef struct {
	Title string `json:"title"`
}

type playerRef struct {
	Title   string `json:"title"`
	Product string `json:"product"`
	State   string `json:"state"`
}

func (d directory) toLibrary() types.Library {
	return types.Library{
		Key:       d.Key,
		Title:     d.Title,
		Type:      d.Type,
		Agent:     d.Agent,
		Scanner:   d.Scanner,
		Language:  d.Language,
		UpdatedAt: d.UpdatedAt,
		ScannedAt: d.ScannedAt,
	}
}

func (m metadata) toMediaItem() types.MediaItem {
	return types.MediaItem{
		RatingKey:        m.RatingKey,
		Type:             m.Type,
		Title:            m.Title,
		ParentTitle:      m.ParentTitle,
		GrandparentTitle: m.GrandparentTitle,
		Summary:          m.Summary,
		Year:             m.Year,
		Rating:           m.Rating,
		DurationMillis:   m.Duration,
		Index:            m.Index,
		ParentIndex:      m.ParentIndex,
		LibrarySectionID: m.LibrarySectionID,
		AddedAt:          m.AddedAt,
	}
}

func (m metadata) toSession() types.Session {
	session := types.Session{
		Item:         m.toMediaItem(),
		ViewOffsetMS: m.ViewOffset,
	}
	if m.User != nil {
		session.User = m.User.Title
	}
	if m.Player != nil {
		session.Player = m.Player.Title
		session.PlayerState = m.Player.State
	}
	return session
}

func (m metadata) toPlaylist() types.Playlist {
	return types.Playlist{
		RatingKey:      m.RatingKey,
		Title:          m.Title,
		Type:           m.PlaylistType,
		Smart:          m.Smart,
		DurationMillis: m.Duration,
		ItemCount:      m.LeafCount,
	}
}

func toMediaItems(entries []metadata) []types.MediaItem {
	items := make([]types.MediaItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entry.toMediaItem())
	}
	return items
}
