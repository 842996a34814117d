package results

import "github.com/plexmcp/plexmcp/pkg/types"

// SessionResult represents an active playback session in tool output
type SessionResult struct {
	Item        MediaItemResult `json:"item"`
	User        string          `json:"user,omitempty"`
	Player      string          `json:"player,omitempty"`
	PlayerState string          `json:"player_state,omitempty"`
	Progress    string          `json:"progress,omitempty"`
}

// NewSessionResult creates a SessionResult from a Plex playback session
func NewSessionResult(session types.Session) SessionResult {
	return SessionResult{
		Item:        NewMediaItemResult(session.Item),
		User:        session.User,
		Player:      session.Player,
		PlayerState: session.PlayerState,
		Progress:    FormatDuration(session.ViewOffsetMS),
	}
}

// ListSessionsToolResult represents the result of the list sessions tool
type ListSessionsToolResult struct {
	Message  string          `json:"message"`
	Sessions []SessionResult `json:"sessions"`
}
