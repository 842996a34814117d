package results

import "github.com/plexmcp/plexmcp/pkg/types"

// LibraryResult represents a library section in tool output
type LibraryResult struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Agent    string `json:"agent,omitempty"`
	Scanner  string `json:"scanner,omitempty"`
	Language string `json:"language,omitempty"`
}

// NewLibraryResult creates a LibraryResult from a Plex library section
func NewLibraryResult(library types.Library) LibraryResult {
	return LibraryResult{
		Key:      library.Key,
		Title:    library.Title,
		Type:     library.Type,
		Agent:    library.Agent,
		Scanner:  library.Scanner,
		Language: library.Language,
	}
}

// ListLibrariesToolResult represents the result of the list libraries tool
type ListLibrariesToolResult struct {
	Message   string          `json:"message"`
	Libraries []LibraryResult `json:"libraries"`
}

// GetLibraryItemsToolResult represents the result of the get library items tool
type GetLibraryItemsToolResult struct {
	Message    string              `json:"message"`
	Arguments  GetLibraryItemsArgs `json:"arguments"`
	TotalCount int                 `json:"total_count"`
	Items      []MediaItemResult   `json:"items"`
}

// GetLibraryItemsArgs represents the arguments for the get library items tool
type GetLibraryItemsArgs struct {
	LibraryKey string `json:"library_key"`
	MediaType  string `json:"media_type,omitempty"`
	Start      int    `json:"start,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}
