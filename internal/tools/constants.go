package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "plex."

// Tool names
const (
	ToolSearchMedia      = ToolPrefix + "search_media"
	ToolListLibraries    = ToolPrefix + "list_libraries"
	ToolGetLibraryItems  = ToolPrefix + "get_library_items"
	ToolGetMediaInfo     = ToolPrefix + "get_media_info"
	ToolGetServerStatus  = ToolPrefix + "get_server_status"
	ToolListSessions     = ToolPrefix + "list_sessions"
	ToolListPlaylists    = ToolPrefix + "list_playlists"
	ToolGetPlaylistItems = ToolPrefix + "get_playlist_items"
)
