package types

// Config represents the configuration for the plex-mcp server
type Config struct {
	ServerURL string `json:"server_url"`
	Token     string `json:"token"`
	Timeout   int    `json:"timeout,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
}
