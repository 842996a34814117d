// Package project holds module-wide identity constants.
package project

const (
	Name    = "plex-mcp"
	Version = "1.0.0"
)
