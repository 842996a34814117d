// The plex-mcp command serves the Plex MCP context server and resolves
// context server identifiers for editor hosts.
package main

import (
	"fmt"
	"os"

	"github.com/plexmcp/plexmcp/pkg/project"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   project.Name,
	Short: "plex-mcp — Plex Media Server integration for MCP hosts",
	Long: "plex-mcp exposes a Plex Media Server as MCP tools over stdio, " +
		"and resolves context server identifiers to launch commands for editor hosts.",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = project.Version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contextServerCmd)
}
