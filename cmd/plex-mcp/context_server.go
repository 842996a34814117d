package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/plexmcp/plexmcp/pkg/extension"
	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/spf13/cobra"
)

var contextServerCmd = &cobra.Command{
	Use:   "context-server <id>",
	Short: "Resolve a context server identifier to its launch command",
	Long: "Resolve a context server identifier the way an editor host would, " +
		"printing the launch command as JSON. Exits nonzero for unknown identifiers.",
	Args: cobra.ExactArgs(1),
	RunE: runContextServer,
}

func runContextServer(_ *cobra.Command, args []string) error {
	ext := extension.New()

	command, err := ext.ContextServerCommand(types.ContextServerID(args[0]), nil)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(command, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
