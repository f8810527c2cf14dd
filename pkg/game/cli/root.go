// Package cli implements the mazestalker command-line interface.
//
// Commands:
//   - generate: build a maze and print it as a text map
//   - tiles: print every tile archetype in each rotation
//   - dump: write a developer map dump file
//   - preview: open the maze in a window
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"mazestalker/pkg/game/locale"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mazestalker CLI and returns an error if any command fails
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mazestalker",
		Short:        "Procedural maze generator",
		Long:         `mazestalker carves braided mazes with the growing tree algorithm, derives their corner connectivity and picks a wall piece for every cell.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			locale.Load()
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mazestalker %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newTilesCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newPreviewCmd())

	return root
}
