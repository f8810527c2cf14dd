package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mazestalker/pkg/game/devtools"
)

func newDumpCmd() *cobra.Command {
	var (
		opts   mazeOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write a developer map dump",
		Long: `Write a developer map dump: session metadata with the six values that
regenerate the maze, a legend, the text map and a per-cell listing of flags and tiles.
Use "-" to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			g, err := opts.build(ctx, cmd)
			if err != nil {
				return err
			}
			if output == "-" {
				return devtools.DumpMap(cmd.OutOrStdout(), g)
			}
			path, err := devtools.DumpMapToFile(g, output)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Wrote %s", path))
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "map.txt", "dump file path")
	return cmd
}
