package cli

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"mazestalker/pkg/engine/terminal"
	"mazestalker/pkg/game/devtools"
	"mazestalker/pkg/game/renderer"
	"mazestalker/pkg/game/renderer/tui"
)

func newGenerateCmd() *cobra.Command {
	var (
		opts     mazeOpts
		noActors bool
		noColor  bool
		dumpPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it",
		Long: `Generate a maze and print it as a text map, north at the top.

Settings come from the difficulty preset, then --config, then MAZE_* environment
variables (also read from .env), then flags.`,
		Example: `  mazestalker generate --difficulty hard --seed 42
  mazestalker generate -W 30 -H 12 --pick-last 1 --open-dead-end 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := opts.build(ctx, cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cols, rows := tui.Size(g.Grid); terminal.IsTerminal() && !terminal.Fits(cols, rows) {
				logger.Warn(fmt.Sprintf(gotext.Get("TERMINAL_TOO_SMALL"), cols, rows))
			}

			r := tui.New(out)
			r.ShowActors = !noActors
			if noColor {
				r.SetColor(false)
			}
			renderer.SetRenderer(r)
			renderer.Init()
			if err := renderer.Render(g); err != nil {
				return err
			}

			if dumpPath != "" {
				path, err := devtools.DumpMapToFile(g, dumpPath)
				if err != nil {
					return err
				}
				logger.Info("map dump written", "path", path)
			}
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&noActors, "no-actors", false, "hide player and agent spawns")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "also write a map dump to this file")
	return cmd
}
