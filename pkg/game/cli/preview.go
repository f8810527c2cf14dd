package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mazestalker/pkg/engine/input"
	"mazestalker/pkg/game/renderer"
	"mazestalker/pkg/game/renderer/ebiten"
)

func newPreviewCmd() *cobra.Command {
	var (
		opts  mazeOpts
		binds []string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open the maze in a window",
		Long: "Open the maze in a window.\n\nKeys:\n  " +
			strings.Join(input.DefaultBindings().Describe(), "\n  "),
		Example: `  mazestalker preview --difficulty hard
  mazestalker preview --bind toggle-actors=t --bind quit=x`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bindings, err := parseBinds(binds)
			if err != nil {
				return err
			}
			g, err := opts.build(ctx, cmd)
			if err != nil {
				return err
			}

			logger := loggerFromContext(ctx)
			for _, line := range bindings.Describe() {
				logger.Debug("key binding", "keys", line)
			}

			r := ebiten.New()
			r.SetBindings(bindings)
			renderer.SetRenderer(r)
			renderer.Init()
			return renderer.Render(g)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringArrayVar(&binds, "bind", nil, "rebind an action to a key, as action=key (repeatable)")
	return cmd
}

// parseBinds applies action=key pairs on top of the default key map
func parseBinds(binds []string) (input.Bindings, error) {
	b := input.DefaultBindings()
	for _, bind := range binds {
		id, code, ok := strings.Cut(bind, "=")
		if !ok {
			return nil, fmt.Errorf("invalid binding %q, want action=key", bind)
		}
		act, err := input.ParseAction(id)
		if err != nil {
			return nil, err
		}
		code = strings.ToLower(strings.TrimSpace(code))
		if !ebiten.HasKey(code) {
			return nil, fmt.Errorf("binding %q: no key %q", bind, code)
		}
		b.Bind(act, code)
	}
	return b, nil
}
