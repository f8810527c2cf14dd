package cli

import (
	"github.com/spf13/cobra"

	"mazestalker/pkg/game/devtools"
)

func newTilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiles",
		Short: "Print every tile archetype in each rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return devtools.WriteTileGallery(cmd.OutOrStdout())
		},
	}
}
