package devtools

import (
	"fmt"
	"io"
	"strings"

	"mazestalker/pkg/game/renderer"
	"mazestalker/pkg/game/tiles"
)

// WriteTileGallery prints every archetype in each of its distinct rotations,
// with the flags each placement stands for
func WriteTileGallery(w io.Writer) error {
	for _, a := range tiles.AllArchetypes() {
		if _, err := fmt.Fprintf(w, "%s\n", a); err != nil {
			return err
		}
		masks := make([][]string, 0, a.Rotations())
		labels := make([]string, 0, a.Rotations())
		for r := 0; r < a.Rotations(); r++ {
			tile := tiles.Tile{Archetype: a, Rotation: r}
			masks = append(masks, strings.Split(strings.TrimSuffix(renderer.PieceMask(tile).String(), "\n"), "\n"))
			labels = append(labels, fmt.Sprintf("r%d %s", r, a.Canonical().Rotate(r)))
		}
		for row := 0; row < 3; row++ {
			line := make([]string, len(masks))
			for i, m := range masks {
				line[i] = fmt.Sprintf("%-16s", m[row])
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(line, ""), " "))
		}
		line := make([]string, len(labels))
		for i, l := range labels {
			line[i] = fmt.Sprintf("%-16s", l)
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", strings.TrimRight(strings.Join(line, ""), " ")); err != nil {
			return err
		}
	}
	return nil
}
