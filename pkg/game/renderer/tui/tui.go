// Package tui renders a maze as a block of coloured text, three characters
// per cell side, north at the top.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"

	"mazestalker/pkg/engine/terminal"
	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/renderer"
	"mazestalker/pkg/game/state"
	"mazestalker/pkg/game/tiles"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	color bool
	tiles []tiles.Tile

	// ShowActors overlays the player and agent spawns
	ShowActors bool

	colorWall   color.Style
	colorFloor  color.Style
	colorPlayer color.Style
	colorAgent  color.Style
}

// New creates a TUI renderer writing to out. Colour is enabled only when out
// is a terminal.
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		out:        out,
		color:      out == io.Writer(os.Stdout) && terminal.IsTerminal(),
		ShowActors: true,
	}
}

// SetColor forces colour output on or off
func (t *TUIRenderer) SetColor(enabled bool) {
	t.color = enabled
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgBlue}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorAgent = color.Style{color.FgRed, color.OpBold}
}

// Place records the tile of a cell
func (t *TUIRenderer) Place(index int, pos world.Position, tile tiles.Tile) {
	if index >= len(t.tiles) {
		grown := make([]tiles.Tile, index+1)
		copy(grown, t.tiles)
		t.tiles = grown
	}
	t.tiles[index] = tile
}

// Size returns the number of text columns and rows a grid renders to
func Size(grid *world.Grid) (cols, rows int) {
	return grid.Width() * 3, grid.Height() * 3
}

// RenderFrame writes the placed tiles as a text map
func (t *TUIRenderer) RenderFrame(g *state.Game) error {
	grid := g.Grid
	if len(t.tiles) < grid.Len() {
		return fmt.Errorf("tui: %d of %d cells placed", len(t.tiles), grid.Len())
	}

	w := bufio.NewWriter(t.out)
	for y := grid.Height() - 1; y >= 0; y-- {
		masks := make([]renderer.Mask, grid.Width())
		for x := range masks {
			masks[x] = renderer.PieceMask(t.tiles[grid.CoordinateToIndex(world.Coordinate{X: x, Y: y})])
		}
		for r := 0; r < 3; r++ {
			for x, m := range masks {
				for c := 0; c < 3; c++ {
					w.WriteString(t.glyph(g, world.Coordinate{X: x, Y: y}, m, r, c))
				}
			}
			w.WriteString("\n")
		}
	}
	return w.Flush()
}

func (t *TUIRenderer) glyph(g *state.Game, at world.Coordinate, m renderer.Mask, r, c int) string {
	if r == 1 && c == 1 && t.ShowActors {
		if g.Player == at {
			return t.style(t.colorPlayer, renderer.IconPlayer)
		}
		if g.IsAgentAt(at) {
			return t.style(t.colorAgent, renderer.IconAgent)
		}
	}
	if m[r][c] {
		return t.style(t.colorFloor, renderer.IconFloor)
	}
	return t.style(t.colorWall, renderer.IconWall)
}

func (t *TUIRenderer) style(s color.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Sprint(text)
}
