// Package renderer defines how rendering backends receive a finished maze.
package renderer

import (
	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/state"
	"mazestalker/pkg/game/tiles"
)

// Placer receives one visual piece per cell
type Placer interface {
	// Place puts tile at the world position of the cell with the given index
	Place(index int, pos world.Position, tile tiles.Tile)
}

// Renderer defines the interface for maze rendering backends.
// Implementations include the TUI (terminal) and Ebiten.
type Renderer interface {
	Placer

	// Init initializes the renderer (colors, window, etc.)
	Init()

	// RenderFrame draws the session: the maze pieces placed so far plus the
	// actor spawns
	RenderFrame(g *state.Game) error
}

// Visualize selects the tile of every cell in index order and hands it to
// the placer together with the cell's world position
func Visualize(grid *world.Grid, placer Placer) {
	grid.ForEachCell(func(index int, cell world.Cell) {
		placer.Place(index, grid.WorldPosition(index), tiles.Select(cell.Flags))
	})
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Render places every cell of the session's maze on the current renderer
// and draws the frame
func Render(g *state.Game) error {
	if Current == nil {
		return nil
	}
	Visualize(g.Grid, Current)
	return Current.RenderFrame(g)
}
