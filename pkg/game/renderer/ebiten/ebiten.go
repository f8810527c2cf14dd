package ebiten

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"mazestalker/pkg/engine/input"
	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/state"
	"mazestalker/pkg/game/tiles"
)

type placement struct {
	pos  world.Position
	tile tiles.Tile
}

// EbitenRenderer draws the maze pieces in a window. It implements both
// renderer.Renderer and ebiten.Game.
type EbitenRenderer struct {
	// ShowActors draws the spawn markers; toggled with A
	ShowActors bool

	tileSize   int
	bindings   input.Bindings
	placements []placement
	game       *state.Game

	// pieces caches one image per archetype at rotation 0 for the current tile size
	pieces map[tiles.Archetype]*ebiten.Image
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		ShowActors: true,
		tileSize:   defaultTileSize,
		bindings:   input.DefaultBindings(),
	}
}

// SetBindings replaces the key map used by the window
func (e *EbitenRenderer) SetBindings(b input.Bindings) {
	e.bindings = b
}

// Init resets the piece cache
func (e *EbitenRenderer) Init() {
	e.pieces = make(map[tiles.Archetype]*ebiten.Image)
}

// Place records the piece of a cell
func (e *EbitenRenderer) Place(index int, pos world.Position, tile tiles.Tile) {
	if index >= len(e.placements) {
		grown := make([]placement, index+1)
		copy(grown, e.placements)
		e.placements = grown
	}
	e.placements[index] = placement{pos: pos, tile: tile}
}

// RenderFrame opens the preview window and blocks until it is closed
func (e *EbitenRenderer) RenderFrame(g *state.Game) error {
	if len(e.placements) < g.Grid.Len() {
		return fmt.Errorf("ebiten: %d of %d cells placed", len(e.placements), g.Grid.Len())
	}
	e.game = g
	if e.pieces == nil {
		e.Init()
	}
	e.fitTileSize()

	ebiten.SetWindowSize(e.screenSize())
	ebiten.SetWindowTitle(fmt.Sprintf(gotext.Get("PREVIEW_TITLE"), g.Grid.Width(), g.Grid.Height(), g.Params.Seed))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(e)
}

// fitTileSize shrinks the tiles until the maze fits on the monitor
func (e *EbitenRenderer) fitTileSize() {
	mw, mh := ebiten.Monitor().Size()
	if mw <= 0 || mh <= 0 {
		return
	}
	for e.tileSize > minTileSize {
		w, h := e.screenSize()
		if w <= mw*9/10 && h <= mh*9/10 {
			return
		}
		e.tileSize -= tileSizeStep
	}
}

func (e *EbitenRenderer) screenSize() (int, int) {
	return e.game.Grid.Width() * e.tileSize, e.game.Grid.Height() * e.tileSize
}

// Update handles input. Escape or Q closes the window.
func (e *EbitenRenderer) Update() error {
	for _, act := range e.pressedActions() {
		if !e.apply(act) {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders every placed piece and the spawn markers
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	ts := float64(e.tileSize)

	for _, p := range e.placements {
		img := e.piece(p.tile.Archetype)
		cx, cy := e.toScreen(p.pos)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-ts/2, -ts/2)
		op.GeoM.Rotate(float64(p.tile.Rotation) * math.Pi / 2)
		op.GeoM.Translate(cx, cy)
		screen.DrawImage(img, op)
	}

	if !e.ShowActors {
		return
	}
	grid := e.game.Grid
	e.drawMarker(screen, grid.WorldPosition(grid.CoordinateToIndex(e.game.Player)), colorPlayer)
	for _, a := range e.game.Agents {
		e.drawMarker(screen, grid.WorldPosition(grid.CoordinateToIndex(a)), colorAgent)
	}
}

// toScreen converts a world position to the pixel centre of its cell. World
// z grows north, screen y grows down.
func (e *EbitenRenderer) toScreen(pos world.Position) (float64, float64) {
	w, h := float64(e.game.Grid.Width()), float64(e.game.Grid.Height())
	ts := float64(e.tileSize)
	x := (float64(pos.X) + w) / 2 * ts
	y := (h - (float64(pos.Z)+h)/2) * ts
	return x, y
}

// Layout returns the logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenSize()
}
