package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/renderer"
	"mazestalker/pkg/game/tiles"
)

// piece returns the cached rotation 0 image of an archetype, building it on
// first use
func (e *EbitenRenderer) piece(a tiles.Archetype) *ebiten.Image {
	if img, ok := e.pieces[a]; ok {
		return img
	}
	img := buildPiece(a, e.tileSize)
	e.pieces[a] = img
	return img
}

// buildPiece draws the 3x3 floor plan of an archetype into a square image
func buildPiece(a tiles.Archetype, size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(colorWall)

	mask := renderer.PieceMask(tiles.Tile{Archetype: a})
	band := float32(size) / 3
	for r := range mask {
		for c := range mask[r] {
			if mask[r][c] {
				vector.DrawFilledRect(img, float32(c)*band, float32(r)*band, band, band, colorFloor, false)
			}
		}
	}
	return img
}

func (e *EbitenRenderer) drawMarker(screen *ebiten.Image, pos world.Position, clr color.Color) {
	cx, cy := e.toScreen(pos)
	size := float32(e.tileSize) / 3
	vector.DrawFilledRect(screen, float32(cx)-size/2, float32(cy)-size/2, size, size, clr, false)
}

// resetPieces drops the cached images after a tile size change
func (e *EbitenRenderer) resetPieces() {
	for _, img := range e.pieces {
		img.Deallocate()
	}
	e.pieces = make(map[tiles.Archetype]*ebiten.Image)
}
