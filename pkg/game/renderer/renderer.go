package renderer

import (
	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/tiles"
)

// Icon constants shared by the text backends
const (
	IconWall   = "#"
	IconFloor  = "."
	IconPlayer = "@"
	IconAgent  = "A"
)

// Mask is the 3x3 floor plan of a piece, row 0 at the north edge. true is floor.
type Mask [3][3]bool

// PieceMask returns the floor plan of a tile after rotation. The centre is
// always floor; an edge is floor where the piece is open and a corner where
// its diagonal is open.
func PieceMask(tile tiles.Tile) Mask {
	f := tile.Archetype.Canonical().Rotate(tile.Rotation)

	var m Mask
	m[1][1] = true
	m[0][1] = f.HasAll(world.PassageN)
	m[1][2] = f.HasAll(world.PassageE)
	m[2][1] = f.HasAll(world.PassageS)
	m[1][0] = f.HasAll(world.PassageW)
	m[0][2] = f.HasAll(world.PassageNE)
	m[2][2] = f.HasAll(world.PassageSE)
	m[2][0] = f.HasAll(world.PassageSW)
	m[0][0] = f.HasAll(world.PassageNW)
	return m
}

// String draws the mask with wall and floor icons, one line per row
func (m Mask) String() string {
	s := ""
	for r := range m {
		for c := range m[r] {
			if m[r][c] {
				s += IconFloor
			} else {
				s += IconWall
			}
		}
		s += "\n"
	}
	return s
}

// Collector is a Placer that records every placement by cell index
type Collector struct {
	Tiles     []tiles.Tile
	Positions []world.Position
}

// NewCollector creates a collector sized for n cells
func NewCollector(n int) *Collector {
	return &Collector{
		Tiles:     make([]tiles.Tile, n),
		Positions: make([]world.Position, n),
	}
}

// Place records a placement
func (c *Collector) Place(index int, pos world.Position, tile tiles.Tile) {
	c.Tiles[index] = tile
	c.Positions[index] = pos
}
