package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive size
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Coordinate is a cell position, x growing east and y growing north
type Coordinate struct {
	X int
	Y int
}

// Position is the centre of a cell in world space. Cells are two units wide
// and the maze is centred on the origin.
type Position struct {
	X float32
	Z float32
}

// Grid is the maze: a flat row-major array of per-cell passage flags
type Grid struct {
	width  int
	height int
	cells  []Flags
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Flags, width*height),
	}, nil
}

// Width returns the number of columns (east-west)
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows (north-south)
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// StepN is the index offset to the cell north of another
func (g *Grid) StepN() int { return g.width }

// StepE is the index offset to the cell east of another
func (g *Grid) StepE() int { return 1 }

// StepS is the index offset to the cell south of another
func (g *Grid) StepS() int { return -g.width }

// StepW is the index offset to the cell west of another
func (g *Grid) StepW() int { return -1 }

// Step returns the index offset for a direction
func (g *Grid) Step(dir Direction) int {
	switch dir {
	case North:
		return g.StepN()
	case East:
		return g.StepE()
	case South:
		return g.StepS()
	case West:
		return g.StepW()
	default:
		panic(fmt.Sprintf("world: invalid direction %d", int(dir)))
	}
}

func (g *Grid) mustIndex(index int) {
	if index < 0 || index >= len(g.cells) {
		panic(fmt.Sprintf("world: cell index %d out of range [0,%d)", index, len(g.cells)))
	}
}

// Get returns the flags of a cell
func (g *Grid) Get(index int) Flags {
	g.mustIndex(index)
	return g.cells[index]
}

// Set adds mask to the flags of a cell and returns the result
func (g *Grid) Set(index int, mask Flags) Flags {
	g.mustIndex(index)
	g.cells[index] = g.cells[index].With(mask)
	return g.cells[index]
}

// Unset clears mask from the flags of a cell and returns the result
func (g *Grid) Unset(index int, mask Flags) Flags {
	g.mustIndex(index)
	g.cells[index] = g.cells[index].Without(mask)
	return g.cells[index]
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IndexToCoordinate converts a cell index to its coordinate
func (g *Grid) IndexToCoordinate(index int) Coordinate {
	g.mustIndex(index)
	y := index / g.width
	return Coordinate{X: index - g.width*y, Y: y}
}

// CoordinateToIndex converts a coordinate to a cell index
func (g *Grid) CoordinateToIndex(c Coordinate) int {
	if !g.IsValidPosition(c.X, c.Y) {
		panic(fmt.Sprintf("world: coordinate (%d,%d) outside %dx%d grid", c.X, c.Y, g.width, g.height))
	}
	return c.Y*g.width + c.X
}

// Neighbor returns the index of the adjacent cell in the given direction.
// Returns false when the step would leave the grid; there is no wraparound.
func (g *Grid) Neighbor(index int, dir Direction) (int, bool) {
	if !dir.IsValid() {
		return 0, false
	}
	c := g.IndexToCoordinate(index)
	dx, dy := dir.Delta()
	if !g.IsValidPosition(c.X+dx, c.Y+dy) {
		return 0, false
	}
	return index + g.Step(dir), true
}

// DiagonalNeighbor returns the index of the cell across the given corner
func (g *Grid) DiagonalNeighbor(index int, corner Corner) (int, bool) {
	a, b := corner.Sides()
	n, ok := g.Neighbor(index, a)
	if !ok {
		return 0, false
	}
	return g.Neighbor(n, b)
}

// Carve opens the passage from a cell in the given direction, setting the
// reciprocal bit on the neighbour in the same call. Carving off the edge of
// the grid is a programming error.
func (g *Grid) Carve(index int, dir Direction) int {
	n, ok := g.Neighbor(index, dir)
	if !ok {
		c := g.IndexToCoordinate(index)
		panic(fmt.Sprintf("world: cannot carve %s from (%d,%d)", dir, c.X, c.Y))
	}
	g.cells[index] = g.cells[index].With(dir.Passage())
	g.cells[n] = g.cells[n].With(dir.Opposite().Passage())
	return n
}

// HasPassage returns true if the cell has an open passage in the given direction
func (g *Grid) HasPassage(index int, dir Direction) bool {
	return g.Get(index).HasAll(dir.Passage())
}

// WorldPosition returns the world-space centre of a cell
func (g *Grid) WorldPosition(index int) Position {
	c := g.IndexToCoordinate(index)
	return Position{
		X: float32(2*c.X + 1 - g.width),
		Z: float32(2*c.Y + 1 - g.height),
	}
}

// Cell returns a read-only view of the cell at index
func (g *Grid) Cell(index int) Cell {
	c := g.IndexToCoordinate(index)
	return Cell{Index: index, X: c.X, Y: c.Y, Flags: g.cells[index]}
}

// ForEachCell iterates over all cells in index order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(index int, cell Cell)) {
	for i := range g.cells {
		fn(i, g.Cell(i))
	}
}

// Bytes returns a copy of the flag array, one byte per cell in index order
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.cells))
	for i, f := range g.cells {
		out[i] = byte(f)
	}
	return out
}

// Snapshot returns a copy of the flag array
func (g *Grid) Snapshot() []Flags {
	out := make([]Flags, len(g.cells))
	copy(out, g.cells)
	return out
}

// PassageCount returns the number of undirected orthogonal passages
func (g *Grid) PassageCount() int {
	n := 0
	for _, f := range g.cells {
		// Count each edge once, from its east or north end.
		if f.HasAll(PassageE) {
			n++
		}
		if f.HasAll(PassageN) {
			n++
		}
	}
	return n
}

// Reachable returns the set of cells reachable from start by following open
// orthogonal passages
func (g *Grid) Reachable(start int) mapset.Set[int] {
	g.mustIndex(start)
	visited := mapset.New[int]()
	q := queue.New[int]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range AllDirections() {
			if !g.cells[current].HasAll(dir.Passage()) {
				continue
			}
			n, ok := g.Neighbor(current, dir)
			if !ok || visited.Has(n) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}
	return visited
}

// CheckSymmetry returns an error describing the first passage that is open
// on one side only, or a passage leading off the grid
func (g *Grid) CheckSymmetry() error {
	for i, f := range g.cells {
		for _, dir := range AllDirections() {
			n, ok := g.Neighbor(i, dir)
			if !ok {
				if f.HasAll(dir.Passage()) {
					c := g.IndexToCoordinate(i)
					return fmt.Errorf("cell (%d,%d) has a %s passage off the grid", c.X, c.Y, dir)
				}
				continue
			}
			if f.HasAll(dir.Passage()) != g.cells[n].HasAll(dir.Opposite().Passage()) {
				c := g.IndexToCoordinate(i)
				return fmt.Errorf("cell (%d,%d) %s passage is not mirrored by its neighbour", c.X, c.Y, dir)
			}
		}
	}
	return nil
}

// CheckDiagonals returns an error describing the first diagonal bit that is
// set without both contributing passages on the cell and the reciprocal pair
// on the diagonal neighbour
func (g *Grid) CheckDiagonals() error {
	for i, f := range g.cells {
		for _, corner := range AllCorners() {
			if !f.HasAll(corner.Passage()) {
				continue
			}
			valid := f.HasAll(corner.SidePassages())
			if valid {
				n, ok := g.DiagonalNeighbor(i, corner)
				valid = ok && g.cells[n].HasAll(corner.ReciprocalPassages())
			}
			if !valid {
				c := g.IndexToCoordinate(i)
				return fmt.Errorf("cell (%d,%d) has an unsupported %s diagonal", c.X, c.Y, corner)
			}
		}
	}
	return nil
}
