// Package world provides the maze grid primitives: passage flags, directions
// and the flat cell grid with its coordinate arithmetic.
package world

// Cell is a read-only view of a single grid cell
type Cell struct {
	// Flat row-major index
	Index int

	// Grid position
	X int
	Y int

	Flags Flags
}

// HasPassage returns true if the cell is open in the given direction
func (c Cell) HasPassage(dir Direction) bool {
	return c.Flags.HasAll(dir.Passage())
}

// Passages returns the open orthogonal directions in N, E, S, W order
func (c Cell) Passages() []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		if c.HasPassage(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// IsDeadEnd returns true if the cell has exactly one orthogonal passage
func (c Cell) IsDeadEnd() bool {
	return c.Flags.Straight().HasExactlyOne()
}

// IsEmpty returns true if no passage has been carved into the cell
func (c Cell) IsEmpty() bool {
	return c.Flags == Empty
}

// Coordinate returns the cell position
func (c Cell) Coordinate() Coordinate {
	return Coordinate{X: c.X, Y: c.Y}
}
