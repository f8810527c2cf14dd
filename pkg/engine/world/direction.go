package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. North is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Passage returns the passage bit for this direction, or Empty for an invalid direction
func (d Direction) Passage() Flags {
	switch d {
	case North:
		return PassageN
	case East:
		return PassageE
	case South:
		return PassageS
	case West:
		return PassageW
	default:
		return Empty
	}
}

// Corner identifies one of the four diagonal corners of a cell
type Corner int

// Corner constants, clockwise from north-east
const (
	NorthEast Corner = iota
	SouthEast
	SouthWest
	NorthWest
)

// AllCorners returns all corners for iteration
func AllCorners() []Corner {
	return []Corner{NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a corner
func (c Corner) String() string {
	switch c {
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// Sides returns the two orthogonal directions that meet at this corner
func (c Corner) Sides() (Direction, Direction) {
	switch c {
	case NorthEast:
		return North, East
	case SouthEast:
		return South, East
	case SouthWest:
		return South, West
	default:
		return North, West
	}
}

// Passage returns the diagonal passage bit for this corner
func (c Corner) Passage() Flags {
	switch c {
	case NorthEast:
		return PassageNE
	case SouthEast:
		return PassageSE
	case SouthWest:
		return PassageSW
	case NorthWest:
		return PassageNW
	default:
		return Empty
	}
}

// SidePassages returns the orthogonal passage bits this corner joins on its own cell
func (c Corner) SidePassages() Flags {
	a, b := c.Sides()
	return a.Passage() | b.Passage()
}

// ReciprocalPassages returns the orthogonal bits the diagonal neighbour must
// carry for the corner to count as open, e.g. S|W for NorthEast
func (c Corner) ReciprocalPassages() Flags {
	a, b := c.Sides()
	return a.Opposite().Passage() | b.Opposite().Passage()
}
