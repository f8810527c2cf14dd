package world

import "strings"

// Flags is the set of passages leaving a cell.
// The low nibble holds the orthogonal passages, the high nibble the diagonal
// (corner) passages derived after generation.
type Flags uint8

// Passage bits
const (
	PassageN Flags = 1 << iota
	PassageE
	PassageS
	PassageW
	PassageNE
	PassageSE
	PassageSW
	PassageNW
)

// Masks
const (
	Empty            Flags = 0
	PassagesStraight       = PassageN | PassageE | PassageS | PassageW
	PassagesDiagonal       = PassageNE | PassageSE | PassageSW | PassageNW
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{PassageN, "N"},
	{PassageE, "E"},
	{PassageS, "S"},
	{PassageW, "W"},
	{PassageNE, "NE"},
	{PassageSE, "SE"},
	{PassageSW, "SW"},
	{PassageNW, "NW"},
}

// HasAll returns true if every bit of mask is set
func (f Flags) HasAll(mask Flags) bool {
	return f&mask == mask
}

// HasAny returns true if at least one bit of mask is set
func (f Flags) HasAny(mask Flags) bool {
	return f&mask != 0
}

// HasExactlyOne returns true if exactly one bit is set
func (f Flags) HasExactlyOne() bool {
	return f != Empty && f&(f-1) == 0
}

// With returns the union of f and mask
func (f Flags) With(mask Flags) Flags {
	return f | mask
}

// Without returns f with the bits of mask cleared
func (f Flags) Without(mask Flags) Flags {
	return f &^ mask
}

// Straight returns only the orthogonal passages
func (f Flags) Straight() Flags {
	return f & PassagesStraight
}

// Diagonal returns only the diagonal passages
func (f Flags) Diagonal() Flags {
	return f & PassagesDiagonal
}

// Count returns the number of bits set
func (f Flags) Count() int {
	n := 0
	for v := f; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Rotate turns the flags clockwise by the given number of quarter turns.
// N becomes E, E becomes S, and so on; NE becomes SE likewise.
func (f Flags) Rotate(quarterTurns int) Flags {
	r := uint(((quarterTurns % 4) + 4) % 4)
	return rotateNibble(f.Straight(), r) | rotateNibble(f.Diagonal()>>4, r)<<4
}

// RotatedDiagonal returns the diagonal passages turned counter-clockwise by
// rotation quarter turns, i.e. expressed in the frame of a piece that was
// rotated clockwise by rotation to reach this cell.
func (f Flags) RotatedDiagonal(rotation int) Flags {
	return f.Diagonal().Rotate(-rotation)
}

func rotateNibble(n Flags, r uint) Flags {
	return (n<<r | n>>(4-r)) & 0x0f
}

// String returns a compact representation such as "N|E|NE", or "-" when empty
func (f Flags) String() string {
	if f == Empty {
		return "-"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.HasAll(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
