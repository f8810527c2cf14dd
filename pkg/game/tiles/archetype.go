// Package tiles maps cell flags to the visual piece that represents them.
package tiles

import (
	"fmt"

	"mazestalker/pkg/engine/world"
)

// Archetype is a wall and floor piece in its canonical, north facing orientation
type Archetype int

// Archetype constants
const (
	Isolated Archetype = iota
	DeadEnd
	Straight
	CornerClosed
	CornerOpen
	TJunctionClosed
	TJunctionClosedRight
	TJunctionClosedLeft
	TJunctionOpen
	XJunctionClosed
	XJunctionTriple
	XJunctionDoubleStraight
	XJunctionDoubleDiagonal
	XJunctionSingle
	XJunctionOpen
)

// AllArchetypes returns every archetype for iteration
func AllArchetypes() []Archetype {
	return []Archetype{
		Isolated, DeadEnd, Straight, CornerClosed, CornerOpen,
		TJunctionClosed, TJunctionClosedRight, TJunctionClosedLeft, TJunctionOpen,
		XJunctionClosed, XJunctionTriple, XJunctionDoubleStraight, XJunctionDoubleDiagonal,
		XJunctionSingle, XJunctionOpen,
	}
}

var archetypeNames = map[Archetype]string{
	Isolated:                "isolated",
	DeadEnd:                 "dead-end",
	Straight:                "straight",
	CornerClosed:            "corner-closed",
	CornerOpen:              "corner-open",
	TJunctionClosed:         "t-closed",
	TJunctionClosedRight:    "t-closed-right",
	TJunctionClosedLeft:     "t-closed-left",
	TJunctionOpen:           "t-open",
	XJunctionClosed:         "x-closed",
	XJunctionTriple:         "x-triple",
	XJunctionDoubleStraight: "x-double-straight",
	XJunctionDoubleDiagonal: "x-double-diagonal",
	XJunctionSingle:         "x-single",
	XJunctionOpen:           "x-open",
}

// String returns the short name of an archetype
func (a Archetype) String() string {
	if name, ok := archetypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// Canonical returns the flags the piece represents at rotation 0
func (a Archetype) Canonical() world.Flags {
	const (
		n, e, s, w     = world.PassageN, world.PassageE, world.PassageS, world.PassageW
		ne, se, sw, nw = world.PassageNE, world.PassageSE, world.PassageSW, world.PassageNW
		all            = n | e | s | w
	)
	switch a {
	case DeadEnd:
		return n
	case Straight:
		return n | s
	case CornerClosed:
		return n | e
	case CornerOpen:
		return n | e | ne
	case TJunctionClosed:
		return n | e | s
	case TJunctionClosedRight:
		return n | e | s | ne
	case TJunctionClosedLeft:
		return n | e | s | se
	case TJunctionOpen:
		return n | e | s | ne | se
	case XJunctionClosed:
		return all
	case XJunctionTriple:
		return all | ne
	case XJunctionDoubleStraight:
		return all | ne | se
	case XJunctionDoubleDiagonal:
		return all | ne | sw
	case XJunctionSingle:
		return all | se | sw | nw
	case XJunctionOpen:
		return all | world.PassagesDiagonal
	default:
		return world.Empty
	}
}

// Rotations returns how many distinct quarter turns the piece has
func (a Archetype) Rotations() int {
	switch a {
	case Isolated, XJunctionClosed, XJunctionOpen:
		return 1
	case Straight, XJunctionDoubleDiagonal:
		return 2
	default:
		return 4
	}
}
