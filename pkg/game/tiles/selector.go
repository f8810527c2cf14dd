package tiles

import "mazestalker/pkg/engine/world"

// Tile is a piece and the number of clockwise quarter turns to apply to it
type Tile struct {
	Archetype Archetype
	Rotation  int
}

// table holds the tile for every possible flag value. It is filled once at
// init and only read afterwards.
var table [256]Tile

func init() {
	for f := 0; f < len(table); f++ {
		table[f] = classify(world.Flags(f))
	}
}

// Select returns the tile for a cell. It is total over all 256 flag values
// and safe for concurrent use.
func Select(flags world.Flags) Tile {
	return table[flags]
}

func classify(f world.Flags) Tile {
	const (
		n, e, s, w     = world.PassageN, world.PassageE, world.PassageS, world.PassageW
		ne, se, sw, nw = world.PassageNE, world.PassageSE, world.PassageSW, world.PassageNW
	)
	switch f.Straight() {
	case world.Empty:
		return Tile{Isolated, 0}

	case n:
		return Tile{DeadEnd, 0}
	case e:
		return Tile{DeadEnd, 1}
	case s:
		return Tile{DeadEnd, 2}
	case w:
		return Tile{DeadEnd, 3}

	case n | s:
		return Tile{Straight, 0}
	case e | w:
		return Tile{Straight, 1}

	case n | e:
		return corner(f, ne, 0)
	case e | s:
		return corner(f, se, 1)
	case s | w:
		return corner(f, sw, 2)
	case w | n:
		return corner(f, nw, 3)

	case n | e | s:
		return tJunction(f, 0)
	case e | s | w:
		return tJunction(f, 1)
	case s | w | n:
		return tJunction(f, 2)
	case w | n | e:
		return tJunction(f, 3)

	default:
		return xJunction(f)
	}
}

func corner(f, joining world.Flags, rotation int) Tile {
	if f.HasAll(joining) {
		return Tile{CornerOpen, rotation}
	}
	return Tile{CornerClosed, rotation}
}

// tJunction picks the variant from the corners in the canonical frame, where
// the closed side faces west
func tJunction(f world.Flags, rotation int) Tile {
	switch f.RotatedDiagonal(rotation) {
	case world.Empty:
		return Tile{TJunctionClosed, rotation}
	case world.PassageNE:
		return Tile{TJunctionClosedRight, rotation}
	case world.PassageSE:
		return Tile{TJunctionClosedLeft, rotation}
	default:
		return Tile{TJunctionOpen, rotation}
	}
}

func xJunction(f world.Flags) Tile {
	const ne, se, sw, nw = world.PassageNE, world.PassageSE, world.PassageSW, world.PassageNW
	switch f.Diagonal() {
	case world.Empty:
		return Tile{XJunctionClosed, 0}

	case ne:
		return Tile{XJunctionTriple, 0}
	case se:
		return Tile{XJunctionTriple, 1}
	case sw:
		return Tile{XJunctionTriple, 2}
	case nw:
		return Tile{XJunctionTriple, 3}

	case ne | se:
		return Tile{XJunctionDoubleStraight, 0}
	case se | sw:
		return Tile{XJunctionDoubleStraight, 1}
	case sw | nw:
		return Tile{XJunctionDoubleStraight, 2}
	case nw | ne:
		return Tile{XJunctionDoubleStraight, 3}

	case ne | sw:
		return Tile{XJunctionDoubleDiagonal, 0}
	case se | nw:
		return Tile{XJunctionDoubleDiagonal, 1}

	case se | sw | nw:
		return Tile{XJunctionSingle, 0}
	case ne | sw | nw:
		return Tile{XJunctionSingle, 1}
	case ne | se | nw:
		return Tile{XJunctionSingle, 2}
	case ne | se | sw:
		return Tile{XJunctionSingle, 3}

	default:
		return Tile{XJunctionOpen, 0}
	}
}
