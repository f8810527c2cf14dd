package generator

import (
	"mazestalker/pkg/engine/rng"
	"mazestalker/pkg/engine/world"
)

// openDeadEnds visits every cell in index order and, with probability p,
// opens one extra passage from each cell that has exactly one. The new
// direction is drawn uniformly from the cell's closed valid directions.
func openDeadEnds(grid *world.Grid, rnd rng.Random, p float32) rng.Random {
	if p == 0 {
		return rnd
	}
	var closed [4]world.Direction
	for i := 0; i < grid.Len(); i++ {
		if !grid.Get(i).HasExactlyOne() {
			continue
		}
		var roll float32
		roll, rnd = rnd.NextFloat()
		if roll >= p {
			continue
		}

		n := 0
		for _, dir := range candidateOrder {
			if _, ok := grid.Neighbor(i, dir); ok && !grid.HasPassage(i, dir) {
				closed[n] = dir
				n++
			}
		}
		// Corridor ends in a 1-wide grid have nowhere else to go.
		if n == 0 {
			continue
		}
		var pick int
		pick, rnd = rnd.NextInt(n)
		grid.Carve(i, closed[pick])
	}
	return rnd
}

// openOptional forces the west and south passages of every cell open with
// independent probability p. Only two sides are sampled so each edge is
// considered once.
func openOptional(grid *world.Grid, rnd rng.Random, p float32) rng.Random {
	if p == 0 {
		return rnd
	}
	for i := 0; i < grid.Len(); i++ {
		c := grid.IndexToCoordinate(i)
		var roll float32
		if c.X > 0 {
			roll, rnd = rnd.NextFloat()
			if roll < p {
				grid.Carve(i, world.West)
			}
		}
		if c.Y > 0 {
			roll, rnd = rnd.NextFloat()
			if roll < p {
				grid.Carve(i, world.South)
			}
		}
	}
	return rnd
}
