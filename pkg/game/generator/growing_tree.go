package generator

import (
	"fmt"

	"mazestalker/pkg/engine/rng"
	"mazestalker/pkg/engine/world"
)

// candidateOrder is the neighbour enumeration order for carving and dead end
// opening. Changing it changes every seeded layout.
var candidateOrder = [4]world.Direction{world.East, world.West, world.North, world.South}

// emptyNeighbors fills buf with the valid neighbours of index that have no
// passage yet and returns how many were found
func emptyNeighbors(grid *world.Grid, index int, buf *[4]world.Direction) int {
	n := 0
	for _, dir := range candidateOrder {
		next, ok := grid.Neighbor(index, dir)
		if ok && grid.Get(next) == world.Empty {
			buf[n] = dir
			n++
		}
	}
	return n
}

// growTree carves a spanning tree over the whole grid. Draw order per step:
// the pickLast test, the random slot (random policy only), then the candidate
// (only when one exists).
func growTree(grid *world.Grid, rnd rng.Random, pickLast float32) rng.Random {
	var start int
	start, rnd = rnd.NextInt(grid.Len())
	active := newFrontier(grid.Len(), start)

	var candidates [4]world.Direction
	for !active.Empty() {
		var roll float32
		roll, rnd = rnd.NextFloat()
		stack := roll < pickLast

		slot := active.last
		if !stack {
			slot, rnd = rnd.NextIntRange(active.first, active.last+1)
		}
		current := active.At(slot)

		count := emptyNeighbors(grid, current, &candidates)
		if count <= 1 {
			if stack {
				active.RetireLast()
			} else {
				active.RetireAt(slot)
			}
		}
		if count > 0 {
			var pick int
			pick, rnd = rnd.NextInt(count)
			active.Push(grid.Carve(current, candidates[pick]))
		}
	}

	if grid.Len() > 1 {
		for i := 0; i < grid.Len(); i++ {
			if grid.Get(i) == world.Empty {
				c := grid.IndexToCoordinate(i)
				panic(fmt.Sprintf("Generated invalid grid: frontier emptied before visiting (%d,%d)", c.X, c.Y))
			}
		}
	}
	return rnd
}
