// Package diagonal derives the corner bits of a carved maze. A corner is open
// when both passages meeting at it are open on the cell and the cell across
// the corner carries the reciprocal pair.
package diagonal

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"mazestalker/pkg/engine/world"
)

// Resolve sets the diagonal bits of every cell. Rows are split into bands
// resolved concurrently; every band reads the same snapshot of the carved
// grid and writes only its own cells.
func Resolve(grid *world.Grid) {
	snapshot := grid.Snapshot()
	width, height := grid.Width(), grid.Height()

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	band := (height + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		g.Go(func() error {
			for i := y0 * width; i < y1*width; i++ {
				ResolveCell(grid, snapshot, i)
			}
			return nil
		})
	}
	// Workers never fail; Wait is the barrier.
	_ = g.Wait()
}

// ResolveCell tests the four corners of cell i against snapshot and sets the
// open ones on the grid. It only ever adds bits.
func ResolveCell(grid *world.Grid, snapshot []world.Flags, i int) world.Flags {
	var found world.Flags
	flags := snapshot[i]
	for _, corner := range world.AllCorners() {
		if !flags.HasAll(corner.SidePassages()) {
			continue
		}
		n, ok := grid.DiagonalNeighbor(i, corner)
		if !ok || !snapshot[n].HasAll(corner.ReciprocalPassages()) {
			continue
		}
		found |= corner.Passage()
	}
	if found == world.Empty {
		return grid.Get(i)
	}
	return grid.Set(i, found)
}
