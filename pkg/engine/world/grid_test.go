package world

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error = %v", w, h, err)
	}
	return g
}

// expectPanic fails the test if fn does not panic
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {0, 0}} {
		g, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d, %d) returned a grid", dims[0], dims[1])
		}
	}
}

func TestNewGrid_StartsEmpty(t *testing.T) {
	g := mustGrid(t, 4, 3)
	if g.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", g.Len())
	}
	for i := 0; i < g.Len(); i++ {
		if g.Get(i) != Empty {
			t.Errorf("cell %d = %v, want empty", i, g.Get(i))
		}
	}
}

func TestGrid_IndexArithmetic(t *testing.T) {
	g := mustGrid(t, 5, 3)
	if g.StepN() != 5 || g.StepS() != -5 || g.StepE() != 1 || g.StepW() != -1 {
		t.Errorf("steps = N%d E%d S%d W%d, want N5 E1 S-5 W-1", g.StepN(), g.StepE(), g.StepS(), g.StepW())
	}
	c := g.IndexToCoordinate(13)
	if c.X != 3 || c.Y != 2 {
		t.Errorf("IndexToCoordinate(13) = %+v, want {3 2}", c)
	}
	if i := g.CoordinateToIndex(Coordinate{X: 3, Y: 2}); i != 13 {
		t.Errorf("CoordinateToIndex({3 2}) = %d, want 13", i)
	}
}

func TestGrid_NeighborNoWraparound(t *testing.T) {
	g := mustGrid(t, 3, 2)
	tests := []struct {
		index int
		dir   Direction
		want  int
		ok    bool
	}{
		{0, East, 1, true},
		{0, North, 3, true},
		{0, West, 0, false},
		{0, South, 0, false},
		{2, East, 0, false},
		{3, West, 0, false},
		{5, North, 0, false},
		{5, South, 2, true},
		{4, West, 3, true},
	}
	for _, tt := range tests {
		got, ok := g.Neighbor(tt.index, tt.dir)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Neighbor(%d, %s) = %d, %v, want %d, %v", tt.index, tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGrid_DiagonalNeighbor(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if n, ok := g.DiagonalNeighbor(4, NorthEast); !ok || n != 8 {
		t.Errorf("DiagonalNeighbor(4, NE) = %d, %v, want 8, true", n, ok)
	}
	if n, ok := g.DiagonalNeighbor(4, SouthWest); !ok || n != 0 {
		t.Errorf("DiagonalNeighbor(4, SW) = %d, %v, want 0, true", n, ok)
	}
	if _, ok := g.DiagonalNeighbor(2, NorthEast); ok {
		t.Error("DiagonalNeighbor(2, NE) ok = true, want false")
	}
}

func TestGrid_SetUnset(t *testing.T) {
	g := mustGrid(t, 2, 2)
	g.Set(1, PassageN|PassageW)
	if got := g.Set(1, PassageNW); got != PassageN|PassageW|PassageNW {
		t.Errorf("Set returned %v, want N|W|NW", got)
	}
	if got := g.Unset(1, PassageN|PassageNW); got != PassageW {
		t.Errorf("Unset returned %v, want W", got)
	}
}

func TestGrid_CarveIsSymmetric(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, dir := range AllDirections() {
		n := g.Carve(4, dir)
		if !g.HasPassage(4, dir) {
			t.Errorf("cell 4 missing %s after carve", dir)
		}
		if !g.HasPassage(n, dir.Opposite()) {
			t.Errorf("neighbour %d missing %s after carve", n, dir.Opposite())
		}
	}
	if err := g.CheckSymmetry(); err != nil {
		t.Errorf("CheckSymmetry() = %v", err)
	}
	if got := g.PassageCount(); got != 4 {
		t.Errorf("PassageCount() = %d, want 4", got)
	}
}

func TestGrid_CheckSymmetryDetectsOneSidedPassage(t *testing.T) {
	g := mustGrid(t, 2, 1)
	g.Set(0, PassageE)
	if err := g.CheckSymmetry(); err == nil {
		t.Error("CheckSymmetry() = nil for one-sided passage")
	}

	g = mustGrid(t, 1, 1)
	g.Set(0, PassageN)
	if err := g.CheckSymmetry(); err == nil {
		t.Error("CheckSymmetry() = nil for passage off the grid")
	}
}

func TestGrid_CheckDiagonals(t *testing.T) {
	g := mustGrid(t, 2, 2)
	g.Carve(0, North)
	g.Carve(0, East)
	g.Carve(1, North)
	g.Carve(2, East)
	g.Set(0, PassageNE)
	if err := g.CheckDiagonals(); err != nil {
		t.Errorf("CheckDiagonals() = %v for a valid corner", err)
	}
	g.Set(3, PassageNE)
	if err := g.CheckDiagonals(); err == nil {
		t.Error("CheckDiagonals() = nil for a corner without passages")
	}
}

func TestGrid_OutOfRangePanics(t *testing.T) {
	g := mustGrid(t, 2, 2)
	expectPanic(t, "Get(-1)", func() { g.Get(-1) })
	expectPanic(t, "Get(4)", func() { g.Get(4) })
	expectPanic(t, "Set(4)", func() { g.Set(4, PassageN) })
	expectPanic(t, "CoordinateToIndex(2,0)", func() { g.CoordinateToIndex(Coordinate{X: 2, Y: 0}) })
	expectPanic(t, "Carve off edge", func() { g.Carve(0, West) })
}

func TestGrid_WorldPosition(t *testing.T) {
	g := mustGrid(t, 4, 2)
	tests := []struct {
		index int
		want  Position
	}{
		{0, Position{X: -3, Z: -1}},
		{3, Position{X: 3, Z: -1}},
		{7, Position{X: 3, Z: 1}},
	}
	for _, tt := range tests {
		if got := g.WorldPosition(tt.index); got != tt.want {
			t.Errorf("WorldPosition(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestGrid_Reachable(t *testing.T) {
	g := mustGrid(t, 3, 1)
	g.Carve(0, East)
	r := g.Reachable(0)
	if r.Size() != 2 || !r.Has(0) || !r.Has(1) {
		t.Errorf("Reachable(0) size = %d, want cells 0 and 1", r.Size())
	}
	if g.Reachable(2).Size() != 1 {
		t.Error("Reachable(2) should contain only the isolated cell")
	}
}

func TestCell_View(t *testing.T) {
	g := mustGrid(t, 2, 2)
	g.Carve(3, South)
	c := g.Cell(3)
	if c.X != 1 || c.Y != 1 {
		t.Errorf("Cell(3) at (%d,%d), want (1,1)", c.X, c.Y)
	}
	if !c.IsDeadEnd() {
		t.Error("IsDeadEnd() = false, want true")
	}
	if dirs := c.Passages(); len(dirs) != 1 || dirs[0] != South {
		t.Errorf("Passages() = %v, want [South]", dirs)
	}
	if !g.Cell(0).IsEmpty() {
		t.Error("Cell(0).IsEmpty() = false, want true")
	}
}

func TestBytes_IsCopy(t *testing.T) {
	g := mustGrid(t, 2, 1)
	b := g.Bytes()
	b[0] = 0xff
	if g.Get(0) != Empty {
		t.Error("mutating Bytes() changed the grid")
	}
}
