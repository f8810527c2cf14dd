// Package generator carves mazes into a world.Grid.
package generator

import (
	"errors"
	"fmt"
	"math"

	"mazestalker/pkg/engine/rng"
	"mazestalker/pkg/engine/world"
)

var (
	// ErrZeroSeed is returned when Params carries a zero seed
	ErrZeroSeed = errors.New("seed must be non-zero")

	// ErrInvalidProbability is returned when a probability is outside [0,1]
	ErrInvalidProbability = errors.New("probability must be in [0,1]")
)

// Params is the full reproducible input of a maze. Persisting these six
// values is enough to regenerate an identical grid.
type Params struct {
	Width  int
	Height int
	Seed   uint32

	// PickLast is the chance of extending the newest frontier cell rather
	// than a random one. 1 gives long depth-first corridors.
	PickLast float32

	// OpenDeadEnd is the chance of opening an extra passage from each dead end
	OpenDeadEnd float32

	// OpenOptional is the chance, per cell and per side, of forcing the west
	// and south passages open
	OpenOptional float32
}

// Validate checks dimensions, seed and probabilities
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", world.ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.Seed == 0 {
		return ErrZeroSeed
	}
	probs := []struct {
		name string
		v    float32
	}{
		{"pick_last", p.PickLast},
		{"open_dead_end", p.OpenDeadEnd},
		{"open_optional", p.OpenOptional},
	}
	for _, pr := range probs {
		if math.IsNaN(float64(pr.v)) || pr.v < 0 || pr.v > 1 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidProbability, pr.name, pr.v)
		}
	}
	return nil
}

// String formats the parameters on one line
func (p Params) String() string {
	return fmt.Sprintf("%dx%d seed=%d pick_last=%.2f open_dead_end=%.2f open_optional=%.2f",
		p.Width, p.Height, p.Seed, p.PickLast, p.OpenDeadEnd, p.OpenOptional)
}

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(p Params) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	GrowingTree = &GrowingTreeGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = GrowingTree

// GrowingTreeGenerator builds a spanning tree with the growing tree algorithm
// and then braids it with the two opening passes
type GrowingTreeGenerator struct{}

// Name returns the name of this generator
func (g *GrowingTreeGenerator) Name() string {
	return "Growing Tree"
}

// Generate creates a new grid and carves every orthogonal passage into it.
// Diagonal bits are left for the diagonal resolver.
func (g *GrowingTreeGenerator) Generate(p Params) (*world.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	grid, err := world.NewGrid(p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	rnd := rng.New(p.Seed)
	rnd = growTree(grid, rnd, p.PickLast)
	rnd = openDeadEnds(grid, rnd, p.OpenDeadEnd)
	openOptional(grid, rnd, p.OpenOptional)

	if err := grid.CheckSymmetry(); err != nil {
		panic("Generated invalid grid: " + err.Error())
	}
	return grid, nil
}
