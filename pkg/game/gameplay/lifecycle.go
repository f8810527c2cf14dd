// Package gameplay builds maze sessions: seed resolution, generation,
// diagonal resolution and actor placement.
package gameplay

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/diagonal"
	"mazestalker/pkg/game/difficulty"
	"mazestalker/pkg/game/generator"
	"mazestalker/pkg/game/setup"
	"mazestalker/pkg/game/state"
)

// Options describe the session to build
type Options struct {
	Params     generator.Params
	Difficulty difficulty.Level
	Agents     int

	// RandomSeed ignores Params.Seed and draws a fresh one. A zero seed
	// does the same.
	RandomSeed bool

	// Generator overrides generator.DefaultGenerator when set
	Generator generator.GridGenerator
}

// RandomSeed returns a non-zero seed in [1, MaxInt32]
func RandomSeed() uint32 {
	return rand.Uint32N(math.MaxInt32) + 1
}

// BuildGame creates a new session: resolves the seed, carves the maze,
// resolves its diagonals and places the actors
func BuildGame(ctx context.Context, opts Options) (*state.Game, error) {
	params := opts.Params
	if opts.RandomSeed || params.Seed == 0 {
		params.Seed = RandomSeed()
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid maze parameters: %w", err)
	}
	if opts.Agents < 0 {
		return nil, fmt.Errorf("agent count must not be negative, got %d", opts.Agents)
	}

	g := state.NewGame(params, opts.Difficulty)
	if err := generateLevel(ctx, g, opts.Generator, opts.Agents); err != nil {
		return nil, err
	}
	return g, nil
}

func generateLevel(ctx context.Context, g *state.Game, gen generator.GridGenerator, agents int) error {
	logger := log.FromContext(ctx)
	if gen == nil {
		gen = generator.DefaultGenerator
	}

	start := time.Now()
	grid, err := gen.Generate(g.Params)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	diagonal.Resolve(grid)
	g.Grid = grid
	g.Generator = gen.Name()
	setup.SpawnActors(g, agents)

	passages, deadEnds := Summarize(grid)
	logger.Debug("maze generated",
		"session", g.ID,
		"generator", g.Generator,
		"params", g.Params.String(),
		"elapsed", time.Since(start).Round(time.Microsecond))
	logger.Info("session ready",
		"size", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"seed", g.Params.Seed,
		"passages", passages,
		"dead_ends", deadEnds,
		"agents", len(g.Agents))

	g.ClearMessages()
	g.AddMessage(fmt.Sprintf("%s maze %dx%d, seed %d", g.Difficulty.DisplayName(), grid.Width(), grid.Height(), g.Params.Seed))
	g.AddMessage(fmt.Sprintf(gotext.Get("SUMMARY_PASSAGES"), passages, deadEnds))
	return nil
}

// Summarize counts undirected orthogonal passages and dead end cells
func Summarize(grid *world.Grid) (passages, deadEnds int) {
	grid.ForEachCell(func(index int, cell world.Cell) {
		if cell.IsDeadEnd() {
			deadEnds++
		}
	})
	return grid.PassageCount(), deadEnds
}
