// Package difficulty defines the preset maze sizes and braiding
// probabilities offered to the player.
package difficulty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mazestalker/pkg/game/generator"
)

// ErrUnknownDifficulty is returned by Parse for an unrecognised name
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Level is a difficulty preset
type Level int

const (
	Easy   Level = iota // Small maze, lots of loops
	Normal              // Balanced
	Hard                // Large, sparse, mostly random branching
)

// Default is the preset used when nothing else is configured
const Default = Normal

// Preset holds the maze and actor settings of a difficulty level
type Preset struct {
	Width        int
	Height       int
	PickLast     float32
	OpenDeadEnd  float32
	OpenOptional float32
	Agents       int
}

var presets = map[Level]Preset{
	Easy:   {Width: 15, Height: 15, PickLast: 0.5, OpenDeadEnd: 0.75, OpenOptional: 0.3, Agents: 1},
	Normal: {Width: 20, Height: 20, PickLast: 0.5, OpenDeadEnd: 0.5, OpenOptional: 0.5, Agents: 2},
	Hard:   {Width: 30, Height: 30, PickLast: 0.1, OpenDeadEnd: 0.1, OpenOptional: 0.05, Agents: 3},
}

// All returns every level in menu order
func All() []Level {
	return []Level{Easy, Normal, Hard}
}

// Preset returns the settings of a level. Unknown levels get the default.
func (l Level) Preset() Preset {
	if p, ok := presets[l]; ok {
		return p
	}
	return presets[Default]
}

// Params converts the preset to generator parameters for the given seed
func (l Level) Params(seed uint32) generator.Params {
	p := l.Preset()
	return generator.Params{
		Width:        p.Width,
		Height:       p.Height,
		Seed:         seed,
		PickLast:     p.PickLast,
		OpenDeadEnd:  p.OpenDeadEnd,
		OpenOptional: p.OpenOptional,
	}
}

// String returns the config name of a level
func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// DisplayName returns the translated name of a level.
// Uses gotext.Get with constant keys to satisfy vet.
func (l Level) DisplayName() string {
	switch l {
	case Easy:
		return gotext.Get("DIFFICULTY_EASY")
	case Hard:
		return gotext.Get("DIFFICULTY_HARD")
	default:
		return gotext.Get("DIFFICULTY_NORMAL")
	}
}

// Parse returns the level with the given name, ignoring case and surrounding space
func Parse(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	default:
		return Default, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
}
