// Package config resolves maze settings from difficulty presets, a TOML
// file, the environment and command line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"mazestalker/pkg/game/difficulty"
	"mazestalker/pkg/game/generator"
)

// Config holds the resolved session settings. A zero Seed asks for a random one.
type Config struct {
	Difficulty   difficulty.Level
	Width        int
	Height       int
	Seed         uint32
	PickLast     float32
	OpenDeadEnd  float32
	OpenOptional float32
	Agents       int
}

// Layer is one configuration source. Nil fields are not set by the source.
type Layer struct {
	Difficulty   *difficulty.Level
	Width        *int
	Height       *int
	Seed         *uint32
	PickLast     *float32
	OpenDeadEnd  *float32
	OpenOptional *float32
	Agents       *int
}

// Default returns the settings of the default difficulty with a random seed
func Default() Config {
	return fromPreset(difficulty.Default)
}

func fromPreset(l difficulty.Level) Config {
	p := l.Preset()
	return Config{
		Difficulty:   l,
		Width:        p.Width,
		Height:       p.Height,
		PickLast:     p.PickLast,
		OpenDeadEnd:  p.OpenDeadEnd,
		OpenOptional: p.OpenOptional,
		Agents:       p.Agents,
	}
}

// Merge resolves layers given from lowest to highest precedence. The last
// layer naming a difficulty picks the preset underneath all of them; every
// other field is overridden in layer order.
func Merge(layers ...Layer) Config {
	level := difficulty.Default
	for _, l := range layers {
		if l.Difficulty != nil {
			level = *l.Difficulty
		}
	}
	c := fromPreset(level)
	for _, l := range layers {
		if l.Width != nil {
			c.Width = *l.Width
		}
		if l.Height != nil {
			c.Height = *l.Height
		}
		if l.Seed != nil {
			c.Seed = *l.Seed
		}
		if l.PickLast != nil {
			c.PickLast = *l.PickLast
		}
		if l.OpenDeadEnd != nil {
			c.OpenDeadEnd = *l.OpenDeadEnd
		}
		if l.OpenOptional != nil {
			c.OpenOptional = *l.OpenOptional
		}
		if l.Agents != nil {
			c.Agents = *l.Agents
		}
	}
	return c
}

// Params converts the settings to generator parameters
func (c Config) Params() generator.Params {
	return generator.Params{
		Width:        c.Width,
		Height:       c.Height,
		Seed:         c.Seed,
		PickLast:     c.PickLast,
		OpenDeadEnd:  c.OpenDeadEnd,
		OpenOptional: c.OpenOptional,
	}
}

// Validate checks the settings. A zero seed is allowed here.
func (c Config) Validate() error {
	p := c.Params()
	if p.Seed == 0 {
		p.Seed = 1
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if c.Agents < 0 {
		return fmt.Errorf("agents must not be negative, got %d", c.Agents)
	}
	return nil
}

// Load resolves the file at path (skipped when empty) and the environment,
// after loading a .env file from the working directory if one exists
func Load(path string) (Config, error) {
	layers, err := Layers(path)
	if err != nil {
		return Config{}, err
	}
	c := Merge(layers...)
	return c, c.Validate()
}

// Layers returns the file and environment layers in precedence order, for
// callers that add their own on top
func Layers(path string) ([]Layer, error) {
	var layers []Layer
	if path != "" {
		file, err := FileLayer(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, file)
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	env, err := EnvLayer(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return append(layers, env), nil
}

// LoadDotEnv loads .env into the process environment. A missing file is not
// an error; variables already set are left alone.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

type mazeSection struct {
	Difficulty   string  `toml:"difficulty"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Seed         int64   `toml:"seed"`
	PickLast     float64 `toml:"pick_last"`
	OpenDeadEnd  float64 `toml:"open_dead_end"`
	OpenOptional float64 `toml:"open_optional"`
	Agents       int     `toml:"agents"`
}

type fileConfig struct {
	Maze mazeSection `toml:"maze"`
}

// FileLayer reads the [maze] table of a TOML file. Only keys present in the
// file are set on the layer.
func FileLayer(path string) (Layer, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Layer{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Layer{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}

	var l Layer
	m := fc.Maze
	if md.IsDefined("maze", "difficulty") {
		level, err := difficulty.Parse(m.Difficulty)
		if err != nil {
			return Layer{}, fmt.Errorf("config %s: %w", path, err)
		}
		l.Difficulty = &level
	}
	if md.IsDefined("maze", "width") {
		l.Width = &m.Width
	}
	if md.IsDefined("maze", "height") {
		l.Height = &m.Height
	}
	if md.IsDefined("maze", "seed") {
		seed, err := toSeed(m.Seed)
		if err != nil {
			return Layer{}, fmt.Errorf("config %s: %w", path, err)
		}
		l.Seed = &seed
	}
	if md.IsDefined("maze", "pick_last") {
		l.PickLast = ptr(float32(m.PickLast))
	}
	if md.IsDefined("maze", "open_dead_end") {
		l.OpenDeadEnd = ptr(float32(m.OpenDeadEnd))
	}
	if md.IsDefined("maze", "open_optional") {
		l.OpenOptional = ptr(float32(m.OpenOptional))
	}
	if md.IsDefined("maze", "agents") {
		l.Agents = &m.Agents
	}
	return l, nil
}

// Environment variable names
const (
	EnvDifficulty   = "MAZE_DIFFICULTY"
	EnvWidth        = "MAZE_WIDTH"
	EnvHeight       = "MAZE_HEIGHT"
	EnvSeed         = "MAZE_SEED"
	EnvPickLast     = "MAZE_PICK_LAST"
	EnvOpenDeadEnd  = "MAZE_OPEN_DEAD_END"
	EnvOpenOptional = "MAZE_OPEN_OPTIONAL"
	EnvAgents       = "MAZE_AGENTS"
)

// EnvLayer reads the MAZE_* variables through lookup
func EnvLayer(lookup func(string) (string, bool)) (Layer, error) {
	var l Layer
	if v, ok := lookup(EnvDifficulty); ok {
		level, err := difficulty.Parse(v)
		if err != nil {
			return Layer{}, fmt.Errorf("%s: %w", EnvDifficulty, err)
		}
		l.Difficulty = &level
	}

	ints := []struct {
		key string
		dst **int
	}{
		{EnvWidth, &l.Width},
		{EnvHeight, &l.Height},
		{EnvAgents, &l.Agents},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Layer{}, fmt.Errorf("%s must be an integer: %w", e.key, err)
			}
			*e.dst = &n
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Layer{}, fmt.Errorf("%s must be an integer: %w", EnvSeed, err)
		}
		seed, err := toSeed(n)
		if err != nil {
			return Layer{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		l.Seed = &seed
	}

	floats := []struct {
		key string
		dst **float32
	}{
		{EnvPickLast, &l.PickLast},
		{EnvOpenDeadEnd, &l.OpenDeadEnd},
		{EnvOpenOptional, &l.OpenOptional},
	}
	for _, e := range floats {
		if v, ok := lookup(e.key); ok {
			f, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return Layer{}, fmt.Errorf("%s must be a number: %w", e.key, err)
			}
			*e.dst = ptr(float32(f))
		}
	}
	return l, nil
}

func toSeed(n int64) (uint32, error) {
	if n < 0 || n > int64(^uint32(0)) {
		return 0, fmt.Errorf("seed %d out of range [0, %d]", n, ^uint32(0))
	}
	return uint32(n), nil
}

func ptr[T any](v T) *T {
	return &v
}
