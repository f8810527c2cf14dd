package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mazestalker/pkg/game/config"
	"mazestalker/pkg/game/devtools"
	"mazestalker/pkg/game/difficulty"
	"mazestalker/pkg/game/gameplay"
	"mazestalker/pkg/game/state"
)

// mazeOpts holds the maze flags shared by every command that builds a maze
type mazeOpts struct {
	configPath   string
	fromDump     string
	difficulty   string
	width        int
	height       int
	seed         uint32
	randomSeed   bool
	pickLast     float32
	openDeadEnd  float32
	openOptional float32
	agents       int
}

func (o *mazeOpts) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&o.fromDump, "from-dump", "", "regenerate the maze recorded in a map dump")
	f.StringVarP(&o.difficulty, "difficulty", "d", difficulty.Default.String(), "preset: easy, normal or hard")
	f.IntVarP(&o.width, "width", "W", 0, "maze width in cells")
	f.IntVarP(&o.height, "height", "H", 0, "maze height in cells")
	f.Uint32VarP(&o.seed, "seed", "s", 0, "seed (0 picks a random one)")
	f.BoolVar(&o.randomSeed, "random-seed", false, "ignore any configured seed and pick a random one")
	f.Float32Var(&o.pickLast, "pick-last", 0, "chance of extending the newest corridor [0,1]")
	f.Float32Var(&o.openDeadEnd, "open-dead-end", 0, "chance of opening each dead end [0,1]")
	f.Float32Var(&o.openOptional, "open-optional", 0, "chance of opening each west and south wall [0,1]")
	f.IntVarP(&o.agents, "agents", "a", 0, "number of pursuing agents")
	cmd.MarkFlagsMutuallyExclusive("from-dump", "config")
}

// flagLayer returns the flags the user actually set
func (o *mazeOpts) flagLayer(cmd *cobra.Command) (config.Layer, error) {
	var l config.Layer
	f := cmd.Flags()
	if f.Changed("difficulty") {
		level, err := difficulty.Parse(o.difficulty)
		if err != nil {
			return l, err
		}
		l.Difficulty = &level
	}
	if f.Changed("width") {
		l.Width = &o.width
	}
	if f.Changed("height") {
		l.Height = &o.height
	}
	if f.Changed("seed") {
		l.Seed = &o.seed
	}
	if f.Changed("pick-last") {
		l.PickLast = &o.pickLast
	}
	if f.Changed("open-dead-end") {
		l.OpenDeadEnd = &o.openDeadEnd
	}
	if f.Changed("open-optional") {
		l.OpenOptional = &o.openOptional
	}
	if f.Changed("agents") {
		l.Agents = &o.agents
	}
	return l, nil
}

// resolve merges presets, the config file, the environment and the flags
func (o *mazeOpts) resolve(cmd *cobra.Command) (config.Config, error) {
	layers, err := config.Layers(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.fromDump != "" {
		dump, err := dumpLayer(o.fromDump)
		if err != nil {
			return config.Config{}, err
		}
		layers = append(layers, dump)
	}
	flags, err := o.flagLayer(cmd)
	if err != nil {
		return config.Config{}, err
	}
	c := config.Merge(append(layers, flags)...)
	return c, c.Validate()
}

// dumpLayer pins the six maze values, the difficulty and the agent count
// recorded in a dump file
func dumpLayer(path string) (config.Layer, error) {
	rec, err := devtools.ReadRecordedFromFile(path)
	if err != nil {
		return config.Layer{}, err
	}
	p := rec.Params
	l := config.Layer{
		Width:        &p.Width,
		Height:       &p.Height,
		Seed:         &p.Seed,
		PickLast:     &p.PickLast,
		OpenDeadEnd:  &p.OpenDeadEnd,
		OpenOptional: &p.OpenOptional,
		Agents:       &rec.Agents,
	}
	if rec.Difficulty != "" {
		level, err := difficulty.Parse(rec.Difficulty)
		if err != nil {
			return config.Layer{}, fmt.Errorf("map dump %s: %w", path, err)
		}
		l.Difficulty = &level
	}
	return l, nil
}

// build resolves the settings and builds a session
func (o *mazeOpts) build(ctx context.Context, cmd *cobra.Command) (*state.Game, error) {
	c, err := o.resolve(cmd)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("resolved config", "config", c.Params().String(), "difficulty", c.Difficulty, "agents", c.Agents)
	return gameplay.BuildGame(ctx, gameplay.Options{
		Params:     c.Params(),
		Difficulty: c.Difficulty,
		Agents:     c.Agents,
		RandomSeed: o.randomSeed,
	})
}
