package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/difficulty"
	"mazestalker/pkg/game/generator"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Difficulty != difficulty.Normal || c.Width != 20 || c.Height != 20 || c.Seed != 0 || c.Agents != 2 {
		t.Errorf("Default() = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestFileLayer_OnlyDefinedKeys(t *testing.T) {
	path := writeFile(t, `
[maze]
difficulty = "hard"
width = 12
pick_last = 0.75
seed = 99
`)
	l, err := FileLayer(path)
	if err != nil {
		t.Fatalf("FileLayer() error = %v", err)
	}
	if l.Difficulty == nil || *l.Difficulty != difficulty.Hard {
		t.Errorf("Difficulty = %v, want hard", l.Difficulty)
	}
	if l.Width == nil || *l.Width != 12 {
		t.Errorf("Width = %v, want 12", l.Width)
	}
	if l.Height != nil || l.OpenDeadEnd != nil || l.Agents != nil {
		t.Error("undefined keys were set on the layer")
	}

	c := Merge(l)
	hard := difficulty.Hard.Preset()
	if c.Width != 12 || c.Height != hard.Height || c.PickLast != 0.75 || c.OpenDeadEnd != hard.OpenDeadEnd || c.Seed != 99 {
		t.Errorf("Merge() = %+v", c)
	}
}

func TestFileLayer_Errors(t *testing.T) {
	tests := map[string]string{
		"bad difficulty": "[maze]\ndifficulty = \"brutal\"\n",
		"unknown key":    "[maze]\ncolour = \"red\"\n",
		"negative seed":  "[maze]\nseed = -4\n",
		"syntax":         "[maze\nwidth = 3\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FileLayer(writeFile(t, content)); err == nil {
				t.Error("FileLayer() error = nil")
			}
		})
	}
	if _, err := FileLayer(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("FileLayer() of a missing file returned nil")
	}
}

func TestEnvLayer(t *testing.T) {
	l, err := EnvLayer(envMap(map[string]string{
		EnvDifficulty:   "Easy",
		EnvHeight:       "9",
		EnvSeed:         "4294967295",
		EnvOpenOptional: "0.125",
		EnvAgents:       "0",
	}))
	if err != nil {
		t.Fatalf("EnvLayer() error = %v", err)
	}
	c := Merge(l)
	easy := difficulty.Easy.Preset()
	want := Config{
		Difficulty:   difficulty.Easy,
		Width:        easy.Width,
		Height:       9,
		Seed:         4294967295,
		PickLast:     easy.PickLast,
		OpenDeadEnd:  easy.OpenDeadEnd,
		OpenOptional: 0.125,
		Agents:       0,
	}
	if c != want {
		t.Errorf("Merge() = %+v, want %+v", c, want)
	}
}

func TestEnvLayer_Errors(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvWidth: "wide"},
		{EnvSeed: "-1"},
		{EnvSeed: "4294967296"},
		{EnvPickLast: "half"},
		{EnvDifficulty: "impossible"},
	} {
		if _, err := EnvLayer(envMap(env)); err == nil {
			t.Errorf("EnvLayer(%v) error = nil", env)
		}
	}
}

func TestMerge_Precedence(t *testing.T) {
	file := Layer{Difficulty: ptr(difficulty.Hard), Width: ptr(10), Height: ptr(11), Agents: ptr(5)}
	env := Layer{Width: ptr(12), PickLast: ptr(float32(0.9))}
	flags := Layer{Difficulty: ptr(difficulty.Easy), Width: ptr(13)}

	c := Merge(file, env, flags)
	easy := difficulty.Easy.Preset()
	if c.Difficulty != difficulty.Easy {
		t.Errorf("Difficulty = %v, want easy", c.Difficulty)
	}
	if c.Width != 13 || c.Height != 11 || c.Agents != 5 {
		t.Errorf("Width, Height, Agents = %d, %d, %d, want 13, 11, 5", c.Width, c.Height, c.Agents)
	}
	if c.PickLast != 0.9 {
		t.Errorf("PickLast = %v, want 0.9", c.PickLast)
	}
	// The preset only supplies what no layer sets.
	if c.OpenDeadEnd != easy.OpenDeadEnd {
		t.Errorf("OpenDeadEnd = %v, want %v", c.OpenDeadEnd, easy.OpenDeadEnd)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Width = 0
	if err := c.Validate(); !errors.Is(err, world.ErrInvalidDimensions) {
		t.Errorf("Validate() = %v, want ErrInvalidDimensions", err)
	}
	c = Default()
	c.OpenOptional = 1.5
	if err := c.Validate(); !errors.Is(err, generator.ErrInvalidProbability) {
		t.Errorf("Validate() = %v, want ErrInvalidProbability", err)
	}
	c = Default()
	c.Agents = -1
	if err := c.Validate(); err == nil {
		t.Error("Validate() accepted negative agents")
	}
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, "[maze]\nwidth = 8\nheight = 6\nseed = 5\n")
	t.Setenv(EnvHeight, "7")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Width != 8 || c.Height != 7 || c.Seed != 5 {
		t.Errorf("Load() = %+v, want 8x7 seed 5", c)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MAZE_AGENTS=4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Registers cleanup of the variable godotenv sets.
	t.Setenv(EnvAgents, "")
	os.Unsetenv(EnvAgents)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Agents != 4 {
		t.Errorf("Agents = %d, want 4 from .env", c.Agents)
	}
}
