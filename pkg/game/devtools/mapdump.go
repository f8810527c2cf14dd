// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mazestalker/pkg/game/generator"
	"mazestalker/pkg/game/renderer"
	"mazestalker/pkg/game/renderer/tui"
	"mazestalker/pkg/game/state"
	"mazestalker/pkg/game/tiles"
)

const mapDumpFilename = "map.txt"

// ErrIncompleteDump is returned when a dump lacks one of the six maze values
var ErrIncompleteDump = errors.New("map dump is missing maze parameters")

// DumpMapToFile writes a full debug dump to path, or map.txt when path is
// empty, and returns the absolute path written
func DumpMapToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if err := DumpMap(f, g); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return absPath, nil
}

// DumpMap writes metadata, legend, the text map and a per-cell listing.
// The metadata block holds the six values that regenerate the maze.
func DumpMap(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return errors.New("no grid")
	}
	bw := bufio.NewWriter(w)
	p := g.Params

	// --- Metadata ---
	fmt.Fprintln(bw, gotext.Get("DUMP_TITLE"))
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "session: %s\n", g.ID)
	fmt.Fprintf(bw, "generator: %s\n", g.Generator)
	fmt.Fprintf(bw, "difficulty: %s\n", g.Difficulty)
	fmt.Fprintf(bw, "width: %d\n", p.Width)
	fmt.Fprintf(bw, "height: %d\n", p.Height)
	fmt.Fprintf(bw, "seed: %d\n", p.Seed)
	fmt.Fprintf(bw, "pick_last: %s\n", formatFloat(p.PickLast))
	fmt.Fprintf(bw, "open_dead_end: %s\n", formatFloat(p.OpenDeadEnd))
	fmt.Fprintf(bw, "open_optional: %s\n", formatFloat(p.OpenOptional))
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x east, y north)\n")
	fmt.Fprintf(bw, "player: %d,%d\n", g.Player.X, g.Player.Y)
	for i, a := range g.Agents {
		fmt.Fprintf(bw, "agent_%d: %d,%d\n", i, a.X, a.Y)
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, gotext.Get("DUMP_LEGEND"))
	fmt.Fprintln(bw, gotext.Get("LEGEND_FLOOR"))
	fmt.Fprintln(bw, gotext.Get("LEGEND_WALL"))
	fmt.Fprintln(bw, gotext.Get("LEGEND_PLAYER"))
	fmt.Fprintln(bw, gotext.Get("LEGEND_AGENT"))
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	r := tui.New(bw)
	r.SetColor(false)
	r.Init()
	renderer.Visualize(g.Grid, r)
	if err := r.RenderFrame(g); err != nil {
		return err
	}
	fmt.Fprintln(bw, "")

	// --- Cells ---
	fmt.Fprintln(bw, "--- Cells ---")
	fmt.Fprintln(bw, gotext.Get("DUMP_CELLS"))
	for i := 0; i < g.Grid.Len(); i++ {
		c := g.Grid.Cell(i)
		tile := tiles.Select(c.Flags)
		fmt.Fprintf(bw, "%d %d %d %s %s %d\n", i, c.X, c.Y, c.Flags, tile.Archetype, tile.Rotation)
	}
	return bw.Flush()
}

// formatFloat prints a probability with the shortest exact representation
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Recorded is what a dump records about how its session was built
type Recorded struct {
	Params     generator.Params
	Difficulty string
	Agents     int
}

// ReadRecorded recovers the maze parameters, difficulty name and agent count
// from a dump written by DumpMap
func ReadRecorded(r io.Reader) (Recorded, error) {
	var rec Recorded
	p := &rec.Params
	seen := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "--- Map ---" {
			break
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		if strings.HasPrefix(key, "agent_") {
			rec.Agents++
			continue
		}
		var err error
		switch key {
		case "difficulty":
			rec.Difficulty = value
			continue
		case "width":
			p.Width, err = strconv.Atoi(value)
		case "height":
			p.Height, err = strconv.Atoi(value)
		case "seed":
			var s uint64
			s, err = strconv.ParseUint(value, 10, 32)
			p.Seed = uint32(s)
		case "pick_last":
			p.PickLast, err = parseFloat(value)
		case "open_dead_end":
			p.OpenDeadEnd, err = parseFloat(value)
		case "open_optional":
			p.OpenOptional, err = parseFloat(value)
		default:
			continue
		}
		if err != nil {
			return Recorded{}, fmt.Errorf("map dump %s: %w", key, err)
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return Recorded{}, err
	}
	if seen < 6 {
		return Recorded{}, ErrIncompleteDump
	}
	return rec, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

// ReadRecordedFromFile opens a dump file and recovers what it records
func ReadRecordedFromFile(path string) (Recorded, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recorded{}, err
	}
	defer f.Close()
	return ReadRecorded(f)
}
