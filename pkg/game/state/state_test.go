package state

import (
	"testing"

	"github.com/google/uuid"

	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/difficulty"
	"mazestalker/pkg/game/generator"
)

func TestNewGame_UniqueIDs(t *testing.T) {
	p := generator.Params{Width: 2, Height: 2, Seed: 1}
	a, b := NewGame(p, difficulty.Easy), NewGame(p, difficulty.Easy)
	if a.ID == uuid.Nil || a.ID == b.ID {
		t.Errorf("IDs = %s, %s, want distinct non-nil", a.ID, b.ID)
	}
	if a.Params != p || a.Difficulty != difficulty.Easy {
		t.Errorf("NewGame() = %+v", a)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(generator.Params{}, difficulty.Normal)
	for _, m := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		g.AddMessage(m)
	}
	if len(g.Messages) != 5 || g.Messages[0] != "3" || g.Messages[4] != "7" {
		t.Errorf("Messages = %v, want [3 4 5 6 7]", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("Messages = %v after clear", g.Messages)
	}
}

func TestIsAgentAt(t *testing.T) {
	g := NewGame(generator.Params{}, difficulty.Normal)
	g.Agents = []world.Coordinate{{X: 1, Y: 2}}
	if !g.IsAgentAt(world.Coordinate{X: 1, Y: 2}) {
		t.Error("IsAgentAt({1 2}) = false, want true")
	}
	if g.IsAgentAt(world.Coordinate{X: 2, Y: 1}) {
		t.Error("IsAgentAt({2 1}) = true, want false")
	}
}
