// Package state holds the state of a single maze session.
package state

import (
	"github.com/google/uuid"

	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/difficulty"
	"mazestalker/pkg/game/generator"
)

// Game represents one generated maze and the actors placed in it
type Game struct {
	// ID identifies the session in logs and map dumps
	ID uuid.UUID

	// Params regenerate Grid exactly
	Params generator.Params

	Difficulty difficulty.Level

	// Generator is the name of the algorithm that carved Grid
	Generator string

	Grid *world.Grid

	Player world.Coordinate
	Agents []world.Coordinate

	Messages []string
}

// NewGame creates a new session with a fresh ID
func NewGame(params generator.Params, level difficulty.Level) *Game {
	return &Game{
		ID:         uuid.New(),
		Params:     params,
		Difficulty: level,
		Messages:   make([]string, 0),
	}
}

// AddMessage adds a message to the session log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// IsAgentAt reports whether an agent spawns on the given cell
func (g *Game) IsAgentAt(c world.Coordinate) bool {
	for _, a := range g.Agents {
		if a == c {
			return true
		}
	}
	return false
}
