// Package setup places the player and the pursuing agents into a generated maze.
package setup

import (
	"mazestalker/pkg/engine/rng"
	"mazestalker/pkg/engine/world"
	"mazestalker/pkg/game/state"
)

// SpawnActors places the player in the south-west quarter of the maze and
// each agent anywhere outside the south-west quadrant. Placement draws from a
// generator seeded with the maze seed, so a seed replays its spawns too.
func SpawnActors(g *state.Game, agents int) {
	w, h := g.Grid.Width(), g.Grid.Height()
	rnd := rng.New(g.Params.Seed)

	g.Player, rnd = playerSpawn(rnd, w, h)

	g.Agents = make([]world.Coordinate, 0, agents)
	for i := 0; i < agents; i++ {
		var c world.Coordinate
		c, rnd = agentSpawn(rnd, w, h)
		g.Agents = append(g.Agents, c)
	}
}

func playerSpawn(rnd rng.Random, w, h int) (world.Coordinate, rng.Random) {
	var c world.Coordinate
	c.X, rnd = rnd.NextInt(max(1, w/4))
	c.Y, rnd = rnd.NextInt(max(1, h/4))
	return c, rnd
}

// agentSpawn picks a random cell and pushes it east or north by half the
// maze when it lands in the player's quadrant
func agentSpawn(rnd rng.Random, w, h int) (world.Coordinate, rng.Random) {
	var c world.Coordinate
	c.X, rnd = rnd.NextInt(w)
	c.Y, rnd = rnd.NextInt(h)
	if c.X < w/2 && c.Y < h/2 {
		var flip float32
		flip, rnd = rnd.NextFloat()
		if flip < 0.5 {
			c.X += w / 2
		} else {
			c.Y += h / 2
		}
	}
	return c, rnd
}
