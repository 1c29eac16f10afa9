// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/interpreter"
	"stillnight/pkg/game/state"
	gameworld "stillnight/pkg/game/world"
)

// Move steps the player by (dx, dy). Walls and out-of-bounds cells block.
// A TOUCH event on the destination runs, and stairs lead to the next floor.
func Move(g *state.Game, dx, dy int) (bool, error) {
	if !g.Map.Ready() {
		return false, gameworld.ErrNotReady
	}

	pos := g.Map.PlayerPos()
	dest := world.Pt(pos.X+dx, pos.Y+dy)
	tile := g.Map.TileAt(dest.X, dest.Y)
	if !tile.Passable() {
		return false, nil
	}

	MoveTo(g, dest)

	if ev := g.Map.EventAt(dest.X, dest.Y); ev != nil && ev.Trigger() == entities.TriggerTouch {
		if err := runEvent(g, ev); err != nil {
			return true, err
		}
	}

	if tile == world.TileStairs {
		return true, Descend(g)
	}
	return true, nil
}

// MoveDir steps the player one cell in a cardinal direction
func MoveDir(g *state.Game, d world.Direction) (bool, error) {
	dx, dy := d.Delta()
	return Move(g, dx, dy)
}

// MoveTo places the player on p and reveals the cells around it
func MoveTo(g *state.Game, p world.Point) {
	g.Map.SetPlayerPos(p)
	g.Map.UpdateVisibility(p.X, p.Y, g.Map.ViewDistance())
}

// Interact runs the ACTION event on the player's cell, if any
func Interact(g *state.Game) (bool, error) {
	if !g.Map.Ready() {
		return false, gameworld.ErrNotReady
	}
	p := g.Map.PlayerPos()
	ev := g.Map.EventAt(p.X, p.Y)
	if ev == nil || ev.Trigger() != entities.TriggerAction {
		return false, nil
	}
	return true, runEvent(g, ev)
}

func runEvent(g *state.Game, ev *entities.Event) error {
	if g.Events == nil {
		g.Events = interpreter.New(NewEffects(g), g.Map, g.Log)
	}
	return g.Events.Run(ev)
}
