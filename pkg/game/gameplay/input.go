package gameplay

import (
	"stillnight/pkg/engine/input"
	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/state"
)

// ProcessAction applies one player action. It reports whether the player
// asked to quit.
func ProcessAction(g *state.Game, act input.Action) (bool, error) {
	switch act {
	case input.ActionMoveNorth:
		return false, moveLogged(g, world.North)
	case input.ActionMoveSouth:
		return false, moveLogged(g, world.South)
	case input.ActionMoveWest:
		return false, moveLogged(g, world.West)
	case input.ActionMoveEast:
		return false, moveLogged(g, world.East)
	case input.ActionInteract:
		ok, err := Interact(g)
		if err == nil && !ok {
			logMessage(g, "There is nothing here.")
		}
		return false, err
	case input.ActionQuit:
		return true, nil
	default:
		return false, nil
	}
}

// ProcessActions applies actions in order, stopping at quit or the first error
func ProcessActions(g *state.Game, acts []input.Action) (bool, error) {
	for _, act := range acts {
		quit, err := ProcessAction(g, act)
		if err != nil || quit {
			return quit, err
		}
	}
	return false, nil
}

func moveLogged(g *state.Game, d world.Direction) error {
	moved, err := MoveDir(g, d)
	if err == nil && !moved {
		logMessage(g, "You can't go %s.", d.String())
	}
	return err
}
