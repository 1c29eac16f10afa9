package gameplay

import (
	"fmt"

	"stillnight/pkg/game/data"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/interpreter"
	"stillnight/pkg/game/state"
	gameworld "stillnight/pkg/game/world"
)

// BuildGame creates a new run over cat and enters startFloor
func BuildGame(cat *data.Catalog, opts state.Options, startFloor int) (*state.Game, error) {
	g, err := state.NewGame(cat, opts)
	if err != nil {
		return nil, err
	}
	g.Events = interpreter.New(NewEffects(g), g.Map, g.Log)

	if startFloor < gameworld.HubFloor {
		startFloor = gameworld.HubFloor
	}
	if err := EnterFloor(g, startFloor); err != nil {
		return nil, err
	}

	// Keep only the welcome text on a fresh run
	g.ClearMessages()
	logMessage(g, "Welcome, summoner.")
	showFloor(g)

	return g, nil
}

// EnterFloor sets up a floor, places the player on its start cell and runs
// its AUTO events
func EnterFloor(g *state.Game, floor int) error {
	if err := g.Map.Setup(floor); err != nil {
		return fmt.Errorf("enter floor %d: %w", floor, err)
	}

	g.PendingBattle = nil
	g.PendingShop = nil
	g.PendingOffers = nil

	MoveTo(g, g.Map.Start())

	for _, ev := range g.Map.Events() {
		if ev.Trigger() != entities.TriggerAuto {
			continue
		}
		if err := runEvent(g, ev); err != nil {
			return fmt.Errorf("enter floor %d: %w", floor, err)
		}
	}

	g.Log.Info().
		Int("floor", floor).
		Int("events", len(g.Map.Events())).
		Str("start", g.Map.Start().String()).
		Msg("entered floor")
	return nil
}

// Descend moves the party to the next floor
func Descend(g *state.Game) error {
	if err := EnterFloor(g, g.Map.Floor()+1); err != nil {
		return err
	}
	showFloor(g)
	return nil
}

// showFloor logs where the party is
func showFloor(g *state.Game) {
	if g.Map.Floor() == gameworld.HubFloor {
		logMessage(g, "You are in the hub. Take the stairs to descend.")
		return
	}
	logMessage(g, "You are on floor %d.", g.Map.Floor())
}
