package devtools

import (
	"sort"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/state"
)

// SpawnShowcase places one event of every generated kind on free floor
// cells, nearest to the player first, and returns what was placed
func SpawnShowcase(g *state.Game) ([]*entities.Event, error) {
	m := g.Map
	p := m.PlayerPos()

	var free []world.Point
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := world.Pt(x, y)
			if c == p || m.TileAt(x, y) != world.TileFloor || m.EventAt(x, y) != nil {
				continue
			}
			free = append(free, c)
		}
	}
	// Ties keep row-major order
	sort.SliceStable(free, func(i, j int) bool {
		return free[i].DistSq(p) < free[j].DistSq(p)
	})

	var placed []*entities.Event
	for i, kind := range entities.PlacementOrder {
		if i >= len(free) {
			break
		}
		ev, err := m.CreateEvent(kind, free[i].X, free[i].Y)
		if err != nil {
			return placed, err
		}
		placed = append(placed, ev)
	}
	return placed, nil
}
