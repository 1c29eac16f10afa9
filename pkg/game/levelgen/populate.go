package levelgen

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/entities"
)

// ruleKinds maps tile count keys to the event kind they place.
// "stairs" places tiles, not events.
var ruleKinds = map[string]entities.Kind{
	"enemies":  entities.KindEnemy,
	"treasure": entities.KindTreasure,
	"shops":    entities.KindShop,
	"recruits": entities.KindRecruit,
	"shrines":  entities.KindShrine,
	"traps":    entities.KindTrap,
}

// Result is what a population pass placed
type Result struct {
	Events []*entities.Event
	// Stairs lists extra stairs tiles written to the grid
	Stairs []world.Point
	// Placed counts placements per tile count key
	Placed map[string]int
	// Short lists keys that ran out of empty cells
	Short []string
}

// Populator places count-driven tiles and events on a generated grid
type Populator struct {
	Counts  dungeon.TileCounts
	Factory *EventFactory

	rng *rand.Rand
	log zerolog.Logger
}

// NewPopulator creates a populator
func NewPopulator(counts dungeon.TileCounts, factory *EventFactory, rng *rand.Rand, log zerolog.Logger) *Populator {
	return &Populator{
		Counts:  counts,
		Factory: factory,
		rng:     rng,
		log:     log,
	}
}

// Populate resolves each count for floor and fills random empty floor cells,
// never using start or end. Kinds are placed in the order enemies, stairs,
// treasure, shops, recruits, shrines, traps. Running out of cells stops
// the current kind and every later one without error.
func (p *Populator) Populate(grid *world.Grid, start, end world.Point, floor int) (*Result, error) {
	avoid := mapset.New[world.Key]()
	avoid.Put(start.Key())
	avoid.Put(end.Key())
	pool := NewCellPool(EmptyCells(grid, avoid), p.rng)

	res := &Result{Placed: make(map[string]int)}
	for _, nr := range p.Counts.Rules() {
		n, err := nr.Rule.Resolve(floor)
		if err != nil {
			return nil, fmt.Errorf("tileCounts.%s: %w", nr.Name, err)
		}
		for i := 0; i < n; i++ {
			cell, ok := pool.Take()
			if !ok {
				p.log.Warn().
					Int("floor", floor).
					Str("kind", nr.Name).
					Int("wanted", n).
					Int("placed", i).
					Msg("no empty cells left, placement stopped")
				res.Short = append(res.Short, nr.Name)
				break
			}
			if nr.Name == "stairs" {
				grid.Set(cell.X, cell.Y, world.TileStairs)
				res.Stairs = append(res.Stairs, cell)
				res.Placed[nr.Name]++
				continue
			}
			ev, err := p.Factory.Create(ruleKinds[nr.Name], cell, floor)
			if err != nil {
				return nil, fmt.Errorf("place %s on floor %d: %w", nr.Name, floor, err)
			}
			res.Events = append(res.Events, ev)
			res.Placed[nr.Name]++
		}
	}
	return res, nil
}
