package levelgen

import (
	"errors"
	"fmt"
	"math/rand"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/maps"
)

// ErrUnknownKind is returned when asked to build an unsupported event kind
var ErrUnknownKind = errors.New("unknown event kind")

// GoldRule rolls treasure gold: base + [0, random) + perFloor*floor
type GoldRule struct {
	Base     int `yaml:"base"`
	Random   int `yaml:"random"`
	PerFloor int `yaml:"perFloor"`
}

// Roll returns the gold amount for a floor
func (g GoldRule) Roll(rng *rand.Rand, floor int) int {
	spread := 0
	if g.Random > 0 {
		spread = rng.Intn(g.Random)
	}
	return g.Base + spread + g.PerFloor*floor
}

// ShopStock configures how shops are stocked
type ShopStock struct {
	Count struct {
		Items     int `yaml:"items"`
		Equipment int `yaml:"equipment"`
	} `yaml:"count"`
	Pools struct {
		Items     []string `yaml:"items"`
		Equipment []string `yaml:"equipment"`
	} `yaml:"pools"`
}

// EventData is the event tuning shared by every dungeon
type EventData struct {
	Treasure struct {
		Gold GoldRule `yaml:"gold"`
	} `yaml:"treasure"`
	Shop struct {
		Stock ShopStock `yaml:"stock"`
	} `yaml:"shop"`
}

// RecruitSource produces recruit offers for a floor
type RecruitSource interface {
	Generate(floor int) []entities.Recruit
}

// EventFactory builds the typed events placed on floors
type EventFactory struct {
	Encounters dungeon.Encounters
	Data       EventData
	Recruits   RecruitSource

	rng *rand.Rand
}

// NewEventFactory creates a factory drawing from rng
func NewEventFactory(enc dungeon.Encounters, data EventData, recruits RecruitSource, rng *rand.Rand) *EventFactory {
	return &EventFactory{
		Encounters: enc,
		Data:       data,
		Recruits:   recruits,
		rng:        rng,
	}
}

// Create builds an event of the given kind at pos. Everything except
// recruits erases itself after running.
func (f *EventFactory) Create(kind entities.Kind, pos world.Point, floor int) (*entities.Event, error) {
	var cmds []entities.Command
	switch kind {
	case entities.KindEnemy:
		troop, err := f.Troop(floor)
		if err != nil {
			return nil, err
		}
		cmds = []entities.Command{entities.Battle(troop), entities.Erase()}
	case entities.KindTreasure:
		cmds = []entities.Command{entities.Gold(f.Data.Treasure.Gold.Roll(f.rng, floor)), entities.Erase()}
	case entities.KindShop:
		cmds = []entities.Command{entities.Shop(f.Stock()), entities.Erase()}
	case entities.KindRecruit:
		var offers []entities.Recruit
		if f.Recruits != nil {
			offers = f.Recruits.Generate(floor)
		}
		cmds = []entities.Command{entities.RecruitOffer(offers)}
	case entities.KindShrine:
		cmds = []entities.Command{entities.Shrine(), entities.Erase()}
	case entities.KindTrap:
		cmds = []entities.Command{entities.Trap(), entities.Erase()}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, string(kind))
	}

	return entities.NewEvent(pos, entities.Data{
		Kind:     kind,
		Trigger:  entities.TriggerTouch,
		Commands: cmds,
	}), nil
}

// Troop draws an enemy group for floor: size in [count.min, count.max]
// (at least one), species drawn with replacement from the floor's pool.
func (f *EventFactory) Troop(floor int) ([]string, error) {
	pool, err := f.Encounters.PoolFor(floor)
	if err != nil {
		return nil, err
	}
	if len(pool.Enemies) == 0 {
		return nil, fmt.Errorf("%w %d: pool %s is empty", dungeon.ErrNoPool, floor, pool.Floors)
	}
	lo, hi := f.Encounters.Count.Min, f.Encounters.Count.Max
	lo = max(lo, 1)
	hi = max(hi, lo)
	size := lo + f.rng.Intn(hi-lo+1)

	troop := make([]string, size)
	for i := range troop {
		troop[i] = pool.Enemies[f.rng.Intn(len(pool.Enemies))]
	}
	return troop, nil
}

// Stock draws the configured number of items and equipment for a shop
func (f *EventFactory) Stock() []entities.StockEntry {
	cfg := f.Data.Shop.Stock
	var stock []entities.StockEntry
	draw := func(n int, pool []string, kind entities.StockKind) {
		if len(pool) == 0 {
			return
		}
		for i := 0; i < n; i++ {
			stock = append(stock, entities.StockEntry{ID: pool[f.rng.Intn(len(pool))], Kind: kind})
		}
	}
	draw(cfg.Count.Items, cfg.Pools.Items, entities.StockItem)
	draw(cfg.Count.Equipment, cfg.Pools.Equipment, entities.StockEquipment)
	return stock
}

// FromStatic builds an event from a hand-placed map entry. NPCs get a
// message command; other kinds go through Create.
func (f *EventFactory) FromStatic(se maps.StaticEvent, floor int) (*entities.Event, error) {
	pos := world.Pt(se.X, se.Y)
	kind := entities.Kind(se.Type)
	var visual *entities.Visual
	if t, ok := se.Visual["type"]; ok {
		visual = &entities.Visual{Type: t, Sprite: se.Visual["sprite"]}
	}

	if kind == "" || kind == entities.KindNPC {
		var cmds []entities.Command
		if se.Text != "" {
			cmds = append(cmds, entities.Message(se.Text))
		}
		return entities.NewEvent(pos, entities.Data{
			Kind:     entities.KindNPC,
			Trigger:  entities.Trigger(se.Trigger),
			Commands: cmds,
			Visual:   visual,
		}), nil
	}

	ev, err := f.Create(kind, pos, floor)
	if err != nil {
		return nil, fmt.Errorf("static event at %s: %w", pos, err)
	}
	return ev, nil
}
