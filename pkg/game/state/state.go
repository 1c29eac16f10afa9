package state

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"stillnight/pkg/game/data"
	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/interpreter"
	"stillnight/pkg/game/recruit"
	gameworld "stillnight/pkg/game/world"
)

// LeaderSpecies is the creature the party starts with
const LeaderSpecies = "summoner"

const maxMessages = 5

// Unit is a party member
type Unit struct {
	Species string
	Name    string
	Level   int
	HP      int
	MaxHP   int
}

// KnockedOut reports whether the unit has no HP left
func (u *Unit) KnockedOut() bool {
	return u.HP <= 0
}

// Options configures a new game
type Options struct {
	Seed    int64
	Dungeon string
	Log     zerolog.Logger
}

// Game is the state of one run. It is passed explicitly to every system
// that needs it.
type Game struct {
	Catalog *data.Catalog
	Map     *gameworld.Map
	Events  *interpreter.Interpreter // nil until the gameplay layer attaches its handler
	Rand    *rand.Rand
	Seed    int64
	Log     zerolog.Logger

	Gold      int
	Roster    []*Unit
	Inventory map[string]int

	Messages []string

	// Set by event commands for the battle, shop and recruit screens to pick up
	PendingBattle []string
	PendingShop   []entities.StockEntry
	PendingOffers []entities.Recruit
}

// NewGame creates a run over the catalog. The map is not set up yet.
func NewGame(cat *data.Catalog, opts Options) (*Game, error) {
	if cat == nil {
		return nil, fmt.Errorf("new game: nil catalog")
	}
	if opts.Dungeon == "" {
		opts.Dungeon = dungeon.DefaultName
	}
	if _, err := cat.Dungeons.Get(opts.Dungeon); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	log := opts.Log
	g := &Game{
		Catalog:   cat,
		Rand:      rng,
		Seed:      opts.Seed,
		Log:       log,
		Inventory: make(map[string]int),
		Messages:  make([]string, 0),
	}
	g.Map = gameworld.New(gameworld.Options{
		Dungeons:    cat.Dungeons,
		Maps:        cat.Maps,
		DungeonName: opts.Dungeon,
		Events:      cat.Events,
		Recruits:    recruit.NewGenerator(cat.Creatures, rng),
		Rand:        rng,
		Log:         &log,
	})

	if leader, ok := cat.Creatures.Get(LeaderSpecies); ok {
		g.AddUnit(leader.Offer(1))
	}
	return g, nil
}

// AddUnit adds a recruited creature to the roster at full HP
func (g *Game) AddUnit(r entities.Recruit) *Unit {
	u := &Unit{
		Species: r.Species,
		Name:    r.Name,
		Level:   r.Level,
		HP:      r.MaxHP,
		MaxHP:   r.MaxHP,
	}
	g.Roster = append(g.Roster, u)
	return u
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
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

// AddItem adds amount copies of an item to the inventory
func (g *Game) AddItem(id string, amount int) {
	g.Inventory[id] += amount
}

// PartyDown reports whether every roster unit is knocked out
func (g *Game) PartyDown() bool {
	for _, u := range g.Roster {
		if !u.KnockedOut() {
			return false
		}
	}
	return len(g.Roster) > 0
}
