package gameplay

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/state"
)

// dynamicGet looks up data-authored text, which is not a format string
var dynamicGet = gotext.Get

// trapPercent is the share of each unit's max HP a trap removes
const trapPercent = 20

// Effects applies event commands to a game session
type Effects struct {
	g *state.Game
}

// NewEffects creates the command handler for g
func NewEffects(g *state.Game) *Effects {
	return &Effects{g: g}
}

// Battle queues an encounter for the battle screen
func (e *Effects) Battle(troop []string) error {
	e.g.PendingBattle = append([]string(nil), troop...)
	logMessage(e.g, "Monsters appear: %s!", strings.Join(troop, ", "))
	return nil
}

// Gold adds gold to the party purse
func (e *Effects) Gold(amount int) error {
	e.g.Gold += amount
	logMessage(e.g, "Found %d gold.", amount)
	return nil
}

// Shop opens a shop with the given stock
func (e *Effects) Shop(stock []entities.StockEntry) error {
	e.g.PendingShop = append([]entities.StockEntry(nil), stock...)
	logMessage(e.g, "A merchant shows %d wares.", len(stock))
	return nil
}

// Recruit offers creatures to join the party
func (e *Effects) Recruit(offers []entities.Recruit) error {
	e.g.PendingOffers = append([]entities.Recruit(nil), offers...)
	names := make([]string, len(offers))
	for i, o := range offers {
		names[i] = o.Name
	}
	logMessage(e.g, "Wants to join: %s.", strings.Join(names, ", "))
	return nil
}

// Shrine restores every unit to full HP, knocked out units included
func (e *Effects) Shrine() error {
	for _, u := range e.g.Roster {
		u.HP = u.MaxHP
	}
	logMessage(e.g, "The shrine restores your party.")
	return nil
}

// Trap damages every unit by a fifth of its max HP, rounded up
func (e *Effects) Trap() error {
	total := 0
	for _, u := range e.g.Roster {
		dmg := (u.MaxHP*trapPercent + 99) / 100
		if dmg > u.HP {
			dmg = u.HP
		}
		u.HP -= dmg
		total += dmg
	}
	logMessage(e.g, "A trap! The party takes %d damage.", total)
	if e.g.PartyDown() {
		logMessage(e.g, "Your party has fallen.")
	}
	return nil
}

// Message shows dialogue text
func (e *Effects) Message(text string) error {
	e.g.AddMessage(dynamicGet(text))
	return nil
}

// Log records narration in the message log
func (e *Effects) Log(text string) error {
	e.g.Log.Debug().Str("text", text).Msg("event log")
	e.g.AddMessage(dynamicGet(text))
	return nil
}

// GiveItem adds items to the inventory
func (e *Effects) GiveItem(id string, amount int) error {
	e.g.AddItem(id, amount)
	logMessage(e.g, "Received %s x%d.", id, amount)
	return nil
}

// logMessage formats msg through the message catalog and appends it
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
