// Package interpreter runs event command lists against a game handler.
package interpreter

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"stillnight/pkg/game/entities"
)

// ErrBusy is returned when Run is called from inside a running command
var ErrBusy = errors.New("interpreter already running")

// Handler applies the effects the interpreter dispatches
type Handler interface {
	Battle(troop []string) error
	Gold(amount int) error
	Shop(stock []entities.StockEntry) error
	Recruit(offers []entities.Recruit) error
	Shrine() error
	Trap() error
	Message(text string) error
	Log(text string) error
	GiveItem(id string, amount int) error
}

// Eraser removes erased events from the floor
type Eraser interface {
	EraseEvent(ev *entities.Event)
}

// Interpreter executes commands in order
type Interpreter struct {
	handler Handler
	eraser  Eraser
	log     zerolog.Logger
	running bool
}

// New creates an interpreter
func New(h Handler, e Eraser, log zerolog.Logger) *Interpreter {
	return &Interpreter{handler: h, eraser: e, log: log}
}

// Run executes ev's commands. Erased events do nothing. Unknown codes are
// logged and skipped; the first handler error stops the list.
func (in *Interpreter) Run(ev *entities.Event) error {
	if ev == nil || ev.IsErased() {
		return nil
	}
	if in.running {
		return ErrBusy
	}
	in.running = true
	defer func() { in.running = false }()

	for i, cmd := range ev.Commands() {
		if err := in.exec(ev, cmd); err != nil {
			return fmt.Errorf("event %s command %d (%s): %w", ev.ID(), i, cmd.Code, err)
		}
	}
	return nil
}

func (in *Interpreter) exec(ev *entities.Event, cmd entities.Command) error {
	switch cmd.Code {
	case entities.CodeBattle:
		return in.handler.Battle(cmd.Troop)
	case entities.CodeGold:
		return in.handler.Gold(cmd.Amount)
	case entities.CodeShop:
		return in.handler.Shop(cmd.Stock)
	case entities.CodeRecruit:
		return in.handler.Recruit(cmd.Offers)
	case entities.CodeShrine:
		return in.handler.Shrine()
	case entities.CodeTrap:
		return in.handler.Trap()
	case entities.CodeMessage:
		return in.handler.Message(cmd.Text)
	case entities.CodeLog:
		return in.handler.Log(cmd.Text)
	case entities.CodeGiveItem:
		return in.handler.GiveItem(cmd.ItemID, cmd.Amount)
	case entities.CodeEraseEvent:
		if in.eraser != nil {
			in.eraser.EraseEvent(ev)
		} else {
			ev.Erase()
		}
		return nil
	default:
		in.log.Warn().Str("code", string(cmd.Code)).Str("event", ev.ID()).Msg("unknown command code")
		return nil
	}
}
