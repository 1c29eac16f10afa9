package entities

import (
	"github.com/google/uuid"

	"stillnight/pkg/engine/world"
)

// Trigger decides when an event runs
type Trigger string

const (
	TriggerAction Trigger = "ACTION" // Player interacts while standing on it
	TriggerTouch  Trigger = "TOUCH"  // Player steps onto it
	TriggerAuto   Trigger = "AUTO"   // Runs once the floor is ready
)

// Visual describes how an event is drawn
type Visual struct {
	Type   string `json:"type,omitempty"`
	Sprite string `json:"sprite,omitempty"`
}

// Data configures a new event. Zero fields get defaults.
type Data struct {
	ID         string
	Kind       Kind
	Trigger    Trigger
	Conditions map[string]string
	Commands   []Command
	Visual     *Visual
}

// Event is a positioned, triggerable unit of map interactivity.
// Once erased it stays erased for the rest of the floor.
type Event struct {
	id         string
	pos        world.Point
	kind       Kind
	trigger    Trigger
	conditions map[string]string
	commands   []Command
	visual     *Visual
	erased     bool
}

// NewEvent creates an event at pos. A missing ID gets a random UUID and a
// missing trigger defaults to ACTION.
func NewEvent(pos world.Point, d Data) *Event {
	id := d.ID
	if id == "" {
		id = uuid.NewString()
	}
	trigger := d.Trigger
	if trigger == "" {
		trigger = TriggerAction
	}
	commands := make([]Command, len(d.Commands))
	copy(commands, d.Commands)
	visual := d.Visual
	if visual == nil && d.Kind != "" {
		visual = &Visual{Type: string(d.Kind)}
	}
	return &Event{
		id:         id,
		pos:        pos,
		kind:       d.Kind,
		trigger:    trigger,
		conditions: d.Conditions,
		commands:   commands,
		visual:     visual,
	}
}

// ID returns the unique identifier
func (e *Event) ID() string { return e.id }

// Pos returns the current position
func (e *Event) Pos() world.Point { return e.pos }

// X returns the column
func (e *Event) X() int { return e.pos.X }

// Y returns the row
func (e *Event) Y() int { return e.pos.Y }

// Kind returns what the event represents
func (e *Event) Kind() Kind { return e.kind }

// Trigger returns when the event runs
func (e *Event) Trigger() Trigger { return e.trigger }

// Conditions returns the activation conditions (may be nil)
func (e *Event) Conditions() map[string]string { return e.conditions }

// Visual returns the draw descriptor (may be nil)
func (e *Event) Visual() *Visual { return e.visual }

// Commands returns a copy of the command list
func (e *Event) Commands() []Command {
	out := make([]Command, len(e.commands))
	copy(out, e.commands)
	return out
}

// IsErased reports whether the event has been erased
func (e *Event) IsErased() bool { return e.erased }

// Erase deactivates the event for the rest of the floor
func (e *Event) Erase() { e.erased = true }

// SetPosition moves the event. Callers holding an index keyed by position
// must re-key it; the map runtime does this in MoveEvent.
func (e *Event) SetPosition(p world.Point) { e.pos = p }

// Codes returns the command codes in order
func (e *Event) Codes() []Code {
	codes := make([]Code, len(e.commands))
	for i, c := range e.commands {
		codes[i] = c.Code
	}
	return codes
}
