package world

import (
	"errors"
	"sort"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/entities"
)

// ErrNoHub is returned when floor 0 is requested without a map registry
var ErrNoHub = errors.New("hub map missing")

// ErrNotReady is returned by operations that need a built floor
var ErrNotReady = errors.New("floor not ready")

// AddEvent indexes ev at its position. An event already on that cell is replaced.
func (m *Map) AddEvent(ev *entities.Event) {
	key := ev.Pos().Key()
	if old, ok := m.events[key]; ok && old != ev {
		m.log.Debug().Str("old", old.ID()).Str("new", ev.ID()).Stringer("pos", ev.Pos()).Msg("event replaced")
	}
	m.events[key] = ev
}

// RemoveEvent drops ev from the index. Other events on the same cell are left alone.
func (m *Map) RemoveEvent(ev *entities.Event) {
	key := ev.Pos().Key()
	if cur, ok := m.events[key]; ok && cur == ev {
		delete(m.events, key)
	}
}

// MoveEvent re-keys ev under its new position
func (m *Map) MoveEvent(ev *entities.Event, x, y int) {
	m.RemoveEvent(ev)
	ev.SetPosition(world.Pt(x, y))
	m.AddEvent(ev)
}

// EraseEvent marks ev erased and drops it from the index
func (m *Map) EraseEvent(ev *entities.Event) {
	ev.Erase()
	m.RemoveEvent(ev)
}

// EventAt returns the live event on a cell, or nil
func (m *Map) EventAt(x, y int) *entities.Event {
	ev, ok := m.events[world.KeyOf(x, y)]
	if !ok || ev.IsErased() {
		return nil
	}
	return ev
}

// EventByID finds a live event by its id
func (m *Map) EventByID(id string) *entities.Event {
	for _, ev := range m.events {
		if ev.ID() == id && !ev.IsErased() {
			return ev
		}
	}
	return nil
}

// Events returns the live events in row-major order
func (m *Map) Events() []*entities.Event {
	out := make([]*entities.Event, 0, len(m.events))
	for _, ev := range m.events {
		if !ev.IsErased() {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Pos(), out[j].Pos()
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// CreateEvent builds an event of the given kind for the current floor and
// places it at x/y. The hub uses the first dungeon floor's tables.
func (m *Map) CreateEvent(kind entities.Kind, x, y int) (*entities.Event, error) {
	if m.factory == nil {
		return nil, ErrNotReady
	}
	ev, err := m.factory.Create(kind, world.Pt(x, y), eventFloor(m.floor))
	if err != nil {
		return nil, err
	}
	m.AddEvent(ev)
	return ev, nil
}

// eventFloor is the floor number used for event tables; the hub borrows floor 1's
func eventFloor(floor int) int {
	if floor < 1 {
		return 1
	}
	return floor
}
