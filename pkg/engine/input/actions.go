// Package input maps typed commands to player actions.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionInteract
	ActionQuit
)

// ErrUnknownCommand is returned for input that has no binding
var ErrUnknownCommand = errors.New("unknown command")

// bindings maps codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (NSEW, words, Vim)
	"north": ActionMoveNorth,
	"n":     ActionMoveNorth,
	"k":     ActionMoveNorth,
	"south": ActionMoveSouth,
	"s":     ActionMoveSouth,
	"j":     ActionMoveSouth,
	"west":  ActionMoveWest,
	"w":     ActionMoveWest,
	"h":     ActionMoveWest,
	"east":  ActionMoveEast,
	"e":     ActionMoveEast,
	"l":     ActionMoveEast,

	"interact": ActionInteract,
	"x":        ActionInteract,
	"enter":    ActionInteract,

	"quit": ActionQuit,
	"q":    ActionQuit,
}

// Lookup returns the action bound to code
func Lookup(code string) (Action, bool) {
	act, ok := bindings[strings.ToLower(code)]
	return act, ok
}

// Parse turns a command line into actions. Words are separated by spaces or
// commas; a word with no binding of its own is read one letter at a time,
// so "nnex" is north, north, east, interact.
func Parse(line string) ([]Action, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var out []Action
	for _, word := range fields {
		if act, ok := Lookup(word); ok {
			out = append(out, act)
			continue
		}
		for _, r := range word {
			act, ok := Lookup(string(r))
			if !ok {
				return nil, fmt.Errorf("%w %q in %q", ErrUnknownCommand, string(r), word)
			}
			out = append(out, act)
		}
	}
	return out, nil
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionInteract:
		return "Interact"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering for help output
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
