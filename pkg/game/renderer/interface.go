package renderer

import (
	"io"

	"stillnight/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHidden
	StyleWall
	StyleFloor
	StyleStairs
	StyleEvent
	StylePlayer
	StyleSubtle
	StyleAction
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// RenderFrame writes a complete game frame: map, status bar and messages
	RenderFrame(w io.Writer, g *state.Game) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}
