// Package terminal queries the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Viewport returns how many map columns and rows fit on screen, keeping
// reservedRows lines free for status text. Each map cell is one column wide.
func Viewport(reservedRows int) (cols, rows int) {
	width, height := GetSize()
	rows = height - reservedRows
	if rows < 3 {
		rows = 3
	}
	return width, rows
}
