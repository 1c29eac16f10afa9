package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"stillnight/pkg/engine/terminal"
	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/renderer"
	"stillnight/pkg/game/state"
	gameworld "stillnight/pkg/game/world"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside viewport:
	// - Floor indicator + blank (2)
	// - Direction labels (2)
	// - Status bar (3)
	// - Messages pane (header + 5 messages + footer = 7)
	ViewportTopMargin = 14
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from data.
var dynamicGet = gotext.Get

// TUIRenderer prints the floor as colored text
type TUIRenderer struct {
	// Zero means size from the terminal
	Cols, Rows int

	colorAction color.Style
	colorDenied color.Style
	colorItem   color.Style
	colorSubtle color.Style
	colorPlayer color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a TUI renderer sized from the terminal
func New() *TUIRenderer {
	return &TUIRenderer{
		colorAction: color.Style{color.FgMagenta, color.OpBold},
		colorDenied: color.Style{color.FgRed, color.OpBold},
		colorItem:   color.Style{color.FgYellow},
		colorSubtle: color.Style{color.FgGray},
		colorPlayer: color.Style{color.FgGreen, color.BgBlack, color.OpBold},
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleSubtle, renderer.StyleHidden:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// GetViewportSize returns the viewport dimensions, odd so the player sits in the middle
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = t.Cols, t.Rows
	if cols <= 0 || rows <= 0 {
		cols, rows = terminal.Viewport(ViewportTopMargin)
	}

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(w io.Writer, g *state.Game) error {
	if !g.Map.Ready() {
		return gameworld.ErrNotReady
	}

	var b strings.Builder

	if g.Map.Floor() == gameworld.HubFloor {
		b.WriteString(t.colorAction.Sprint(dynamicGet("Hub")))
	} else {
		b.WriteString(t.colorAction.Sprint(gotext.Get("Floor %d", g.Map.Floor())))
	}
	b.WriteString("\n\n")

	t.printMap(&b, g)
	t.printStatusBar(&b, g)
	t.printMessagesPane(&b, g)

	_, err := io.WriteString(w, b.String())
	return err
}

// PrintMap writes the whole floor with no viewport and no fog
func (t *TUIRenderer) PrintMap(w io.Writer, g *state.Game) error {
	if !g.Map.Ready() {
		return gameworld.ErrNotReady
	}
	var b strings.Builder
	for y := 0; y < g.Map.Height(); y++ {
		for x := 0; x < g.Map.Width(); x++ {
			b.WriteString(t.renderGlyph(renderer.CellGlyph(g, x, y, true)))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderGlyph colors a glyph with its hex color
func (t *TUIRenderer) renderGlyph(gl renderer.Glyph) string {
	switch {
	case gl.Style == renderer.StylePlayer:
		return t.colorPlayer.Sprint(gl.Icon)
	case gl.Style == renderer.StyleHidden || gl.Color == "":
		return gl.Icon
	default:
		return color.HEX(gl.Color).Sprint(gl.Icon)
	}
}

// viewportOrigin centers the viewport on the player, clamped to the map
func viewportOrigin(player, viewport, size int) int {
	start := player - viewport/2
	if start+viewport > size {
		start = size - viewport
	}
	if start < 0 {
		start = 0
	}
	return start
}

// printMap renders the part of the floor around the player
func (t *TUIRenderer) printMap(b *strings.Builder, g *state.Game) {
	viewportRows, viewportCols := t.GetViewportSize()
	p := g.Map.PlayerPos()

	startRow := viewportOrigin(p.Y, viewportRows, g.Map.Height())
	startCol := viewportOrigin(p.X, viewportCols, g.Map.Width())

	for vRow := 0; vRow < viewportRows; vRow++ {
		y := startRow + vRow
		if y >= g.Map.Height() {
			break
		}
		for vCol := 0; vCol < viewportCols; vCol++ {
			x := startCol + vCol
			if x >= g.Map.Width() {
				break
			}
			b.WriteString(t.renderGlyph(renderer.CellGlyph(g, x, y, false)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	labels := make([]string, 0, 4)
	for _, d := range world.AllDirections() {
		labels = append(labels, t.getDirectionText(g, d))
	}
	b.WriteString(strings.Join(labels, "  "))
	b.WriteByte('\n')
}

// getDirectionText describes the neighbouring cell in direction d
func (t *TUIRenderer) getDirectionText(g *state.Game, d world.Direction) string {
	n := g.Map.PlayerPos().Add(d)
	label := t.colorAction.Sprint(dynamicGet(d.String())) + ": "

	if ev := g.Map.EventAt(n.X, n.Y); ev != nil && g.Map.IsVisited(n.X, n.Y) {
		return label + t.colorItem.Sprint(dynamicGet(renderer.EventInfo(ev).Name))
	}
	switch g.Map.TileAt(n.X, n.Y) {
	case world.TileFloor:
		return label + dynamicGet("floor")
	case world.TileStairs:
		return label + t.colorItem.Sprint(dynamicGet("stairs"))
	default:
		return label + t.colorSubtle.Sprint(dynamicGet("wall"))
	}
}

// printStatusBar renders gold, party and inventory
func (t *TUIRenderer) printStatusBar(b *strings.Builder, g *state.Game) {
	b.WriteByte('\n')
	b.WriteString(t.colorSubtle.Sprint(gotext.Get("Gold: ")))
	b.WriteString(t.colorItem.Sprint(g.Gold))
	b.WriteByte('\n')

	b.WriteString(t.colorSubtle.Sprint(gotext.Get("Party: ")))
	party := make([]string, 0, len(g.Roster))
	for _, u := range g.Roster {
		hp := fmt.Sprintf("%s %d/%d", u.Name, u.HP, u.MaxHP)
		if u.KnockedOut() {
			hp = t.colorDenied.Sprint(hp)
		}
		party = append(party, hp)
	}
	b.WriteString(strings.Join(party, t.colorSubtle.Sprint(", ")))
	b.WriteByte('\n')

	b.WriteString(t.colorSubtle.Sprint(gotext.Get("Inventory: ")))
	if len(g.Inventory) == 0 {
		b.WriteString(t.colorSubtle.Sprint(gotext.Get("(empty)")))
	} else {
		ids := make([]string, 0, len(g.Inventory))
		for id := range g.Inventory {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		items := make([]string, len(ids))
		for i, id := range ids {
			items[i] = t.colorItem.Sprintf("%s x%d", id, g.Inventory[id])
		}
		b.WriteString(strings.Join(items, t.colorSubtle.Sprint(", ")))
	}
	b.WriteByte('\n')
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(b *strings.Builder, g *state.Game) {
	_, width := t.GetViewportSize()

	label := " " + gotext.Get("Messages") + " "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	b.WriteByte('\n')
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)))
	b.WriteByte('\n')

	if len(g.Messages) == 0 {
		b.WriteString(t.colorSubtle.Sprint("  " + gotext.Get("(no messages)")))
		b.WriteByte('\n')
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(b, "  %s\n", msg)
		}
	}

	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)))
	b.WriteByte('\n')
}
