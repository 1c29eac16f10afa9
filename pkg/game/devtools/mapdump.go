// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"stillnight/pkg/game/renderer"
	"stillnight/pkg/game/state"
	gameworld "stillnight/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// writeMapGrid writes the floor, one symbol per cell
func writeMapGrid(w io.Writer, g *state.Game, revealAll bool) {
	for y := 0; y < g.Map.Height(); y++ {
		var row strings.Builder
		for x := 0; x < g.Map.Width(); x++ {
			icon := renderer.CellGlyph(g, x, y, revealAll).Icon
			if icon == renderer.IconHidden {
				icon = "?"
			}
			row.WriteString(icon)
		}
		fmt.Fprintln(w, row.String())
	}
}

// WriteMapDump writes a debug dump: metadata, legend, revealed-only map,
// fully-revealed map, and the event list.
// Format is human-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, g *state.Game) error {
	m := g.Map
	if !m.Ready() {
		return gameworld.ErrNotReady
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (floor layout, events) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "floor: %d\n", m.Floor())
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y grows downward)\n")
	fmt.Fprintf(w, "player: %s\n", m.PlayerPos())
	fmt.Fprintf(w, "start: %s\n", m.Start())
	fmt.Fprintf(w, "end: %s\n", m.End())
	fmt.Fprintf(w, "view_distance: %d\n", m.ViewDistance())
	fmt.Fprintf(w, "flags: %s\n", strings.Join(m.Flags(), ","))
	fmt.Fprintf(w, "gold: %d\n", g.Gold)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	parts := []string{"? = unrevealed"}
	for _, entry := range renderer.Legend() {
		parts = append(parts, entry[0]+" = "+strings.ToLower(entry[1]))
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed cells only; unrevealed = ?) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fully revealed; full layout) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	// --- Events ---
	events := m.Events()
	fmt.Fprintf(w, "--- Events (%d) ---\n", len(events))
	for _, ev := range events {
		codes := make([]string, 0, len(ev.Codes()))
		for _, c := range ev.Codes() {
			codes = append(codes, string(c))
		}
		fmt.Fprintf(w, "  x: %d y: %d kind: %s trigger: %s commands: %s id: %s\n",
			ev.X(), ev.Y(), ev.Kind(), ev.Trigger(), strings.Join(codes, ","), ev.ID())
	}
	return nil
}

// DumpMapToFile writes WriteMapDump output to path, or map.txt when path is
// empty, and returns the absolute path written.
func DumpMapToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
