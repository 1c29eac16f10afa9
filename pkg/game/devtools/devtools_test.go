package devtools

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/data"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/gameplay"
	"stillnight/pkg/game/state"
)

func newGame(t *testing.T, floor int) *state.Game {
	t.Helper()
	cat, err := data.Load("", zerolog.Nop())
	if err != nil {
		t.Fatalf("data.Load: %v", err)
	}
	g, err := gameplay.BuildGame(cat, state.Options{Seed: 11, Log: zerolog.Nop()}, floor)
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	return g
}

func TestWriteMapDump_Hub(t *testing.T) {
	g := newGame(t, 0)
	var buf bytes.Buffer
	if err := WriteMapDump(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"floor: 0",
		"start: 5,8",
		"flags: NO_MP_DRAIN",
		"$ = treasure",
		"#....>.....#",
		"--- Events (2) ---",
		"kind: NPC trigger: ACTION commands: MESSAGE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
}

func TestWriteMapDump_HidesUnvisited(t *testing.T) {
	g := newGame(t, 1)
	var buf bytes.Buffer
	if err := WriteMapDump(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	start := strings.Index(out, "--- Map (revealed")
	end := strings.Index(out, "--- Map (fully")
	if start < 0 || end < start {
		t.Fatal("map sections missing")
	}
	if !strings.Contains(out[start:end], "?") {
		t.Error("revealed-only map shows no unrevealed cells on a fresh floor")
	}
	events := strings.Index(out, "--- Events")
	if strings.Contains(out[end:events], "?") {
		t.Error("fully revealed map hides cells")
	}
}

func TestDungeonSchema(t *testing.T) {
	b, err := DungeonSchema()
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if doc["title"] != "Dungeon" {
		t.Errorf("title = %v, want Dungeon", doc["title"])
	}
	for _, want := range []string{"tileCounts", "encounters", "perFloor"} {
		if !bytes.Contains(b, []byte(want)) {
			t.Errorf("schema missing %q", want)
		}
	}
}

func TestWriteScreenshotHTML(t *testing.T) {
	g := newGame(t, 0)
	g.AddMessage("<script>")
	var buf bytes.Buffer
	if err := WriteScreenshotHTML(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(out, `<div class="header">Hub</div>`) {
		t.Error("missing hub header")
	}
	if !strings.Contains(out, "color:#ffffff") {
		t.Error("walls not drawn with the hub wall color")
	}
	if strings.Contains(out, "<script>") || !strings.Contains(out, "&lt;script&gt;") {
		t.Error("messages are not escaped")
	}
}

func TestSpawnShowcase(t *testing.T) {
	g := newGame(t, 0)
	placed, err := SpawnShowcase(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(placed) != len(entities.PlacementOrder) {
		t.Fatalf("placed %d events, want %d", len(placed), len(entities.PlacementOrder))
	}
	for i, ev := range placed {
		if ev.Kind() != entities.PlacementOrder[i] {
			t.Errorf("event %d kind = %s, want %s", i, ev.Kind(), entities.PlacementOrder[i])
		}
		if g.Map.EventAt(ev.X(), ev.Y()) != ev {
			t.Errorf("event %d not indexed at %v", i, ev.Pos())
		}
	}
	// nearest free cell to (5,8) in row-major order
	if placed[0].Pos() != world.Pt(5, 7) {
		t.Errorf("first event at %v, want 5,7", placed[0].Pos())
	}
	if n := len(g.Map.Events()); n != 2+len(placed) {
		t.Errorf("events = %d, want %d", n, 2+len(placed))
	}
}
