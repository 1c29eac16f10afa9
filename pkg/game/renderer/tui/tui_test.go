package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/rs/zerolog"

	"stillnight/pkg/game/data"
	"stillnight/pkg/game/gameplay"
	"stillnight/pkg/game/state"
)

func newHubGame(t *testing.T) *state.Game {
	t.Helper()
	cat, err := data.Load("", zerolog.Nop())
	if err != nil {
		t.Fatalf("data.Load: %v", err)
	}
	g, err := gameplay.BuildGame(cat, state.Options{Seed: 3, Log: zerolog.Nop()}, 0)
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	return g
}

func TestPrintMap_Hub(t *testing.T) {
	g := newHubGame(t)
	var buf bytes.Buffer
	if err := New().PrintMap(&buf, g); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(color.ClearCode(buf.String()), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	want := map[int]string{
		0: "############",
		4: "#..#+..R#..#",
		5: "#....>.....#",
		8: "#..#.@..#..#",
	}
	for row, w := range want {
		if lines[row] != w {
			t.Errorf("row %d = %q, want %q", row, lines[row], w)
		}
	}
}

func TestRenderFrame_Hub(t *testing.T) {
	g := newHubGame(t)
	r := New()
	r.Cols, r.Rows = 21, 11

	var buf bytes.Buffer
	if err := r.RenderFrame(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := color.ClearCode(buf.String())
	for _, want := range []string{"Hub", "@", "Gold: 0", "Summoner 26/26", "Welcome, summoner.", "North: floor", "(empty)"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
}

func TestGetViewportSize_OddAndClamped(t *testing.T) {
	r := New()
	r.Cols, r.Rows = 4, 12
	rows, cols := r.GetViewportSize()
	if cols != ViewportMinCols {
		t.Errorf("cols = %d, want %d", cols, ViewportMinCols)
	}
	if rows != 11 {
		t.Errorf("rows = %d, want 11", rows)
	}
}

func TestViewportOrigin(t *testing.T) {
	cases := []struct{ player, viewport, size, want int }{
		{5, 11, 12, 0},
		{15, 11, 30, 10},
		{28, 11, 30, 19},
		{0, 11, 30, 0},
	}
	for _, c := range cases {
		if got := viewportOrigin(c.player, c.viewport, c.size); got != c.want {
			t.Errorf("viewportOrigin(%d,%d,%d) = %d, want %d", c.player, c.viewport, c.size, got, c.want)
		}
	}
}
