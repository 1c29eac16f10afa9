package world

import "testing"

func TestFog_OutOfBounds(t *testing.T) {
	f := NewFog(3, 3)
	f.SetVisited(-1, 0)
	f.SetVisited(3, 1)
	if f.VisitedCount() != 0 {
		t.Errorf("VisitedCount = %d after out-of-bounds writes, want 0", f.VisitedCount())
	}
	f.RevealAll()
	if f.IsVisited(-1, 0) || f.IsVisited(0, 3) {
		t.Error("IsVisited out of bounds = true, want false")
	}
}

func TestFog_RevealRadiusIsEuclidean(t *testing.T) {
	f := NewFog(11, 11)
	f.RevealRadius(5, 5, 2)

	cases := []struct {
		x, y int
		want bool
	}{
		{5, 5, true},
		{7, 5, true},  // distance 2
		{6, 6, true},  // sqrt(2)
		{7, 6, false}, // sqrt(5)
		{7, 7, false}, // sqrt(8)
		{5, 3, true},
		{8, 5, false},
	}
	for _, c := range cases {
		if got := f.IsVisited(c.x, c.y); got != c.want {
			t.Errorf("IsVisited(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
	// radius 2 disc has 13 cells
	if n := f.VisitedCount(); n != 13 {
		t.Errorf("VisitedCount = %d, want 13", n)
	}
}

func TestFog_RevealRadiusClipsAtEdges(t *testing.T) {
	f := NewFog(3, 3)
	f.RevealRadius(0, 0, 1)
	if n := f.VisitedCount(); n != 3 {
		t.Errorf("VisitedCount = %d, want 3 (corner disc clipped)", n)
	}
}

func TestReachable_StopsAtWalls(t *testing.T) {
	g := NewGrid(7, 3)
	// two floor pockets separated by a wall at x=3
	for x := 1; x <= 5; x++ {
		if x != 3 {
			g.Set(x, 1, TileFloor)
		}
	}
	if Connected(g, Pt(1, 1), Pt(5, 1)) {
		t.Error("Connected across a wall = true, want false")
	}
	g.Set(3, 1, TileStairs)
	if !Connected(g, Pt(1, 1), Pt(5, 1)) {
		t.Error("Connected through stairs = false, want true")
	}
	if n := Reachable(g, Pt(1, 1)).Size(); n != 5 {
		t.Errorf("Reachable size = %d, want 5", n)
	}
}

func TestReachable_WallStartIsEmpty(t *testing.T) {
	g := NewGrid(3, 3)
	if n := Reachable(g, Pt(1, 1)).Size(); n != 0 {
		t.Errorf("Reachable from wall = %d cells, want 0", n)
	}
}
