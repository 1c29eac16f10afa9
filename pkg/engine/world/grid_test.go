package world

import "testing"

func TestNewGrid_FilledWithWalls(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	if n := g.Count(TileWall); n != 12 {
		t.Errorf("wall count = %d, want 12", n)
	}
}

func TestGrid_OutOfBoundsReadsWall(t *testing.T) {
	g := NewGrid(3, 3)
	g.Fill(TileFloor)
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		if got := g.At(p.X, p.Y); got != TileWall {
			t.Errorf("At(%v) = %d, want %d", p, got, TileWall)
		}
	}
}

func TestGrid_OutOfBoundsWriteIsNoop(t *testing.T) {
	g := NewGrid(3, 3)
	before := g.Tiles()
	if g.Set(-1, 1, TileFloor) {
		t.Error("Set(-1,1) = true, want false")
	}
	if g.Set(3, 3, TileFloor) {
		t.Error("Set(3,3) = true, want false")
	}
	after := g.Tiles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("grid changed at index %d after out-of-bounds write", i)
		}
	}
}

func TestGridFromTiles_CopiesSource(t *testing.T) {
	src := []Tile{0, 1, 3, 0}
	g := GridFromTiles(2, 2, src)
	src[0] = TileWall
	if g.At(0, 0) != TileFloor {
		t.Error("grid aliases the source slice")
	}
	if g.At(0, 1) != TileStairs {
		t.Errorf("At(0,1) = %d, want stairs", g.At(0, 1))
	}
}

func TestGridFromTiles_ShortSourcePadsWithWalls(t *testing.T) {
	g := GridFromTiles(2, 2, []Tile{0})
	if g.At(1, 1) != TileWall {
		t.Errorf("At(1,1) = %d, want wall", g.At(1, 1))
	}
}

func TestGrid_FindIsRowMajor(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(4, 1, TileStairs)
	g.Set(0, 2, TileStairs)
	p, ok := g.Find(TileStairs)
	if !ok {
		t.Fatal("Find returned false")
	}
	if p != Pt(4, 1) {
		t.Errorf("Find = %v, want 4,1", p)
	}
}

func TestGrid_RowsAreIndependent(t *testing.T) {
	g := NewGrid(3, 2)
	rows := g.Rows()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("rows shape = %dx%d, want 2x3", len(rows), len(rows[0]))
	}
	rows[0][0] = TileFloor
	if g.At(0, 0) != TileWall {
		t.Error("mutating Rows() changed the grid")
	}
}

func TestKey_RoundTripsNegativeCoordinates(t *testing.T) {
	for _, p := range []Point{{0, 0}, {5, 7}, {-3, 2}, {4, -9}, {-1, -1}} {
		if got := p.Key().Point(); got != p {
			t.Errorf("Key(%v).Point() = %v", p, got)
		}
	}
	if KeyOf(1, 2) == KeyOf(2, 1) {
		t.Error("KeyOf(1,2) == KeyOf(2,1)")
	}
}

func TestPoint_String(t *testing.T) {
	if s := Pt(3, 12).String(); s != "3,12" {
		t.Errorf("String() = %q, want \"3,12\"", s)
	}
}
