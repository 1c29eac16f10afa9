package generator

import (
	"testing"

	"stillnight/pkg/engine/world"
)

// hubTiles builds a walled size x size template with floor inside
func hubTiles(size int) []world.Tile {
	tiles := make([]world.Tile, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				tiles[y*size+x] = world.TileWall
			}
		}
	}
	return tiles
}

func TestStaticGenerate_EndIsStairs(t *testing.T) {
	tiles := hubTiles(19)
	tiles[4*19+9] = world.TileStairs
	layout := NewStaticGenerator(Template{Width: 19, Height: 19, Tiles: tiles}).Generate(0, Size{})
	if layout.End.X != 9 || layout.End.Y != 4 {
		t.Errorf("end = %v, want 9,4", layout.End)
	}
}

func TestStaticGenerate_FirstStairsWins(t *testing.T) {
	tiles := hubTiles(10)
	tiles[2*10+7] = world.TileStairs
	tiles[5*10+2] = world.TileStairs
	layout := NewStaticGenerator(Template{Width: 10, Height: 10, Tiles: tiles}).Generate(0, Size{})
	if layout.End != world.Pt(7, 2) {
		t.Errorf("end = %v, want 7,2", layout.End)
	}
}

func TestStaticGenerate_FallsBackToCentre(t *testing.T) {
	layout := NewStaticGenerator(Template{Width: 12, Height: 8, Tiles: hubTiles(12)}).Generate(0, Size{})
	want := world.Pt(6, 4)
	if layout.End != want {
		t.Errorf("end = %v, want centre %v", layout.End, want)
	}
	if layout.Start != want {
		t.Errorf("start = %v, want centre %v", layout.Start, want)
	}
}

func TestStaticGenerate_UsesProvidedStart(t *testing.T) {
	start := world.Pt(5, 8)
	layout := NewStaticGenerator(Template{Width: 12, Height: 12, Tiles: hubTiles(12), Start: &start}).Generate(0, Size{})
	if layout.Start != start {
		t.Errorf("start = %v, want %v", layout.Start, start)
	}
}

func TestStaticGenerate_DoesNotShareTemplate(t *testing.T) {
	tiles := hubTiles(5)
	gen := NewStaticGenerator(Template{Width: 5, Height: 5, Tiles: tiles})
	first := gen.Generate(0, Size{})
	first.Grid.Set(2, 2, world.TileWall)
	if tiles[2*5+2] != world.TileFloor {
		t.Fatal("mutating the layout changed the template")
	}
	second := gen.Generate(0, Size{})
	if second.Grid.At(2, 2) != world.TileFloor {
		t.Error("second layout saw the first layout's mutation")
	}
}
