// Package world provides generic 2D tile-grid primitives.
// These are engine-level constructs usable by any tile-based dungeon floor.
package world

// Tile is the integer terrain code of a single grid cell.
type Tile int

// Known tile codes. Other codes are allowed and treated as impassable.
const (
	TileFloor  Tile = 0
	TileWall   Tile = 1
	TileStairs Tile = 3
)

// Passable returns true if a walker may stand on the tile
func (t Tile) Passable() bool {
	return t == TileFloor || t == TileStairs
}

// Grid is a width x height array of tile codes stored row-major.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid of the given size filled with walls
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	g.Fill(TileWall)
	return g
}

// GridFromTiles builds a grid from a row-major tile slice. The slice is copied;
// missing trailing cells become walls and surplus entries are ignored.
func GridFromTiles(width, height int, tiles []Tile) *Grid {
	g := NewGrid(width, height)
	copy(g.tiles, tiles)
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if x/y is inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is inside the 1-cell wall margin.
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// At returns the tile at x/y, or TileWall when out of bounds
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.width+x]
}

// Set writes a tile. Returns false (and does nothing) when out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.tiles[y*g.width+x] = t
	return true
}

// Fill overwrites every cell with t
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Tiles returns a copy of the row-major tile slice
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Rows returns the grid as freshly allocated row slices, indexed [y][x].
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.height)
	for y := range rows {
		rows[y] = make([]Tile, g.width)
		copy(rows[y], g.tiles[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Center returns the middle cell (integer division)
func (g *Grid) Center() Point {
	return Point{X: g.width / 2, Y: g.height / 2}
}

// Find returns the first cell holding t, scanning row-major.
func (g *Grid) Find(t Tile) (Point, bool) {
	for i, tile := range g.tiles {
		if tile == t {
			return Point{X: i % g.width, Y: i / g.width}, true
		}
	}
	return Point{}, false
}

// Count returns how many cells hold t
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// ForEachCell iterates over all cells row-major
func (g *Grid) ForEachCell(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y*g.width+x])
		}
	}
}
