package generator

import (
	"stillnight/pkg/engine/world"
)

// Template is a hand-authored floor layout
type Template struct {
	Width  int
	Height int
	Tiles  []world.Tile
	// Start is optional; the grid centre is used when nil
	Start *world.Point
}

// StaticGenerator returns a fixed layout, e.g. the hub.
type StaticGenerator struct {
	template Template
}

// NewStaticGenerator creates a generator for the given template
func NewStaticGenerator(t Template) *StaticGenerator {
	return &StaticGenerator{template: t}
}

// Name returns the name of this generator
func (g *StaticGenerator) Name() string {
	return "Static"
}

// Generate copies the template. The floor and size arguments are ignored.
// The end position is the first stairs tile in row-major order, or the centre.
func (g *StaticGenerator) Generate(floor int, size Size) *Layout {
	t := g.template
	grid := world.GridFromTiles(t.Width, t.Height, t.Tiles)

	end, ok := grid.Find(world.TileStairs)
	if !ok {
		end = grid.Center()
	}

	start := grid.Center()
	if t.Start != nil {
		start = *t.Start
	}

	return &Layout{
		Grid:  grid,
		Start: start,
		End:   end,
	}
}
