package generator

import (
	"math/rand"

	"stillnight/pkg/engine/world"
)

// Defaults for the random-walk cavern generator
const (
	DefaultWalkerWidth  = 30
	DefaultWalkerHeight = 20
	DefaultCarveSteps   = 400
)

// WalkerGenerator carves a cavern by walking randomly from the grid centre.
// The walk never enters the perimeter, so the result is always one connected
// region bounded by walls.
type WalkerGenerator struct {
	Width  int
	Height int
	Steps  int

	rng *rand.Rand
}

// NewWalkerGenerator creates a walker with default dimensions
func NewWalkerGenerator(rng *rand.Rand) *WalkerGenerator {
	return &WalkerGenerator{
		Width:  DefaultWalkerWidth,
		Height: DefaultWalkerHeight,
		Steps:  DefaultCarveSteps,
		rng:    rng,
	}
}

// Name returns the name of this generator
func (g *WalkerGenerator) Name() string {
	return "Random Walk"
}

// Generate walks Steps times; start is the centre, end is where the walk stopped
func (g *WalkerGenerator) Generate(floor int, size Size) *Layout {
	width, height := size.Width, size.Height
	if width <= 0 {
		width = g.Width
	}
	if height <= 0 {
		height = g.Height
	}
	// need at least one interior cell
	width = max(width, 3)
	height = max(height, 3)

	grid := world.NewGrid(width, height)
	start := grid.Center()
	pos := start

	for i := 0; i < g.Steps; i++ {
		grid.Set(pos.X, pos.Y, world.TileFloor)
		next := pos.Add(world.Direction(g.rng.Intn(4)))
		if grid.IsPlayablePosition(next.X, next.Y) {
			pos = next
		}
	}
	grid.Set(pos.X, pos.Y, world.TileFloor)

	return &Layout{
		Grid:  grid,
		Start: start,
		End:   pos,
	}
}
