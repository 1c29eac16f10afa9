// Package generator holds the map generation strategies used to lay out floors.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"stillnight/pkg/engine/world"
)

// MapGenerator is the strategy contract for producing a floor layout.
// Implementations must return a fully carved, connected grid whose start and
// end positions reference walkable tiles.
type MapGenerator interface {
	Generate(floor int, size Size) *Layout
	Name() string
}

// Size requests grid dimensions. Zero fields fall back to the generator's defaults.
type Size struct {
	Width  int
	Height int
}

// Room is an axis-aligned rectangle produced during generation
type Room struct {
	X, Y, W, H int
}

// Center returns the room centre (integer division)
func (r Room) Center() world.Point {
	return world.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the room
func (r Room) Contains(p world.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Layout is the result of a generation pass
type Layout struct {
	Grid  *world.Grid
	Rooms []Room
	Start world.Point
	End   world.Point
}

// Width returns the layout width
func (l *Layout) Width() int {
	return l.Grid.Width()
}

// Height returns the layout height
func (l *Layout) Height() int {
	return l.Grid.Height()
}

// Generator kinds accepted by New
const (
	KindBSP    = "bsp"
	KindWalker = "walker"
)

// Params configures a procedural generator built by New
type Params struct {
	Width       int
	Height      int
	MinRoomSize int
	CarveSteps  int
}

// New builds a procedural generator by kind. An empty kind means BSP.
func New(kind string, p Params, rng *rand.Rand, log zerolog.Logger) (MapGenerator, error) {
	switch kind {
	case "", KindBSP:
		g := NewBSPGenerator(rng, log)
		if p.Width > 0 {
			g.Width = p.Width
		}
		if p.Height > 0 {
			g.Height = p.Height
		}
		if p.MinRoomSize > 0 {
			g.MinRoomSize = p.MinRoomSize
		}
		return g, nil
	case KindWalker:
		g := NewWalkerGenerator(rng)
		if p.Width > 0 {
			g.Width = p.Width
		}
		if p.Height > 0 {
			g.Height = p.Height
		}
		if p.CarveSteps > 0 {
			g.Steps = p.CarveSteps
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown generator kind %q", kind)
	}
}
