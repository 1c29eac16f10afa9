// Package levelgen populates generated floors with events.
package levelgen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"stillnight/pkg/engine/world"
)

// EmptyCells lists floor cells in row-major order, skipping the avoided keys
func EmptyCells(grid *world.Grid, avoid mapset.Set[world.Key]) []world.Point {
	var cells []world.Point
	grid.ForEachCell(func(x, y int, t world.Tile) {
		if t != world.TileFloor {
			return
		}
		if avoid.Has(world.KeyOf(x, y)) {
			return
		}
		cells = append(cells, world.Pt(x, y))
	})
	return cells
}

// CellPool hands out cells uniformly at random without replacement
type CellPool struct {
	cells []world.Point
	rng   *rand.Rand
}

// NewCellPool takes ownership of cells
func NewCellPool(cells []world.Point, rng *rand.Rand) *CellPool {
	return &CellPool{cells: cells, rng: rng}
}

// Len returns how many cells remain
func (p *CellPool) Len() int {
	return len(p.cells)
}

// Take removes and returns a random cell. ok is false once the pool is empty.
func (p *CellPool) Take() (cell world.Point, ok bool) {
	if len(p.cells) == 0 {
		return world.Point{}, false
	}
	i := p.rng.Intn(len(p.cells))
	cell = p.cells[i]
	p.cells = append(p.cells[:i], p.cells[i+1:]...)
	return cell, true
}
