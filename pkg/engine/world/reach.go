package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable returns the keys of every passable cell connected to start
// through N/E/S/W steps. An impassable start yields an empty set.
func Reachable(g *Grid, start Point) mapset.Set[Key] {
	visited := mapset.New[Key]()
	if g == nil || !g.At(start.X, start.Y).Passable() {
		return visited
	}

	q := queue.New[Point]()
	q.Enqueue(start)
	visited.Put(start.Key())

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range AllDirections() {
			next := current.Add(dir)
			if visited.Has(next.Key()) || !g.At(next.X, next.Y).Passable() {
				continue
			}
			visited.Put(next.Key())
			q.Enqueue(next)
		}
	}

	return visited
}

// Connected reports whether b can be reached from a over passable tiles
func Connected(g *Grid, a, b Point) bool {
	return Reachable(g, a).Has(b.Key())
}
