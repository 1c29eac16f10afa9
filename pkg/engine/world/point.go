package world

import "strconv"

// Point is an x/y grid coordinate
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by d
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistSq returns the squared Euclidean distance between p and q
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// String renders the point as "x,y"
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Key returns the packed map key for p
func (p Point) Key() Key {
	return KeyOf(p.X, p.Y)
}

// Key is a packed composite of an x/y pair, usable as a map key.
// The high 32 bits hold x and the low 32 bits hold y.
type Key uint64

// KeyOf packs x and y into a Key
func KeyOf(x, y int) Key {
	return Key(uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y))))
}

// Point unpacks the key
func (k Key) Point() Point {
	return Point{
		X: int(int32(uint32(k >> 32))),
		Y: int(int32(uint32(k))),
	}
}

// String renders the key as "x,y"
func (k Key) String() string {
	return k.Point().String()
}
