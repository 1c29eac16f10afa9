package world

// Fog tracks which cells of a grid have been revealed to the player.
type Fog struct {
	width   int
	height  int
	visited []bool
}

// NewFog creates an all-hidden fog layer for a width x height grid
func NewFog(width, height int) *Fog {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Fog{
		width:   width,
		height:  height,
		visited: make([]bool, width*height),
	}
}

func (f *Fog) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// IsVisited returns false for out-of-bounds cells
func (f *Fog) IsVisited(x, y int) bool {
	if !f.inBounds(x, y) {
		return false
	}
	return f.visited[y*f.width+x]
}

// SetVisited marks a cell revealed. Out-of-bounds writes are ignored.
func (f *Fog) SetVisited(x, y int) {
	if !f.inBounds(x, y) {
		return
	}
	f.visited[y*f.width+x] = true
}

// RevealRadius marks every cell within Euclidean distance radius of (cx, cy),
// clipped to the grid.
func (f *Fog) RevealRadius(cx, cy, radius int) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !f.inBounds(x, y) {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				f.visited[y*f.width+x] = true
			}
		}
	}
}

// RevealAll marks every cell visited
func (f *Fog) RevealAll() {
	for i := range f.visited {
		f.visited[i] = true
	}
}

// VisitedCount returns the number of revealed cells
func (f *Fog) VisitedCount() int {
	n := 0
	for _, v := range f.visited {
		if v {
			n++
		}
	}
	return n
}
