package generator

import (
	"math/rand"

	"github.com/rs/zerolog"

	"stillnight/pkg/engine/world"
)

// Constants for BSP generation
const (
	DefaultBSPWidth       = 30
	DefaultBSPHeight      = 30
	DefaultMinRoomSize    = 4
	minAllowedRoomSize    = 3
	splitThresholdPercent = 250 // a region splits while both sides are >= 2.5 * MinRoomSize
	minRoomDimension      = 2
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct {
	Width       int
	Height      int
	MinRoomSize int

	rng *rand.Rand
	log zerolog.Logger
}

// NewBSPGenerator creates a BSP generator with default dimensions
func NewBSPGenerator(rng *rand.Rand, log zerolog.Logger) *BSPGenerator {
	return &BSPGenerator{
		Width:       DefaultBSPWidth,
		Height:      DefaultBSPHeight,
		MinRoomSize: DefaultMinRoomSize,
		rng:         rng,
		log:         log,
	}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode is a region of the partition tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Generate creates a new layout. Rooms are linked in leaf discovery order,
// so the result is a connected path of rooms, not a shortest-link tree.
func (g *BSPGenerator) Generate(floor int, size Size) *Layout {
	minRoom := g.MinRoomSize
	if minRoom < minAllowedRoomSize {
		minRoom = minAllowedRoomSize
	}

	width, height := size.Width, size.Height
	if width <= 0 {
		width = g.Width
	}
	if height <= 0 {
		height = g.Height
	}

	// Below this the interior cannot hold a single room
	minDim := minRoom * 2
	if width < minDim || height < minDim {
		g.log.Warn().
			Int("floor", floor).
			Int("width", width).
			Int("height", height).
			Int("min", minDim).
			Msg("map too small for BSP, clamping")
		width = max(width, minDim)
		height = max(height, minDim)
	}

	grid := world.NewGrid(width, height)

	// Leave a 1-cell border for perimeter walls
	root := &bspNode{x: 1, y: 1, width: width - 2, height: height - 2}
	g.split(root, minRoom)
	g.createRooms(root)

	rooms := collectRooms(root)

	for _, r := range rooms {
		carveRoom(grid, r)
	}

	for i := 0; i+1 < len(rooms); i++ {
		carveCorridor(grid, rooms[i].Center(), rooms[i+1].Center())
	}

	startRoom := rooms[0]
	endRoom := rooms[len(rooms)-1]
	start := startRoom.Center()
	end := endRoom.Center()

	if grid.At(end.X, end.Y) == world.TileWall {
		if p, ok := firstFloorIn(grid, endRoom); ok {
			g.log.Warn().Int("floor", floor).Stringer("center", end).Stringer("fallback", p).Msg("end room centre is a wall")
			end = p
		}
	}

	return &Layout{
		Grid:  grid,
		Rooms: rooms,
		Start: start,
		End:   end,
	}
}

// split recursively partitions a node while both sides are large enough
func (g *BSPGenerator) split(node *bspNode, minRoom int) {
	threshold := minRoom * splitThresholdPercent
	if node.width*100 < threshold || node.height*100 < threshold {
		return
	}

	if g.rng.Intn(2) == 0 {
		// Split horizontally (top and bottom)
		splitPoint := minRoom + g.rng.Intn(node.height-minRoom*2)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  node.width,
			height: splitPoint,
		}
		node.right = &bspNode{
			x:      node.x,
			y:      node.y + splitPoint,
			width:  node.width,
			height: node.height - splitPoint,
		}
	} else {
		// Split vertically (left and right)
		splitPoint := minRoom + g.rng.Intn(node.width-minRoom*2)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  splitPoint,
			height: node.height,
		}
		node.right = &bspNode{
			x:      node.x + splitPoint,
			y:      node.y,
			width:  node.width - splitPoint,
			height: node.height,
		}
	}

	g.split(node.left, minRoom)
	g.split(node.right, minRoom)
}

// createRooms places one room of random size and position in every leaf
func (g *BSPGenerator) createRooms(node *bspNode) {
	if !node.isLeaf() {
		if node.left != nil {
			g.createRooms(node.left)
		}
		if node.right != nil {
			g.createRooms(node.right)
		}
		return
	}

	roomWidth := minRoomDimension + g.rng.Intn(node.width-minRoomDimension)
	roomHeight := minRoomDimension + g.rng.Intn(node.height-minRoomDimension)

	// The last row and column of a leaf stay wall so neighbouring rooms never merge
	node.room = &Room{
		X: node.x + g.rng.Intn(node.width-roomWidth),
		Y: node.y + g.rng.Intn(node.height-roomHeight),
		W: roomWidth,
		H: roomHeight,
	}
}

// collectRooms collects all rooms from the BSP tree, left subtree first
func collectRooms(node *bspNode) []Room {
	var rooms []Room

	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

// carveRoom marks every cell of the room as floor
func carveRoom(grid *world.Grid, r Room) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			grid.Set(x, y, world.TileFloor)
		}
	}
}

// carveCorridor carves an L-shaped corridor, horizontal leg first
func carveCorridor(grid *world.Grid, from, to world.Point) {
	x, y := from.X, from.Y
	for x != to.X {
		if x < to.X {
			x++
		} else {
			x--
		}
		grid.Set(x, y, world.TileFloor)
	}
	for y != to.Y {
		if y < to.Y {
			y++
		} else {
			y--
		}
		grid.Set(x, y, world.TileFloor)
	}
}

// firstFloorIn scans a room row-major for a floor cell
func firstFloorIn(grid *world.Grid, r Room) (world.Point, bool) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if grid.At(x, y) == world.TileFloor {
				return world.Point{X: x, Y: y}, true
			}
		}
	}
	return world.Point{}, false
}
