// Package world holds the floor runtime: the current grid, fog, player
// position, event index and per-map flags.
package world

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/levelgen"
	"stillnight/pkg/game/maps"
)

// HubFloor is the floor number of the static hub
const HubFloor = 0

var (
	// ErrGenerating is returned when a floor is requested while one is being built
	ErrGenerating = errors.New("floor generation already in progress")
	// ErrNoDungeon is returned when the selected dungeon is not registered
	ErrNoDungeon = errors.New("dungeon config missing")
)

// Options configures a Map
type Options struct {
	Dungeons    *dungeon.Registry
	Maps        *maps.Registry
	DungeonName string
	HubName     string
	Events      levelgen.EventData
	Recruits    levelgen.RecruitSource
	Rand        *rand.Rand
	Log         *zerolog.Logger
}

// Map is the runtime model of the current floor. Everything is replaced
// wholesale on each Setup.
type Map struct {
	opts Options
	rng  *rand.Rand
	log  zerolog.Logger

	floor        int
	grid         *world.Grid
	fog          *world.Fog
	playerPos    world.Point
	start, end   world.Point
	events       map[world.Key]*entities.Event
	flags        mapset.Set[string]
	visual       dungeon.Visual
	viewDistance int
	factory      *levelgen.EventFactory

	generating bool
	ready      bool
}

// New creates an empty map runtime. Call Setup before querying it.
func New(opts Options) *Map {
	if opts.DungeonName == "" {
		opts.DungeonName = dungeon.DefaultName
	}
	if opts.HubName == "" {
		opts.HubName = maps.HubName
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	log := zerolog.Nop()
	if opts.Log != nil {
		log = *opts.Log
	}
	return &Map{
		opts:   opts,
		rng:    rng,
		log:    log.With().Str("component", "map").Logger(),
		events: make(map[world.Key]*entities.Event),
		flags:  mapset.New[string](),
	}
}

// Setup clears the event index and builds the given floor
func (m *Map) Setup(floor int) error {
	if m.generating {
		return ErrGenerating
	}
	m.floor = floor
	m.events = make(map[world.Key]*entities.Event)
	m.ready = false
	return m.GenerateFloor()
}

// floorState is a fully built floor waiting to be committed
type floorState struct {
	grid         *world.Grid
	fog          *world.Fog
	start, end   world.Point
	events       map[world.Key]*entities.Event
	flags        mapset.Set[string]
	visual       dungeon.Visual
	viewDistance int
	factory      *levelgen.EventFactory
}

// GenerateFloor rebuilds the current floor: the hub on floor 0, a
// procedural layout otherwise. Nothing is visible until the whole floor
// is built.
func (m *Map) GenerateFloor() error {
	if m.generating {
		return ErrGenerating
	}
	m.generating = true
	defer func() { m.generating = false }()

	m.flags = mapset.New[string]()

	var (
		next *floorState
		err  error
	)
	if m.floor == HubFloor {
		next, err = m.generateHub()
	} else {
		next, err = m.generateDungeonFloor()
	}
	if err != nil {
		return err
	}

	m.commit(next)
	m.log.Debug().
		Int("floor", m.floor).
		Int("width", m.grid.Width()).
		Int("height", m.grid.Height()).
		Int("events", len(m.events)).
		Msg("floor ready")
	return nil
}

func (m *Map) commit(s *floorState) {
	m.grid = s.grid
	m.fog = s.fog
	m.start, m.end = s.start, s.end
	m.playerPos = s.start
	m.events = s.events
	m.flags = s.flags
	m.visual = s.visual
	m.viewDistance = s.viewDistance
	m.factory = s.factory
	m.ready = true
}

func (m *Map) dungeonConfig() (*dungeon.Config, error) {
	if m.opts.Dungeons == nil {
		return nil, fmt.Errorf("%w: no dungeon registry", ErrNoDungeon)
	}
	cfg, err := m.opts.Dungeons.Get(m.opts.DungeonName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDungeon, err)
	}
	return cfg, nil
}

func (m *Map) generateDungeonFloor() (*floorState, error) {
	cfg, err := m.dungeonConfig()
	if err != nil {
		m.log.Error().Err(err).Str("dungeon", m.opts.DungeonName).Int("floor", m.floor).Msg("cannot generate floor")
		return nil, err
	}

	gen, err := generatorFor(cfg, m.rng, m.log)
	if err != nil {
		return nil, fmt.Errorf("dungeon %q: %w", cfg.Name, err)
	}
	layout := gen.Generate(m.floor, sizeOf(cfg))
	grid := layout.Grid

	if grid.At(layout.End.X, layout.End.Y) == world.TileWall {
		m.log.Warn().Int("floor", m.floor).Stringer("end", layout.End).Str("generator", gen.Name()).Msg("forcing stairs over a wall")
	}
	grid.Set(layout.End.X, layout.End.Y, world.TileStairs)

	factory := levelgen.NewEventFactory(cfg.Encounters, m.opts.Events, m.opts.Recruits, m.rng)
	res, err := levelgen.NewPopulator(cfg.Map.TileCounts, factory, m.rng, m.log).
		Populate(grid, layout.Start, layout.End, m.floor)
	if err != nil {
		m.log.Error().Err(err).Int("floor", m.floor).Msg("cannot populate floor")
		return nil, err
	}

	events := make(map[world.Key]*entities.Event, len(res.Events))
	for _, ev := range res.Events {
		events[ev.Pos().Key()] = ev
	}

	return &floorState{
		grid:         grid,
		fog:          world.NewFog(grid.Width(), grid.Height()),
		start:        layout.Start,
		end:          layout.End,
		events:       events,
		flags:        mapset.New[string](),
		visual:       cfg.Visual,
		viewDistance: cfg.ViewDistance(),
		factory:      factory,
	}, nil
}

// TileAt returns the tile at x/y, or a wall outside the map
func (m *Map) TileAt(x, y int) world.Tile {
	if m.grid == nil {
		return world.TileWall
	}
	return m.grid.At(x, y)
}

// SetTile writes a tile; writes outside the map are ignored
func (m *Map) SetTile(x, y int, t world.Tile) {
	if m.grid == nil {
		return
	}
	m.grid.Set(x, y, t)
}

// IsVisited returns false outside the map
func (m *Map) IsVisited(x, y int) bool {
	if m.fog == nil {
		return false
	}
	return m.fog.IsVisited(x, y)
}

// SetVisited reveals a cell; writes outside the map are ignored
func (m *Map) SetVisited(x, y int) {
	if m.fog == nil {
		return
	}
	m.fog.SetVisited(x, y)
}

// UpdateVisibility reveals every cell within Euclidean radius of cx/cy
func (m *Map) UpdateVisibility(cx, cy, radius int) {
	if m.fog == nil {
		return
	}
	m.fog.RevealRadius(cx, cy, radius)
}

// HasFlag reports whether the current map carries a flag
func (m *Map) HasFlag(name string) bool {
	return m.flags.Has(name)
}

// Flags returns the current map flags, sorted
func (m *Map) Flags() []string {
	var out []string
	m.flags.Each(func(f string) {
		out = append(out, f)
	})
	sort.Strings(out)
	return out
}

// Ready reports whether a floor has been fully built
func (m *Map) Ready() bool { return m.ready }

// Floor returns the current floor number
func (m *Map) Floor() int { return m.floor }

// Width returns the grid width, 0 before the first Setup
func (m *Map) Width() int {
	if m.grid == nil {
		return 0
	}
	return m.grid.Width()
}

// Height returns the grid height, 0 before the first Setup
func (m *Map) Height() int {
	if m.grid == nil {
		return 0
	}
	return m.grid.Height()
}

// PlayerPos returns the player's position
func (m *Map) PlayerPos() world.Point { return m.playerPos }

// SetPlayerPos moves the player without any checks
func (m *Map) SetPlayerPos(p world.Point) { m.playerPos = p }

// Start returns the floor's entry position
func (m *Map) Start() world.Point { return m.start }

// End returns the floor's stairs position
func (m *Map) End() world.Point { return m.end }

// Visuals returns the floor's visual descriptor
func (m *Map) Visuals() dungeon.Visual { return m.visual }

// ViewDistance returns the fog reveal radius for this floor
func (m *Map) ViewDistance() int {
	if m.viewDistance > 0 {
		return m.viewDistance
	}
	return dungeon.DefaultViewDistance
}

// Rows returns a copy of the grid as [y][x] rows
func (m *Map) Rows() [][]world.Tile {
	if m.grid == nil {
		return nil
	}
	return m.grid.Rows()
}
