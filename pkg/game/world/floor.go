package world

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/entities"
	"stillnight/pkg/game/generator"
	"stillnight/pkg/game/levelgen"
)

// generatorFor builds the procedural generator a dungeon asks for
func generatorFor(cfg *dungeon.Config, rng *rand.Rand, log zerolog.Logger) (generator.MapGenerator, error) {
	return generator.New(cfg.Map.Generator, generator.Params{
		Width:       cfg.Map.Width,
		Height:      cfg.Map.Height,
		MinRoomSize: cfg.Map.MinRoomSize,
		CarveSteps:  cfg.Map.CarveSteps,
	}, rng, log)
}

func sizeOf(cfg *dungeon.Config) generator.Size {
	w, h := cfg.Map.Width, cfg.Map.Height
	if w <= 0 {
		w = dungeon.DefaultWidth
	}
	if h <= 0 {
		h = dungeon.DefaultHeight
	}
	return generator.Size{Width: w, Height: h}
}

// generateHub loads the static hub: flags and visuals from the map record,
// the whole area revealed, and the record's events placed verbatim.
func (m *Map) generateHub() (*floorState, error) {
	if m.opts.Maps == nil {
		m.log.Error().Err(ErrNoHub).Msg("no maps registered")
		return nil, ErrNoHub
	}
	def, err := m.opts.Maps.Get(m.opts.HubName)
	if err != nil {
		m.log.Error().Err(err).Str("map", m.opts.HubName).Msg("cannot load hub")
		return nil, err
	}

	layout := generator.NewStaticGenerator(def.Template()).Generate(HubFloor, generator.Size{})
	grid := layout.Grid

	fog := world.NewFog(grid.Width(), grid.Height())
	fog.RevealAll()

	flags := mapset.New[string]()
	for _, f := range def.Flags {
		flags.Put(f)
	}

	// Hub events that are not NPCs still need encounter data when the
	// configured dungeon exists.
	var enc dungeon.Encounters
	if cfg, err := m.dungeonConfig(); err == nil {
		enc = cfg.Encounters
	}
	factory := levelgen.NewEventFactory(enc, m.opts.Events, m.opts.Recruits, m.rng)

	events := make(map[world.Key]*entities.Event, len(def.Events))
	for _, se := range def.Events {
		ev, err := factory.FromStatic(se, eventFloor(HubFloor))
		if err != nil {
			return nil, err
		}
		events[ev.Pos().Key()] = ev
	}

	viewDistance := def.Visual.FogRevealRadius
	if viewDistance <= 0 {
		viewDistance = dungeon.DefaultViewDistance
	}

	return &floorState{
		grid:         grid,
		fog:          fog,
		start:        layout.Start,
		end:          layout.End,
		events:       events,
		flags:        flags,
		visual:       def.Visual,
		viewDistance: viewDistance,
		factory:      factory,
	}, nil
}
