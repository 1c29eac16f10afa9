// Package maps holds hand-authored map records such as the hub.
package maps

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"stillnight/pkg/engine/world"
	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/generator"
)

// HubName is the static map used for floor 0
const HubName = "hub"

// Known map flags
const (
	FlagNoMPDrain = "NO_MP_DRAIN"
)

// ErrNotFound is returned for unknown map names
var ErrNotFound = errors.New("map not found")

// StaticEvent is an event placed verbatim when the map loads
type StaticEvent struct {
	X       int               `yaml:"x"`
	Y       int               `yaml:"y"`
	Type    string            `yaml:"type"`
	Trigger string            `yaml:"trigger,omitempty"`
	Text    string            `yaml:"text,omitempty"`
	Visual  map[string]string `yaml:"visual,omitempty"`
}

// Def is a static map record
type Def struct {
	Name   string         `yaml:"-"`
	Flags  []string       `yaml:"flags,omitempty"`
	Visual dungeon.Visual `yaml:"visual"`
	Width  int            `yaml:"width"`
	Height int            `yaml:"height"`
	// Grid is row-major: 0 floor, 1 wall, 3 stairs
	Grid   []int         `yaml:"grid"`
	StartX *int          `yaml:"startX,omitempty"`
	StartY *int          `yaml:"startY,omitempty"`
	Events []StaticEvent `yaml:"events,omitempty"`
}

// Validate checks the grid shape and that events sit inside the map
func (d *Def) Validate() error {
	var errs []error
	if d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", d.Width, d.Height))
	} else if len(d.Grid) != d.Width*d.Height {
		errs = append(errs, fmt.Errorf("grid has %d cells, want %d", len(d.Grid), d.Width*d.Height))
	}
	if (d.StartX == nil) != (d.StartY == nil) {
		errs = append(errs, errors.New("startX and startY must be set together"))
	}
	for i, ev := range d.Events {
		if ev.X < 0 || ev.Y < 0 || ev.X >= d.Width || ev.Y >= d.Height {
			errs = append(errs, fmt.Errorf("event %d at %d,%d is outside the map", i, ev.X, ev.Y))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("map %q: %w", d.Name, err)
	}
	return nil
}

// Template converts the record into a static generator template
func (d *Def) Template() generator.Template {
	tiles := make([]world.Tile, len(d.Grid))
	for i, v := range d.Grid {
		tiles[i] = world.Tile(v)
	}
	t := generator.Template{Width: d.Width, Height: d.Height, Tiles: tiles}
	if d.StartX != nil && d.StartY != nil {
		start := world.Pt(*d.StartX, *d.StartY)
		t.Start = &start
	}
	return t
}

// Registry maps names to static map records
type Registry struct {
	maps map[string]*Def
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Def)}
}

// Register adds or replaces a map
func (r *Registry) Register(name string, d *Def) {
	d.Name = name
	r.maps[name] = d
}

// Get returns the named map
func (r *Registry) Get(name string) (*Def, error) {
	d, ok := r.maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return d, nil
}

// Names returns the registered names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseYAML decodes a name -> map mapping into r, validating each entry
func (r *Registry) ParseYAML(data []byte) error {
	var doc map[string]*Def
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode maps: %w", err)
	}
	var errs []error
	for name, d := range doc {
		if d == nil {
			errs = append(errs, fmt.Errorf("map %q is empty", name))
			continue
		}
		d.Name = name
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		r.Register(name, d)
	}
	return errors.Join(errs...)
}
