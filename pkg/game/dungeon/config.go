// Package dungeon holds the data-driven dungeon configuration: map size,
// generator choice, per-floor tile counts and encounter pools.
package dungeon

import (
	"errors"
	"fmt"
)

// Visual describes how a floor should look. Colors are "#rrggbb" strings.
type Visual struct {
	FloorColor           string  `yaml:"floorColor,omitempty" json:"floorColor,omitempty"`
	WallColor            string  `yaml:"wallColor,omitempty" json:"wallColor,omitempty"`
	BackgroundColor      string  `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	FogColor             string  `yaml:"fogColor,omitempty" json:"fogColor,omitempty"`
	FogDensity           float64 `yaml:"fogDensity,omitempty" json:"fogDensity,omitempty"`
	FogRevealRadius      int     `yaml:"fogRevealRadius,omitempty" json:"fogRevealRadius,omitempty"`
	FogFadeRadius        int     `yaml:"fogFadeRadius,omitempty" json:"fogFadeRadius,omitempty"`
	FogType              string  `yaml:"fogType,omitempty" json:"fogType,omitempty"`
	PlayerLightIntensity float64 `yaml:"playerLightIntensity,omitempty" json:"playerLightIntensity,omitempty"`
	FloorTexture         string  `yaml:"floorTexture,omitempty" json:"floorTexture,omitempty"`
	WallTexture          string  `yaml:"wallTexture,omitempty" json:"wallTexture,omitempty"`
}

// TileCounts holds one count rule per placed tile kind
type TileCounts struct {
	Enemies  CountRule `yaml:"enemies" json:"enemies"`
	Stairs   CountRule `yaml:"stairs" json:"stairs"`
	Treasure CountRule `yaml:"treasure" json:"treasure"`
	Shops    CountRule `yaml:"shops" json:"shops"`
	Recruits CountRule `yaml:"recruits" json:"recruits"`
	Shrines  CountRule `yaml:"shrines" json:"shrines"`
	Traps    CountRule `yaml:"traps" json:"traps"`
}

// Rules returns the count rules keyed by field name, in placement order
func (t TileCounts) Rules() []NamedRule {
	return []NamedRule{
		{"enemies", t.Enemies},
		{"stairs", t.Stairs},
		{"treasure", t.Treasure},
		{"shops", t.Shops},
		{"recruits", t.Recruits},
		{"shrines", t.Shrines},
		{"traps", t.Traps},
	}
}

// NamedRule pairs a count rule with its config key
type NamedRule struct {
	Name string
	Rule CountRule
}

// Defaults used when a map config leaves a field at zero
const (
	DefaultTileSize     = 48
	DefaultViewDistance = 5
	DefaultWidth        = 30
	DefaultHeight       = 20
)

// MapConfig is the per-dungeon map layout configuration
type MapConfig struct {
	// Generator is "bsp" (default) or "walker"
	Generator    string     `yaml:"generator,omitempty" json:"generator,omitempty" jsonschema:"enum=bsp,enum=walker"`
	TileSize     int        `yaml:"tileSize,omitempty" json:"tileSize,omitempty"`
	ViewDistance int        `yaml:"viewDistance,omitempty" json:"viewDistance,omitempty"`
	Width        int        `yaml:"width" json:"width"`
	Height       int        `yaml:"height" json:"height"`
	MinRoomSize  int        `yaml:"minRoomSize,omitempty" json:"minRoomSize,omitempty"`
	CarveSteps   int        `yaml:"carveSteps,omitempty" json:"carveSteps,omitempty"`
	TileCounts   TileCounts `yaml:"tileCounts" json:"tileCounts"`
}

// Config is one dungeon definition
type Config struct {
	Name       string     `yaml:"-" json:"-"`
	Visual     Visual     `yaml:"visual" json:"visual"`
	Map        MapConfig  `yaml:"map" json:"map"`
	Encounters Encounters `yaml:"encounters" json:"encounters"`
}

// ViewDistance returns the configured reveal radius, or the default
func (c *Config) ViewDistance() int {
	if c.Map.ViewDistance > 0 {
		return c.Map.ViewDistance
	}
	return DefaultViewDistance
}

// Validate reports every configuration error found
func (c *Config) Validate() error {
	var errs []error
	if c.Map.Width < 0 || c.Map.Height < 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d is negative", c.Map.Width, c.Map.Height))
	}
	switch c.Map.Generator {
	case "", "bsp", "walker":
	default:
		errs = append(errs, fmt.Errorf("unknown generator %q", c.Map.Generator))
	}
	for _, nr := range c.Map.TileCounts.Rules() {
		if !nr.Rule.Round.Valid() {
			errs = append(errs, fmt.Errorf("tileCounts.%s: %w %q", nr.Name, ErrUnknownRound, string(nr.Rule.Round)))
		}
	}
	if err := c.Encounters.validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("dungeon %q: %w", c.Name, err)
	}
	return nil
}
