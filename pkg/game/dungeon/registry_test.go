package dungeon

import (
	"errors"
	"testing"
)

const sampleDungeons = `
default:
  visual:
    floorColor: "#333333"
    wallColor: "#1a1a1a"
  map:
    width: 30
    height: 20
    tileCounts:
      enemies: {base: 5, perFloor: 1}
      stairs: 1
      treasure: 2
      shops: {base: 0, perFloor: 0.5, min: 1, round: floor}
      recruits: 0
      shrines: 1
      traps: 0
  encounters:
    count: {min: 1, max: 3}
    pools:
      - floors: [1, 2]
        enemies: [goblin]
      - floors: [3, inf]
        enemies: [lich]
`

func TestRegistry_ParseYAML(t *testing.T) {
	reg := NewRegistry()
	if err := reg.ParseYAML([]byte(sampleDungeons)); err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	cfg, err := reg.Get(DefaultName)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Name != DefaultName {
		t.Errorf("Name = %q, want %q", cfg.Name, DefaultName)
	}
	if cfg.Map.Width != 30 || cfg.Map.Height != 20 {
		t.Errorf("map size = %dx%d, want 30x20", cfg.Map.Width, cfg.Map.Height)
	}
	if n, _ := cfg.Map.TileCounts.Enemies.Resolve(5); n != 10 {
		t.Errorf("enemies at floor 5 = %d, want 10", n)
	}
	if cfg.ViewDistance() != DefaultViewDistance {
		t.Errorf("ViewDistance = %d, want default %d", cfg.ViewDistance(), DefaultViewDistance)
	}
	if _, err := cfg.Encounters.PoolFor(40); err != nil {
		t.Errorf("PoolFor(40): %v", err)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("abyss")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRegistry_ParseYAMLRejectsBadGenerator(t *testing.T) {
	reg := NewRegistry()
	err := reg.ParseYAML([]byte("cave:\n  map: {width: 10, height: 10, generator: maze}\n"))
	if err == nil {
		t.Fatal("unknown generator accepted")
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0 after a rejected dungeon", reg.Len())
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", &Config{})
	reg.Register("a", &Config{})
	names := reg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v, want [a b]", names)
	}
}
