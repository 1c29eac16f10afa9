package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/maps"
)

func TestLoad_Embedded(t *testing.T) {
	cat, err := Load("", zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg, err := cat.Dungeons.Get(dungeon.DefaultName)
	if err != nil {
		t.Fatalf("default dungeon: %v", err)
	}
	if cfg.Map.Width != 30 || cfg.Map.Height != 20 {
		t.Errorf("default map = %dx%d, want 30x20", cfg.Map.Width, cfg.Map.Height)
	}
	if n, _ := cfg.Map.TileCounts.Shops.Resolve(1); n != 1 {
		t.Errorf("shops at floor 1 = %d, want 1", n)
	}
	if p, err := cfg.Encounters.PoolFor(50); err != nil || p.Enemies[0] != "titania" {
		t.Errorf("PoolFor(50) = %v, %v; want the open-ended pool", p.Enemies, err)
	}

	hub, err := cat.Maps.Get(maps.HubName)
	if err != nil {
		t.Fatalf("hub: %v", err)
	}
	if len(hub.Grid) != 144 || len(hub.Events) != 2 {
		t.Errorf("hub grid %d cells, %d events; want 144 and 2", len(hub.Grid), len(hub.Events))
	}

	if cat.Events.Treasure.Gold.Random != 50 || cat.Events.Treasure.Gold.PerFloor != 20 {
		t.Errorf("treasure gold = %+v", cat.Events.Treasure.Gold)
	}
	if len(cat.Events.Shop.Stock.Pools.Items) != 3 {
		t.Errorf("shop item pool = %v", cat.Events.Shop.Stock.Pools.Items)
	}
	if _, ok := cat.Creatures.Get("pixie"); !ok {
		t.Error("pixie missing from creatures")
	}
}

func TestLoad_EveryPoolEnemyIsACreature(t *testing.T) {
	cat, err := Load("", zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range cat.Dungeons.Names() {
		cfg, _ := cat.Dungeons.Get(name)
		for _, p := range cfg.Encounters.Pools {
			for _, e := range p.Enemies {
				if _, ok := cat.Creatures.Get(e); !ok {
					t.Errorf("dungeon %q pool %s: unknown creature %q", name, p.Floors, e)
				}
			}
		}
	}
}

func TestLoad_DirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	src := "tiny:\n  map:\n    width: 12\n    height: 12\n    tileCounts: {enemies: 1}\n"
	if err := os.WriteFile(filepath.Join(dir, DungeonsFile), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cat.Dungeons.Get("tiny"); err != nil {
		t.Errorf("override dungeon missing: %v", err)
	}
	if _, err := cat.Dungeons.Get(dungeon.DefaultName); err == nil {
		t.Error("embedded dungeons still loaded despite override")
	}
	// maps.yaml was not overridden
	if _, err := cat.Maps.Get(maps.HubName); err != nil {
		t.Errorf("embedded hub missing: %v", err)
	}
}

func TestLoad_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	src := "bad:\n  map:\n    tileCounts: {traps: {base: 1, round: sideways}}\n"
	if err := os.WriteFile(filepath.Join(dir, DungeonsFile), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir, zerolog.Nop()); err == nil {
		t.Error("unknown rounding mode accepted")
	}
}
