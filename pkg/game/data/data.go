// Package data loads the game's YAML data files into registries.
package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/levelgen"
	"stillnight/pkg/game/maps"
	"stillnight/pkg/game/recruit"
)

//go:embed assets/*.yaml
var assets embed.FS

// Data file names, relative to the data directory
const (
	DungeonsFile  = "dungeons.yaml"
	MapsFile      = "maps.yaml"
	EventsFile    = "events.yaml"
	CreaturesFile = "creatures.yaml"
)

// Catalog is every registry the game needs
type Catalog struct {
	Dungeons  *dungeon.Registry
	Maps      *maps.Registry
	Events    levelgen.EventData
	Creatures *recruit.Table
}

// Embedded returns the data files compiled into the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads the data files from dir, or the embedded set when dir is empty.
// Files missing from dir fall back to the embedded copy.
func Load(dir string, log zerolog.Logger) (*Catalog, error) {
	embedded := Embedded()
	var override fs.FS
	if dir != "" {
		override = os.DirFS(dir)
	}

	read := func(name string) ([]byte, error) {
		if override != nil {
			b, err := fs.ReadFile(override, name)
			if err == nil {
				log.Debug().Str("file", name).Str("dir", dir).Msg("using data override")
				return b, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
		}
		b, err := fs.ReadFile(embedded, name)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", name, err)
		}
		return b, nil
	}

	return LoadFS(read)
}

// LoadFS builds a catalog using read to fetch each data file
func LoadFS(read func(name string) ([]byte, error)) (*Catalog, error) {
	cat := &Catalog{
		Dungeons: dungeon.NewRegistry(),
		Maps:     maps.NewRegistry(),
	}

	b, err := read(DungeonsFile)
	if err != nil {
		return nil, err
	}
	if err := cat.Dungeons.ParseYAML(b); err != nil {
		return nil, fmt.Errorf("%s: %w", DungeonsFile, err)
	}

	if b, err = read(MapsFile); err != nil {
		return nil, err
	}
	if err := cat.Maps.ParseYAML(b); err != nil {
		return nil, fmt.Errorf("%s: %w", MapsFile, err)
	}

	if b, err = read(EventsFile); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, &cat.Events); err != nil {
		return nil, fmt.Errorf("%s: %w", EventsFile, err)
	}

	if b, err = read(CreaturesFile); err != nil {
		return nil, err
	}
	if cat.Creatures, err = recruit.ParseYAML(b); err != nil {
		return nil, fmt.Errorf("%s: %w", CreaturesFile, err)
	}

	return cat, nil
}
