package dungeon

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultName is the dungeon used when none is selected
const DefaultName = "default"

// ErrNotFound is returned for unknown dungeon names
var ErrNotFound = errors.New("dungeon not found")

// Registry maps dungeon names to their configuration
type Registry struct {
	dungeons map[string]*Config
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{dungeons: make(map[string]*Config)}
}

// Register adds or replaces a dungeon
func (r *Registry) Register(name string, cfg *Config) {
	cfg.Name = name
	r.dungeons[name] = cfg
}

// Get returns the named dungeon
func (r *Registry) Get(name string) (*Config, error) {
	cfg, ok := r.dungeons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return cfg, nil
}

// Names returns the registered names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dungeons))
	for name := range r.dungeons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered dungeons
func (r *Registry) Len() int {
	return len(r.dungeons)
}

// ParseYAML decodes a name -> dungeon mapping into r, validating each entry
func (r *Registry) ParseYAML(data []byte) error {
	var doc map[string]*Config
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode dungeons: %w", err)
	}
	var errs []error
	for name, cfg := range doc {
		if cfg == nil {
			errs = append(errs, fmt.Errorf("dungeon %q is empty", name))
			continue
		}
		cfg.Name = name
		if err := cfg.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		r.Register(name, cfg)
	}
	return errors.Join(errs...)
}
