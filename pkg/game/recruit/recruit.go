// Package recruit builds the creature offers shown by recruit events.
package recruit

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gopkg.in/yaml.v3"

	"stillnight/pkg/game/entities"
)

// Species is a creature that can be recruited
type Species struct {
	ID          string  `yaml:"-"`
	Name        string  `yaml:"name"`
	Sprite      string  `yaml:"sprite,omitempty"`
	BaseHP      int     `yaml:"baseHp"`
	HPGrowth    float64 `yaml:"hpGrowth"`
	Cost        int     `yaml:"cost"`
	Temperament string  `yaml:"temperament,omitempty"`
}

// MaxHPAt returns the species' max HP at a level:
// round(baseHp * (1 + hpGrowth*(level-1))).
func (s Species) MaxHPAt(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(float64(s.BaseHP)*(1+s.HPGrowth*float64(level-1)) + 0.5))
}

// Offer builds the recruit descriptor for this species at a level
func (s Species) Offer(level int) entities.Recruit {
	if level < 1 {
		level = 1
	}
	return entities.Recruit{
		Species: s.ID,
		Name:    s.Name,
		Level:   level,
		MaxHP:   s.MaxHPAt(level),
		Cost:    s.Cost,
	}
}

// Table is an ordered set of species. Order is by ID so that seeded draws
// do not depend on map iteration.
type Table struct {
	species []Species
	byID    map[string]Species
}

// NewTable builds a table from the given species
func NewTable(species ...Species) *Table {
	t := &Table{byID: make(map[string]Species, len(species))}
	for _, s := range species {
		t.byID[s.ID] = s
	}
	for _, s := range t.byID {
		t.species = append(t.species, s)
	}
	sort.Slice(t.species, func(i, j int) bool { return t.species[i].ID < t.species[j].ID })
	return t
}

// ParseYAML decodes an id -> species mapping
func ParseYAML(data []byte) (*Table, error) {
	var doc map[string]Species
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode creatures: %w", err)
	}
	species := make([]Species, 0, len(doc))
	var errs []error
	for id, s := range doc {
		s.ID = id
		if s.BaseHP <= 0 {
			errs = append(errs, fmt.Errorf("creature %q: baseHp must be positive", id))
			continue
		}
		if s.Name == "" {
			s.Name = id
		}
		species = append(species, s)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return NewTable(species...), nil
}

// Get returns the species by ID
func (t *Table) Get(id string) (Species, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// Len returns the number of species
func (t *Table) Len() int {
	return len(t.species)
}

// All returns the species sorted by ID
func (t *Table) All() []Species {
	out := make([]Species, len(t.species))
	copy(out, t.species)
	return out
}

// Generator draws recruit offers for a floor
type Generator struct {
	table *Table
	rng   *rand.Rand
}

// NewGenerator creates an offer generator over table
func NewGenerator(table *Table, rng *rand.Rand) *Generator {
	return &Generator{table: table, rng: rng}
}

// Generate returns one or two offers (even odds). Species are drawn
// uniformly and may repeat. The offered level equals the floor.
func (g *Generator) Generate(floor int) []entities.Recruit {
	if g.table == nil || g.table.Len() == 0 {
		return nil
	}
	count := 1
	if g.rng.Intn(2) == 1 {
		count = 2
	}
	offers := make([]entities.Recruit, 0, count)
	for i := 0; i < count; i++ {
		s := g.table.species[g.rng.Intn(len(g.table.species))]
		offers = append(offers, s.Offer(floor))
	}
	return offers
}
