package dungeon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoPool is returned when no encounter pool covers a floor
var ErrNoPool = errors.New("no encounter pool for floor")

// FloorRange is an inclusive [Lo, Hi] range of floor numbers. Open ranges
// have no upper bound and are written as [lo, inf] in YAML.
type FloorRange struct {
	Lo   int  `json:"lo"`
	Hi   int  `json:"hi,omitempty"`
	Open bool `json:"open,omitempty"`
}

// Floors returns the closed range [lo, hi]
func Floors(lo, hi int) FloorRange {
	return FloorRange{Lo: lo, Hi: hi}
}

// FloorsFrom returns the open range [lo, inf]
func FloorsFrom(lo int) FloorRange {
	return FloorRange{Lo: lo, Open: true}
}

// Contains reports whether floor lies in the range
func (r FloorRange) Contains(floor int) bool {
	if floor < r.Lo {
		return false
	}
	return r.Open || floor <= r.Hi
}

// upper returns the effective upper bound
func (r FloorRange) upper() int {
	if r.Open {
		return math.MaxInt
	}
	return r.Hi
}

func (r FloorRange) String() string {
	if r.Open {
		return fmt.Sprintf("[%d, inf]", r.Lo)
	}
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

// UnmarshalYAML decodes a two-element sequence; the second element may be "inf".
func (r *FloorRange) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: floors must be a [lo, hi] pair", value.Line)
	}
	var lo int
	if err := value.Content[0].Decode(&lo); err != nil {
		return fmt.Errorf("line %d: floors lower bound: %w", value.Line, err)
	}
	hiNode := value.Content[1]
	switch strings.ToLower(hiNode.Value) {
	case "inf", ".inf", "infinity":
		*r = FloorsFrom(lo)
		return nil
	}
	var hi int
	if err := hiNode.Decode(&hi); err != nil {
		return fmt.Errorf("line %d: floors upper bound: %w", value.Line, err)
	}
	*r = Floors(lo, hi)
	return nil
}

// MarshalYAML writes the range back in the [lo, hi] form
func (r FloorRange) MarshalYAML() (interface{}, error) {
	if r.Open {
		return []interface{}{r.Lo, "inf"}, nil
	}
	return []int{r.Lo, r.Hi}, nil
}

// Pool lists the enemy species eligible on a floor range
type Pool struct {
	Floors  FloorRange `yaml:"floors" json:"floors"`
	Enemies []string   `yaml:"enemies" json:"enemies"`
}

// Range is an inclusive integer range
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Encounters configures enemy groups. Pools are searched in order and the
// first one covering the floor wins.
type Encounters struct {
	Count Range  `yaml:"count" json:"count"`
	Pools []Pool `yaml:"pools" json:"pools"`
}

// PoolFor returns the first pool covering floor
func (e Encounters) PoolFor(floor int) (Pool, error) {
	for _, p := range e.Pools {
		if p.Floors.Contains(floor) {
			return p, nil
		}
	}
	return Pool{}, fmt.Errorf("%w %d", ErrNoPool, floor)
}

// validate checks ordering: ascending, non-overlapping, non-empty pools
func (e Encounters) validate() error {
	var errs []error
	if e.Count.Min < 0 || e.Count.Max < e.Count.Min {
		errs = append(errs, fmt.Errorf("encounter count [%d, %d] is invalid", e.Count.Min, e.Count.Max))
	}
	for i, p := range e.Pools {
		if !p.Floors.Open && p.Floors.Hi < p.Floors.Lo {
			errs = append(errs, fmt.Errorf("pool %d: floors %s are reversed", i, p.Floors))
		}
		if len(p.Enemies) == 0 {
			errs = append(errs, fmt.Errorf("pool %d: no enemies", i))
		}
		if i > 0 {
			prev := e.Pools[i-1].Floors
			if prev.Open || p.Floors.Lo <= prev.upper() {
				errs = append(errs, fmt.Errorf("pool %d: floors %s overlap or precede %s", i, p.Floors, prev))
			}
		}
	}
	return errors.Join(errs...)
}
