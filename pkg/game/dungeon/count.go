package dungeon

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// RoundMode names how a fractional count becomes an integer
type RoundMode string

// Supported rounding modes. An empty mode behaves like RoundNearest.
const (
	RoundFloor   RoundMode = "floor"
	RoundCeil    RoundMode = "ceil"
	RoundNearest RoundMode = "round"
)

// ErrUnknownRound is returned for rounding modes other than floor, ceil and round.
var ErrUnknownRound = errors.New("unknown rounding mode")

// Valid reports whether the mode is one of the supported modes (or empty)
func (m RoundMode) Valid() bool {
	switch m {
	case "", RoundFloor, RoundCeil, RoundNearest:
		return true
	}
	return false
}

func (m RoundMode) apply(v float64) (float64, error) {
	switch m {
	case RoundFloor:
		return math.Floor(v), nil
	case RoundCeil:
		return math.Ceil(v), nil
	case "", RoundNearest:
		// halves round up, also for negative values
		return math.Floor(v + 0.5), nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownRound, string(m))
	}
}

// CountRule resolves how many tiles of one kind a floor receives.
// In YAML it is either a plain integer or a mapping
// {base, perFloor, min, max, round}. A missing max means unbounded.
type CountRule struct {
	Base     float64   `yaml:"base,omitempty" json:"base,omitempty"`
	PerFloor float64   `yaml:"perFloor,omitempty" json:"perFloor,omitempty"`
	Min      int       `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *int      `yaml:"max,omitempty" json:"max,omitempty"`
	Round    RoundMode `yaml:"round,omitempty" json:"round,omitempty" jsonschema:"enum=floor,enum=ceil,enum=round"`
}

// Fixed returns a rule that always resolves to n
func Fixed(n int) CountRule {
	return CountRule{Base: float64(n)}
}

// Scaled returns a rule resolving to base + perFloor*floor, rounded by mode
// and never below min.
func Scaled(base, perFloor float64, min int, mode RoundMode) CountRule {
	return CountRule{Base: base, PerFloor: perFloor, Min: min, Round: mode}
}

// WithMax returns a copy of the rule capped at max
func (r CountRule) WithMax(max int) CountRule {
	r.Max = &max
	return r
}

// Resolve computes the count for a floor: round(base + perFloor*floor)
// clamped to [min, max]. min wins when min > max.
func (r CountRule) Resolve(floor int) (int, error) {
	rounded, err := r.Round.apply(r.Base + r.PerFloor*float64(floor))
	if err != nil {
		return 0, err
	}
	n := int(rounded)
	if r.Max != nil && n > *r.Max {
		n = *r.Max
	}
	if n < r.Min {
		n = r.Min
	}
	return n, nil
}

// countRuleFields avoids recursing into UnmarshalYAML
type countRuleFields CountRule

// UnmarshalYAML accepts a scalar integer or a descriptor mapping
func (r *CountRule) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var n int
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("line %d: count must be an integer or a mapping: %w", value.Line, err)
		}
		*r = Fixed(n)
		return nil
	case yaml.MappingNode:
		var fields countRuleFields
		if err := value.Decode(&fields); err != nil {
			return err
		}
		*r = CountRule(fields)
		if !r.Round.Valid() {
			return fmt.Errorf("line %d: %w %q", value.Line, ErrUnknownRound, string(r.Round))
		}
		return nil
	default:
		return fmt.Errorf("line %d: count must be an integer or a mapping", value.Line)
	}
}
