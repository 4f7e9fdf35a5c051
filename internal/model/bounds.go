package model

import (
	"fmt"

	"github.com/vk/flashkit/internal/units"
)

// Bounds is a (lower, upper) interval for a state variable. Nil pointers
// mean "unbounded"; a missing configuration entry yields both nil plus a
// nil default.
type Bounds struct {
	Lower *float64
	Upper *float64
}

// BoundsFromConfig derives the bounds and default value for a state
// variable from the package's declarative state_bounds configuration.
//
// With no entry it returns ((nil, nil), nil). An entry without a unit is
// returned exactly as written. An entry with a unit is converted to
// defaultUnit; the conversion is linear, so the lower ≤ default ≤ upper
// ordering of the input is preserved.
func BoundsFromConfig(pb *ParameterBlock, stateName string, defaultUnit units.Unit) (Bounds, *float64, error) {
	entry, ok := pb.StateBound(stateName)
	if !ok {
		return Bounds{}, nil, nil
	}

	lower, def, upper := entry.Lower, entry.Default, entry.Upper
	if entry.Unit != nil {
		var err error
		if lower, err = units.Convert(lower, *entry.Unit, defaultUnit); err != nil {
			return Bounds{}, nil, fmt.Errorf("state bound %q: %w", stateName, err)
		}
		if def, err = units.Convert(def, *entry.Unit, defaultUnit); err != nil {
			return Bounds{}, nil, fmt.Errorf("state bound %q: %w", stateName, err)
		}
		if upper, err = units.Convert(upper, *entry.Unit, defaultUnit); err != nil {
			return Bounds{}, nil, fmt.Errorf("state bound %q: %w", stateName, err)
		}
	}

	return Bounds{Lower: &lower, Upper: &upper}, &def, nil
}
