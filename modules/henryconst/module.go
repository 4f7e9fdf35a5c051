// Package henryconst provides a constant Henry's-law coefficient as a
// registrable method module, for dissolved gases whose coefficient is
// treated as temperature-independent over the range of interest.
package henryconst

import (
	"fmt"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/registry"
	"github.com/vk/flashkit/internal/state"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "constant" Henry's-law method.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMethod("constant", Coefficient{})
}

// Coefficient reads the henry_ref parameter from the component's Henry
// registration for the phase.
type Coefficient struct{}

// ReturnExpression returns the constant coefficient; the temperature
// argument is part of the Henry contract but unused here.
func (Coefficient) ReturnExpression(blk *state.Block, phase, comp string, T float64) (float64, error) {
	c, err := blk.Params().Component(comp)
	if err != nil {
		return 0, err
	}
	record := c.Henry[phase]
	if record == nil {
		return 0, &errs.PropertyPackageError{Detail: fmt.Sprintf(
			"component %s has no Henry's law registration for phase %s", comp, phase)}
	}
	v, ok := record.Parameters["henry_ref"]
	if !ok {
		return 0, &errs.ConfigurationError{Detail: fmt.Sprintf(
			"component %s is missing Henry's law parameter henry_ref for phase %s",
			comp, phase)}
	}
	return v, nil
}
