// Package nist provides the NIST WebBook form of the Antoine saturation
// pressure correlation as a registrable method module.
package nist

import (
	"fmt"
	"math"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/registry"
	"github.com/vk/flashkit/internal/state"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "nist" correlation.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMethod("nist", Correlation{})
}

// Correlation evaluates log10(Psat/bar) = A - B/(T + C), the NIST WebBook
// convention: A dimensionless, B and C in K, T in K. Coefficients come from
// the component's parameter_data under pressure_sat_comp_coeff.
type Correlation struct{}

// PressureSatComp returns the component's saturation pressure in Pa.
func (Correlation) PressureSatComp(blk *state.Block, c *model.Component, T float64) (float64, error) {
	A, err := coeff(c, "A")
	if err != nil {
		return 0, err
	}
	B, err := coeff(c, "B")
	if err != nil {
		return 0, err
	}
	C, err := coeff(c, "C")
	if err != nil {
		return 0, err
	}
	return 1e5 * math.Pow(10, A-B/(T+C)), nil
}

func coeff(c *model.Component, name string) (float64, error) {
	v, ok := c.Param("pressure_sat_comp_coeff." + name)
	if !ok {
		return 0, &errs.ConfigurationError{Detail: fmt.Sprintf(
			"component %s is missing parameter pressure_sat_comp_coeff.%s "+
				"required by the nist correlation", c.Name, name)}
	}
	return v, nil
}
