package vle

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/vk/flashkit/internal/ctxlog"
	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/method"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/state"
	"github.com/vk/flashkit/internal/units"
)

const (
	// maxEstimateIter caps the Newton iteration for temperature estimates.
	maxEstimateIter = 100
	// estimateTolRel is the relative step tolerance for convergence.
	estimateTolRel = 1e-8
	// fallbackTcrit stands in for components without a declared critical
	// temperature when seeding the iteration.
	fallbackTcrit = 500.0
)

// SaturationPressureFunc is the contract for a pressure_sat_comp strategy:
// the component's saturation pressure in Pa at temperature T in K.
type SaturationPressureFunc = func(*state.Block, *model.Component, float64) (float64, error)

// HenryFunc is the contract for a Henry's-law strategy: the effective
// Henry coefficient in Pa for a component in a liquid phase at T in K.
type HenryFunc = func(*state.Block, string, string, float64) (float64, error)

// satTerm is one component's resolved contribution to the partial-pressure
// sums: its mole fraction and its pressure correlation at temperature T.
type satTerm struct {
	comp string
	frac float64
	eval func(T float64) (float64, error)
}

// collectTerms resolves the saturation-pressure strategy of every
// equilibrium component and the Henry strategy of every Henry component
// into evaluatable terms.
func collectTerms(blk *state.Block, vlComps, henryComps []string, liquidPhase string) ([]satTerm, error) {
	params := blk.Params()
	terms := make([]satTerm, 0, len(vlComps)+len(henryComps))

	for _, name := range vlComps {
		comp, err := params.Component(name)
		if err != nil {
			return nil, err
		}
		inv, err := method.Get(params, "pressure_sat_comp", "", name)
		if err != nil {
			return nil, err
		}
		fn, ok := inv.(SaturationPressureFunc)
		if !ok {
			return nil, &errs.ConfigurationError{
				Block: params.BlockName(),
				Detail: fmt.Sprintf(
					"pressure_sat_comp method for component %s has unexpected type %T",
					name, inv),
			}
		}
		terms = append(terms, satTerm{
			comp: name,
			frac: blk.MoleFrac[name],
			eval: func(T float64) (float64, error) { return fn(blk, comp, T) },
		})
	}

	for _, name := range henryComps {
		comp, err := params.Component(name)
		if err != nil {
			return nil, err
		}
		record := comp.Henry[liquidPhase]
		if record == nil {
			return nil, &errs.PropertyPackageError{Detail: fmt.Sprintf(
				"component %s has no Henry's law registration for phase %s",
				name, liquidPhase)}
		}
		inv, err := record.Method.Invokable("henry_component")
		if err != nil {
			return nil, &errs.ConfigurationError{
				Block:  params.BlockName(),
				Detail: fmt.Sprintf("Henry's law method for component %s: %v", name, err),
			}
		}
		fn, ok := inv.(HenryFunc)
		if !ok {
			return nil, &errs.ConfigurationError{
				Block: params.BlockName(),
				Detail: fmt.Sprintf(
					"Henry's law method for component %s has unexpected type %T",
					name, inv),
			}
		}
		terms = append(terms, satTerm{
			comp: name,
			frac: blk.MoleFrac[name],
			eval: func(T float64) (float64, error) { return fn(blk, liquidPhase, name, T) },
		})
	}

	return terms, nil
}

// raoultSum evaluates sum_j x_j * Psat_j(T) over the terms.
func raoultSum(terms []satTerm, T float64) (float64, error) {
	partial := make([]float64, len(terms))
	for i, term := range terms {
		p, err := term.eval(T)
		if err != nil {
			return 0, fmt.Errorf("evaluating saturation pressure of %s: %w", term.comp, err)
		}
		partial[i] = term.frac * p
	}
	return floats.Sum(partial), nil
}

// inverseSum evaluates sum_j y_j / Psat_j(T) over the terms.
func inverseSum(terms []satTerm, T float64) (float64, error) {
	partial := make([]float64, len(terms))
	for i, term := range terms {
		p, err := term.eval(T)
		if err != nil {
			return 0, fmt.Errorf("evaluating saturation pressure of %s: %w", term.comp, err)
		}
		partial[i] = term.frac / p
	}
	return floats.Sum(partial), nil
}

// EstimatePbub estimates the bubble pressure in Pa at the block's current
// temperature: the liquid is at its nominal composition, so the bubble
// pressure is the Raoult/Henry partial-pressure sum.
func EstimatePbub(ctx context.Context, blk *state.Block, vlComps, henryComps []string, liquidPhase string) (float64, error) {
	terms, err := collectTerms(blk, vlComps, henryComps, liquidPhase)
	if err != nil {
		return 0, err
	}
	p, err := raoultSum(terms, blk.Temperature)
	if err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("Estimated bubble pressure.",
		"temperature_K", blk.Temperature, "pressure_Pa", p)
	return p, nil
}

// EstimatePdew estimates the dew pressure in Pa at the block's current
// temperature: the vapor is at its nominal composition, giving the
// reciprocal of the inverse partial-pressure sum.
func EstimatePdew(ctx context.Context, blk *state.Block, vlComps, henryComps []string, liquidPhase string) (float64, error) {
	terms, err := collectTerms(blk, vlComps, henryComps, liquidPhase)
	if err != nil {
		return 0, err
	}
	s, err := inverseSum(terms, blk.Temperature)
	if err != nil {
		return 0, err
	}
	if s == 0 {
		return 0, &errs.PropertyPackageError{Detail: fmt.Sprintf(
			"dew pressure estimate for phase %s is unbounded: all participating "+
				"mole fractions are zero", liquidPhase)}
	}
	p := 1 / s
	ctxlog.FromContext(ctx).Debug("Estimated dew pressure.",
		"temperature_K", blk.Temperature, "pressure_Pa", p)
	return p, nil
}

// EstimateTbub estimates the bubble temperature in the requested unit at
// the block's current pressure, solving sum x_j Psat_j(T) = P by Newton
// iteration.
func EstimateTbub(ctx context.Context, blk *state.Block, tUnit units.Unit, vlComps, henryComps []string, liquidPhase string) (float64, error) {
	terms, err := collectTerms(blk, vlComps, henryComps, liquidPhase)
	if err != nil {
		return 0, err
	}
	residual := func(T float64) (float64, error) {
		s, err := raoultSum(terms, T)
		if err != nil {
			return 0, err
		}
		return s - blk.Pressure, nil
	}
	T, err := solveTemperature(ctx, blk, terms, residual, "bubble temperature")
	if err != nil {
		return 0, err
	}
	return units.Convert(T, units.Kelvin, tUnit)
}

// EstimateTdew estimates the dew temperature in the requested unit at the
// block's current pressure. The dew condition P * sum y_j / Psat_j(T) = 1
// is solved in pseudo-saturation-pressure form, 1 / sum y_j / Psat_j(T) = P:
// that residual is steeply monotone in T like the bubble one, where the
// raw sum is nearly flat and bounded, and an undamped Newton step from the
// critical-temperature seed can overshoot past the correlation's pole.
func EstimateTdew(ctx context.Context, blk *state.Block, tUnit units.Unit, vlComps, henryComps []string, liquidPhase string) (float64, error) {
	terms, err := collectTerms(blk, vlComps, henryComps, liquidPhase)
	if err != nil {
		return 0, err
	}
	residual := func(T float64) (float64, error) {
		s, err := inverseSum(terms, T)
		if err != nil {
			return 0, err
		}
		if s == 0 {
			return 0, &errs.PropertyPackageError{Detail: fmt.Sprintf(
				"dew temperature estimate for phase %s is unbounded: all participating "+
					"mole fractions are zero", liquidPhase)}
		}
		return 1/s - blk.Pressure, nil
	}
	T, err := solveTemperature(ctx, blk, terms, residual, "dew temperature")
	if err != nil {
		return 0, err
	}
	return units.Convert(T, units.Kelvin, tUnit)
}

// solveTemperature runs a bounded Newton iteration on the residual, using
// a central-difference derivative. The starting point is the mole-fraction
// weighted critical temperature scaled below the critical point.
func solveTemperature(ctx context.Context, blk *state.Block, terms []satTerm, residual func(float64) (float64, error), quantity string) (float64, error) {
	logger := ctxlog.FromContext(ctx)

	T := initialTemperature(blk, terms)
	logger.Debug("Starting temperature estimate.", "quantity", quantity, "T0_K", T)

	// fd.Derivative needs a plain float64 function; evaluation errors from
	// the correlations are captured on the side.
	var evalErr error
	f := func(T float64) float64 {
		v, err := residual(T)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return v
	}

	fT := f(T)
	for i := 0; i < maxEstimateIter; i++ {
		dfT := fd.Derivative(f, T, &fd.Settings{Formula: fd.Central})
		if evalErr != nil {
			return 0, evalErr
		}
		if dfT == 0 || math.IsNaN(dfT) || math.IsInf(dfT, 0) {
			return 0, &errs.ConvergenceError{Quantity: quantity, Iterations: i, Residual: fT}
		}

		step := fT / dfT
		T -= step
		fT = f(T)
		if evalErr != nil {
			return 0, evalErr
		}

		if math.Abs(step) <= estimateTolRel*math.Abs(T) {
			logger.Debug("Temperature estimate converged.",
				"quantity", quantity, "T_K", T, "iterations", i+1)
			return T, nil
		}
	}

	return 0, &errs.ConvergenceError{
		Quantity:   quantity,
		Iterations: maxEstimateIter,
		Residual:   fT,
	}
}

// initialTemperature seeds the Newton iteration with the mole-fraction
// weighted critical temperature of the participating components, scaled by
// 0.7 to start below the critical point.
func initialTemperature(blk *state.Block, terms []satTerm) float64 {
	var sum, weight float64
	for _, term := range terms {
		comp, err := blk.Params().Component(term.comp)
		tc := fallbackTcrit
		if err == nil {
			if v, ok := comp.Param("temperature_crit"); ok {
				tc = v
			}
		}
		sum += term.frac * tc
		weight += term.frac
	}
	if weight == 0 {
		return 0.7 * fallbackTcrit
	}
	return 0.7 * sum / weight
}
