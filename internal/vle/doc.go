// Package vle classifies components for vapor-liquid equilibrium and
// produces bubble/dew temperature and pressure estimates.
//
// The estimates are initial guesses for a downstream nonlinear equilibrium
// solve, not converged equilibrium points: pressures come from closed-form
// Raoult/Henry sums at the known temperature, temperatures from a bounded
// Newton iteration over the same sums. Moderate inaccuracy is tolerable,
// but exhausting the iteration cap is surfaced as errs.ConvergenceError
// rather than silently ignored.
package vle
