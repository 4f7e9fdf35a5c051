// Package errs defines the error taxonomy shared by the property framework.
//
// Errors fall into three audiences: UnknownOptionError is developer-facing
// (the framework asked for a configuration key that does not exist in the
// schema), MissingMethodError and ConfigurationError are model-author-facing
// (the fix is to adjust the property package configuration), and
// ConvergenceError is numeric (an estimator exhausted its iteration cap).
// All of them carry the names of the implicated block, property, phase or
// component, since those diagnostics are the primary debugging aid for
// authors composing packages declaratively.
package errs

import "fmt"

// UnknownOptionError reports a request for a configuration option that is
// not part of the property package schema at all. This indicates a bug in
// the calling code, not a user misconfiguration.
type UnknownOptionError struct {
	Block  string
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf(
		"%s called for invalid configuration option %s. "+
			"Please contact the developer of the property package.",
		e.Block, e.Option)
}

// MissingMethodError reports a property that is declared in the package
// schema but has no calculation method assigned.
type MissingMethodError struct {
	Block    string
	Property string
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf(
		"Property package instance %s called for %s, but was not provided "+
			"with a method for this property. Please add a method for this "+
			"property in the property parameter configuration.",
		e.Block, e.Property)
}

// ConfigurationError reports a configured value that does not match any
// recognized shape, or is otherwise inconsistent with the package schema.
type ConfigurationError struct {
	Block  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Block == "" {
		return e.Detail
	}
	return fmt.Sprintf("%s: %s", e.Block, e.Detail)
}

// PropertyPackageError reports a structural problem with the property
// package discovered at evaluation time, such as an invalid VLE phase pair
// or an equilibrium with no jointly-present components.
type PropertyPackageError struct {
	Detail string
}

func (e *PropertyPackageError) Error() string {
	return e.Detail
}

// ConvergenceError reports that an iterative estimate exhausted its
// iteration cap. It is distinct from other numeric failures so callers can
// decide whether to retry with a different starting point.
type ConvergenceError struct {
	Quantity   string
	Iterations int
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf(
		"estimate of %s failed to converge within %d iterations (residual %g)",
		e.Quantity, e.Iterations, e.Residual)
}
