// Package ideal registers the ideal equation-of-state tag for phase
// records that do not need a non-ideality correction in the initialization
// path.
package ideal

import "github.com/vk/flashkit/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "ideal" equation of state.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEquationOfState("ideal")
}
