// Package registry provides the central "glue" for the correlation module
// system.
//
// The Registry stores mappings between the names used in property package
// files (e.g. "nist", "constant", "ideal") and the compiled Go values that
// implement them. Modules populate it at application startup; the HCL
// translator then binds configured names against it, and validation checks
// that the loaded model only references registered implementations.
package registry

import (
	"fmt"
	"log/slog"
)

// Module is the interface all correlation modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered method implementations and equation-of-state
// names for a single application instance.
type Registry struct {
	methods     map[string]any
	methodOrder []string
	eos         map[string]struct{}
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		methods: make(map[string]any),
		eos:     make(map[string]struct{}),
	}
}

// RegisterMethod registers a named method implementation: a plain function,
// a provider value, or a *method.Package. Duplicate registration is a
// programmer error.
func (r *Registry) RegisterMethod(name string, impl any) {
	if _, exists := r.methods[name]; exists {
		panic(fmt.Sprintf("method with name '%s' already registered", name))
	}
	slog.Debug("Registering method.", "name", name)
	r.methods[name] = impl
	r.methodOrder = append(r.methodOrder, name)
}

// Method returns a registered method implementation.
func (r *Registry) Method(name string) (any, bool) {
	impl, ok := r.methods[name]
	return impl, ok
}

// MethodNames returns the registered method names in registration order.
func (r *Registry) MethodNames() []string {
	out := make([]string, len(r.methodOrder))
	copy(out, r.methodOrder)
	return out
}

// RegisterEquationOfState registers a named equation-of-state strategy tag.
func (r *Registry) RegisterEquationOfState(name string) {
	if _, exists := r.eos[name]; exists {
		panic(fmt.Sprintf("equation of state with name '%s' already registered", name))
	}
	slog.Debug("Registering equation of state.", "name", name)
	r.eos[name] = struct{}{}
}

// HasEquationOfState reports whether a named equation of state is
// registered.
func (r *Registry) HasEquationOfState(name string) bool {
	_, ok := r.eos[name]
	return ok
}
