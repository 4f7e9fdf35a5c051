// Package method resolves named physical properties to pluggable
// calculation strategies.
//
// A property package supplies strategies as data, not code: each property
// name in a configuration maps to a Spec, a closed tagged union over the
// shapes a strategy may take (a plain function, a provider value exposing a
// named method, a named package of the previous, or a phase-keyed map of
// further Specs). Specs are built once at configuration-load time; Get and
// GetPhase then perform a pure lookup plus shape validation and return a
// uniform invokable.
//
// Resolution is read-only against immutable configuration, so it is safe to
// call repeatedly and concurrently.
package method
