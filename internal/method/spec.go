package method

import (
	"fmt"
	"reflect"
	"strings"
)

// Spec is a method specification: one resolvable strategy for a property.
// Exactly one of the variant fields is set. The zero Spec is invalid.
type Spec struct {
	fn       any
	provider any
	pkg      *Package
	byPhase  map[string]*Spec
}

// FuncSpec wraps a directly invokable function.
func FuncSpec(fn any) *Spec {
	return &Spec{fn: fn}
}

// ProviderSpec wraps a value exposing the strategy as a method named after
// the property (exported form) or named ReturnExpression.
func ProviderSpec(v any) *Spec {
	return &Spec{provider: v}
}

// PackageSpec wraps a named collection of functions and providers; the
// member matching the property name supplies the strategy.
func PackageSpec(p *Package) *Spec {
	return &Spec{pkg: p}
}

// PhaseSpec wraps a phase-keyed map of specifications. A nil map entry is
// "declared but unset" for that phase.
func PhaseSpec(m map[string]*Spec) *Spec {
	return &Spec{byPhase: m}
}

// SpecOf classifies an arbitrary registered implementation into a Spec.
// Functions become FuncSpecs, Packages become PackageSpecs, and anything
// else is treated as a provider value.
func SpecOf(impl any) *Spec {
	switch v := impl.(type) {
	case *Spec:
		return v
	case *Package:
		return PackageSpec(v)
	}
	if reflect.ValueOf(impl).Kind() == reflect.Func {
		return FuncSpec(impl)
	}
	return ProviderSpec(impl)
}

// forPhase indexes a phase-keyed spec. The second return reports whether
// the spec is phase-keyed at all; a non-keyed spec resolves as-is even when
// a phase was requested.
func (s *Spec) forPhase(phase string) (*Spec, bool) {
	if s.byPhase == nil {
		return nil, false
	}
	return s.byPhase[phase], true
}

// Invokable resolves the spec into a callable value for the named property.
// The error reports a shape problem; callers wrap it with the identity of
// the configuration block that supplied the value.
func (s *Spec) Invokable(property string) (any, error) {
	switch {
	case s.fn != nil:
		if reflect.ValueOf(s.fn).Kind() != reflect.Func {
			return nil, fmt.Errorf("configured value of type %T is not callable", s.fn)
		}
		return s.fn, nil

	case s.provider != nil:
		if m, ok := methodByName(s.provider, ExportedName(property)); ok {
			return m, nil
		}
		if m, ok := methodByName(s.provider, "ReturnExpression"); ok {
			return m, nil
		}
		return nil, fmt.Errorf(
			"provider of type %T has no method %s or ReturnExpression",
			s.provider, ExportedName(property))

	case s.pkg != nil:
		member, ok := s.pkg.Lookup(property)
		if !ok {
			return nil, fmt.Errorf("package %s does not provide %s", s.pkg.Name(), property)
		}
		return SpecOf(member).Invokable(property)

	case s.byPhase != nil:
		return nil, fmt.Errorf("phase-indexed specification for %s resolved without a phase", property)

	default:
		return nil, fmt.Errorf("empty method specification for %s", property)
	}
}

func methodByName(v any, name string) (any, bool) {
	m := reflect.ValueOf(v).MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	return m.Interface(), true
}

// ExportedName converts a snake_case property name to the exported Go
// method name providers are expected to carry, e.g. "pressure_sat_comp"
// becomes "PressureSatComp".
func ExportedName(property string) string {
	parts := strings.Split(property, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// Package is a named collection of strategy members, the analogue of a
// correlation library: members are plain functions or provider values keyed
// by the property they implement.
type Package struct {
	name    string
	members map[string]any
}

// NewPackage creates an empty strategy package.
func NewPackage(name string) *Package {
	return &Package{name: name, members: make(map[string]any)}
}

// Name returns the package's registered name.
func (p *Package) Name() string {
	return p.name
}

// Add registers a member implementing the named property. It panics on a
// duplicate name, which is a programmer error.
func (p *Package) Add(property string, member any) {
	if _, exists := p.members[property]; exists {
		panic(fmt.Sprintf("method package %q already provides %q", p.name, property))
	}
	p.members[property] = member
}

// Lookup returns the member implementing the named property.
func (p *Package) Lookup(property string) (any, bool) {
	m, ok := p.members[property]
	return m, ok
}
