// Package schema holds the gohcl decoding structs for property package
// files. The structs mirror the file layout; translation into the model
// happens in internal/hcl.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Method maps one property name to a registered calculation method. An
// empty block declares the property without assigning a method. ByPhase
// assigns a different method per phase instead of a single one.
type Method struct {
	Property string            `hcl:"property,label"`
	Use      string            `hcl:"use,optional"`
	ByPhase  map[string]string `hcl:"by_phase,optional"`
}

// Henry registers Henry's-law treatment of a component in one liquid
// phase.
type Henry struct {
	Phase         string     `hcl:"phase,label"`
	Use           string     `hcl:"use"`
	Type          string     `hcl:"type"`
	ParameterData *cty.Value `hcl:"parameter_data,optional"`
}

// Component represents a `component` block: one chemical species with its
// coefficients, property methods and optional Henry registrations.
type Component struct {
	Name          string     `hcl:"name,label"`
	ValidPhases   []string   `hcl:"valid_phases,optional"`
	ParameterData *cty.Value `hcl:"parameter_data,optional"`
	Methods       []*Method  `hcl:"method,block"`
	Henry         []*Henry   `hcl:"henry,block"`
}

// Phase represents a `phase` block.
type Phase struct {
	Name            string    `hcl:"name,label"`
	Type            string    `hcl:"type"`
	EquationOfState string    `hcl:"equation_of_state,optional"`
	Methods         []*Method `hcl:"method,block"`
}

// Reaction represents a `reaction` block.
type Reaction struct {
	Name  string `hcl:"name,label"`
	Basis string `hcl:"basis"`
	Form  string `hcl:"concentration_form"`
}

// StateBounds represents the `state_bounds` block. Its attributes are
// state variable names whose values are [lower, default, upper] tuples,
// optionally with a trailing unit string; the tuples are decoded by hand
// since their arity varies.
type StateBounds struct {
	Body hcl.Body `hcl:",remain"`
}

// PropertyPackage represents a top-level `property_package` block.
type PropertyPackage struct {
	Name           string       `hcl:"name,label"`
	PressureRef    float64      `hcl:"pressure_ref,optional"`
	TemperatureRef float64      `hcl:"temperature_ref,optional"`
	Methods        []*Method    `hcl:"method,block"`
	Phases         []*Phase     `hcl:"phase,block"`
	Components     []*Component `hcl:"component,block"`
	Reactions      []*Reaction  `hcl:"reaction,block"`
	StateBounds    *StateBounds `hcl:"state_bounds,block"`
}

// PackageFile represents the top-level structure of a property package
// file.
type PackageFile struct {
	Packages []*PropertyPackage `hcl:"property_package,block"`
	Remain   hcl.Body           `hcl:",remain"`
}
