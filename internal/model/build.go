package model

import (
	"fmt"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/method"
	"github.com/vk/flashkit/internal/units"
)

// PropertyDef declares one property key in a configuration. A nil Spec
// declares the key without assigning a method.
type PropertyDef struct {
	Name string
	Spec *method.Spec
}

// HenryDef declares Henry's-law treatment of a component in one phase.
type HenryDef struct {
	Method     *method.Spec
	Type       HenryType
	Parameters map[string]float64
}

// ComponentDef declares one component of a package definition.
type ComponentDef struct {
	Name        string
	ValidPhases PhaseSet
	Henry       map[string]HenryDef
	Parameters  map[string]float64
	Methods     []PropertyDef
}

// PhaseDef declares one phase of a package definition.
type PhaseDef struct {
	Name            string
	Kind            PhaseKind
	EquationOfState string
	Methods         []PropertyDef
}

// ReactionDef declares one reaction of a package definition.
type ReactionDef struct {
	Name  string
	Basis ReactionBasis
	Form  ConcentrationForm
}

// BoundDef declares bounds for one state variable. An empty Unit means the
// numbers carry no unit and are returned as written.
type BoundDef struct {
	Lower   float64
	Default float64
	Upper   float64
	Unit    string
}

// PackageDef is the declarative input to Build: the complete description of
// a property package, produced by hand in tests or by the HCL translator.
type PackageDef struct {
	Name           string
	Properties     []PropertyDef
	Components     []ComponentDef
	Phases         []PhaseDef
	Reactions      []ReactionDef
	StateBounds    map[string]BoundDef
	PressureRef    float64
	TemperatureRef float64
}

// Build validates a package definition and assembles the immutable
// ParameterBlock. Declaration order of components and phases is preserved;
// it is the iteration order every downstream consumer sees.
func Build(def PackageDef) (*ParameterBlock, error) {
	name := def.Name
	if name == "" {
		name = "params"
	}

	pb := &ParameterBlock{
		name:           name,
		config:         method.NewConfig(),
		comps:          make(map[string]*Component),
		phases:         make(map[string]*Phase),
		rate:           reactionSet{m: make(map[string]*Reaction)},
		equilibrium:    reactionSet{m: make(map[string]*Reaction)},
		inherent:       reactionSet{m: make(map[string]*Reaction)},
		stateBounds:    make(map[string]BoundEntry),
		PressureRef:    def.PressureRef,
		TemperatureRef: def.TemperatureRef,
	}

	if err := applyProperties(pb.config, def.Properties); err != nil {
		return nil, buildErr(name, err)
	}

	for _, pd := range def.Phases {
		if _, exists := pb.phases[pd.Name]; exists {
			return nil, buildErr(name, fmt.Errorf("duplicate phase %q", pd.Name))
		}
		if pd.Kind == PhaseUnknown {
			return nil, buildErr(name, fmt.Errorf("phase %q has no phase type", pd.Name))
		}
		cfg := method.NewConfig()
		if err := applyProperties(cfg, pd.Methods); err != nil {
			return nil, buildErr(name, fmt.Errorf("phase %q: %w", pd.Name, err))
		}
		pb.phases[pd.Name] = &Phase{
			Name:            pd.Name,
			Kind:            pd.Kind,
			EquationOfState: pd.EquationOfState,
			Config:          cfg,
		}
		pb.phaseOrder = append(pb.phaseOrder, pd.Name)
	}

	for _, cd := range def.Components {
		if _, exists := pb.comps[cd.Name]; exists {
			return nil, buildErr(name, fmt.Errorf("duplicate component %q", cd.Name))
		}
		cfg := method.NewConfig()
		if err := applyProperties(cfg, cd.Methods); err != nil {
			return nil, buildErr(name, fmt.Errorf("component %q: %w", cd.Name, err))
		}

		comp := &Component{
			Name:        cd.Name,
			ValidPhases: cd.ValidPhases,
			Parameters:  cd.Parameters,
			Config:      cfg,
		}
		if comp.Parameters == nil {
			comp.Parameters = map[string]float64{}
		}

		if len(cd.Henry) > 0 {
			comp.Henry = make(map[string]*HenryRecord, len(cd.Henry))
			for phaseName, hd := range cd.Henry {
				ph, ok := pb.phases[phaseName]
				if !ok {
					return nil, buildErr(name, fmt.Errorf(
						"component %q declares Henry's law for undefined phase %q",
						cd.Name, phaseName))
				}
				if ph.Kind != PhaseLiquid {
					return nil, buildErr(name, fmt.Errorf(
						"component %q declares Henry's law for phase %q, which is %s, not liquid",
						cd.Name, phaseName, ph.Kind))
				}
				if hd.Method == nil {
					return nil, buildErr(name, fmt.Errorf(
						"component %q declares Henry's law for phase %q without a method",
						cd.Name, phaseName))
				}
				comp.Henry[phaseName] = &HenryRecord{
					Method:     hd.Method,
					Type:       hd.Type,
					Parameters: hd.Parameters,
				}
			}
		}

		pb.comps[cd.Name] = comp
		pb.compOrder = append(pb.compOrder, cd.Name)
	}

	for _, rd := range def.Reactions {
		if rd.Form == FormUnset {
			return nil, buildErr(name, fmt.Errorf("reaction %q has no concentration form", rd.Name))
		}
		// Reaction names must be unique across all three bases; the
		// concentration-term lookup assumes the first match is the only one.
		for _, rs := range []*reactionSet{&pb.rate, &pb.equilibrium, &pb.inherent} {
			if _, exists := rs.get(rd.Name); exists {
				return nil, buildErr(name, fmt.Errorf("duplicate reaction %q", rd.Name))
			}
		}
		set := &pb.rate
		switch rd.Basis {
		case EquilibriumReaction:
			set = &pb.equilibrium
		case InherentReaction:
			set = &pb.inherent
		}
		if err := set.add(&Reaction{Name: rd.Name, Form: rd.Form}); err != nil {
			return nil, buildErr(name, err)
		}
	}

	for stateName, bd := range def.StateBounds {
		entry := BoundEntry{Lower: bd.Lower, Default: bd.Default, Upper: bd.Upper}
		if bd.Unit != "" {
			u, err := units.Parse(bd.Unit)
			if err != nil {
				return nil, buildErr(name, fmt.Errorf("state bound %q: %w", stateName, err))
			}
			entry.Unit = &u
		}
		pb.stateBounds[stateName] = entry
	}

	return pb, nil
}

func applyProperties(cfg *method.Config, defs []PropertyDef) error {
	for _, pd := range defs {
		cfg.Declare(pd.Name)
		if pd.Spec != nil {
			if err := cfg.Set(pd.Name, pd.Spec); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildErr(block string, err error) error {
	return &errs.ConfigurationError{Block: block, Detail: err.Error()}
}
