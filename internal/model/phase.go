package model

import (
	"fmt"

	"github.com/vk/flashkit/internal/method"
)

// PhaseKind tags a phase as liquid, vapor or solid.
type PhaseKind int

const (
	PhaseUnknown PhaseKind = iota
	PhaseLiquid
	PhaseVapor
	PhaseSolid
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseLiquid:
		return "liquid"
	case PhaseVapor:
		return "vapor"
	case PhaseSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// ParsePhaseKind resolves a phase type name as written in configuration.
func ParsePhaseKind(s string) (PhaseKind, error) {
	switch s {
	case "liquid":
		return PhaseLiquid, nil
	case "vapor":
		return PhaseVapor, nil
	case "solid":
		return PhaseSolid, nil
	default:
		return PhaseUnknown, fmt.Errorf("unknown phase type %q", s)
	}
}

// PhaseSet is a component's valid-phase-type restriction. The zero value
// means no restriction: the component may exist in all phases.
type PhaseSet uint8

const (
	LiquidPhases PhaseSet = 1 << iota
	VaporPhases
	SolidPhases
)

// PhaseSetOf builds a restriction from phase kinds.
func PhaseSetOf(kinds ...PhaseKind) PhaseSet {
	var s PhaseSet
	for _, k := range kinds {
		switch k {
		case PhaseLiquid:
			s |= LiquidPhases
		case PhaseVapor:
			s |= VaporPhases
		case PhaseSolid:
			s |= SolidPhases
		}
	}
	return s
}

// Permits reports whether the restriction allows the given phase kind.
func (s PhaseSet) Permits(k PhaseKind) bool {
	if s == 0 {
		return true
	}
	switch k {
	case PhaseLiquid:
		return s&LiquidPhases != 0
	case PhaseVapor:
		return s&VaporPhases != 0
	case PhaseSolid:
		return s&SolidPhases != 0
	default:
		return false
	}
}

// Phase is the record for a single phase of the model.
type Phase struct {
	Name            string
	Kind            PhaseKind
	EquationOfState string
	Config          *method.Config
}
