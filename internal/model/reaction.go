package model

import "fmt"

// ConcentrationForm selects the physical basis used to express a reacting
// species' effective concentration.
type ConcentrationForm int

const (
	FormUnset ConcentrationForm = iota
	Molarity
	Activity
	Molality
	MoleFraction
	MassFraction
	PartialPressure
)

func (f ConcentrationForm) String() string {
	switch f {
	case Molarity:
		return "molarity"
	case Activity:
		return "activity"
	case Molality:
		return "molality"
	case MoleFraction:
		return "moleFraction"
	case MassFraction:
		return "massFraction"
	case PartialPressure:
		return "partialPressure"
	default:
		return "unset"
	}
}

// ParseConcentrationForm resolves a concentration form name as written in
// configuration.
func ParseConcentrationForm(s string) (ConcentrationForm, error) {
	switch s {
	case "molarity":
		return Molarity, nil
	case "activity":
		return Activity, nil
	case "molality":
		return Molality, nil
	case "moleFraction":
		return MoleFraction, nil
	case "massFraction":
		return MassFraction, nil
	case "partialPressure":
		return PartialPressure, nil
	default:
		return FormUnset, fmt.Errorf("unknown concentration form %q", s)
	}
}

// ReactionBasis distinguishes the three reaction configuration groups.
type ReactionBasis int

const (
	RateReaction ReactionBasis = iota
	EquilibriumReaction
	InherentReaction
)

func (b ReactionBasis) String() string {
	switch b {
	case RateReaction:
		return "rate"
	case EquilibriumReaction:
		return "equilibrium"
	case InherentReaction:
		return "inherent"
	default:
		return "unknown"
	}
}

// ParseReactionBasis resolves a reaction basis name as written in
// configuration.
func ParseReactionBasis(s string) (ReactionBasis, error) {
	switch s {
	case "rate":
		return RateReaction, nil
	case "equilibrium":
		return EquilibriumReaction, nil
	case "inherent":
		return InherentReaction, nil
	default:
		return 0, fmt.Errorf("unknown reaction basis %q", s)
	}
}

// Reaction is the record for a single declared reaction.
type Reaction struct {
	Name string
	Form ConcentrationForm
}
