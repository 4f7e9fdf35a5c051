package state

import (
	"fmt"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/model"
)

// accessorPair maps one concentration form to its plain and logarithmic
// state variable accessors.
type accessorPair struct {
	plain func(*Block) *Var
	log   func(*Block) *Var
}

// concAccessors is the closed enum-to-variable table. Every form the model
// can declare has exactly one entry here.
var concAccessors = map[model.ConcentrationForm]accessorPair{
	model.Molarity:        {plain: (*Block).ConcMolPhaseComp, log: (*Block).LogConcMolPhaseComp},
	model.Activity:        {plain: (*Block).ActPhaseComp, log: (*Block).LogActPhaseComp},
	model.Molality:        {plain: (*Block).MolalityPhaseComp, log: (*Block).LogMolalityPhaseComp},
	model.MoleFraction:    {plain: (*Block).MoleFracPhaseComp, log: (*Block).LogMoleFracPhaseComp},
	model.MassFraction:    {plain: (*Block).MassFracPhaseComp, log: (*Block).LogMassFracPhaseComp},
	model.PartialPressure: {plain: (*Block).PressurePhaseComp, log: (*Block).LogPressurePhaseComp},
}

// ConcentrationTerm returns the state variable expressing the effective
// concentration for the named reaction, per the reaction's declared
// concentration form. Reactions are searched rate, then equilibrium, then
// inherent; names are unique across all three in a well-formed model, so
// the first match wins. With log the logarithmic counterpart is returned.
func ConcentrationTerm(b *Block, reactionName string, log bool) (*Var, error) {
	rxn, ok := b.params.RateReaction(reactionName)
	if !ok {
		rxn, ok = b.params.EquilibriumReaction(reactionName)
	}
	if !ok {
		rxn, ok = b.params.InherentReaction(reactionName)
	}
	if !ok {
		return nil, &errs.PropertyPackageError{Detail: fmt.Sprintf(
			"%s has no reaction named %s in its rate, equilibrium or "+
				"inherent reaction configuration",
			b.params.BlockName(), reactionName)}
	}

	pair, ok := concAccessors[rxn.Form]
	if !ok {
		// The enum is closed; an unmapped form means the model was built
		// outside the validated constructors.
		panic(fmt.Sprintf("state: unmapped concentration form %v for reaction %s",
			rxn.Form, reactionName))
	}

	if log {
		return pair.log(b), nil
	}
	return pair.plain(b), nil
}
