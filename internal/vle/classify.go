package vle

import (
	"fmt"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/state"
)

// Split is the partition of the component set for one VLE phase pair. The
// lists preserve component declaration order, and every component permitted
// in the liquid or vapor phase appears in exactly one of them.
type Split struct {
	LiquidPhase string
	VaporPhase  string

	// VLComps are present in both phases and follow full equilibrium.
	VLComps []string
	// HenryComps are present in both phases under Henry's law.
	HenryComps []string
	// LiquidOnly and VaporOnly exist in just one of the two phases.
	LiquidOnly []string
	VaporOnly  []string
}

// IdentifyComponents partitions the model's component set for the given
// phase pair. Exactly one phase must be liquid and the other vapor. A Henry
// registration for the liquid phase takes precedence over shared
// membership. An equilibrium with no jointly-present, non-Henry component
// is not solvable and is rejected.
func IdentifyComponents(blk *state.Block, phaseA, phaseB string) (*Split, error) {
	params := blk.Params()

	pa, err := params.Phase(phaseA)
	if err != nil {
		return nil, err
	}
	pv, err := params.Phase(phaseB)
	if err != nil {
		return nil, err
	}

	split := &Split{}
	switch {
	case pa.Kind == model.PhaseLiquid:
		if pv.Kind != model.PhaseVapor {
			return nil, vlePairError(phaseA, phaseB, fmt.Sprintf(
				"%s is liquid but %s is not vapor", phaseA, phaseB))
		}
		split.LiquidPhase, split.VaporPhase = phaseA, phaseB
	case pv.Kind == model.PhaseLiquid:
		if pa.Kind != model.PhaseVapor {
			return nil, vlePairError(phaseA, phaseB, fmt.Sprintf(
				"%s is liquid but %s is not vapor", phaseB, phaseA))
		}
		split.LiquidPhase, split.VaporPhase = phaseB, phaseA
	default:
		return nil, vlePairError(phaseA, phaseB, fmt.Sprintf(
			"neither %s nor %s is liquid", phaseA, phaseB))
	}

	for _, name := range params.ComponentNames() {
		comp, err := params.Component(name)
		if err != nil {
			return nil, err
		}

		inLiquid := comp.ValidPhases.Permits(model.PhaseLiquid)
		inVapor := comp.ValidPhases.Permits(model.PhaseVapor)

		switch {
		case comp.Henry[split.LiquidPhase] != nil:
			split.HenryComps = append(split.HenryComps, name)
		case inLiquid && inVapor:
			split.VLComps = append(split.VLComps, name)
		case inLiquid:
			split.LiquidOnly = append(split.LiquidOnly, name)
		case inVapor:
			split.VaporOnly = append(split.VaporOnly, name)
		}
	}

	if len(split.VLComps) == 0 && len(split.HenryComps) == 0 {
		return nil, vlePairError(phaseA, phaseB,
			"there are no components present in both the vapor and liquid phases simultaneously")
	}

	return split, nil
}

func vlePairError(phaseA, phaseB, detail string) error {
	return &errs.PropertyPackageError{Detail: fmt.Sprintf(
		"Phase pair %s-%s was identified as being a VLE pair, however %s.",
		phaseA, phaseB, detail)}
}
