package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/model"
)

func blockWithReaction(t *testing.T, basis model.ReactionBasis, form model.ConcentrationForm) *Block {
	t.Helper()
	pb, err := model.Build(model.PackageDef{
		Phases: []model.PhaseDef{
			{Name: "Liq", Kind: model.PhaseLiquid},
			{Name: "Vap", Kind: model.PhaseVapor},
		},
		Components: []model.ComponentDef{{Name: "a"}},
		Reactions:  []model.ReactionDef{{Name: "r1", Basis: basis, Form: form}},
	})
	require.NoError(t, err)
	return NewBlock(pb)
}

func TestConcentrationTermAllFormsAllBases(t *testing.T) {
	forms := []struct {
		form  model.ConcentrationForm
		plain func(*Block) *Var
		log   func(*Block) *Var
	}{
		{model.Molarity, (*Block).ConcMolPhaseComp, (*Block).LogConcMolPhaseComp},
		{model.Activity, (*Block).ActPhaseComp, (*Block).LogActPhaseComp},
		{model.Molality, (*Block).MolalityPhaseComp, (*Block).LogMolalityPhaseComp},
		{model.MoleFraction, (*Block).MoleFracPhaseComp, (*Block).LogMoleFracPhaseComp},
		{model.MassFraction, (*Block).MassFracPhaseComp, (*Block).LogMassFracPhaseComp},
		{model.PartialPressure, (*Block).PressurePhaseComp, (*Block).LogPressurePhaseComp},
	}
	bases := []model.ReactionBasis{
		model.RateReaction,
		model.EquilibriumReaction,
		model.InherentReaction,
	}

	for _, basis := range bases {
		for _, f := range forms {
			t.Run(basis.String()+"/"+f.form.String(), func(t *testing.T) {
				b := blockWithReaction(t, basis, f.form)

				got, err := ConcentrationTerm(b, "r1", false)
				require.NoError(t, err)
				assert.Same(t, f.plain(b), got)

				gotLog, err := ConcentrationTerm(b, "r1", true)
				require.NoError(t, err)
				assert.Same(t, f.log(b), gotLog)
			})
		}
	}
}

func TestConcentrationTermUnknownReaction(t *testing.T) {
	b := blockWithReaction(t, model.RateReaction, model.Molarity)

	_, err := ConcentrationTerm(b, "nope", false)
	require.Error(t, err)

	var ppe *errs.PropertyPackageError
	require.True(t, errors.As(err, &ppe))
	assert.Contains(t, err.Error(), "no reaction named nope")
}

func TestVarValues(t *testing.T) {
	b := blockWithReaction(t, model.RateReaction, model.Molarity)

	v := b.MoleFracPhaseComp()
	v.Set("Liq", "a", 0.25)
	assert.Equal(t, 0.25, v.Value("Liq", "a"))
	assert.Equal(t, 0.0, v.Value("Vap", "a"), "unset entries read as zero")
	assert.Equal(t, "mole_frac_phase_comp", v.Name())
}
