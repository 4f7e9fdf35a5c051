package vle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/method"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/state"
	"github.com/vk/flashkit/modules/henryconst"
)

func henryDef(phase string) map[string]model.HenryDef {
	return map[string]model.HenryDef{
		phase: {
			Method:     method.ProviderSpec(henryconst.Coefficient{}),
			Type:       model.HenryKpx,
			Parameters: map[string]float64{"henry_ref": 86},
		},
	}
}

func threePhaseDef(comps ...model.ComponentDef) model.PackageDef {
	return model.PackageDef{
		Name: "params",
		Phases: []model.PhaseDef{
			{Name: "p1", Kind: model.PhaseLiquid, EquationOfState: "ideal"},
			{Name: "p2", Kind: model.PhaseVapor, EquationOfState: "ideal"},
			{Name: "p3", Kind: model.PhaseSolid, EquationOfState: "ideal"},
		},
		Components: comps,
	}
}

func blockFor(t *testing.T, def model.PackageDef) *state.Block {
	t.Helper()
	pb, err := model.Build(def)
	require.NoError(t, err)
	return state.NewBlock(pb)
}

func TestIdentifyComponentsInvalidPair(t *testing.T) {
	blk := blockFor(t, threePhaseDef(
		model.ComponentDef{Name: "a"},
	))

	_, err := IdentifyComponents(blk, "p1", "p3")
	require.Error(t, err)
	var ppe *errs.PropertyPackageError
	require.True(t, errors.As(err, &ppe))
	assert.Equal(t,
		"Phase pair p1-p3 was identified as being a VLE pair, "+
			"however p1 is liquid but p3 is not vapor.",
		err.Error())

	_, err = IdentifyComponents(blk, "p2", "p3")
	require.Error(t, err)
	assert.Equal(t,
		"Phase pair p2-p3 was identified as being a VLE pair, "+
			"however neither p2 nor p3 is liquid.",
		err.Error())
}

func TestIdentifyComponentsUnknownPhase(t *testing.T) {
	blk := blockFor(t, threePhaseDef(model.ComponentDef{Name: "a"}))

	_, err := IdentifyComponents(blk, "p1", "p9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no phase "p9"`)
}

func TestIdentifyComponentsAllShared(t *testing.T) {
	blk := blockFor(t, threePhaseDef(
		model.ComponentDef{Name: "a"},
		model.ComponentDef{Name: "b"},
		model.ComponentDef{Name: "c"},
	))

	split, err := IdentifyComponents(blk, "p1", "p2")
	require.NoError(t, err)

	assert.Equal(t, "p1", split.LiquidPhase)
	assert.Equal(t, "p2", split.VaporPhase)
	assert.Empty(t, cmp.Diff([]string{"a", "b", "c"}, split.VLComps))
	assert.Empty(t, split.HenryComps)
	assert.Empty(t, split.LiquidOnly)
	assert.Empty(t, split.VaporOnly)
}

func TestIdentifyComponentsReversedPair(t *testing.T) {
	blk := blockFor(t, threePhaseDef(model.ComponentDef{Name: "a"}))

	split, err := IdentifyComponents(blk, "p2", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", split.LiquidPhase)
	assert.Equal(t, "p2", split.VaporPhase)
}

func TestIdentifyComponentsAllTypes(t *testing.T) {
	blk := blockFor(t, threePhaseDef(
		model.ComponentDef{Name: "a"},
		model.ComponentDef{Name: "b", ValidPhases: model.PhaseSetOf(model.PhaseLiquid)},
		model.ComponentDef{Name: "c", ValidPhases: model.PhaseSetOf(model.PhaseVapor)},
		model.ComponentDef{Name: "d", ValidPhases: model.PhaseSetOf(model.PhaseSolid)},
		model.ComponentDef{Name: "e", Henry: henryDef("p1")},
	))

	split, err := IdentifyComponents(blk, "p1", "p2")
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff([]string{"a"}, split.VLComps))
	assert.Empty(t, cmp.Diff([]string{"e"}, split.HenryComps))
	assert.Empty(t, cmp.Diff([]string{"b"}, split.LiquidOnly))
	assert.Empty(t, cmp.Diff([]string{"c"}, split.VaporOnly))
}

func TestIdentifyComponentsHenryOnly(t *testing.T) {
	blk := blockFor(t, threePhaseDef(
		model.ComponentDef{Name: "b", ValidPhases: model.PhaseSetOf(model.PhaseLiquid)},
		model.ComponentDef{Name: "c", ValidPhases: model.PhaseSetOf(model.PhaseVapor)},
		model.ComponentDef{Name: "d", ValidPhases: model.PhaseSetOf(model.PhaseSolid)},
		model.ComponentDef{Name: "e", Henry: henryDef("p1")},
	))

	split, err := IdentifyComponents(blk, "p1", "p2")
	require.NoError(t, err)

	assert.Empty(t, split.VLComps)
	assert.Empty(t, cmp.Diff([]string{"e"}, split.HenryComps))
	assert.Empty(t, cmp.Diff([]string{"b"}, split.LiquidOnly))
	assert.Empty(t, cmp.Diff([]string{"c"}, split.VaporOnly))
}

func TestIdentifyComponentsNoVLEComponents(t *testing.T) {
	blk := blockFor(t, threePhaseDef(
		model.ComponentDef{Name: "b", ValidPhases: model.PhaseSetOf(model.PhaseLiquid)},
		model.ComponentDef{Name: "c", ValidPhases: model.PhaseSetOf(model.PhaseVapor)},
		model.ComponentDef{Name: "d", ValidPhases: model.PhaseSetOf(model.PhaseSolid)},
	))

	_, err := IdentifyComponents(blk, "p1", "p2")
	require.Error(t, err)
	var ppe *errs.PropertyPackageError
	require.True(t, errors.As(err, &ppe))
	assert.Equal(t,
		"Phase pair p1-p2 was identified as being a VLE pair, "+
			"however there are no components present in both "+
			"the vapor and liquid phases simultaneously.",
		err.Error())
}

// A Henry registration is scoped to one liquid phase: the same component
// classifies as Henry in the pair whose liquid phase carries the
// registration, and as shared in a pair whose liquid phase does not.
func TestIdentifyComponentsHenryPrecedencePerPhasePair(t *testing.T) {
	def := model.PackageDef{
		Name: "params",
		Phases: []model.PhaseDef{
			{Name: "p1", Kind: model.PhaseLiquid, EquationOfState: "ideal"},
			{Name: "p2", Kind: model.PhaseVapor, EquationOfState: "ideal"},
			{Name: "p4", Kind: model.PhaseLiquid, EquationOfState: "ideal"},
		},
		Components: []model.ComponentDef{
			{Name: "a"},
			{Name: "e", Henry: henryDef("p1")},
		},
	}
	blk := blockFor(t, def)

	split, err := IdentifyComponents(blk, "p1", "p2")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"a"}, split.VLComps))
	assert.Empty(t, cmp.Diff([]string{"e"}, split.HenryComps))

	split, err = IdentifyComponents(blk, "p4", "p2")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"a", "e"}, split.VLComps))
	assert.Empty(t, split.HenryComps)
}

// Every component permitted in either phase lands in exactly one list and
// the union (in declaration order, by construction) recovers them all.
func TestIdentifyComponentsPartition(t *testing.T) {
	blk := blockFor(t, threePhaseDef(
		model.ComponentDef{Name: "a"},
		model.ComponentDef{Name: "b", ValidPhases: model.PhaseSetOf(model.PhaseLiquid)},
		model.ComponentDef{Name: "c", ValidPhases: model.PhaseSetOf(model.PhaseVapor)},
		model.ComponentDef{Name: "e", Henry: henryDef("p1")},
		model.ComponentDef{Name: "f", ValidPhases: model.PhaseSetOf(model.PhaseLiquid, model.PhaseVapor)},
	))

	split, err := IdentifyComponents(blk, "p1", "p2")
	require.NoError(t, err)

	seen := map[string]int{}
	for _, list := range [][]string{split.VLComps, split.HenryComps, split.LiquidOnly, split.VaporOnly} {
		for _, c := range list {
			seen[c]++
		}
	}
	for _, c := range []string{"a", "b", "c", "e", "f"} {
		assert.Equal(t, 1, seen[c], "component %s must appear exactly once", c)
	}
}
