package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flashkit/internal/method"
)

func liquidVaporDef() PackageDef {
	return PackageDef{
		Name: "params",
		Phases: []PhaseDef{
			{Name: "Liq", Kind: PhaseLiquid, EquationOfState: "ideal"},
			{Name: "Vap", Kind: PhaseVapor, EquationOfState: "ideal"},
		},
		Components: []ComponentDef{
			{Name: "a"},
			{Name: "b"},
			{Name: "c"},
		},
	}
}

func TestBuildPreservesDeclarationOrder(t *testing.T) {
	pb, err := Build(liquidVaporDef())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, pb.ComponentNames())
	assert.Equal(t, []string{"Liq", "Vap"}, pb.PhaseNames())
	assert.Equal(t, "params", pb.BlockName())
}

func TestBuildComponentLookup(t *testing.T) {
	pb, err := Build(liquidVaporDef())
	require.NoError(t, err)

	c, err := pb.Component("b")
	require.NoError(t, err)
	assert.Equal(t, "b", c.Name)

	_, err = pb.Component("zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no component "zzz"`)
}

func TestBuildPhaseLookup(t *testing.T) {
	pb, err := Build(liquidVaporDef())
	require.NoError(t, err)

	p, err := pb.Phase("Vap")
	require.NoError(t, err)
	assert.Equal(t, PhaseVapor, p.Kind)
	assert.Equal(t, "ideal", p.EquationOfState)

	_, err = pb.Phase("Sol")
	require.Error(t, err)
}

func TestBuildRejectsDuplicates(t *testing.T) {
	def := liquidVaporDef()
	def.Components = append(def.Components, ComponentDef{Name: "a"})
	_, err := Build(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate component "a"`)

	def = liquidVaporDef()
	def.Phases = append(def.Phases, PhaseDef{Name: "Liq", Kind: PhaseLiquid})
	_, err = Build(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate phase "Liq"`)
}

func TestBuildRejectsUntypedPhase(t *testing.T) {
	def := liquidVaporDef()
	def.Phases[0].Kind = PhaseUnknown
	_, err := Build(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no phase type")
}

func TestBuildHenryValidation(t *testing.T) {
	spec := method.FuncSpec(func() float64 { return 86 })

	t.Run("valid registration", func(t *testing.T) {
		def := liquidVaporDef()
		def.Components[0].Henry = map[string]HenryDef{
			"Liq": {Method: spec, Type: HenryKpx},
		}
		pb, err := Build(def)
		require.NoError(t, err)

		c, err := pb.Component("a")
		require.NoError(t, err)
		require.Contains(t, c.Henry, "Liq")
		assert.Equal(t, HenryKpx, c.Henry["Liq"].Type)
	})

	t.Run("undefined phase", func(t *testing.T) {
		def := liquidVaporDef()
		def.Components[0].Henry = map[string]HenryDef{
			"Aq": {Method: spec, Type: HenryKpx},
		}
		_, err := Build(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "undefined phase")
	})

	t.Run("non-liquid phase", func(t *testing.T) {
		def := liquidVaporDef()
		def.Components[0].Henry = map[string]HenryDef{
			"Vap": {Method: spec, Type: HenryKpx},
		}
		_, err := Build(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not liquid")
	})

	t.Run("missing method", func(t *testing.T) {
		def := liquidVaporDef()
		def.Components[0].Henry = map[string]HenryDef{
			"Liq": {Type: HenryKpx},
		}
		_, err := Build(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "without a method")
	})
}

func TestBuildReactions(t *testing.T) {
	def := liquidVaporDef()
	def.Reactions = []ReactionDef{
		{Name: "r1", Basis: RateReaction, Form: Molarity},
		{Name: "e1", Basis: EquilibriumReaction, Form: Activity},
		{Name: "i1", Basis: InherentReaction, Form: MoleFraction},
	}
	pb, err := Build(def)
	require.NoError(t, err)

	r, ok := pb.RateReaction("r1")
	require.True(t, ok)
	assert.Equal(t, Molarity, r.Form)

	e, ok := pb.EquilibriumReaction("e1")
	require.True(t, ok)
	assert.Equal(t, Activity, e.Form)

	i, ok := pb.InherentReaction("i1")
	require.True(t, ok)
	assert.Equal(t, MoleFraction, i.Form)

	_, ok = pb.RateReaction("e1")
	assert.False(t, ok)
}

func TestBuildRejectsCrossBasisDuplicateReaction(t *testing.T) {
	def := liquidVaporDef()
	def.Reactions = []ReactionDef{
		{Name: "r1", Basis: RateReaction, Form: Molarity},
		{Name: "r1", Basis: InherentReaction, Form: Activity},
	}
	_, err := Build(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate reaction "r1"`)
}

func TestBuildRejectsFormlessReaction(t *testing.T) {
	def := liquidVaporDef()
	def.Reactions = []ReactionDef{{Name: "r1", Basis: RateReaction}}
	_, err := Build(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no concentration form")
}

func TestBuildPropertyConfigs(t *testing.T) {
	def := liquidVaporDef()
	def.Properties = []PropertyDef{{Name: "test_arg"}}
	def.Components[0].Methods = []PropertyDef{
		{Name: "pressure_sat_comp", Spec: method.FuncSpec(func() string { return "bar" })},
	}
	pb, err := Build(def)
	require.NoError(t, err)

	// Declared-but-unset at package level.
	spec, declared := pb.PropertyConfig().Option("test_arg")
	assert.True(t, declared)
	assert.Nil(t, spec)

	cfg, err := pb.ComponentConfig("a")
	require.NoError(t, err)
	spec, declared = cfg.Option("pressure_sat_comp")
	assert.True(t, declared)
	assert.NotNil(t, spec)
}

func TestPhaseSetPermits(t *testing.T) {
	assert.True(t, PhaseSet(0).Permits(PhaseLiquid), "zero value permits all phases")
	assert.True(t, PhaseSet(0).Permits(PhaseSolid))

	liq := PhaseSetOf(PhaseLiquid)
	assert.True(t, liq.Permits(PhaseLiquid))
	assert.False(t, liq.Permits(PhaseVapor))

	lv := PhaseSetOf(PhaseLiquid, PhaseVapor)
	assert.True(t, lv.Permits(PhaseVapor))
	assert.False(t, lv.Permits(PhaseSolid))
}

func TestParsers(t *testing.T) {
	k, err := ParsePhaseKind("vapor")
	require.NoError(t, err)
	assert.Equal(t, PhaseVapor, k)
	_, err = ParsePhaseKind("plasma")
	require.Error(t, err)

	h, err := ParseHenryType("Kpx")
	require.NoError(t, err)
	assert.Equal(t, HenryKpx, h)
	_, err = ParseHenryType("Qqq")
	require.Error(t, err)

	b, err := ParseReactionBasis("inherent")
	require.NoError(t, err)
	assert.Equal(t, InherentReaction, b)
	_, err = ParseReactionBasis("bulk")
	require.Error(t, err)

	f, err := ParseConcentrationForm("partialPressure")
	require.NoError(t, err)
	assert.Equal(t, PartialPressure, f)
	_, err = ParseConcentrationForm("fugacity")
	require.Error(t, err)
}
