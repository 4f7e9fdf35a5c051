// Package testutil provides shared property-package fixtures for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/flashkit/internal/method"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/state"
	"github.com/vk/flashkit/modules/henryconst"
	"github.com/vk/flashkit/modules/nist"
)

// WaterDef is a pure-water property package with the NIST saturation
// pressure correlation, the same parameterization the reference
// bubble/dew numbers are derived from.
func WaterDef() model.PackageDef {
	return model.PackageDef{
		Name: "params",
		Phases: []model.PhaseDef{
			{Name: "Liq", Kind: model.PhaseLiquid, EquationOfState: "ideal"},
			{Name: "Vap", Kind: model.PhaseVapor, EquationOfState: "ideal"},
		},
		Components: []model.ComponentDef{
			{
				Name: "H2O",
				Methods: []model.PropertyDef{
					{Name: "pressure_sat_comp", Spec: method.ProviderSpec(nist.Correlation{})},
				},
				Parameters: map[string]float64{
					"temperature_crit":          647,
					"pressure_crit":             220.6e5,
					"omega":                     0.344,
					"pressure_sat_comp_coeff.A": 3.55959,
					"pressure_sat_comp_coeff.B": 643.748,
					"pressure_sat_comp_coeff.C": -198.043,
				},
			},
		},
		StateBounds: map[string]model.BoundDef{
			"flow_mol":    {Lower: 0, Default: 100, Upper: 1000, Unit: "mol/s"},
			"temperature": {Lower: 273.15, Default: 300, Upper: 500, Unit: "K"},
			"pressure":    {Lower: 5e4, Default: 1e5, Upper: 1e6, Unit: "Pa"},
		},
		PressureRef:    101325,
		TemperatureRef: 298.15,
	}
}

// WaterBlock builds the pure-water package and returns a state block with
// unit water mole fraction.
func WaterBlock(t *testing.T) *state.Block {
	t.Helper()
	pb, err := model.Build(WaterDef())
	require.NoError(t, err)

	blk := state.NewBlock(pb)
	blk.MoleFrac["H2O"] = 1.0
	return blk
}

// BlockFor builds an arbitrary package definition and returns a fresh
// state block over it.
func BlockFor(t *testing.T, def model.PackageDef) *state.Block {
	t.Helper()
	pb, err := model.Build(def)
	require.NoError(t, err)
	return state.NewBlock(pb)
}

// HenrySpec is a constant-coefficient Henry's-law registration for use in
// component definitions.
func HenrySpec(henryRef float64) model.HenryDef {
	return model.HenryDef{
		Method:     method.ProviderSpec(henryconst.Coefficient{}),
		Type:       model.HenryKpx,
		Parameters: map[string]float64{"henry_ref": henryRef},
	}
}
