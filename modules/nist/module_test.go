package nist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flashkit/internal/errs"
	"github.com/vk/flashkit/internal/registry"
	"github.com/vk/flashkit/internal/testutil"
	"github.com/vk/flashkit/modules/nist"
)

func TestPressureSatCompWater(t *testing.T) {
	blk := testutil.WaterBlock(t)
	c, err := blk.Params().Component("H2O")
	require.NoError(t, err)

	p, err := nist.Correlation{}.PressureSatComp(blk, c, 373.15)
	require.NoError(t, err)
	assert.InEpsilon(t, 76432.45, p, 1e-6)
}

func TestPressureSatCompMissingCoefficient(t *testing.T) {
	def := testutil.WaterDef()
	delete(def.Components[0].Parameters, "pressure_sat_comp_coeff.B")
	blk := testutil.BlockFor(t, def)
	c, err := blk.Params().Component("H2O")
	require.NoError(t, err)

	_, err = nist.Correlation{}.PressureSatComp(blk, c, 373.15)
	require.Error(t, err)

	var cfg *errs.ConfigurationError
	require.True(t, errors.As(err, &cfg))
	assert.Contains(t, err.Error(), "pressure_sat_comp_coeff.B")
}

func TestModuleRegistersCorrelation(t *testing.T) {
	r := registry.New()
	(&nist.Module{}).Register(r)

	v, ok := r.Method("nist")
	require.True(t, ok)
	assert.IsType(t, nist.Correlation{}, v)
}
