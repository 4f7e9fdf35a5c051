package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterHCL = `
property_package "water" {
  phase "Liq" {
    type              = "liquid"
    equation_of_state = "ideal"
  }

  phase "Vap" {
    type              = "vapor"
    equation_of_state = "ideal"
  }

  component "H2O" {
    method "pressure_sat_comp" {
      use = "nist"
    }

    parameter_data = {
      temperature_crit = 647
      pressure_sat_comp_coeff = {
        A = 3.55959
        B = 643.748
        C = -198.043
      }
    }
  }
}
`

func writePackage(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func waterConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(Config{
		PackagePath: writePackage(t, waterHCL),
		Pressure:    101325,
		Temperature: 373.15,
		MoleFracs:   map[string]float64{"H2O": 1.0},
		LogFormat:   "text",
		LogLevel:    "error",
	})
	require.NoError(t, err)
	return cfg
}

func TestNewLoggerLevels(t *testing.T) {
	var out bytes.Buffer

	logger := newLogger("warn", "text", &out)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	// An unvalidated empty level defaults to info.
	logger = newLogger("", "json", &out)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewAppLoadsPackage(t *testing.T) {
	var out bytes.Buffer
	a := NewApp(&out, waterConfig(t))

	assert.Equal(t, "water", a.Params().BlockName())
	_, ok := a.Registry().Method("nist")
	assert.True(t, ok)
}

func TestRunPrintsEstimates(t *testing.T) {
	var out bytes.Buffer
	cfg := waterConfig(t)
	a := NewApp(&out, cfg)

	require.NoError(t, a.Run(context.Background(), cfg))

	output := out.String()
	assert.Contains(t, output, "bubble pressure    = 76432.45 Pa")
	assert.Contains(t, output, "bubble temperature = 379.18 K")
}

func TestNewAppPanicsOnUnregisteredEquationOfState(t *testing.T) {
	path := writePackage(t, `
property_package "p" {
  phase "Liq" {
    type              = "liquid"
    equation_of_state = "cubic"
  }
}
`)
	cfg, err := NewConfig(Config{
		PackagePath: path,
		Pressure:    101325,
		Temperature: 300,
		MoleFracs:   map[string]float64{"a": 1.0},
		LogLevel:    "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	assert.Panics(t, func() { NewApp(&out, cfg) })
}

func TestRunUnknownComponent(t *testing.T) {
	var out bytes.Buffer
	cfg := waterConfig(t)
	cfg.MoleFracs = map[string]float64{"N2": 1.0}
	a := NewApp(&out, cfg)

	err := a.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no component "N2"`)
}

func TestPhasePairRequiresBothKinds(t *testing.T) {
	path := writePackage(t, `
property_package "p" {
  phase "Liq" {
    type              = "liquid"
    equation_of_state = "ideal"
  }
}
`)
	cfg, err := NewConfig(Config{
		PackagePath: path,
		Pressure:    101325,
		Temperature: 300,
		MoleFracs:   map[string]float64{"a": 1.0},
		LogLevel:    "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	a := NewApp(&out, cfg)
	err = a.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "liquid and a vapor phase")
}
