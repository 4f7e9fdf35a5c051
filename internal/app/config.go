package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PackagePath string // property package hcl file

	Pressure    float64 // Pa
	Temperature float64 // K
	MoleFracs   map[string]float64

	// LiquidPhase and VaporPhase select the phase pair to initialize.
	// Empty values pick the first liquid and first vapor phase of the
	// package.
	LiquidPhase string
	VaporPhase  string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PackagePath == "" {
		return nil, errors.New("PackagePath is a required configuration field and cannot be empty")
	}
	if cfg.Pressure <= 0 {
		return nil, fmt.Errorf("pressure must be positive, got %g", cfg.Pressure)
	}
	if cfg.Temperature <= 0 {
		return nil, fmt.Errorf("temperature must be positive, got %g", cfg.Temperature)
	}
	if len(cfg.MoleFracs) == 0 {
		return nil, errors.New("at least one component mole fraction is required")
	}
	for comp, x := range cfg.MoleFracs {
		if x < 0 {
			return nil, fmt.Errorf("mole fraction of %s must be non-negative, got %g", comp, x)
		}
	}
	return &cfg, nil
}
