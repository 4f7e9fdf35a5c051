package app

import (
	"context"
	"fmt"

	"github.com/vk/flashkit/internal/ctxlog"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/state"
	"github.com/vk/flashkit/internal/units"
	"github.com/vk/flashkit/internal/vle"
)

// Run builds a state block from the configuration and prints bubble and
// dew point estimates for the selected phase pair.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	liq, vap, err := a.phasePair(cfg)
	if err != nil {
		return err
	}
	a.logger.Debug("Phase pair selected.", "liquid", liq, "vapor", vap)

	blk := state.NewBlock(a.params)
	blk.Pressure = cfg.Pressure
	blk.Temperature = cfg.Temperature
	for comp, x := range cfg.MoleFracs {
		if _, err := a.params.Component(comp); err != nil {
			return err
		}
		blk.MoleFrac[comp] = x
	}

	split, err := vle.IdentifyComponents(blk, liq, vap)
	if err != nil {
		return fmt.Errorf("failed to classify components: %w", err)
	}
	a.logger.Debug("Components classified.",
		"equilibrium", split.VLComps, "henry", split.HenryComps,
		"liquid_only", split.LiquidOnly, "vapor_only", split.VaporOnly)

	Pbub, err := vle.EstimatePbub(ctx, blk, split.VLComps, split.HenryComps, split.LiquidPhase)
	if err != nil {
		return fmt.Errorf("bubble pressure estimate failed: %w", err)
	}
	Pdew, err := vle.EstimatePdew(ctx, blk, split.VLComps, split.HenryComps, split.LiquidPhase)
	if err != nil {
		return fmt.Errorf("dew pressure estimate failed: %w", err)
	}
	Tbub, err := vle.EstimateTbub(ctx, blk, units.Kelvin, split.VLComps, split.HenryComps, split.LiquidPhase)
	if err != nil {
		return fmt.Errorf("bubble temperature estimate failed: %w", err)
	}
	Tdew, err := vle.EstimateTdew(ctx, blk, units.Kelvin, split.VLComps, split.HenryComps, split.LiquidPhase)
	if err != nil {
		return fmt.Errorf("dew temperature estimate failed: %w", err)
	}

	fmt.Fprintf(a.outW, "Property package: %s (phases %s/%s)\n",
		a.params.BlockName(), liq, vap)
	fmt.Fprintf(a.outW, "At T = %.2f K:\n", blk.Temperature)
	fmt.Fprintf(a.outW, "  bubble pressure    = %.2f Pa\n", Pbub)
	fmt.Fprintf(a.outW, "  dew pressure       = %.2f Pa\n", Pdew)
	fmt.Fprintf(a.outW, "At P = %.2f Pa:\n", blk.Pressure)
	fmt.Fprintf(a.outW, "  bubble temperature = %.2f K\n", Tbub)
	fmt.Fprintf(a.outW, "  dew temperature    = %.2f K\n", Tdew)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// phasePair resolves the configured liquid/vapor phase names, defaulting
// to the first declared phase of each kind.
func (a *App) phasePair(cfg *Config) (string, string, error) {
	liq, vap := cfg.LiquidPhase, cfg.VaporPhase
	for _, name := range a.params.PhaseNames() {
		ph, err := a.params.Phase(name)
		if err != nil {
			return "", "", err
		}
		if liq == "" && ph.Kind == model.PhaseLiquid {
			liq = name
		}
		if vap == "" && ph.Kind == model.PhaseVapor {
			vap = name
		}
	}
	if liq == "" || vap == "" {
		return "", "", fmt.Errorf(
			"property package %s does not declare a liquid and a vapor phase",
			a.params.BlockName())
	}
	return liq, vap, nil
}
