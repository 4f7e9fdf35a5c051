package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/flashkit/internal/ctxlog"
	"github.com/vk/flashkit/internal/model"
)

// Validate performs a parity check between a loaded property package and
// the registered implementations: every phase must reference a registered
// equation of state. Specs inside the model were already bound against the
// registry at load time, so dangling method names cannot survive to this
// point; the equation-of-state tags are plain strings and are checked here.
func (r *Registry) Validate(ctx context.Context, pb *model.ParameterBlock) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, name := range pb.PhaseNames() {
		ph, err := pb.Phase(name)
		if err != nil {
			return err
		}
		if ph.EquationOfState == "" {
			errs = append(errs, fmt.Sprintf("phase '%s': no equation of state configured", name))
			continue
		}
		if !r.HasEquationOfState(ph.EquationOfState) {
			errs = append(errs, fmt.Sprintf(
				"phase '%s': equation of state '%s' is not registered",
				name, ph.EquationOfState))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "phases", len(pb.PhaseNames()))
	return nil
}
