package method

import (
	"fmt"

	"github.com/vk/flashkit/internal/errs"
)

// Container is the view of a parameter block the resolver needs: its own
// property configuration plus access to the sub-configurations of its
// components and phases.
type Container interface {
	BlockName() string
	PropertyConfig() *Config
	ComponentConfig(name string) (*Config, error)
	PhaseConfig(name string) (*Config, error)
}

// Invokable is a resolved calculation strategy. Callers assert it to the
// function signature contracted for the property being evaluated.
type Invokable any

// Get resolves a property to its configured strategy. With comp the
// property is read from that component's sub-configuration, otherwise from
// the container's own configuration. With phase a phase-keyed specification
// is indexed by phase name. Empty strings leave the corresponding scope
// unused.
func Get(c Container, property, phase, comp string) (Invokable, error) {
	cfg := c.PropertyConfig()
	if comp != "" {
		var err error
		if cfg, err = c.ComponentConfig(comp); err != nil {
			return nil, err
		}
	}
	return resolve(cfg, c.BlockName(), property, phase)
}

// GetPhase resolves a property from a phase record's own configuration.
func GetPhase(c Container, property, phase string) (Invokable, error) {
	cfg, err := c.PhaseConfig(phase)
	if err != nil {
		return nil, err
	}
	return resolve(cfg, c.BlockName(), property, "")
}

func resolve(cfg *Config, block, property, phase string) (Invokable, error) {
	spec, declared := cfg.Option(property)
	if !declared {
		return nil, &errs.UnknownOptionError{Block: block, Option: property}
	}
	if spec == nil {
		return nil, &errs.MissingMethodError{Block: block, Property: property}
	}

	if phase != "" {
		if ps, keyed := spec.forPhase(phase); keyed {
			if ps == nil {
				return nil, &errs.MissingMethodError{Block: block, Property: property + " for phase " + phase}
			}
			spec = ps
		}
	}

	inv, err := spec.Invokable(property)
	if err != nil {
		return nil, &errs.ConfigurationError{
			Block: block,
			Detail: fmt.Sprintf(
				"received invalid value for argument %s. Value must be a "+
					"function, a type with a method named %s or "+
					"ReturnExpression, or a package containing one of the "+
					"previous (%v).",
				property, ExportedName(property), err),
		}
	}
	return inv, nil
}
