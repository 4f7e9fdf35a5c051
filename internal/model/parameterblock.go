package model

import (
	"fmt"

	"github.com/vk/flashkit/internal/method"
	"github.com/vk/flashkit/internal/units"
)

// BoundEntry is a declarative (lower, default, upper) bound for one state
// variable, optionally tagged with the unit the numbers are written in.
type BoundEntry struct {
	Lower   float64
	Default float64
	Upper   float64
	Unit    *units.Unit
}

// reactionSet is an ordered reaction map for one basis.
type reactionSet struct {
	order []string
	m     map[string]*Reaction
}

func (rs *reactionSet) add(r *Reaction) error {
	if _, exists := rs.m[r.Name]; exists {
		return fmt.Errorf("duplicate reaction %q", r.Name)
	}
	rs.m[r.Name] = r
	rs.order = append(rs.order, r.Name)
	return nil
}

func (rs *reactionSet) get(name string) (*Reaction, bool) {
	r, ok := rs.m[name]
	return r, ok
}

// ParameterBlock is the immutable container for a fully built property
// package.
type ParameterBlock struct {
	name   string
	config *method.Config

	compOrder []string
	comps     map[string]*Component

	phaseOrder []string
	phases     map[string]*Phase

	rate        reactionSet
	equilibrium reactionSet
	inherent    reactionSet

	stateBounds map[string]BoundEntry

	PressureRef    float64
	TemperatureRef float64
}

// BlockName identifies the block in diagnostics.
func (pb *ParameterBlock) BlockName() string {
	return pb.name
}

// PropertyConfig returns the block's own property configuration.
func (pb *ParameterBlock) PropertyConfig() *method.Config {
	return pb.config
}

// Component returns the named component record.
func (pb *ParameterBlock) Component(name string) (*Component, error) {
	c, ok := pb.comps[name]
	if !ok {
		return nil, fmt.Errorf("property package %s has no component %q", pb.name, name)
	}
	return c, nil
}

// ComponentConfig returns the named component's property configuration.
func (pb *ParameterBlock) ComponentConfig(name string) (*method.Config, error) {
	c, err := pb.Component(name)
	if err != nil {
		return nil, err
	}
	return c.Config, nil
}

// Phase returns the named phase record.
func (pb *ParameterBlock) Phase(name string) (*Phase, error) {
	p, ok := pb.phases[name]
	if !ok {
		return nil, fmt.Errorf("property package %s has no phase %q", pb.name, name)
	}
	return p, nil
}

// PhaseConfig returns the named phase's property configuration.
func (pb *ParameterBlock) PhaseConfig(name string) (*method.Config, error) {
	p, err := pb.Phase(name)
	if err != nil {
		return nil, err
	}
	return p.Config, nil
}

// ComponentNames returns component names in declaration order.
func (pb *ParameterBlock) ComponentNames() []string {
	out := make([]string, len(pb.compOrder))
	copy(out, pb.compOrder)
	return out
}

// PhaseNames returns phase names in declaration order.
func (pb *ParameterBlock) PhaseNames() []string {
	out := make([]string, len(pb.phaseOrder))
	copy(out, pb.phaseOrder)
	return out
}

// RateReaction returns the named rate reaction, if declared.
func (pb *ParameterBlock) RateReaction(name string) (*Reaction, bool) {
	return pb.rate.get(name)
}

// EquilibriumReaction returns the named equilibrium reaction, if declared.
func (pb *ParameterBlock) EquilibriumReaction(name string) (*Reaction, bool) {
	return pb.equilibrium.get(name)
}

// InherentReaction returns the named inherent reaction, if declared.
func (pb *ParameterBlock) InherentReaction(name string) (*Reaction, bool) {
	return pb.inherent.get(name)
}

// StateBound returns the declared bound entry for a state variable.
func (pb *ParameterBlock) StateBound(name string) (BoundEntry, bool) {
	e, ok := pb.stateBounds[name]
	return e, ok
}
