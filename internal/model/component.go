package model

import (
	"fmt"

	"github.com/vk/flashkit/internal/method"
)

// HenryType tags the basis of a Henry's-law constant.
type HenryType int

const (
	HenryNone HenryType = iota
	HenryHcp
	HenryHxp
	HenryKpc
	HenryKpx
)

func (h HenryType) String() string {
	switch h {
	case HenryHcp:
		return "Hcp"
	case HenryHxp:
		return "Hxp"
	case HenryKpc:
		return "Kpc"
	case HenryKpx:
		return "Kpx"
	default:
		return "none"
	}
}

// ParseHenryType resolves a Henry's-law type name as written in configuration.
func ParseHenryType(s string) (HenryType, error) {
	switch s {
	case "Hcp":
		return HenryHcp, nil
	case "Hxp":
		return HenryHxp, nil
	case "Kpc":
		return HenryKpc, nil
	case "Kpx":
		return HenryKpx, nil
	default:
		return HenryNone, fmt.Errorf("unknown Henry's law type %q", s)
	}
}

// HenryRecord registers a component for Henry's-law treatment in one
// liquid phase.
type HenryRecord struct {
	Method     *method.Spec
	Type       HenryType
	Parameters map[string]float64
}

// Component is the record for a single chemical species.
type Component struct {
	Name string

	// ValidPhases restricts which phase kinds the component may exist in.
	// The zero value permits all phases.
	ValidPhases PhaseSet

	// Henry maps liquid phase names to Henry's-law registrations.
	Henry map[string]*HenryRecord

	// Parameters holds the component's correlation coefficients, keyed by
	// dotted parameter path (e.g. "pressure_sat_comp_coeff.A").
	Parameters map[string]float64

	Config *method.Config
}

// Param looks up a correlation coefficient by name.
func (c *Component) Param(name string) (float64, bool) {
	v, ok := c.Parameters[name]
	return v, ok
}
