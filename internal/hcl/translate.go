package hcl

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flashkit/internal/method"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/schema"
)

// translatePackage converts the HCL-specific package schema into the
// declarative model definition, resolving method names against the
// registry as it goes.
func (l *Loader) translatePackage(p *schema.PropertyPackage) (model.PackageDef, error) {
	def := model.PackageDef{
		Name:           p.Name,
		PressureRef:    p.PressureRef,
		TemperatureRef: p.TemperatureRef,
	}

	var err error
	if def.Properties, err = l.translateMethods(p.Methods); err != nil {
		return def, fmt.Errorf("property_package %q: %w", p.Name, err)
	}

	for _, ph := range p.Phases {
		pd, err := l.translatePhase(ph)
		if err != nil {
			return def, fmt.Errorf("phase %q: %w", ph.Name, err)
		}
		def.Phases = append(def.Phases, pd)
	}

	for _, c := range p.Components {
		cd, err := l.translateComponent(c)
		if err != nil {
			return def, fmt.Errorf("component %q: %w", c.Name, err)
		}
		def.Components = append(def.Components, cd)
	}

	for _, r := range p.Reactions {
		rd, err := translateReaction(r)
		if err != nil {
			return def, fmt.Errorf("reaction %q: %w", r.Name, err)
		}
		def.Reactions = append(def.Reactions, rd)
	}

	if p.StateBounds != nil {
		if def.StateBounds, err = decodeBounds(p.StateBounds); err != nil {
			return def, err
		}
	}

	return def, nil
}

func (l *Loader) translatePhase(ph *schema.Phase) (model.PhaseDef, error) {
	kind, err := model.ParsePhaseKind(ph.Type)
	if err != nil {
		return model.PhaseDef{}, err
	}
	methods, err := l.translateMethods(ph.Methods)
	if err != nil {
		return model.PhaseDef{}, err
	}
	return model.PhaseDef{
		Name:            ph.Name,
		Kind:            kind,
		EquationOfState: ph.EquationOfState,
		Methods:         methods,
	}, nil
}

func (l *Loader) translateComponent(c *schema.Component) (model.ComponentDef, error) {
	cd := model.ComponentDef{Name: c.Name}

	var kinds []model.PhaseKind
	for _, name := range c.ValidPhases {
		k, err := model.ParsePhaseKind(name)
		if err != nil {
			return cd, err
		}
		kinds = append(kinds, k)
	}
	cd.ValidPhases = model.PhaseSetOf(kinds...)

	var err error
	if cd.Parameters, err = flattenParams(c.ParameterData); err != nil {
		return cd, err
	}
	if cd.Methods, err = l.translateMethods(c.Methods); err != nil {
		return cd, err
	}

	for _, h := range c.Henry {
		if cd.Henry == nil {
			cd.Henry = make(map[string]model.HenryDef, len(c.Henry))
		}
		if _, exists := cd.Henry[h.Phase]; exists {
			return cd, fmt.Errorf("duplicate henry block for phase %q", h.Phase)
		}
		hd, err := l.translateHenry(h)
		if err != nil {
			return cd, fmt.Errorf("henry %q: %w", h.Phase, err)
		}
		cd.Henry[h.Phase] = hd
	}

	return cd, nil
}

func (l *Loader) translateHenry(h *schema.Henry) (model.HenryDef, error) {
	spec, err := l.methodSpec(h.Use)
	if err != nil {
		return model.HenryDef{}, err
	}
	typ, err := model.ParseHenryType(h.Type)
	if err != nil {
		return model.HenryDef{}, err
	}
	params, err := flattenParams(h.ParameterData)
	if err != nil {
		return model.HenryDef{}, err
	}
	return model.HenryDef{Method: spec, Type: typ, Parameters: params}, nil
}

// translateMethods converts method blocks into property declarations. A
// block with neither `use` nor `by_phase` declares the property without a
// method, which downstream resolution reports as missing when asked for.
func (l *Loader) translateMethods(ms []*schema.Method) ([]model.PropertyDef, error) {
	var out []model.PropertyDef
	for _, m := range ms {
		pd := model.PropertyDef{Name: m.Property}
		switch {
		case m.Use != "" && len(m.ByPhase) > 0:
			return nil, fmt.Errorf(
				"method %q sets both use and by_phase; pick one", m.Property)

		case m.Use != "":
			spec, err := l.methodSpec(m.Use)
			if err != nil {
				return nil, fmt.Errorf("method %q: %w", m.Property, err)
			}
			pd.Spec = spec

		case len(m.ByPhase) > 0:
			byPhase := make(map[string]*method.Spec, len(m.ByPhase))
			for phase, use := range m.ByPhase {
				spec, err := l.methodSpec(use)
				if err != nil {
					return nil, fmt.Errorf("method %q, phase %q: %w", m.Property, phase, err)
				}
				byPhase[phase] = spec
			}
			pd.Spec = method.PhaseSpec(byPhase)
		}
		out = append(out, pd)
	}
	return out, nil
}

func (l *Loader) methodSpec(use string) (*method.Spec, error) {
	impl, ok := l.registry.Method(use)
	if !ok {
		return nil, fmt.Errorf("method %q is not registered (registered: %s)",
			use, strings.Join(l.registry.MethodNames(), ", "))
	}
	return method.SpecOf(impl), nil
}

// flattenParams flattens a parameter_data object into dotted keys, so
// `pressure_sat_comp_coeff = { A = 3.5 }` lands under
// "pressure_sat_comp_coeff.A". Only numbers and nested objects are
// accepted.
func flattenParams(v *cty.Value) (map[string]float64, error) {
	if v == nil || v.IsNull() {
		return nil, nil
	}
	out := make(map[string]float64)
	if err := flattenInto(out, "", *v); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out map[string]float64, prefix string, v cty.Value) error {
	ty := v.Type()
	switch {
	case ty.IsObjectType() || ty.IsMapType():
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			key := k.AsString()
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flattenInto(out, key, ev); err != nil {
				return err
			}
		}
		return nil

	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		out[prefix] = f
		return nil

	default:
		return fmt.Errorf("parameter_data entry %q must be a number or a nested object, got %s",
			prefix, ty.FriendlyName())
	}
}

func translateReaction(r *schema.Reaction) (model.ReactionDef, error) {
	basis, err := model.ParseReactionBasis(r.Basis)
	if err != nil {
		return model.ReactionDef{}, err
	}
	form, err := model.ParseConcentrationForm(r.Form)
	if err != nil {
		return model.ReactionDef{}, err
	}
	return model.ReactionDef{Name: r.Name, Basis: basis, Form: form}, nil
}

// decodeBounds reads the state_bounds block attributes: each value is a
// [lower, default, upper] tuple, optionally followed by a unit string.
func decodeBounds(sb *schema.StateBounds) (map[string]model.BoundDef, error) {
	attrs, diags := sb.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("state_bounds: %w", diags)
	}

	out := make(map[string]model.BoundDef, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("state bound %q: %w", name, diags)
		}
		bd, err := boundTuple(val)
		if err != nil {
			return nil, fmt.Errorf("state bound %q: %w", name, err)
		}
		out[name] = bd
	}
	return out, nil
}

func boundTuple(v cty.Value) (model.BoundDef, error) {
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return model.BoundDef{}, fmt.Errorf(
			"expected a [lower, default, upper] tuple, got %s", ty.FriendlyName())
	}

	var elems []cty.Value
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		elems = append(elems, ev)
	}
	if len(elems) != 3 && len(elems) != 4 {
		return model.BoundDef{}, fmt.Errorf(
			"expected 3 numbers with an optional unit string, got %d elements", len(elems))
	}

	var nums [3]float64
	for i := 0; i < 3; i++ {
		if elems[i].Type() != cty.Number {
			return model.BoundDef{}, fmt.Errorf(
				"element %d must be a number, got %s", i+1, elems[i].Type().FriendlyName())
		}
		nums[i], _ = elems[i].AsBigFloat().Float64()
	}

	bd := model.BoundDef{Lower: nums[0], Default: nums[1], Upper: nums[2]}
	if len(elems) == 4 {
		if elems[3].Type() != cty.String {
			return model.BoundDef{}, fmt.Errorf(
				"element 4 must be a unit string, got %s", elems[3].Type().FriendlyName())
		}
		bd.Unit = elems[3].AsString()
	}
	return bd, nil
}
