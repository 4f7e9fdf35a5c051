// Package units is a small convertible-quantity service for the state
// variables handled by the framework. Conversion is linear with a fixed
// scale factor per unit, which is all the bounds machinery requires; units
// of different physical dimensions never convert into each other.
package units

import "fmt"

// Unit is a named measurement unit with a fixed scale factor relative to
// the base unit of its dimension.
type Unit struct {
	Name   string
	Dim    string
	Factor float64
}

// Units understood by the framework. Base units follow SI: K, Pa, m, mol/s.
var (
	Kelvin = Unit{Name: "K", Dim: "temperature", Factor: 1}

	Pascal     = Unit{Name: "Pa", Dim: "pressure", Factor: 1}
	Kilopascal = Unit{Name: "kPa", Dim: "pressure", Factor: 1e3}
	Bar        = Unit{Name: "bar", Dim: "pressure", Factor: 1e5}
	Megapascal = Unit{Name: "MPa", Dim: "pressure", Factor: 1e6}

	Meter     = Unit{Name: "m", Dim: "length", Factor: 1}
	Kilometer = Unit{Name: "km", Dim: "length", Factor: 1e3}

	MolPerSecond     = Unit{Name: "mol/s", Dim: "molar flow", Factor: 1}
	KilomolPerSecond = Unit{Name: "kmol/s", Dim: "molar flow", Factor: 1e3}
)

var byName = map[string]Unit{}

func init() {
	for _, u := range []Unit{
		Kelvin,
		Pascal, Kilopascal, Bar, Megapascal,
		Meter, Kilometer,
		MolPerSecond, KilomolPerSecond,
	} {
		byName[u.Name] = u
	}
}

// Parse resolves a unit name as written in a property package file.
func Parse(name string) (Unit, error) {
	u, ok := byName[name]
	if !ok {
		return Unit{}, fmt.Errorf("unknown unit %q", name)
	}
	return u, nil
}

// Convert rescales v from one unit to another of the same dimension.
func Convert(v float64, from, to Unit) (float64, error) {
	if from.Dim != to.Dim {
		return 0, fmt.Errorf("cannot convert %s (%s) to %s (%s)",
			from.Name, from.Dim, to.Name, to.Dim)
	}
	return v * from.Factor / to.Factor, nil
}

func (u Unit) String() string {
	return u.Name
}
