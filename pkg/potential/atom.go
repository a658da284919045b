package potential

import (
	"github.com/gnames/gnpot/pkg/elements"
)

// Atom is one declared particle type of a record.
type Atom struct {
	// Symbol is the unique label of the atom model within a record.
	// When empty the Element is used as the label.
	Symbol string

	// Element is the chemical element tag, optional.
	Element string

	// Mass of the particle. When nil the standard mass of the element
	// is used.
	Mass *float64

	// Charge is a static charge of the particle, optional.
	Charge *float64
}

// Label returns the symbol of the atom model, or its element if the
// symbol is not set.
func (a Atom) Label() string {
	if a.Symbol != "" {
		return a.Symbol
	}
	return a.Element
}

// ElementTag returns the element of the atom model, or its symbol if the
// element is not set.
func (a Atom) ElementTag() string {
	if a.Element != "" {
		return a.Element
	}
	return a.Symbol
}

// ResolveMass returns the explicit mass, or the standard mass of the
// element. An atom without element and mass has no resolvable mass, its
// symbol is never used as an element.
func (a Atom) ResolveMass() (float64, error) {
	if a.Mass != nil {
		return *a.Mass, nil
	}
	return elements.Mass(a.Element)
}

// Float returns a pointer to f, handy for optional Atom fields.
func Float(f float64) *float64 {
	return &f
}

func (a Atom) clone() Atom {
	res := a
	if a.Mass != nil {
		res.Mass = Float(*a.Mass)
	}
	if a.Charge != nil {
		res.Charge = Float(*a.Charge)
	}
	return res
}
