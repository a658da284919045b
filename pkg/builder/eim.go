package builder

import (
	"github.com/gnames/gnpot/pkg/potential"
)

// EIM builds records of eim-like potentials:
//
//	pair_coeff * * Sym1 Sym2 paramfile Sym1 Sym2
//
// The parameter file describes all elements, so records list every atom
// model when rendered.
type EIM struct {
	Common
	ParamFile string
}

// NewEIM creates a builder of eim potentials.
func NewEIM() *EIM {
	res := EIM{Common: newCommon("eim")}
	res.AllSymbols = true
	return &res
}

// Family returns FamilyEIM.
func (e *EIM) Family() Family { return FamilyEIM }

// PairStyles returns eim.
func (e *EIM) PairStyles() []string { return []string{"eim"} }

// Requirements include the parameter file.
func (e *EIM) Requirements() []Requirement {
	res := e.requirements()
	return append(res, Requirement{Name: "file", Satisfied: e.ParamFile != ""})
}

// Build creates the record.
func (e *EIM) Build() (*potential.Record, error) {
	var terms []potential.Term
	for _, v := range e.Symbols() {
		terms = append(terms, potential.Option(v))
	}
	terms = append(terms, potential.File(e.ParamFile), potential.Symbols())
	return e.build(e, []potential.PairCoeff{{Terms: terms}})
}
