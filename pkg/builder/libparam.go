package builder

import (
	"slices"

	"github.com/gnames/gnpot/pkg/potential"
)

// LibParam builds records of MEAM-like potentials with a library file and
// an optional parameter file:
//
//	pair_coeff * * libfile Sym1 Sym2 paramfile Sym1 Sym2
type LibParam struct {
	Common
	LibFile string
	// ParamFile is optional, NULL is written when it is empty.
	ParamFile string
}

// NewLibParam creates a library and parameter file builder. Empty pair
// style means meam.
func NewLibParam(pairStyle string) *LibParam {
	if pairStyle == "" {
		pairStyle = "meam"
	}
	return &LibParam{Common: newCommon(pairStyle)}
}

// Family returns FamilyLibParam.
func (l *LibParam) Family() Family { return FamilyLibParam }

// PairStyles lists known MEAM-like pair styles.
func (l *LibParam) PairStyles() []string { return slices.Clone(libParamStyles) }

// Requirements include the library file.
func (l *LibParam) Requirements() []Requirement {
	res := l.requirements()
	return append(res, Requirement{Name: "library file", Satisfied: l.LibFile != ""})
}

// Build creates the record.
func (l *LibParam) Build() (*potential.Record, error) {
	terms := []potential.Term{potential.File(l.LibFile)}
	for _, v := range l.Symbols() {
		terms = append(terms, potential.Option(v))
	}
	param := l.ParamFile
	if param == "" {
		param = "NULL"
	}
	terms = append(terms, potential.File(param), potential.Symbols())
	return l.build(l, []potential.PairCoeff{{Terms: terms}})
}
