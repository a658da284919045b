package builder

import (
	"slices"

	"github.com/gnames/gnpot/pkg/potential"
)

// ParamFile builds records of potentials that read one parameter file:
//
//	pair_coeff * * paramfile Sym1 Sym2
type ParamFile struct {
	Common
	File string
}

// NewParamFile creates a parameter file builder.
func NewParamFile(pairStyle string) *ParamFile {
	return &ParamFile{Common: newCommon(pairStyle)}
}

// Family returns FamilyParamFile.
func (p *ParamFile) Family() Family { return FamilyParamFile }

// PairStyles lists known parameter file pair styles.
func (p *ParamFile) PairStyles() []string { return slices.Clone(paramFileStyles) }

// Requirements include the parameter file.
func (p *ParamFile) Requirements() []Requirement {
	res := p.requirements()
	return append(res, Requirement{Name: "file", Satisfied: p.File != ""})
}

// Build creates the record.
func (p *ParamFile) Build() (*potential.Record, error) {
	coeff := potential.PairCoeff{
		Terms: []potential.Term{potential.File(p.File), potential.Symbols()},
	}
	return p.build(p, []potential.PairCoeff{coeff})
}
