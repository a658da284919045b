package builder

import (
	"slices"

	"github.com/gnames/gnpot/pkg/potential"
)

// EAM builds records of the original eam style with a separate file for
// every symbol and no cross terms:
//
//	pair_coeff 1 1 Sym1.eam
//	pair_coeff 2 2 Sym2.eam
type EAM struct {
	Common
	// Files keeps one parameter file per atom, in the order of atoms.
	Files []string
}

// NewEAM creates a builder of eam potentials.
func NewEAM() *EAM {
	return &EAM{Common: newCommon("eam")}
}

// Family returns FamilyEAM.
func (e *EAM) Family() Family { return FamilyEAM }

// PairStyles returns eam.
func (e *EAM) PairStyles() []string { return []string{"eam"} }

// Requirements include a file for every atom.
func (e *EAM) Requirements() []Requirement {
	res := e.requirements()
	ok := len(e.Files) > 0 && len(e.Files) == len(e.Atoms) &&
		!slices.Contains(e.Files, "")
	return append(res, Requirement{Name: "files", Satisfied: ok})
}

// Build creates the record.
func (e *EAM) Build() (*potential.Record, error) {
	if err := checkRequirements(e); err != nil {
		return nil, err
	}
	symbols := e.Symbols()
	coeffs := make([]potential.PairCoeff, len(symbols))
	for i, v := range symbols {
		coeffs[i] = potential.PairCoeff{
			Interaction: []string{v, v},
			Terms:       []potential.Term{potential.File(e.Files[i])},
		}
	}
	return e.build(e, coeffs)
}
