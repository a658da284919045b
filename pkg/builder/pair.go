package builder

import (
	"fmt"
	"slices"

	"github.com/gnames/gnpot/pkg/potential"
)

type interaction struct {
	symbols []string
	terms   []potential.Term
}

// Pair builds records of pair potentials: one pair_coeff line with inline
// parameters for every unordered pair of symbols.
type Pair struct {
	Common
	interactions []interaction
}

// NewPair creates a pair potential builder.
func NewPair(pairStyle string) *Pair {
	return &Pair{Common: newCommon(pairStyle)}
}

// Family returns FamilyPair.
func (p *Pair) Family() Family { return FamilyPair }

// PairStyles lists known pair styles of pair potentials.
func (p *Pair) PairStyles() []string { return slices.Clone(pairStyles) }

// SetInteraction sets parameters of the interaction between two symbols.
// Setting parameters of already known pair, in any order of symbols,
// replaces previous parameters in place. Nil symbols define a single
// interaction that applies to all atom types.
func (p *Pair) SetInteraction(symbols []string, terms []potential.Term) error {
	if len(terms) == 0 {
		return BuildInputError("terms", "interaction needs terms")
	}
	if slices.ContainsFunc(terms, potential.Term.IsPlaceholder) {
		return UnsupportedPairStyleError(p.PairStyle+" with symbol placeholders", FamilyPair)
	}
	terms = slices.Clone(terms)

	if symbols == nil {
		p.interactions = []interaction{{terms: terms}}
		return nil
	}
	if len(symbols) != 2 {
		return BuildInputError("symbols",
			fmt.Sprintf("interaction needs a pair of symbols, got %d", len(symbols)))
	}
	known := p.Symbols()
	for _, v := range symbols {
		if !slices.Contains(known, v) {
			return BuildInputError("symbols",
				fmt.Sprintf("symbol %q is not among atoms", v))
		}
	}

	if len(p.interactions) == 1 && p.interactions[0].symbols == nil {
		p.interactions = nil
	}
	item := interaction{symbols: slices.Clone(symbols), terms: terms}
	for i, v := range p.interactions {
		if samePair(v.symbols, symbols) {
			p.interactions[i] = item
			return nil
		}
	}
	p.interactions = append(p.interactions, item)
	return nil
}

// Interactions returns number of set interactions.
func (p *Pair) Interactions() int {
	return len(p.interactions)
}

// Requirements of a pair potential: common inputs and interactions for
// all n(n+1)/2 pairs of n atoms, or one interaction for all atom types.
func (p *Pair) Requirements() []Requirement {
	res := p.requirements()
	return append(res, Requirement{
		Name:      "interactions",
		Satisfied: p.complete(),
	})
}

func (p *Pair) complete() bool {
	if len(p.interactions) == 1 && p.interactions[0].symbols == nil {
		return true
	}
	n := len(p.Atoms)
	return n > 0 && len(p.interactions) == n*(n+1)/2
}

// Build creates a record of the pair potential.
func (p *Pair) Build() (*potential.Record, error) {
	if err := checkRequirements(p); err != nil {
		return nil, err
	}
	known := p.Symbols()
	coeffs := make([]potential.PairCoeff, len(p.interactions))
	for i, v := range p.interactions {
		for _, s := range v.symbols {
			if !slices.Contains(known, s) {
				return nil, BuildInputError("symbols",
					fmt.Sprintf("symbol %q is not among atoms", s))
			}
		}
		coeffs[i] = potential.PairCoeff{
			Interaction: slices.Clone(v.symbols),
			Terms:       slices.Clone(v.terms),
		}
	}
	return p.build(p, coeffs)
}

func samePair(a, b []string) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}
