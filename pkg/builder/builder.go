// Package builder creates potential-LAMMPS records without hand-written
// term lists. Every builder covers a family of LAMMPS pair styles that
// share the grammar of pair_coeff lines.
//
// Builders are mutable accumulators and are not safe for concurrent
// use. Build does not change the builder and can be called repeatedly.
package builder

import (
	"slices"
	"sort"
	"strings"

	"github.com/gnames/gnpot/pkg/potential"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Family is the name of a group of pair styles sharing the same
// pair_coeff grammar.
type Family string

const (
	// FamilyPair has one pair_coeff line per pair of symbols.
	FamilyPair Family = "pair"
	// FamilyParamFile has one parameter file with a symbols placeholder.
	FamilyParamFile Family = "paramfile"
	// FamilyEAM is the original eam style with one file per symbol.
	FamilyEAM Family = "eam"
	// FamilyLibParam uses a library file and an optional parameter file.
	FamilyLibParam Family = "libparam"
	// FamilyEIM lists symbols, then a parameter file.
	FamilyEIM Family = "eim"
)

// Builder creates records of one pair-style family.
type Builder interface {
	// Family returns the pair style family of the builder.
	Family() Family

	// Build materializes an immutable record from the accumulated state.
	Build() (*potential.Record, error)

	// Requirements describes inputs the builder needs and whether they
	// are already set.
	Requirements() []Requirement

	// PairStyles lists known LAMMPS pair styles of the family.
	PairStyles() []string
}

// Requirement is an input of a builder.
type Requirement struct {
	Name      string
	Satisfied bool
}

// Common keeps data shared by all builders.
type Common struct {
	// ID is the human-readable name of the LAMMPS implementation.
	ID string
	// Key is the unique identifier. New builders get a random UUID,
	// an empty key is derived from ID.
	Key string
	URL string

	// PotID, PotKey and PotURL refer to the conceptual potential. Empty
	// PotID is derived from ID if it follows the "<potid>--LAMMPS--..."
	// pattern. Empty PotKey is derived from the potential id.
	PotID  string
	PotKey string
	PotURL string

	Units     string
	AtomStyle string

	PairStyle      string
	PairStyleTerms []potential.Term

	Status     string
	Comments   string
	DOIs       []string
	AllSymbols bool

	Atoms     []potential.Atom
	Commands  [][]potential.Term
	Artifacts []potential.Artifact
}

func newCommon(pairStyle string) Common {
	return Common{
		Key:       uuid.NewString(),
		Units:     potential.DefaultUnits,
		AtomStyle: potential.DefaultAtomStyle,
		PairStyle: pairStyle,
	}
}

// Symbols returns labels of the atoms in their order.
func (c *Common) Symbols() []string {
	res := make([]string, len(c.Atoms))
	for i := range c.Atoms {
		res[i] = c.Atoms[i].Label()
	}
	return res
}

// AddAtom appends an atom model.
func (c *Common) AddAtom(symbol, element string, mass *float64) {
	c.Atoms = append(c.Atoms, potential.Atom{
		Symbol:  symbol,
		Element: element,
		Mass:    mass,
	})
}

// AddCommand appends an auxiliary command line.
func (c *Common) AddCommand(terms ...potential.Term) {
	c.Commands = append(c.Commands, slices.Clone(terms))
}

func (c *Common) requirements() []Requirement {
	return []Requirement{
		{Name: "id", Satisfied: c.ID != ""},
		{Name: "atoms", Satisfied: len(c.Atoms) > 0},
		{Name: "pair style", Satisfied: c.PairStyle != ""},
	}
}

func (c *Common) potID() string {
	if c.PotID != "" {
		return c.PotID
	}
	if idx := strings.Index(c.ID, "--LAMMPS"); idx > 0 {
		return c.ID[:idx]
	}
	return ""
}

// build checks requirements and the pair style and creates a record
// with given pair_coeff entries.
func (c *Common) build(b Builder, coeffs []potential.PairCoeff) (*potential.Record, error) {
	if err := checkRequirements(b); err != nil {
		return nil, err
	}
	if IsHybrid(c.PairStyle) {
		return nil, UnsupportedPairStyleError(c.PairStyle, b.Family())
	}

	key := c.Key
	if key == "" {
		key = gnuuid.New(c.ID).String()
	}
	potID := c.potID()
	potKey := c.PotKey
	if potKey == "" && potID != "" {
		potKey = gnuuid.New(potID).String()
	}

	f := potential.Fields{
		Key:    key,
		ID:     c.ID,
		URL:    c.URL,
		Status: c.Status,
		Potential: potential.Ref{
			Key:  potKey,
			ID:   potID,
			URL:  c.PotURL,
			DOIs: c.DOIs,
		},
		Comments:   c.Comments,
		Units:      c.Units,
		AtomStyle:  c.AtomStyle,
		AllSymbols: c.AllSymbols,
		Atoms:      c.Atoms,
		PairStyle: potential.PairStyle{
			Type:  c.PairStyle,
			Terms: c.PairStyleTerms,
		},
		PairCoeffs: coeffs,
		Artifacts:  c.Artifacts,
	}
	for _, v := range c.Commands {
		f.Commands = append(f.Commands, potential.Command{Terms: v})
	}

	res, err := potential.New(f)
	if err != nil {
		return nil, BuildInputError("record", err.Error())
	}
	return res, nil
}

func checkRequirements(b Builder) error {
	var missing []string
	for _, v := range b.Requirements() {
		if !v.Satisfied {
			missing = append(missing, v.Name)
		}
	}
	if len(missing) > 0 {
		return IncompleteBuildError(b.Family(), missing)
	}
	return nil
}

// IsHybrid checks if a pair style combines other styles. Builders do not
// model hybrid styles, their records need hand-written terms.
func IsHybrid(style string) bool {
	return strings.HasPrefix(style, "hybrid")
}

var families = map[Family]func() Builder{
	FamilyPair:      func() Builder { return NewPair("") },
	FamilyParamFile: func() Builder { return NewParamFile("") },
	FamilyEAM:       func() Builder { return NewEAM() },
	FamilyLibParam:  func() Builder { return NewLibParam("") },
	FamilyEIM:       func() Builder { return NewEIM() },
}

// Families returns names of all builder families.
func Families() []Family {
	res := make([]Family, 0, len(families))
	for k := range families {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// New creates an empty builder of the family.
func New(f Family) (Builder, error) {
	fn, ok := families[f]
	if !ok {
		return nil, UnknownFamilyError(string(f))
	}
	return fn(), nil
}

// accelerator suffixes of pair styles, they do not change the grammar.
var accelerators = []string{"gpu", "intel", "kk", "omp", "opt"}

// ForPairStyle finds the family that knows the pair style.
func ForPairStyle(style string) (Family, error) {
	base := style
	if idx := strings.LastIndex(base, "/"); idx > 0 {
		if slices.Contains(accelerators, base[idx+1:]) {
			base = base[:idx]
		}
	}
	if IsHybrid(base) {
		return "", UnsupportedPairStyleError(style, "")
	}
	for _, f := range Families() {
		if slices.Contains(families[f]().PairStyles(), base) {
			return f, nil
		}
	}
	return "", UnsupportedPairStyleError(style, "")
}
