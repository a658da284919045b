package builder

import (
	"fmt"

	"github.com/gnames/gnpot/pkg/potential"
	"gopkg.in/yaml.v3"
)

// Spec is a YAML description of a builder and its inputs.
//
//	family: pair
//	id: 2024--Doe-J--Al-Cu--LAMMPS--ipr1
//	pair_style: lj/cut
//	pair_style_terms: [10.0]
//	atoms:
//	  - {element: Al}
//	  - {element: Cu}
//	interactions:
//	  - {symbols: [Al, Al], terms: [1.23, 3.412]}
//
// Terms are numbers (parameters), strings (options) or term nodes such
// as {file: Al.eam.alloy}.
type Spec struct {
	// Family of the builder. When empty it is found by the pair style.
	Family Family `yaml:"family"`

	ID        string  `yaml:"id"`
	Key       string  `yaml:"key"`
	URL       string  `yaml:"url"`
	Potential PotSpec `yaml:"potential"`

	Units          string `yaml:"units"`
	AtomStyle      string `yaml:"atom_style"`
	PairStyle      string `yaml:"pair_style"`
	PairStyleTerms []any  `yaml:"pair_style_terms"`

	Status     string `yaml:"status"`
	Comments   string `yaml:"comments"`
	AllSymbols *bool  `yaml:"allsymbols"`

	Atoms     []AtomSpec     `yaml:"atoms"`
	Commands  [][]any        `yaml:"commands"`
	Artifacts []ArtifactSpec `yaml:"artifacts"`

	// File is the parameter file of paramfile family.
	File string `yaml:"file"`
	// Files are per-atom files of eam family.
	Files []string `yaml:"files"`
	// LibFile and ParamFile are used by libparam and eim families.
	LibFile   string `yaml:"libfile"`
	ParamFile string `yaml:"paramfile"`

	// Interactions are used by pair family.
	Interactions []InteractionSpec `yaml:"interactions"`
}

// PotSpec refers to the conceptual potential.
type PotSpec struct {
	ID   string   `yaml:"id"`
	Key  string   `yaml:"key"`
	URL  string   `yaml:"url"`
	DOIs []string `yaml:"dois"`
}

// AtomSpec describes one atom model.
type AtomSpec struct {
	Symbol  string   `yaml:"symbol"`
	Element string   `yaml:"element"`
	Mass    *float64 `yaml:"mass"`
	Charge  *float64 `yaml:"charge"`
}

// ArtifactSpec describes a downloadable file.
type ArtifactSpec struct {
	URL      string `yaml:"url"`
	Label    string `yaml:"label"`
	Filename string `yaml:"filename"`
}

// InteractionSpec describes one interaction of a pair potential.
type InteractionSpec struct {
	Symbols []string `yaml:"symbols"`
	Terms   []any    `yaml:"terms"`
}

// ParseSpec reads a YAML build description.
func ParseSpec(data []byte) (Spec, error) {
	var res Spec
	if err := yaml.Unmarshal(data, &res); err != nil {
		return res, BuildSpecError(err)
	}
	return res, nil
}

// Builder creates a builder of the described family and fills it
// with the described inputs.
func (s Spec) Builder() (Builder, error) {
	fam := s.Family
	if fam == "" {
		var err error
		if fam, err = ForPairStyle(s.PairStyle); err != nil {
			return nil, err
		}
	}

	var res Builder
	var common *Common
	switch fam {
	case FamilyPair:
		b := NewPair(s.PairStyle)
		common, res = &b.Common, b
	case FamilyParamFile:
		b := NewParamFile(s.PairStyle)
		b.File = s.File
		common, res = &b.Common, b
	case FamilyEAM:
		b := NewEAM()
		b.Files = s.Files
		common, res = &b.Common, b
	case FamilyLibParam:
		b := NewLibParam(s.PairStyle)
		b.LibFile, b.ParamFile = s.LibFile, s.ParamFile
		common, res = &b.Common, b
	case FamilyEIM:
		b := NewEIM()
		b.ParamFile = s.ParamFile
		common, res = &b.Common, b
	default:
		return nil, UnknownFamilyError(string(fam))
	}

	if err := s.fill(common); err != nil {
		return nil, err
	}

	if p, ok := res.(*Pair); ok {
		for i, v := range s.Interactions {
			terms, err := toTerms(v.Terms, fmt.Sprintf("interactions[%d].terms", i))
			if err != nil {
				return nil, err
			}
			if err = p.SetInteraction(v.Symbols, terms); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

func (s Spec) fill(c *Common) error {
	c.ID = s.ID
	if s.Key != "" {
		c.Key = s.Key
	}
	c.URL = s.URL
	c.PotID, c.PotKey, c.PotURL = s.Potential.ID, s.Potential.Key, s.Potential.URL
	c.DOIs = s.Potential.DOIs
	if s.Units != "" {
		c.Units = s.Units
	}
	if s.AtomStyle != "" {
		c.AtomStyle = s.AtomStyle
	}
	if s.PairStyle != "" {
		c.PairStyle = s.PairStyle
	}
	c.Status = s.Status
	c.Comments = s.Comments
	if s.AllSymbols != nil {
		c.AllSymbols = *s.AllSymbols
	}

	var err error
	if c.PairStyleTerms, err = toTerms(s.PairStyleTerms, "pair_style_terms"); err != nil {
		return err
	}
	for _, v := range s.Atoms {
		c.Atoms = append(c.Atoms, potential.Atom{
			Symbol:  v.Symbol,
			Element: v.Element,
			Mass:    v.Mass,
			Charge:  v.Charge,
		})
	}
	for i, v := range s.Commands {
		terms, err := toTerms(v, fmt.Sprintf("commands[%d]", i))
		if err != nil {
			return err
		}
		c.AddCommand(terms...)
	}
	for _, v := range s.Artifacts {
		c.Artifacts = append(c.Artifacts, potential.Artifact(v))
	}
	return nil
}

func toTerms(vals []any, field string) ([]potential.Term, error) {
	var res []potential.Term
	for i, v := range vals {
		t, err := potential.TermFromValue(v)
		if err != nil {
			return nil, BuildInputError(fmt.Sprintf("%s[%d]", field, i), err.Error())
		}
		res = append(res, t)
	}
	return res, nil
}
