// Package potential provides the model of a "potential-LAMMPS" record: a
// LAMMPS implementation of an interatomic potential. It includes parsing
// of structured documents into records and serializing records back.
//
// A Record is immutable. Accessors return copies, and edits are done by
// changing the result of Fields() and creating a new record with New().
package potential

import (
	"fmt"
	"slices"
)

// Default values of optional record settings.
const (
	DefaultUnits     = "metal"
	DefaultAtomStyle = "atomic"
	DefaultStatus    = "active"
)

// Statuses lists allowed implementation statuses.
var Statuses = []string{"active", "superseded", "retracted"}

// Ref refers to the conceptual, code-independent potential model.
type Ref struct {
	Key  string
	ID   string
	URL  string
	DOIs []string
}

// PairStyle is the pair_style declaration: the LAMMPS style name and
// the terms that follow it.
type PairStyle struct {
	Type  string
	Terms []Term
}

// PairCoeff is one pair_coeff declaration. Empty Interaction means the
// line applies to all atom types.
type PairCoeff struct {
	Interaction []string
	Terms       []Term
}

// Command is an auxiliary LAMMPS command line.
type Command struct {
	Terms []Term
}

// Artifact is a downloadable file associated with the record.
type Artifact struct {
	URL      string
	Label    string
	Filename string
}

// Fields keeps all data of a record. It is used to create new records.
type Fields struct {
	Key       string
	ID        string
	URL       string
	Status    string
	Potential Ref
	Comments  string

	// Units and AtomStyle are LAMMPS settings; empty means default.
	Units     string
	AtomStyle string

	// AllSymbols is set when every atom model of the potential must be
	// listed in generated commands, even if it is not used.
	AllSymbols bool

	Atoms      []Atom
	PairStyle  PairStyle
	PairCoeffs []PairCoeff
	Commands   []Command
	Artifacts  []Artifact
}

// Record is an immutable potential-LAMMPS record.
type Record struct {
	f      Fields
	labels []string
	layout layout
}

// New validates fields and creates a record from a copy of them.
func New(f Fields) (*Record, error) {
	res := Record{f: f.clone()}
	if err := res.validate(); err != nil {
		return nil, err
	}
	res.labels = make([]string, len(res.f.Atoms))
	for i := range res.f.Atoms {
		res.labels[i] = res.f.Atoms[i].Label()
	}
	return &res, nil
}

func (r *Record) validate() error {
	f := &r.f
	if f.Key == "" {
		return SchemaError("key", "is required")
	}
	if f.ID == "" {
		return SchemaError("id", "is required")
	}
	if f.PairStyle.Type == "" {
		return SchemaError("pair_style.type", "is required")
	}
	if f.Status != "" && !slices.Contains(Statuses, f.Status) {
		return SchemaError("status",
			fmt.Sprintf("has invalid value %q", f.Status))
	}

	seen := make(map[string]struct{})
	for i, v := range f.Atoms {
		path := fmt.Sprintf("atom[%d]", i)
		label := v.Label()
		if label == "" {
			return SchemaError(path, "needs symbol or element")
		}
		if _, ok := seen[label]; ok {
			return SchemaError(path,
				fmt.Sprintf("repeats symbol %q", label))
		}
		seen[label] = struct{}{}
	}

	if err := validTerms("pair_style.term", f.PairStyle.Terms); err != nil {
		return err
	}
	for i, v := range f.PairCoeffs {
		path := fmt.Sprintf("pair_coeff[%d]", i)
		for _, sym := range v.Interaction {
			if _, ok := seen[sym]; !ok {
				return SchemaError(path+".interaction",
					fmt.Sprintf("uses undeclared symbol %q", sym))
			}
		}
		if err := validTerms(path+".term", v.Terms); err != nil {
			return err
		}
	}
	for i, v := range f.Commands {
		path := fmt.Sprintf("command[%d].term", i)
		if err := validTerms(path, v.Terms); err != nil {
			return err
		}
	}
	return nil
}

func validTerms(path string, terms []Term) error {
	for i, v := range terms {
		if v.Kind() == UnknownTerm {
			return SchemaError(fmt.Sprintf("%s[%d]", path, i),
				"has no populated variant")
		}
	}
	return nil
}

// Key is the unique identifier of the record.
func (r *Record) Key() string { return r.f.Key }

// ID is the human-readable name of the LAMMPS implementation. It is also
// the default subdirectory name for parameter files.
func (r *Record) ID() string { return r.f.ID }

// URL of an online copy of the record.
func (r *Record) URL() string { return r.f.URL }

// Status of the implementation: active, superseded, or retracted.
func (r *Record) Status() string {
	if r.f.Status == "" {
		return DefaultStatus
	}
	return r.f.Status
}

// Potential returns the reference to the conceptual potential model.
func (r *Record) Potential() Ref {
	res := r.f.Potential
	res.DOIs = slices.Clone(res.DOIs)
	return res
}

// Comments are descriptive notes about the potential.
func (r *Record) Comments() string { return r.f.Comments }

// Units is the LAMMPS units setting.
func (r *Record) Units() string {
	if r.f.Units == "" {
		return DefaultUnits
	}
	return r.f.Units
}

// AtomStyle is the LAMMPS atom_style setting.
func (r *Record) AtomStyle() string {
	if r.f.AtomStyle == "" {
		return DefaultAtomStyle
	}
	return r.f.AtomStyle
}

// AllSymbols is true when generated commands must list every
// atom model of the potential.
func (r *Record) AllSymbols() bool { return r.f.AllSymbols }

// Atoms returns the atom models in record order.
func (r *Record) Atoms() []Atom {
	res := make([]Atom, len(r.f.Atoms))
	for i := range r.f.Atoms {
		res[i] = r.f.Atoms[i].clone()
	}
	return res
}

// Atom finds an atom model by its symbol.
func (r *Record) Atom(symbol string) (Atom, bool) {
	idx := slices.Index(r.labels, symbol)
	if idx < 0 {
		return Atom{}, false
	}
	return r.f.Atoms[idx].clone(), true
}

// HasSymbol is true if the record declares an atom model with the symbol.
func (r *Record) HasSymbol(symbol string) bool {
	return slices.Contains(r.labels, symbol)
}

// Symbols returns the atom-model symbols in record order.
func (r *Record) Symbols() []string {
	return slices.Clone(r.labels)
}

// Elements returns the element tags of atom models in record order.
// An atom model without element gives its symbol.
func (r *Record) Elements() []string {
	res := make([]string, len(r.f.Atoms))
	for i := range r.f.Atoms {
		res[i] = r.f.Atoms[i].ElementTag()
	}
	return res
}

// Mass resolves the mass of an atom model. Explicit masses take
// precedence, otherwise the standard mass of the element is used.
// Resolution happens on request, so a record may declare custom
// symbols without masses.
func (r *Record) Mass(symbol string) (float64, error) {
	atom, ok := r.Atom(symbol)
	if !ok {
		return 0, SchemaError("atom",
			fmt.Sprintf("has no symbol %q", symbol))
	}
	return atom.ResolveMass()
}

// PairStyle returns the pair_style declaration.
func (r *Record) PairStyle() PairStyle {
	res := r.f.PairStyle
	res.Terms = slices.Clone(res.Terms)
	return res
}

// PairCoeffs returns pair_coeff declarations in stored order.
func (r *Record) PairCoeffs() []PairCoeff {
	res := make([]PairCoeff, len(r.f.PairCoeffs))
	for i := range r.f.PairCoeffs {
		res[i] = r.f.PairCoeffs[i].clone()
	}
	return res
}

// Commands returns auxiliary command lines in stored order.
func (r *Record) Commands() []Command {
	res := make([]Command, len(r.f.Commands))
	for i := range r.f.Commands {
		res[i] = Command{Terms: slices.Clone(r.f.Commands[i].Terms)}
	}
	return res
}

// Artifacts returns downloadable files of the record.
func (r *Record) Artifacts() []Artifact {
	return slices.Clone(r.f.Artifacts)
}

// Files returns unique names of parameter files referenced by file
// terms, in the order of their first appearance. The "NULL" name used
// by LAMMPS for absent files is skipped.
func (r *Record) Files() []string {
	var res []string
	seen := make(map[string]struct{})
	add := func(terms []Term) {
		for _, v := range terms {
			if v.Kind() != FileTerm || v.Text() == "NULL" {
				continue
			}
			if _, ok := seen[v.Text()]; ok {
				continue
			}
			seen[v.Text()] = struct{}{}
			res = append(res, v.Text())
		}
	}
	for _, v := range r.f.Commands {
		add(v.Terms)
	}
	add(r.f.PairStyle.Terms)
	for _, v := range r.f.PairCoeffs {
		add(v.Terms)
	}
	return res
}

// Fields returns an editable copy of the record data.
func (r *Record) Fields() Fields {
	return r.f.clone()
}

func (pc PairCoeff) clone() PairCoeff {
	return PairCoeff{
		Interaction: slices.Clone(pc.Interaction),
		Terms:       slices.Clone(pc.Terms),
	}
}

// HasPlaceholder is true when the entry lists symbols through symbols or
// symbolsList terms, as many-body and hybrid styles do.
func (pc PairCoeff) HasPlaceholder() bool {
	return hasPlaceholder(pc.Terms)
}

func (f Fields) clone() Fields {
	res := f
	res.Potential.DOIs = slices.Clone(f.Potential.DOIs)
	if f.Atoms != nil {
		res.Atoms = make([]Atom, len(f.Atoms))
		for i := range f.Atoms {
			res.Atoms[i] = f.Atoms[i].clone()
		}
	}
	res.PairStyle.Terms = slices.Clone(f.PairStyle.Terms)
	if f.PairCoeffs != nil {
		res.PairCoeffs = make([]PairCoeff, len(f.PairCoeffs))
		for i := range f.PairCoeffs {
			res.PairCoeffs[i] = f.PairCoeffs[i].clone()
		}
	}
	if f.Commands != nil {
		res.Commands = make([]Command, len(f.Commands))
		for i := range f.Commands {
			res.Commands[i] = Command{Terms: slices.Clone(f.Commands[i].Terms)}
		}
	}
	res.Artifacts = slices.Clone(f.Artifacts)
	return res
}
