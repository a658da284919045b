package potential

import (
	"fmt"
	"strconv"
)

// TermKind is the tag of a Term.
type TermKind int

const (
	// UnknownTerm is the kind of the zero Term, it never appears in
	// a valid record.
	UnknownTerm TermKind = iota

	// OptionTerm is a literal keyword or string token.
	OptionTerm

	// ParameterTerm is a numeric or string parameter value.
	ParameterTerm

	// FileTerm is a reference to a parameter file. The path written
	// to LAMMPS commands depends on the render path mode.
	FileTerm

	// SymbolsTerm is a placeholder for the ordered list of active
	// atom-model symbols.
	SymbolsTerm

	// SymbolsListTerm is a placeholder for the active symbols of the
	// pair_coeff entry interaction, in the interaction order.
	SymbolsListTerm
)

var termKinds = map[TermKind]string{
	OptionTerm:      "option",
	ParameterTerm:   "parameter",
	FileTerm:        "file",
	SymbolsTerm:     "symbols",
	SymbolsListTerm: "symbolsList",
}

var termKindsByName = func() map[string]TermKind {
	res := make(map[string]TermKind, len(termKinds))
	for k, v := range termKinds {
		res[v] = k
	}
	return res
}()

// String returns the document field name of the kind.
func (k TermKind) String() string {
	if res, ok := termKinds[k]; ok {
		return res
	}
	return "unknown"
}

// Term is one positional token of a LAMMPS command line. It is a closed
// tagged variant: exactly one kind is populated, the zero value is not
// a valid term.
type Term struct {
	kind  TermKind
	text  string
	num   float64
	isNum bool
}

// Option creates a literal keyword term.
func Option(s string) Term {
	return Term{kind: OptionTerm, text: s}
}

// Param creates a numeric parameter term.
func Param(f float64) Term {
	return Term{kind: ParameterTerm, num: f, isNum: true}
}

// ParamText creates a parameter term that is kept as text.
func ParamText(s string) Term {
	return Term{kind: ParameterTerm, text: s}
}

// File creates a parameter file term.
func File(name string) Term {
	return Term{kind: FileTerm, text: name}
}

// Symbols creates the active symbols placeholder.
func Symbols() Term {
	return Term{kind: SymbolsTerm}
}

// SymbolsList creates the interaction symbols placeholder.
func SymbolsList() Term {
	return Term{kind: SymbolsListTerm}
}

// Params converts numbers to parameter terms.
func Params(vals ...float64) []Term {
	res := make([]Term, len(vals))
	for i := range vals {
		res[i] = Param(vals[i])
	}
	return res
}

// TermFromValue converts a plain value to a term: numbers become
// parameters, strings become options, and mappings are read as
// document term nodes.
func TermFromValue(v any) (Term, error) {
	if f, ok := toFloat(v); ok {
		return Param(f), nil
	}
	switch t := v.(type) {
	case string:
		return Option(t), nil
	case Term:
		return t, nil
	}
	if _, ok := asMap(v); ok {
		return ParseTerm(v)
	}
	return Term{}, fmt.Errorf("cannot convert %T to a term", v)
}

// Kind returns the tag of the term.
func (t Term) Kind() TermKind {
	return t.kind
}

// IsPlaceholder is true for terms substituted with symbols at render time.
func (t Term) IsPlaceholder() bool {
	return t.kind == SymbolsTerm || t.kind == SymbolsListTerm
}

// Number returns the numeric value of a numeric parameter.
func (t Term) Number() (float64, bool) {
	return t.num, t.isNum
}

// Text returns the token of option, file and parameter terms. Numeric
// parameters are formatted with FormatNumber.
func (t Term) Text() string {
	if t.isNum {
		return FormatNumber(t.num)
	}
	return t.text
}

// String is used for debugging and error messages.
func (t Term) String() string {
	switch t.kind {
	case SymbolsTerm, SymbolsListTerm:
		return "<" + t.kind.String() + ">"
	default:
		return t.kind.String() + ":" + t.Text()
	}
}

// FormatNumber gives the locale-independent shortest decimal
// representation of a number that parses back to the same value.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func hasPlaceholder(terms []Term) bool {
	for _, v := range terms {
		if v.IsPlaceholder() {
			return true
		}
	}
	return false
}
