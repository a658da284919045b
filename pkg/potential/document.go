package potential

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ModelRoot is the name of the root element that wraps a record in
// stored documents.
const ModelRoot = "potential-LAMMPS"

// Document is a structured potential-LAMMPS document as it is decoded
// from JSON or YAML: a tree of named fields.
type Document map[string]any

// Unwrap removes the ModelRoot element if the document has it.
func Unwrap(doc Document) Document {
	if len(doc) != 1 {
		return doc
	}
	if inner, ok := asMap(doc[ModelRoot]); ok {
		return inner
	}
	return doc
}

// Wrap places the document under the ModelRoot element.
func Wrap(doc Document) Document {
	return Document{ModelRoot: map[string]any(doc)}
}

// layout remembers which list fields of a parsed document were given as
// a single mapping instead of a list, so serialization gives back the
// same shape.
type layout struct {
	singles       map[string]bool
	allSymbolsSet bool
}

func (l *layout) single(path string) bool {
	return l.singles[path]
}

func (l *layout) setSingle(path string) {
	if l.singles == nil {
		l.singles = make(map[string]bool)
	}
	l.singles[path] = true
}

// parser keeps the state of one Parse call.
type parser struct {
	lay layout
}

// Parse converts a document into a Record. The document may be wrapped
// into the ModelRoot element. Fails with SchemaError when the document
// does not follow the potential-LAMMPS schema.
func Parse(doc Document) (*Record, error) {
	doc = Unwrap(doc)
	if doc == nil {
		return nil, SchemaError("document", "is empty")
	}

	var p parser
	f, err := p.fields(doc)
	if err != nil {
		return nil, err
	}
	res, err := New(f)
	if err != nil {
		return nil, err
	}
	res.layout = p.lay
	return res, nil
}

func (p *parser) fields(doc Document) (Fields, error) {
	var res Fields
	var err error

	if res.Key, err = reqStr(doc, "key", "key"); err != nil {
		return res, err
	}
	if res.ID, err = reqStr(doc, "id", "id"); err != nil {
		return res, err
	}
	if res.URL, err = optStr(doc, "URL", "URL"); err != nil {
		return res, err
	}
	if res.Status, err = optStr(doc, "status", "status"); err != nil {
		return res, err
	}
	if res.Comments, err = optStr(doc, "comments", "comments"); err != nil {
		return res, err
	}
	if res.Units, err = optStr(doc, "units", "units"); err != nil {
		return res, err
	}
	if res.AtomStyle, err = optStr(doc, "atom_style", "atom_style"); err != nil {
		return res, err
	}
	if v, ok := doc["allsymbols"]; ok {
		b, ok := asBool(v)
		if !ok {
			return res, SchemaError("allsymbols", "must be a boolean")
		}
		res.AllSymbols = b
		p.lay.allSymbolsSet = true
	}
	if res.Potential, err = p.potential(doc); err != nil {
		return res, err
	}
	if res.Atoms, err = p.atoms(doc); err != nil {
		return res, err
	}
	if res.PairStyle, err = p.pairStyle(doc); err != nil {
		return res, err
	}
	if res.PairCoeffs, err = p.pairCoeffs(doc); err != nil {
		return res, err
	}
	if res.Commands, err = p.commands(doc); err != nil {
		return res, err
	}
	if res.Artifacts, err = p.artifacts(doc); err != nil {
		return res, err
	}
	return res, nil
}

func (p *parser) potential(doc Document) (Ref, error) {
	var res Ref
	v, ok := doc["potential"]
	if !ok {
		return res, nil
	}
	m, ok := asMap(v)
	if !ok {
		return res, SchemaError("potential", "must be a mapping")
	}
	var err error
	if res.Key, err = optStr(m, "key", "potential.key"); err != nil {
		return res, err
	}
	if res.ID, err = optStr(m, "id", "potential.id"); err != nil {
		return res, err
	}
	if res.URL, err = optStr(m, "URL", "potential.URL"); err != nil {
		return res, err
	}
	if res.DOIs, err = p.strings(m, "doi", "potential.doi"); err != nil {
		return res, err
	}
	return res, nil
}

func (p *parser) atoms(doc Document) ([]Atom, error) {
	nodes, err := p.list(doc, "atom", "atom")
	if err != nil {
		return nil, err
	}
	var res []Atom
	for i, v := range nodes {
		path := fmt.Sprintf("atom[%d]", i)
		m, ok := asMap(v)
		if !ok {
			return nil, SchemaError(path, "must be a mapping")
		}
		var atom Atom
		if atom.Symbol, err = optStr(m, "symbol", path+".symbol"); err != nil {
			return nil, err
		}
		if atom.Element, err = optStr(m, "element", path+".element"); err != nil {
			return nil, err
		}
		if atom.Symbol == "" && atom.Element == "" {
			return nil, SchemaError(path, "needs symbol or element")
		}
		if atom.Mass, err = optFloat(m, "mass", path+".mass"); err != nil {
			return nil, err
		}
		if atom.Charge, err = optFloat(m, "charge", path+".charge"); err != nil {
			return nil, err
		}
		res = append(res, atom)
	}
	return res, nil
}

func (p *parser) pairStyle(doc Document) (PairStyle, error) {
	var res PairStyle
	v, ok := doc["pair_style"]
	if !ok {
		return res, SchemaError("pair_style.type", "is required")
	}
	m, ok := asMap(v)
	if !ok {
		return res, SchemaError("pair_style", "must be a mapping")
	}
	var err error
	if res.Type, err = reqStr(m, "type", "pair_style.type"); err != nil {
		return res, err
	}
	res.Terms, err = p.terms(m, "pair_style.term")
	return res, err
}

func (p *parser) pairCoeffs(doc Document) ([]PairCoeff, error) {
	nodes, err := p.list(doc, "pair_coeff", "pair_coeff")
	if err != nil {
		return nil, err
	}
	var res []PairCoeff
	for i, v := range nodes {
		path := fmt.Sprintf("pair_coeff[%d]", i)
		m, ok := asMap(v)
		if !ok {
			return nil, SchemaError(path, "must be a mapping")
		}
		var pc PairCoeff
		if iv, ok := m["interaction"]; ok {
			im, ok := asMap(iv)
			if !ok {
				return nil, SchemaError(path+".interaction", "must be a mapping")
			}
			pc.Interaction, err = p.strings(im, "symbol", path+".interaction.symbol")
			if err != nil {
				return nil, err
			}
		}
		if pc.Terms, err = p.terms(m, path+".term"); err != nil {
			return nil, err
		}
		res = append(res, pc)
	}
	return res, nil
}

func (p *parser) commands(doc Document) ([]Command, error) {
	nodes, err := p.list(doc, "command", "command")
	if err != nil {
		return nil, err
	}
	var res []Command
	for i, v := range nodes {
		path := fmt.Sprintf("command[%d]", i)
		m, ok := asMap(v)
		if !ok {
			return nil, SchemaError(path, "must be a mapping")
		}
		terms, err := p.terms(m, path+".term")
		if err != nil {
			return nil, err
		}
		res = append(res, Command{Terms: terms})
	}
	return res, nil
}

func (p *parser) artifacts(doc Document) ([]Artifact, error) {
	nodes, err := p.list(doc, "artifact", "artifact")
	if err != nil {
		return nil, err
	}
	var res []Artifact
	for i, v := range nodes {
		path := fmt.Sprintf("artifact[%d]", i)
		m, ok := asMap(v)
		if !ok {
			return nil, SchemaError(path, "must be a mapping")
		}
		link, ok := asMap(m["web-link"])
		if !ok {
			return nil, SchemaError(path+".web-link", "must be a mapping")
		}
		path += ".web-link"
		var a Artifact
		if a.URL, err = optStr(link, "URL", path+".URL"); err != nil {
			return nil, err
		}
		if a.Label, err = optStr(link, "label", path+".label"); err != nil {
			return nil, err
		}
		if a.Filename, err = optStr(link, "link-text", path+".link-text"); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func (p *parser) terms(m Document, path string) ([]Term, error) {
	nodes, err := p.list(m, "term", path)
	if err != nil {
		return nil, err
	}
	var res []Term
	for i, v := range nodes {
		t, err := parseTerm(v, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

// ParseTerm converts a document term node, such as {"file": "Al.eam"},
// into a Term.
func ParseTerm(node any) (Term, error) {
	return parseTerm(node, "term")
}

func parseTerm(node any, path string) (Term, error) {
	m, ok := asMap(node)
	if !ok {
		return Term{}, SchemaError(path, "must be a mapping")
	}
	var kind TermKind
	var val any
	for k, v := range m {
		tk, ok := termKindsByName[k]
		if !ok {
			return Term{}, SchemaError(path,
				fmt.Sprintf("has unknown field %q", k))
		}
		if kind != UnknownTerm {
			return Term{}, SchemaError(path, "has more than one populated variant")
		}
		kind, val = tk, v
	}

	switch kind {
	case UnknownTerm:
		return Term{}, SchemaError(path, "has no populated variant")
	case OptionTerm, FileTerm:
		s, ok := val.(string)
		if !ok {
			return Term{}, SchemaError(path+"."+kind.String(), "must be a string")
		}
		if kind == OptionTerm {
			return Option(s), nil
		}
		return File(s), nil
	case ParameterTerm:
		if f, ok := toFloat(val); ok {
			return Param(f), nil
		}
		if s, ok := val.(string); ok {
			return ParamText(s), nil
		}
		return Term{}, SchemaError(path+".parameter", "must be a number or a string")
	default:
		b, ok := asBool(val)
		if !ok || !b {
			return Term{}, SchemaError(path+"."+kind.String(), "must be true")
		}
		if kind == SymbolsTerm {
			return Symbols(), nil
		}
		return SymbolsList(), nil
	}
}

// list returns the value of a field that can be either a list or
// a single element.
func (p *parser) list(m Document, key, path string) ([]any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	if l, ok := v.([]any); ok {
		return l, nil
	}
	if _, ok := asMap(v); ok {
		p.lay.setSingle(path)
		return []any{v}, nil
	}
	return nil, SchemaError(path, "must be a list or a mapping")
}

func (p *parser) strings(m Document, key, path string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok {
		p.lay.setSingle(path)
		return []string{s}, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, SchemaError(path, "must be a string or a list of strings")
	}
	res := make([]string, len(l))
	for i := range l {
		s, ok := l[i].(string)
		if !ok {
			return nil, SchemaError(fmt.Sprintf("%s[%d]", path, i), "must be a string")
		}
		res[i] = s
	}
	return res, nil
}

func reqStr(m Document, key, path string) (string, error) {
	res, err := optStr(m, key, path)
	if err != nil {
		return "", err
	}
	if res == "" {
		return "", SchemaError(path, "is required")
	}
	return res, nil
}

func optStr(m Document, key, path string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	res, ok := v.(string)
	if !ok {
		return "", SchemaError(path, "must be a string")
	}
	return res, nil
}

func optFloat(m Document, key, path string) (*float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, SchemaError(path, "must be a number")
	}
	return Float(f), nil
}

func asMap(v any) (Document, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Document(m), true
	case Document:
		return m, true
	default:
		return nil, false
	}
}

func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(b) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
