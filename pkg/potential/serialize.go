package potential

import "fmt"

// Serialize converts a record back to a document. It is the structural
// inverse of Parse: list fields that were given as a single mapping in the
// parsed document are written back as a single mapping. Numbers are
// written as float64 values.
func Serialize(rec *Record) Document {
	lay := &rec.layout
	f := &rec.f
	res := Document{
		"key": f.Key,
		"id":  f.ID,
	}
	putStr(res, "URL", f.URL)
	putStr(res, "status", f.Status)
	putStr(res, "comments", f.Comments)
	putStr(res, "units", f.Units)
	putStr(res, "atom_style", f.AtomStyle)
	if f.AllSymbols || lay.allSymbolsSet {
		res["allsymbols"] = f.AllSymbols
	}

	pot := f.Potential
	if pot.Key != "" || pot.ID != "" || pot.URL != "" || len(pot.DOIs) > 0 {
		pm := map[string]any{}
		putStr(pm, "key", pot.Key)
		putStr(pm, "id", pot.ID)
		putStr(pm, "URL", pot.URL)
		if len(pot.DOIs) > 0 {
			pm["doi"] = serStrings(lay, "potential.doi", pot.DOIs)
		}
		res["potential"] = pm
	}

	if len(f.Atoms) > 0 {
		atoms := make([]any, len(f.Atoms))
		for i, v := range f.Atoms {
			am := map[string]any{}
			putStr(am, "symbol", v.Symbol)
			putStr(am, "element", v.Element)
			if v.Mass != nil {
				am["mass"] = *v.Mass
			}
			if v.Charge != nil {
				am["charge"] = *v.Charge
			}
			atoms[i] = am
		}
		res["atom"] = serList(lay, "atom", atoms)
	}

	ps := map[string]any{"type": f.PairStyle.Type}
	if len(f.PairStyle.Terms) > 0 {
		ps["term"] = serTerms(lay, "pair_style.term", f.PairStyle.Terms)
	}
	res["pair_style"] = ps

	if len(f.PairCoeffs) > 0 {
		coeffs := make([]any, len(f.PairCoeffs))
		for i, v := range f.PairCoeffs {
			path := fmt.Sprintf("pair_coeff[%d]", i)
			cm := map[string]any{}
			if len(v.Interaction) > 0 {
				cm["interaction"] = map[string]any{
					"symbol": serStrings(lay, path+".interaction.symbol", v.Interaction),
				}
			}
			if len(v.Terms) > 0 {
				cm["term"] = serTerms(lay, path+".term", v.Terms)
			}
			coeffs[i] = cm
		}
		res["pair_coeff"] = serList(lay, "pair_coeff", coeffs)
	}

	if len(f.Commands) > 0 {
		cmds := make([]any, len(f.Commands))
		for i, v := range f.Commands {
			path := fmt.Sprintf("command[%d].term", i)
			cm := map[string]any{}
			if len(v.Terms) > 0 {
				cm["term"] = serTerms(lay, path, v.Terms)
			}
			cmds[i] = cm
		}
		res["command"] = serList(lay, "command", cmds)
	}

	if len(f.Artifacts) > 0 {
		arts := make([]any, len(f.Artifacts))
		for i, v := range f.Artifacts {
			lm := map[string]any{}
			putStr(lm, "URL", v.URL)
			putStr(lm, "label", v.Label)
			putStr(lm, "link-text", v.Filename)
			arts[i] = map[string]any{"web-link": lm}
		}
		res["artifact"] = serList(lay, "artifact", arts)
	}

	return res
}

// TermNode converts a term to its document representation.
func TermNode(t Term) map[string]any {
	switch t.kind {
	case SymbolsTerm, SymbolsListTerm:
		return map[string]any{t.kind.String(): true}
	case ParameterTerm:
		if t.isNum {
			return map[string]any{"parameter": t.num}
		}
		return map[string]any{"parameter": t.text}
	default:
		return map[string]any{t.kind.String(): t.text}
	}
}

func serTerms(lay *layout, path string, terms []Term) any {
	res := make([]any, len(terms))
	for i, v := range terms {
		res[i] = TermNode(v)
	}
	return serList(lay, path, res)
}

func serList(lay *layout, path string, l []any) any {
	if len(l) == 1 && lay.single(path) {
		return l[0]
	}
	return l
}

func serStrings(lay *layout, path string, l []string) any {
	if len(l) == 1 && lay.single(path) {
		return l[0]
	}
	res := make([]any, len(l))
	for i := range l {
		res[i] = l[i]
	}
	return res
}

func putStr(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}
