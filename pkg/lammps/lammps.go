// Package lammps generates LAMMPS input commands for potential-LAMMPS
// records. Rendering is a pure function of a record and render options,
// it never changes the record and can be called concurrently.
package lammps

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gnpot/pkg/potential"
)

// wildcard is written instead of atom types for entries that apply to
// all atom types.
const wildcard = "* *"

type renderer struct {
	rec    *potential.Record
	set    settings
	active []string
	all    []string
}

// Render returns the LAMMPS command lines that declare the interaction and
// masses of a record for the active symbols. The k-th active symbol becomes
// atom type k. On error no lines are returned.
func Render(rec *potential.Record, opts ...Option) ([]string, error) {
	r, err := newRenderer(rec, newSettings(opts))
	if err != nil {
		return nil, err
	}
	return r.render()
}

// Text joins lines into a LAMMPS script fragment, finishing it with
// a blank line.
func Text(lines []string) string {
	var sb strings.Builder
	for _, v := range lines {
		sb.WriteString(v)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func newRenderer(rec *potential.Record, set settings) (*renderer, error) {
	if !IsPathMode(set.pathMode) {
		return nil, RenderOptionError("path mode", set.pathMode)
	}
	res := renderer{rec: rec, set: set, all: rec.Symbols()}
	if set.symbols == nil {
		res.active = res.all
		return &res, nil
	}

	for _, v := range set.symbols {
		if !rec.HasSymbol(v) {
			return nil, UnknownSymbolError(v, rec.ID())
		}
	}
	res.active = slices.Clone(set.symbols)
	if rec.AllSymbols() {
		for _, v := range res.all {
			if !slices.Contains(res.active, v) {
				res.active = append(res.active, v)
			}
		}
	}
	return &res, nil
}

func (r *renderer) render() ([]string, error) {
	var res []string
	if r.set.comments {
		res = append(res, r.comments()...)
	}

	for _, v := range r.rec.Commands() {
		res = append(res, strings.Join(r.terms(v.Terms, r.all), " "))
	}

	ps := r.rec.PairStyle()
	res = append(res, line("pair_style", ps.Type, r.terms(ps.Terms, nil)))
	res = append(res, r.pairCoeffs(ps.Type)...)

	masses, err := r.masses()
	if err != nil {
		return nil, err
	}
	res = append(res, masses...)
	return res, nil
}

func (r *renderer) comments() []string {
	res := []string{printLine("Potential " + r.rec.ID())}
	for _, v := range strings.Split(r.rec.Comments(), "\n") {
		v = strings.TrimRight(v, "\r")
		if strings.TrimSpace(v) != "" {
			res = append(res, printLine(v))
		}
	}

	if dois := r.rec.Potential().DOIs; len(dois) > 0 {
		res = append(res, printLine("Publication(s) related to the potential:"))
		for _, v := range dois {
			res = append(res, printLine("https://doi.org/"+v))
		}
	}

	var urls []string
	for _, v := range r.rec.Artifacts() {
		if v.URL != "" {
			urls = append(urls, v.URL)
		}
	}
	if len(urls) > 0 {
		res = append(res, printLine("Parameter file(s) can be downloaded at:"))
		for _, v := range urls {
			res = append(res, printLine(v))
		}
	}
	return res
}

func (r *renderer) pairCoeffs(style string) []string {
	var res []string
	for _, v := range r.rec.PairCoeffs() {
		if len(v.Interaction) == 0 {
			res = append(res, line("pair_coeff", wildcard, r.terms(v.Terms, r.all)))
			continue
		}

		if !r.overlaps(v.Interaction) {
			continue
		}

		if v.HasPlaceholder() || len(v.Interaction) > 2 {
			res = append(res, line("pair_coeff", wildcard, r.terms(v.Terms, v.Interaction)))
			continue
		}

		a, b := v.Interaction[0], v.Interaction[len(v.Interaction)-1]
		terms := r.terms(v.Terms, v.Interaction)
		for i := range r.active {
			for j := i; j < len(r.active); j++ {
				if style == "eam" && i != j {
					continue
				}
				si, sj := r.active[i], r.active[j]
				if (si == a && sj == b) || (si == b && sj == a) {
					types := fmt.Sprintf("%d %d", i+1, j+1)
					res = append(res, line("pair_coeff", types, terms))
				}
			}
		}
	}
	return res
}

func (r *renderer) overlaps(interaction []string) bool {
	for _, v := range interaction {
		if slices.Contains(r.active, v) {
			return true
		}
	}
	return false
}

// terms renders a term list. The coeff symbols are the symbols a line
// applies to.
func (r *renderer) terms(terms []potential.Term, coeff []string) []string {
	var res []string
	for _, v := range terms {
		switch v.Kind() {
		case potential.FileTerm:
			res = append(res, r.path(v.Text()))
		case potential.SymbolsTerm:
			for _, s := range r.active {
				if slices.Contains(coeff, s) {
					res = append(res, s)
				} else {
					res = append(res, "NULL")
				}
			}
		case potential.SymbolsListTerm:
			for _, s := range coeff {
				if slices.Contains(r.active, s) {
					res = append(res, s)
				}
			}
		default:
			res = append(res, v.Text())
		}
	}
	return res
}

func (r *renderer) path(file string) string {
	if file == "NULL" {
		return file
	}
	switch r.set.pathMode {
	case PathByID:
		return filepath.Join(r.rec.ID(), file)
	case PathPrefixed:
		return filepath.Join(r.set.prefix, r.rec.ID(), file)
	case PathDir:
		return filepath.Join(r.set.prefix, file)
	default:
		return file
	}
}

func (r *renderer) masses() ([]string, error) {
	res := make([]string, len(r.active))
	for i, v := range r.active {
		m, ok := r.set.masses[v]
		if !ok {
			var err error
			if m, err = r.rec.Mass(v); err != nil {
				return nil, MissingMassError(v, err)
			}
		}
		res[i] = fmt.Sprintf("mass %d %s", i+1, potential.FormatNumber(m))
	}
	return res, nil
}

func line(cmd, head string, terms []string) string {
	res := cmd + " " + head
	if len(terms) > 0 {
		res += " " + strings.Join(terms, " ")
	}
	return res
}

func printLine(s string) string {
	return `print "` + strings.ReplaceAll(s, `"`, `'`) + `"`
}
