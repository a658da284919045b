package potential

import "slices"

// Filter is a structured query of potential-LAMMPS records. Empty fields
// do not constrain the query. For scalar fields a record matches if its
// value is one of given values. Elements and Symbols require all given
// values to be present in the record.
type Filter struct {
	IDs        []string
	Keys       []string
	PotIDs     []string
	PotKeys    []string
	Units      []string
	AtomStyles []string
	PairStyles []string
	Statuses   []string
	Elements   []string
	Symbols    []string
}

// IsEmpty is true when the filter matches every record.
func (f Filter) IsEmpty() bool {
	return len(f.IDs)+len(f.Keys)+len(f.PotIDs)+len(f.PotKeys)+
		len(f.Units)+len(f.AtomStyles)+len(f.PairStyles)+
		len(f.Statuses)+len(f.Elements)+len(f.Symbols) == 0
}

// Matches checks if the record satisfies the filter.
func (r *Record) Matches(f Filter) bool {
	if !anyOf(f.IDs, r.f.ID) ||
		!anyOf(f.Keys, r.f.Key) ||
		!anyOf(f.PotIDs, r.f.Potential.ID) ||
		!anyOf(f.PotKeys, r.f.Potential.Key) ||
		!anyOf(f.Units, r.Units()) ||
		!anyOf(f.AtomStyles, r.AtomStyle()) ||
		!anyOf(f.PairStyles, r.f.PairStyle.Type) ||
		!anyOf(f.Statuses, r.Status()) {
		return false
	}
	return allOf(f.Elements, r.Elements()) && allOf(f.Symbols, r.labels)
}

func anyOf(vals []string, v string) bool {
	return len(vals) == 0 || slices.Contains(vals, v)
}

func allOf(vals, have []string) bool {
	for _, v := range vals {
		if !slices.Contains(have, v) {
			return false
		}
	}
	return true
}
