package lammps

import (
	"strings"

	"github.com/gnames/gnpot/pkg/potential"
)

// DataInfo returns commands that set units and atom_style, read a LAMMPS
// data file and declare the potential. The pbc flags set periodic (p) or
// shrink-wrapped (m) boundaries along x, y and z.
func DataInfo(
	rec *potential.Record,
	dataFile string,
	pbc [3]bool,
	opts ...Option,
) ([]string, error) {
	set := newSettings(opts)
	units, style := set.units, set.atomStyle
	if units == "" {
		units = rec.Units()
	}
	if style == "" {
		style = rec.AtomStyle()
	}

	bounds := make([]string, 3)
	for i, v := range pbc {
		bounds[i] = "m"
		if v {
			bounds[i] = "p"
		}
	}

	pot, err := Render(rec, opts...)
	if err != nil {
		return nil, err
	}

	res := []string{
		"units " + units,
		"atom_style " + style,
		"",
		"boundary " + strings.Join(bounds, " "),
	}
	if dataFile != "" {
		res = append(res, "read_data "+dataFile)
	}
	res = append(res, "")
	return append(res, pot...), nil
}

// RestartInfo returns commands that read a LAMMPS restart file and
// declare the potential.
func RestartInfo(
	rec *potential.Record,
	restartFile string,
	opts ...Option,
) ([]string, error) {
	pot, err := Render(rec, opts...)
	if err != nil {
		return nil, err
	}
	res := []string{"read_restart " + restartFile, ""}
	return append(res, pot...), nil
}
