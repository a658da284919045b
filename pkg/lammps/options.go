package lammps

import "slices"

// Path modes define how file terms are written to LAMMPS commands.
const (
	// PathBare writes file names as they are.
	PathBare = "bare"
	// PathByID places files into the subdirectory named by record id.
	PathByID = "by-id"
	// PathPrefixed places files into prefix/id subdirectory.
	PathPrefixed = "prefixed"
	// PathDir places files directly into the prefix directory.
	PathDir = "dir"
)

// PathModes lists all supported path modes.
var PathModes = []string{PathBare, PathByID, PathPrefixed, PathDir}

// IsPathMode checks if a string is a supported path mode.
func IsPathMode(s string) bool {
	return slices.Contains(PathModes, s)
}

type settings struct {
	symbols   []string
	comments  bool
	pathMode  string
	prefix    string
	masses    map[string]float64
	units     string
	atomStyle string
}

func newSettings(opts []Option) settings {
	res := settings{comments: true, pathMode: PathBare}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

// Option changes render settings.
type Option func(*settings)

// WithSymbols sets the ordered list of atom-model symbols that become
// LAMMPS atom types 1..n. By default all symbols of a record are used in
// the record order.
func WithSymbols(symbols ...string) Option {
	return func(s *settings) {
		s.symbols = slices.Clone(symbols)
	}
}

// WithComments toggles print lines with information about the potential.
func WithComments(b bool) Option {
	return func(s *settings) {
		s.comments = b
	}
}

// WithPathMode sets the way file terms are rendered.
func WithPathMode(mode string) Option {
	return func(s *settings) {
		s.pathMode = mode
	}
}

// WithPrefix sets the directory used by prefixed and dir path modes.
func WithPrefix(dir string) Option {
	return func(s *settings) {
		s.prefix = dir
	}
}

// WithMasses overrides masses of given symbols.
func WithMasses(masses map[string]float64) Option {
	return func(s *settings) {
		s.masses = make(map[string]float64, len(masses))
		for k, v := range masses {
			s.masses[k] = v
		}
	}
}

// WithUnits overrides units of the record in DataInfo.
func WithUnits(units string) Option {
	return func(s *settings) {
		s.units = units
	}
}

// WithAtomStyle overrides atom_style of the record in DataInfo.
func WithAtomStyle(style string) Option {
	return func(s *settings) {
		s.atomStyle = style
	}
}
