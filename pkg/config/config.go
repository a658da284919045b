// Package config provides configuration management for gnpot.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Store: dir, format
//   - Render: path_mode, prefix, comments
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNPOT_ prefix with underscores for nesting:
//
//	GNPOT_STORE_DIR=/data/potentials
//	GNPOT_RENDER_PATH_MODE=by-id
//	GNPOT_LOG_LEVEL=info
//	GNPOT_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gnpot configuration.
type Config struct {
	// Store contains settings of the local record store.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Render contains default settings for LAMMPS command generation.
	Render RenderConfig `mapstructure:"render" yaml:"render"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers used to decode
	// record documents. Default value is set according to the number
	// of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// StoreConfig describes the directory that keeps potential-LAMMPS records.
type StoreConfig struct {
	// Dir is the directory with record documents. Parameter files of a
	// record are kept in a subdirectory named after the record id.
	// Empty value means the default data directory (see RecordsDir).
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Format is the encoding used when new records are saved.
	// Valid values: "json", "yaml".
	Format string `mapstructure:"format" yaml:"format"`
}

// RenderConfig contains defaults for generated LAMMPS commands.
type RenderConfig struct {
	// PathMode determines how parameter file names are written.
	// Valid values:
	//   - "bare": file name only
	//   - "by-id": record id subdirectory, id/file
	//   - "prefixed": prefix/id/file
	//   - "dir": prefix/file
	PathMode string `mapstructure:"path_mode" yaml:"path_mode"`

	// Prefix is the directory used by "prefixed" and "dir" path modes.
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// Comments adds LAMMPS print commands with information about
	// the potential.
	Comments bool `mapstructure:"comments" yaml:"comments"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Store: StoreConfig{
			Format: "json",
		},
		Render: RenderConfig{
			PathMode: "bare",
			Comments: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// StoreDir returns the directory of the record store. If Store.Dir is
// not set, the default data directory under HomeDir is used.
func (c *Config) StoreDir() string {
	if c.Store.Dir != "" {
		return c.Store.Dir
	}
	return RecordsDir(c.HomeDir)
}
