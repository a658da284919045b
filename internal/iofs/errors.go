package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// CreateDirError is returned when one of gnpot home directories cannot
// be created.
func CreateDirError(dir string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create directory <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: mkdir %s: %w", fn.Name(), dir, err),
	}
}

// WriteConfigError is returned when the default config.yaml cannot be
// written.
func WriteConfigError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  "Cannot write default configuration to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: write %s: %w", fn.Name(), path, err),
	}
}

// ReadFileError is returned when a configuration or build description
// file cannot be read or decoded.
func ReadFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: read %s: %w", fn.Name(), path, err),
	}
}
