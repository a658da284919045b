package lammps

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// UnknownSymbolError is returned when requested symbol is not declared
// by the record.
func UnknownSymbolError(symbol, id string) error {
	msg := "Symbol <em>%s</em> is not declared by potential <em>%s</em>"
	vars := []any{symbol, id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownSymbolError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown symbol %q in %s",
			fn.Name(), symbol, id),
	}
}

// MissingMassError is returned when the mass of an active symbol cannot
// be resolved.
func MissingMassError(symbol string, err error) error {
	msg := "Cannot resolve mass of <em>%s</em>, provide it explicitly"
	vars := []any{symbol}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingMassError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: missing mass of %q: %w", fn.Name(), symbol, err),
	}
}

// RenderOptionError is returned for invalid render settings.
func RenderOptionError(name, val string) error {
	msg := "Invalid render setting <em>%s</em>: %s"
	vars := []any{name, val}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RenderOptionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid render setting %s=%q",
			fn.Name(), name, val),
	}
}
