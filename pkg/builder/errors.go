package builder

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// IncompleteBuildError is returned by Build when required inputs
// are not set.
func IncompleteBuildError(f Family, missing []string) error {
	msg := "Cannot build <em>%s</em> potential, missing: %s"
	vars := []any{f, strings.Join(missing, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IncompleteBuildError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: incomplete %s build: %v",
			fn.Name(), f, missing),
	}
}

// UnsupportedPairStyleError is returned when a pair style cannot be
// modeled by a builder.
func UnsupportedPairStyleError(style string, f Family) error {
	msg := "Pair style <em>%s</em> is not supported by builders"
	vars := []any{style}
	if f != "" {
		msg = "Pair style <em>%s</em> is not supported by <em>%s</em> builder"
		vars = append(vars, f)
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnsupportedPairStyleError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unsupported pair style %q", fn.Name(), style),
	}
}

// UnknownFamilyError is returned for a family name without a builder.
func UnknownFamilyError(name string) error {
	msg := "Unknown builder family <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildSpecError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown family %q", fn.Name(), name),
	}
}

// BuildInputError is returned for inconsistent builder input.
func BuildInputError(field, reason string) error {
	msg := "Invalid builder input <em>%s</em>: %s"
	vars := []any{field, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid %s: %s", fn.Name(), field, reason),
	}
}

// BuildSpecError is returned when a build description cannot be read.
func BuildSpecError(err error) error {
	msg := "Cannot read build description"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildSpecError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
