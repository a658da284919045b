package cmd

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// FlagValueError is returned when a command line flag has a value that
// cannot be used.
func FlagValueError(flag, val string) error {
	msg := "Invalid value <em>%s</em> of flag <em>--%s</em>"
	vars := []any{val, flag}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FlagValueError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad value %q of --%s", fn.Name(), val, flag),
	}
}
