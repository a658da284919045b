package elements

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// UnknownElementError is returned when a tag is not a recognized element
// or isotope.
func UnknownElementError(tag string) error {
	msg := "Unknown element <em>%s</em>"
	vars := []any{tag}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownElementError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown element %q", fn.Name(), tag),
	}
}
