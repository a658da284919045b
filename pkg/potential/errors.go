package potential

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// SchemaError is returned when a document or record fields do not follow
// the potential-LAMMPS schema. The path points to the offending field.
func SchemaError(path, reason string) error {
	msg := "Invalid potential-LAMMPS record: <em>%s</em> %s"
	vars := []any{path, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: schema error: %s %s",
			fn.Name(), path, reason),
	}
}
