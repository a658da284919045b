package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// StoreDirError is returned when the store directory cannot be used.
func StoreDirError(dir string, err error) error {
	msg := "Cannot use record store directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: store dir %s: %w", fn.Name(), dir, err),
	}
}

// RecordNotFoundError is returned when there is no record with the id.
func RecordNotFoundError(id, dir string) error {
	msg := "Record <em>%s</em> is not found in <em>%s</em>"
	vars := []any{id, dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreRecordNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: record %q not found", fn.Name(), id),
	}
}

// DecodeError is returned when a document file cannot be read.
func DecodeError(path string, err error) error {
	msg := "Cannot read record document <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode %s: %w", fn.Name(), path, err),
	}
}

// EncodeError is returned when a record cannot be saved.
func EncodeError(id string, err error) error {
	msg := "Cannot save record <em>%s</em>"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save %s: %w", fn.Name(), id, err),
	}
}
