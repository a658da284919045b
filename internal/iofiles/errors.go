package iofiles

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/errcode"
)

// SourceNotFoundError is returned when a parameter file is absent
// from the archive.
func SourceNotFoundError(id, file string, err error) error {
	msg := "Parameter file <em>%s</em> of <em>%s</em> is not in the archive"
	vars := []any{file, id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FilesSourceNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no file %s for %s: %w", fn.Name(), file, id, err),
	}
}

// CopyError is returned when a file cannot be copied.
func CopyError(path string, err error) error {
	msg := "Cannot copy parameter file to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FilesCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot copy to %s: %w", fn.Name(), path, err),
	}
}

// FileNameError is returned when a file name of a record points outside
// of the record directory.
func FileNameError(id, file string) error {
	msg := "Parameter file name <em>%s</em> of <em>%s</em> is not a local path"
	vars := []any{file, id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FilesNameError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: file name %q of %s is not local", fn.Name(), file, id),
	}
}
