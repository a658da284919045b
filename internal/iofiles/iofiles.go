// Package iofiles implements store.Files with a local archive of parameter
// files. Files of a record are kept in <store dir>/<record id>/.
package iofiles

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/gnames/gnpot/pkg/config"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/gnames/gnpot/pkg/store"
	"github.com/gnames/gnsys"
)

type archive struct {
	dir      string
	progress func(name string, size int64)
}

// Option changes settings of the archive.
type Option func(*archive)

// OptProgress sets a callback called after every processed file.
// Size is zero for skipped files.
func OptProgress(fn func(name string, size int64)) Option {
	return func(a *archive) {
		a.progress = fn
	}
}

// New creates a file materializer for the configured record store.
func New(cfg *config.Config, opts ...Option) store.Files {
	res := &archive{dir: cfg.StoreDir()}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Materialize copies parameter files of the record into targetDir.
// All source files are checked before copying starts.
func (a *archive) Materialize(
	ctx context.Context,
	rec *potential.Record,
	targetDir string,
	overwrite bool,
) (int, int, error) {
	var copied, skipped int
	files := rec.Files()
	srcDir := filepath.Join(a.dir, rec.ID())

	for _, v := range files {
		if !filepath.IsLocal(v) {
			return 0, 0, FileNameError(rec.ID(), v)
		}
		if !gnsys.FileExists(filepath.Join(srcDir, v)) {
			return 0, 0, SourceNotFoundError(rec.ID(), v, fs.ErrNotExist)
		}
	}

	if err := gnsys.MakeDir(targetDir); err != nil {
		return 0, 0, CopyError(targetDir, err)
	}

	for _, v := range files {
		if err := ctx.Err(); err != nil {
			return copied, skipped, err
		}
		dst := filepath.Join(targetDir, v)
		if !overwrite && gnsys.FileExists(dst) {
			skipped++
			slog.Debug("Skipping existing file", "path", dst)
			a.report(v, 0)
			continue
		}

		size, err := copyFile(filepath.Join(srcDir, v), dst)
		if err != nil {
			return copied, skipped, CopyError(dst, err)
		}
		copied++
		slog.Debug("Copied parameter file", "id", rec.ID(), "path", dst, "size", size)
		a.report(v, size)
	}
	return copied, skipped, nil
}

func (a *archive) report(name string, size int64) {
	if a.progress != nil {
		a.progress(name, size)
	}
}

func copyFile(src, dst string) (int64, error) {
	if err := gnsys.MakeDir(filepath.Dir(dst)); err != nil {
		return 0, err
	}
	return gnsys.CopyFile(src, dst)
}
