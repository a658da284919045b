/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnpot/internal/iofiles"
	"github.com/gnames/gnpot/internal/iostore"
	"github.com/gnames/gnpot/pkg/config"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/spf13/cobra"
)

// getFilesCmd returns the files command.
func getFilesCmd() *cobra.Command {
	var (
		dest  string
		force bool
	)

	filesCmd := &cobra.Command{
		Use:   "files ID",
		Short: "Copy parameter files of a potential record",
		Long: `Copy parameter files referenced by a record from the record store
(<store dir>/<id>/) to a working directory.

Existing files are kept unless --force is given. Use together with
'gnpot render --path-mode dir --prefix DIR' to get commands that refer
to the copied files.

Examples:
  gnpot files 2009--Mendelev-M-I--Al-Mg--LAMMPS--ipr1 --dest potentials`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := copyFiles(context.Background(), cfg, args[0], dest, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	filesCmd.Flags().StringVarP(
		&dest, "dest", "d", ".",
		"target directory for parameter files",
	)
	filesCmd.Flags().BoolVarP(
		&force, "force", "f", false,
		"overwrite existing files",
	)

	return filesCmd
}

func copyFiles(
	ctx context.Context,
	cfg *config.Config,
	id, dest string,
	force bool,
) error {
	doc, err := iostore.New(cfg).Fetch(ctx, id)
	if err != nil {
		return err
	}
	rec, err := potential.Parse(doc)
	if err != nil {
		return err
	}

	names := rec.Files()
	if len(names) == 0 {
		gn.Info("Record <em>%s</em> has no parameter files", id)
		return nil
	}

	var total uint64
	bar := newProgressBar(len(names), "Copying files: ")
	files := iofiles.New(cfg, iofiles.OptProgress(func(_ string, size int64) {
		total += uint64(size)
		bar.Increment()
	}))

	copied, skipped, err := files.Materialize(ctx, rec, dest, force)
	bar.Finish()
	if err != nil {
		return err
	}

	slog.Info("Parameter files materialized",
		"id", id, "dest", dest, "copied", copied, "skipped", skipped)
	gn.Info(
		"Copied <em>%d</em> file(s) (%s), skipped <em>%d</em> existing file(s)",
		copied, humanize.Bytes(total), skipped,
	)
	return nil
}

// newProgressBar creates a new progress bar with consistent
// settings.
func newProgressBar(
	total int,
	prefix string,
) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
