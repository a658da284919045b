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
	"fmt"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/internal/iostore"
	"github.com/gnames/gnpot/pkg/config"
	"github.com/gnames/gnpot/pkg/lammps"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/gnames/gnpot/pkg/store"
	"github.com/spf13/cobra"
)

// renderInput collects render settings that are not part of config.
type renderInput struct {
	symbols     []string
	masses      map[string]string
	dataFile    string
	pbc         string
	restartFile string
}

// getRenderCmd returns the render command.
func getRenderCmd() *cobra.Command {
	var (
		in       renderInput
		comments bool
		pathMode string
		prefix   string
	)

	renderCmd := &cobra.Command{
		Use:   "render ID",
		Short: "Print LAMMPS commands of a potential record",
		Long: `Generate LAMMPS input commands for a potential record.

The output contains optional print lines with information about the
potential, extra commands of the record, pair_style, pair_coeff and
mass commands. Atom types 1..n follow the order of --symbols
(all symbols of the record by default).

File names in pair_coeff commands are written according to path mode:
  bare      file name only
  by-id     <id>/<file>
  prefixed  <prefix>/<id>/<file>
  dir       <prefix>/<file>

Examples:
  # Commands for all atom types of a record
  gnpot render 2009--Mendelev-M-I--Al-Mg--LAMMPS--ipr1

  # Only Mg as atom type 1 with files from ./potentials
  gnpot render ID --symbols Mg --path-mode dir --prefix potentials

  # Add commands that read a data file
  gnpot render ID --data system.dat --pbc ppm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var renderOpts []config.Option
			if cmd.Flags().Changed("comments") {
				renderOpts = append(renderOpts, config.OptRenderComments(comments))
			}
			if cmd.Flags().Changed("path-mode") {
				renderOpts = append(renderOpts, config.OptRenderPathMode(pathMode))
			}
			if cmd.Flags().Changed("prefix") {
				renderOpts = append(renderOpts, config.OptRenderPrefix(prefix))
			}
			if len(renderOpts) > 0 {
				cfg.Update(renderOpts)
			}
			if cmd.Flags().Changed("data") && cmd.Flags().Changed("restart") {
				err := FlagValueError("restart", in.restartFile)
				gn.PrintErrorMessage(err)
				return err
			}

			st := iostore.New(cfg)
			out, err := renderRecord(context.Background(), st, cfg, args[0], in)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	renderCmd.Flags().StringSliceVarP(
		&in.symbols, "symbols", "s", nil,
		"ordered symbols of LAMMPS atom types (default all)",
	)
	renderCmd.Flags().BoolVarP(
		&comments, "comments", "c", true,
		"add print lines with potential information",
	)
	renderCmd.Flags().StringVarP(
		&pathMode, "path-mode", "p", lammps.PathBare,
		"file path mode: bare, by-id, prefixed, dir",
	)
	renderCmd.Flags().StringVar(
		&prefix, "prefix", "",
		"directory for prefixed and dir path modes",
	)
	renderCmd.Flags().StringToStringVarP(
		&in.masses, "mass", "m", nil,
		"mass overrides as Symbol=value pairs, e.g. Al=26.98,Cu=63.5",
	)
	renderCmd.Flags().StringVarP(
		&in.dataFile, "data", "d", "",
		"add units, atom_style, boundary and read_data commands",
	)
	renderCmd.Flags().StringVar(
		&in.pbc, "pbc", "ppp",
		"boundary of the data file: p for periodic, m for shrink-wrapped",
	)
	renderCmd.Flags().StringVarP(
		&in.restartFile, "restart", "r", "",
		"add read_restart command for the given file",
	)

	return renderCmd
}

// renderRecord fetches a record from the store and returns LAMMPS text.
func renderRecord(
	ctx context.Context,
	st store.Store,
	cfg *config.Config,
	id string,
	in renderInput,
) (string, error) {
	doc, err := st.Fetch(ctx, id)
	if err != nil {
		return "", err
	}
	rec, err := potential.Parse(doc)
	if err != nil {
		return "", err
	}

	masses, err := parseMasses(in.masses)
	if err != nil {
		return "", err
	}

	lopts := []lammps.Option{
		lammps.WithComments(cfg.Render.Comments),
		lammps.WithPathMode(cfg.Render.PathMode),
		lammps.WithPrefix(cfg.Render.Prefix),
	}
	if len(in.symbols) > 0 {
		lopts = append(lopts, lammps.WithSymbols(in.symbols...))
	}
	if len(masses) > 0 {
		lopts = append(lopts, lammps.WithMasses(masses))
	}

	var lines []string
	switch {
	case in.dataFile != "":
		var pbc [3]bool
		if pbc, err = parsePBC(in.pbc); err != nil {
			return "", err
		}
		lines, err = lammps.DataInfo(rec, in.dataFile, pbc, lopts...)
	case in.restartFile != "":
		lines, err = lammps.RestartInfo(rec, in.restartFile, lopts...)
	default:
		lines, err = lammps.Render(rec, lopts...)
	}
	if err != nil {
		return "", err
	}

	slog.Info("Rendered potential",
		"id", rec.ID(),
		"pair_style", rec.PairStyle().Type,
		"lines", len(lines),
	)
	return lammps.Text(lines), nil
}
