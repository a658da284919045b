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
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnpot/internal/iofs"
	"github.com/gnames/gnpot/internal/iostore"
	"github.com/gnames/gnpot/pkg/builder"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/gnames/gnpot/pkg/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getBuildCmd returns the build command.
func getBuildCmd() *cobra.Command {
	var (
		save   bool
		format string
	)

	buildCmd := &cobra.Command{
		Use:   "build SPEC.yaml",
		Short: "Create a potential record from a build description",
		Long: `Build a potential-LAMMPS record from a YAML description.

The description names a builder family (pair, paramfile, eam, libparam,
eim) or a pair style, common record fields and inputs of the family.
The built record is printed, or saved to the record store with --save.

Example of a description:

  family: pair
  id: 2024--Doe-J--Al-Cu--LAMMPS--ipr1
  pair_style: lj/cut
  pair_style_terms: [10.0]
  atoms:
    - {element: Al}
    - {element: Cu}
  interactions:
    - {symbols: [Al, Al], terms: [0.39, 2.62]}
    - {symbols: [Al, Cu], terms: [0.41, 2.58]}
    - {symbols: [Cu, Cu], terms: [0.41, 2.34]}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				err = iofs.ReadFileError(args[0], err)
				gn.PrintErrorMessage(err)
				return err
			}

			var st store.Store
			if save {
				st = iostore.New(cfg)
			}
			err = buildRecord(context.Background(), data, st, format, cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	buildCmd.Flags().BoolVarP(
		&save, "save", "s", false,
		"save the record to the record store",
	)
	buildCmd.Flags().StringVarP(
		&format, "format", "f", "json",
		"output format of printed record: json, yaml",
	)

	return buildCmd
}

// buildRecord builds a record from YAML description. If st is not nil
// the record is saved, otherwise it is written to w.
func buildRecord(
	ctx context.Context,
	data []byte,
	st store.Store,
	format string,
	w io.Writer,
) error {
	spec, err := builder.ParseSpec(data)
	if err != nil {
		return err
	}
	b, err := spec.Builder()
	if err != nil {
		return err
	}
	rec, err := b.Build()
	if err != nil {
		return err
	}
	doc := potential.Wrap(potential.Serialize(rec))

	if st != nil {
		if err = st.Save(ctx, doc); err != nil {
			return err
		}
		slog.Info("Record saved", "id", rec.ID(), "family", b.Family())
		gn.Info("Saved record <em>%s</em>", rec.ID())
		return nil
	}

	var out []byte
	switch format {
	case "yaml":
		out, err = yaml.Marshal(map[string]any(doc))
	case "json":
		out, err = gnfmt.GNjson{Pretty: true}.Encode(doc)
		out = append(out, '\n')
	default:
		return FlagValueError("format", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
