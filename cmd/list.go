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
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnpot/internal/iostore"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/gnames/gnpot/pkg/store"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	var f potential.Filter

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Find potential records in the record store",
		Long: `Print ids of records that match all given filters.

Flags that take several values match records that have any of the values,
except --element and --symbol: records must have all of them.
Status "active" also matches records without status.

Examples:
  # All records
  gnpot list

  # Active EAM records that contain both Al and Ni
  gnpot list --pair-style eam/alloy --element Al,Ni --status active`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := iostore.New(cfg)
			err := listRecords(context.Background(), st, f, cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	listCmd.Flags().StringSliceVarP(&f.IDs, "id", "i", nil, "record ids")
	listCmd.Flags().StringSliceVar(&f.Keys, "key", nil, "record keys")
	listCmd.Flags().StringSliceVar(&f.PotIDs, "pot-id", nil, "potential ids")
	listCmd.Flags().StringSliceVar(&f.PotKeys, "pot-key", nil, "potential keys")
	listCmd.Flags().StringSliceVarP(&f.Elements, "element", "e", nil,
		"elements that must all be present")
	listCmd.Flags().StringSliceVar(&f.Symbols, "symbol", nil,
		"symbols that must all be present")
	listCmd.Flags().StringSliceVarP(&f.PairStyles, "pair-style", "p", nil,
		"LAMMPS pair styles")
	listCmd.Flags().StringSliceVarP(&f.Units, "units", "u", nil, "LAMMPS units")
	listCmd.Flags().StringSliceVar(&f.AtomStyles, "atom-style", nil,
		"LAMMPS atom styles")
	listCmd.Flags().StringSliceVarP(&f.Statuses, "status", "s", nil,
		"record status: active, superseded, retracted")

	return listCmd
}

// listRecords writes a line per matched record and a summary.
func listRecords(
	ctx context.Context,
	st store.Store,
	f potential.Filter,
	w io.Writer,
) error {
	docs, err := st.List(ctx, f)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		rec, err := potential.Parse(doc)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			rec.ID(), rec.PairStyle().Type, strings.Join(rec.Elements(), ","))
	}

	gn.Info("Found <em>%s</em> record(s)", humanize.Comma(int64(len(docs))))
	return nil
}
