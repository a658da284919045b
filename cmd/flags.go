package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	gnpot "github.com/gnames/gnpot/pkg"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnpot.Version, gnpot.Build)
		os.Exit(0)
	}
}

// parseMasses converts values of Symbol=value mass flags to numbers.
func parseMasses(vals map[string]string) (map[string]float64, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	res := make(map[string]float64, len(vals))
	for _, sym := range slices.Sorted(maps.Keys(vals)) {
		m, err := strconv.ParseFloat(strings.TrimSpace(vals[sym]), 64)
		if err != nil || m <= 0 || strings.TrimSpace(sym) == "" {
			return nil, FlagValueError("mass", sym+"="+vals[sym])
		}
		res[strings.TrimSpace(sym)] = m
	}
	return res, nil
}

// parsePBC converts a string like "ppm" to periodic boundary flags.
func parsePBC(s string) ([3]bool, error) {
	var res [3]bool
	if len(s) != 3 {
		return res, FlagValueError("pbc", s)
	}
	for i, r := range strings.ToLower(s) {
		switch r {
		case 'p':
			res[i] = true
		case 'm', 'f', 's':
			res[i] = false
		default:
			return res, FlagValueError("pbc", s)
		}
	}
	return res, nil
}
