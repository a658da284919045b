// Package gnpot keeps application-wide metadata of gnpot.
package gnpot

var (
	// Version of gnpot, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
