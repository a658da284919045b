// Package store defines external collaborators of gnpot: the record store
// that provides potential-LAMMPS documents and the materializer of
// parameter files. The core packages never touch the file system, they
// get documents from a Store.
package store

import (
	"context"

	"github.com/gnames/gnpot/pkg/potential"
)

// Store provides potential-LAMMPS documents.
type Store interface {
	// Fetch returns the document of a record with the given id.
	Fetch(ctx context.Context, id string) (potential.Document, error)

	// List returns documents of records that match the filter. Records
	// that cannot be parsed are skipped.
	List(ctx context.Context, f potential.Filter) ([]potential.Document, error)

	// Save adds or replaces the document of a record.
	Save(ctx context.Context, doc potential.Document) error
}

// Files copies parameter files of records.
type Files interface {
	// Materialize copies files referenced by the record into targetDir.
	// Existing files are skipped unless overwrite is true.
	Materialize(
		ctx context.Context,
		rec *potential.Record,
		targetDir string,
		overwrite bool,
	) (copied, skipped int, err error)
}
