// Package iostore implements store.Store on top of a directory with
// potential-LAMMPS documents. Every record is a <id>.json, <id>.yaml or
// <id>.yml file. Documents may be wrapped in the potential-LAMMPS
// root element.
package iostore

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnpot/pkg/config"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/gnames/gnpot/pkg/store"
	"github.com/gnames/gnsys"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// extensions of record documents in the order of lookup.
var extensions = []string{".json", ".yaml", ".yml"}

type dirStore struct {
	dir    string
	format string
	jobs   int
}

// New creates a directory store according to configuration.
func New(cfg *config.Config) store.Store {
	jobs := cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}
	return &dirStore{
		dir:    cfg.StoreDir(),
		format: cfg.Store.Format,
		jobs:   jobs,
	}
}

// Fetch reads the document of a record by its id.
func (s *dirStore) Fetch(
	ctx context.Context,
	id string,
) (potential.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, RecordNotFoundError(id, s.dir)
	}
	for _, ext := range extensions {
		path := filepath.Join(s.dir, id+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return readDoc(path)
	}
	return nil, RecordNotFoundError(id, s.dir)
}

// List reads all documents of the directory concurrently and returns
// the ones that match the filter in the order of file names.
func (s *dirStore) List(
	ctx context.Context,
	f potential.Filter,
) ([]potential.Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, StoreDirError(s.dir, err)
	}

	var paths []string
	for _, v := range entries {
		if v.IsDir() || !isDoc(v.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, v.Name()))
	}

	docs := make([]potential.Document, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			doc, err := readDoc(path)
			if err != nil {
				slog.Warn("Skipping unreadable record", "path", path, "error", err)
				return nil
			}
			rec, err := potential.Parse(doc)
			if err != nil {
				slog.Warn("Skipping invalid record", "path", path, "error", err)
				return nil
			}
			if rec.Matches(f) {
				docs[i] = doc
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	var res []potential.Document
	for _, v := range docs {
		if v != nil {
			res = append(res, v)
		}
	}
	slog.Debug("Listed records", "dir", s.dir, "files", len(paths), "found", len(res))
	return res, nil
}

// Save validates a document and writes it to <dir>/<id>.<format>,
// wrapped in the potential-LAMMPS root element.
func (s *dirStore) Save(ctx context.Context, doc potential.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc = potential.Unwrap(doc)
	rec, err := potential.Parse(doc)
	if err != nil {
		return err
	}
	if !validID(rec.ID()) {
		return EncodeError(rec.ID(), errors.New("id cannot be used as a file name"))
	}

	if err = gnsys.MakeDir(s.dir); err != nil {
		return StoreDirError(s.dir, err)
	}

	var data []byte
	ext := ".json"
	switch s.format {
	case "yaml":
		ext = ".yaml"
		data, err = yaml.Marshal(map[string]any(potential.Wrap(doc)))
	default:
		enc := gnfmt.GNjson{Pretty: true}
		data, err = enc.Encode(potential.Wrap(doc))
	}
	if err != nil {
		return EncodeError(rec.ID(), err)
	}

	for _, v := range extensions {
		if v == ext {
			continue
		}
		old := filepath.Join(s.dir, rec.ID()+v)
		if err = os.Remove(old); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return EncodeError(rec.ID(), err)
		}
	}

	path := filepath.Join(s.dir, rec.ID()+ext)
	if err = os.WriteFile(path, data, 0644); err != nil {
		return EncodeError(rec.ID(), err)
	}
	slog.Info("Saved record", "id", rec.ID(), "path", path)
	return nil
}

func readDoc(path string) (potential.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DecodeError(path, err)
	}

	var doc map[string]any
	switch filepath.Ext(path) {
	case ".json":
		enc := gnfmt.GNjson{}
		err = enc.Decode(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, DecodeError(path, err)
	}
	return potential.Unwrap(doc), nil
}

func isDoc(name string) bool {
	ext := filepath.Ext(name)
	for _, v := range extensions {
		if ext == v {
			return true
		}
	}
	return false
}

func validID(id string) bool {
	return id != "" && id != "." && id != ".." &&
		!strings.ContainsAny(id, `/\`)
}
