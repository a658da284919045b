package iostore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/internal/iostore"
	"github.com/gnames/gnpot/pkg/config"
	"github.com/gnames/gnpot/pkg/errcode"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alJSON = `{"potential-LAMMPS": {
  "key": "k-al", "id": "demo-al",
  "atom": {"element": "Al", "mass": 26.9815385},
  "pair_style": {"type": "eam/alloy"},
  "pair_coeff": {"term": [{"file": "Al.eam.alloy"}, {"symbols": true}]}
}}`

const cuYAML = `key: k-cu
id: demo-cu
status: superseded
atom:
  - element: Cu
  - element: Ni
pair_style:
  type: eam/fs
pair_coeff:
  term:
    - file: CuNi.eam.fs
    - symbols: true
`

func setup(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"demo-al.json": alJSON,
		"demo-cu.yaml": cuYAML,
		"broken.json":  `{"key": "k"`,
		"invalid.yml":  "key: k\nid: invalid\n",
		"notes.txt":    "not a record",
	}
	for k, v := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, k), []byte(v), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "demo-al"), 0755))

	cfg := config.New()
	cfg.Update([]config.Option{config.OptStoreDir(dir), config.OptJobsNumber(2)})
	return cfg
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return int(gnErr.Code)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	s := iostore.New(setup(t))

	doc, err := s.Fetch(ctx, "demo-al")
	require.NoError(t, err)
	assert.Equal(t, "k-al", doc["key"])

	doc, err = s.Fetch(ctx, "demo-cu")
	require.NoError(t, err)
	rec, err := potential.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cu", "Ni"}, rec.Symbols())

	_, err = s.Fetch(ctx, "demo-zr")
	assert.Equal(t, int(errcode.StoreRecordNotFoundError), codeOf(t, err))

	_, err = s.Fetch(ctx, "../demo-al")
	assert.Equal(t, int(errcode.StoreRecordNotFoundError), codeOf(t, err))

	_, err = s.Fetch(ctx, "broken")
	assert.Equal(t, int(errcode.StoreDecodeError), codeOf(t, err))
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := iostore.New(setup(t))

	docs, err := s.List(ctx, potential.Filter{})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "demo-al", docs[0]["id"])
	assert.Equal(t, "demo-cu", docs[1]["id"])

	docs, err = s.List(ctx, potential.Filter{Elements: []string{"Ni"}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "demo-cu", docs[0]["id"])

	docs, err = s.List(ctx, potential.Filter{Statuses: []string{"active"}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "demo-al", docs[0]["id"])

	docs, err = s.List(ctx, potential.Filter{PairStyles: []string{"meam"}})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestListBadDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptStoreDir(filepath.Join(t.TempDir(), "missing")),
	})
	_, err := iostore.New(cfg).List(context.Background(), potential.Filter{})
	assert.Equal(t, int(errcode.StoreDirError), codeOf(t, err))
}

func TestListCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := iostore.New(setup(t)).List(ctx, potential.Filter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	for _, format := range []string{"json", "yaml"} {
		cfg := config.New()
		dir := filepath.Join(t.TempDir(), "records")
		cfg.Update([]config.Option{
			config.OptStoreDir(dir), config.OptStoreFormat(format),
		})
		s := iostore.New(cfg)

		doc := potential.Document{
			"key":        "k-new",
			"id":         "demo-new",
			"atom":       []any{map[string]any{"element": "Fe"}},
			"pair_style": map[string]any{"type": "eam/fs"},
			"pair_coeff": map[string]any{"term": []any{
				map[string]any{"file": "Fe.eam.fs"},
				map[string]any{"symbols": true},
			}},
		}
		require.NoError(t, s.Save(ctx, doc), format)

		ext := map[string]string{"json": ".json", "yaml": ".yaml"}[format]
		_, err := os.Stat(filepath.Join(dir, "demo-new"+ext))
		require.NoError(t, err, format)

		res, err := s.Fetch(ctx, "demo-new")
		require.NoError(t, err, format)
		rec, err := potential.Parse(res)
		require.NoError(t, err, format)
		assert.Equal(t, "k-new", rec.Key(), format)
		assert.Equal(t, []string{"Fe.eam.fs"}, rec.Files(), format)

		err = s.Save(ctx, potential.Document{"key": "k", "id": "x"})
		assert.Equal(t, int(errcode.SchemaError), codeOf(t, err), format)
	}
}
