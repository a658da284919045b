// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnpot/pkg/config"
)

// NewStore creates a temporary record store and returns a configuration
// that points to it. Keys of files are paths relative to the store
// directory, for example "demo.json" or "demo/Al.eam.alloy". Directories
// are created as needed. The store is removed when the test finishes.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.NewStore(t, map[string]string{
//	        "demo.json":          recordJSON,
//	        "demo/Al.eam.alloy":  "file content",
//	    })
//	    st := iostore.New(cfg)
//	}
func NewStore(t *testing.T, files map[string]string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	for k, v := range files {
		path := filepath.Join(dir, filepath.FromSlash(k))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create store dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(v), 0644); err != nil {
			t.Fatalf("Failed to write store file %s: %v", k, err)
		}
	}

	cfg := config.New()
	cfg.Update([]config.Option{config.OptStoreDir(dir)})
	return cfg
}

// SetupTempHome creates a temporary home directory and sets HOME to point
// to it, so configuration, data and logs of gnpot never touch the real
// ~/.config/gnpot and ~/.local/share/gnpot. The original HOME is restored
// when the test finishes.
//
// Returns the absolute path to the temporary home directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
