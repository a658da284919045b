package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnpot/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnpot"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "gnpot"),
		},
		{
			msg: "records dir",
			fn:  config.RecordsDir,
			res: filepath.Join(tempHome, ".local", "share", "gnpot", "records"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnpot", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnpot", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "", cfg.Store.Dir)
		assert.Equal(t, "json", cfg.Store.Format)

		assert.Equal(t, "bare", cfg.Render.PathMode)
		assert.Equal(t, "", cfg.Render.Prefix)
		assert.True(t, cfg.Render.Comments)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestStoreDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t,
		filepath.Join("/home/user", ".local", "share", "gnpot", "records"),
		cfg.StoreDir())

	cfg.Update([]config.Option{config.OptStoreDir("/data/potentials")})
	assert.Equal(t, "/data/potentials", cfg.StoreDir())
}

func TestOptionStoreDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/data/potentials",
			expected: "/data/potentials",
		},
		{
			name:     "trims whitespace",
			input:    "  /data/potentials  ",
			expected: "/data/potentials",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStoreDir(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.Dir)
		})
	}
}

func TestOptionStoreFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets yaml", "yaml", "yaml"},
		{"normalizes case", "YAML", "yaml"},
		{"rejects xml", "xml", "json"},
		{"rejects empty", "", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStoreFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.Format)
		})
	}
}

func TestOptionRenderPathMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets by-id", "by-id", "by-id"},
		{"sets prefixed", "prefixed", "prefixed"},
		{"sets dir", " Dir ", "dir"},
		{"rejects unknown", "absolute", "bare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptRenderPathMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Render.PathMode)
		})
	}
}

func TestOptionRenderComments(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptRenderComments(false)})
	assert.False(t, cfg.Render.Comments)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets debug", "debug", "debug"},
		{"normalizes case", "WARN", "warn"},
		{"rejects invalid", "verbose", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets positive", 4, 4},
		{"ignores zero", 0, runtime.NumCPU()},
		{"ignores negative", -2, runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptJobsNumber(tt.input)})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptStoreDir("/data/potentials"),
		config.OptStoreFormat("yaml"),
		config.OptRenderPathMode("prefixed"),
		config.OptRenderPrefix("/opt/lammps/potentials"),
		config.OptRenderComments(false),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(3),
		config.OptHomeDir("/home/user"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Store, dst.Store)
	assert.Equal(t, src.Render, dst.Render)
	assert.Equal(t, src.Log, dst.Log)
	assert.Equal(t, src.JobsNumber, dst.JobsNumber)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
