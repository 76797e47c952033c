package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 50, cfg.Settings().Cols)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig([]string{"-cols", "20", "-rows", "10", "-cell", "4", "-tui", "-palette", "Fire"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Cols)
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, 4, cfg.CellSize)
	assert.True(t, cfg.Terminal)
	assert.Equal(t, "Fire", cfg.Palette)
}

func TestParseConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cols": 30, "rows": 40, "density": 0.2, "seed": 7}`), 0o644))

	cfg, err := ParseConfig([]string{"-config", path, "-rows", "12"})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Cols)
	assert.Equal(t, 12, cfg.Rows)
	assert.Equal(t, 0.2, cfg.Density)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 10, cfg.CellSize)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	for _, args := range [][]string{
		{"-cols", "0"},
		{"-cell", "-2"},
		{"-density", "1.5"},
		{"-speed", "0"},
		{"-palette", "Neon"},
		{"-unknown"},
	} {
		_, err := ParseConfig(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cols": "wide"}`), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
