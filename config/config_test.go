package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Engine{
		Size:      15,
		First:     "black",
		Algorithm: "alphabeta",
		Depth:     3,
		Window:    2,
		Threads:   1,
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yml")
	require.NoError(t, os.WriteFile(path, []byte("size: 9\nalgorithm: minimax\ndepth: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Size)
	assert.Equal(t, "minimax", cfg.Algorithm)
	assert.Equal(t, 2, cfg.Depth)
	assert.Equal(t, 2, cfg.Window)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GOMOKU_DEPTH", "5")
	t.Setenv("GOMOKU_THREADS", "4")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Depth)
	assert.Equal(t, 4, cfg.Threads)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
}
