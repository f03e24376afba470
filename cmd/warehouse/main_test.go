package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bookwarehouse/internal/config"
	"bookwarehouse/internal/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagsOverride(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig("", filepath.Join(dir, "books.db"), "sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(dir, "books.db"), cfg.Storage.Path)

	_, err = loadConfig("", "", "csv")
	assert.Error(t, err)
}

func TestRun_CorruptFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: "json", Path: path},
		Log:     config.LogConfig{Level: "error", Format: "text"},
	}
	err := run(context.Background(), cfg)
	assert.ErrorIs(t, err, inventory.ErrCorrupt)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}
