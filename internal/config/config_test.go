package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 4000, s.Port)
	assert.Equal(t, "development", s.Env)
	assert.Equal(t, []string{"test"}, s.APIKeys)
	assert.Equal(t, 100, s.RateLimit)
	// The server default must be a file-backed database: every pooled
	// connection to ":memory:" would get its own empty database.
	assert.Equal(t, "rdstats.db", s.DBPath)
	assert.Equal(t, 24, s.RefreshHours)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: 8080\nenv: production\napi_keys:\n  - alpha\n  - beta\nrate_limit: 50\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, "production", s.Env)
	assert.Equal(t, []string{"alpha", "beta"}, s.APIKeys)
	assert.Equal(t, 50, s.RateLimit)
	// untouched keys keep their defaults
	assert.Equal(t, 24, s.RefreshHours)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := &Settings{Port: 9000, Env: "staging", APIKeys: []string{"k1"}, RateLimit: 10, DBPath: "stats.sqlite", RefreshHours: 12}
	require.NoError(t, Save(original, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, loaded.Port)
	assert.Equal(t, "staging", loaded.Env)
	assert.Equal(t, "stats.sqlite", loaded.DBPath)
	assert.Equal(t, 12, loaded.RefreshHours)
}
