package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"ROLLPAIR_MAX_WIDTH", "PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 312.0, cfg.MaxWidth)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "rollpair.yaml")
	yml := "max_width: 300\ndatabase:\n  host: db.internal\n  name: trimming\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("PGHOST", "override")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 300.0, cfg.MaxWidth)
	assert.Equal(t, "override", cfg.Database.Host)
	assert.Equal(t, "trimming", cfg.Database.Name)
	assert.Equal(t, "5432", cfg.Database.Port)

	conn := cfg.Database.ConnConfig()
	assert.Equal(t, "trimming", conn.Database)
	assert.Equal(t, "override", conn.Host)
}

func TestLoad_BadMaxWidthEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROLLPAIR_MAX_WIDTH", "wide")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_width: [1, 2"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}
