package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("/tmp/ledger-data")
	cfg.Accounts = []Account{
		{Label: "chase-checking", Bank: "Chase"},
	}

	path := filepath.Join(t.TempDir(), "ledgerkit.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Data.Dir, got.Data.Dir)
	assert.Equal(t, cfg.Data.Database, got.Data.Database)
	assert.Equal(t, cfg.Logging.Level, got.Logging.Level)
	require.Len(t, got.Accounts, 1)
	assert.Equal(t, "chase-checking", got.Accounts[0].Label)
	assert.Equal(t, "Chase", got.Accounts[0].Bank)
}

func TestDefaults(t *testing.T) {
	cfg := Default("/data")

	assert.Equal(t, "/data", cfg.Data.Dir)
	assert.Equal(t, "ledger.db", cfg.Data.Database)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Len(t, cfg.Accounts, 2)
}

func TestDatabasePath(t *testing.T) {
	cfg := Default("/data")
	assert.Equal(t, filepath.Join("/data", "ledger.db"), cfg.DatabasePath())

	cfg.Data.Database = "/elsewhere/ledger.db"
	assert.Equal(t, "/elsewhere/ledger.db", cfg.DatabasePath())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("/data")
	path := filepath.Join(t.TempDir(), "ledgerkit.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "dir: /data")
	assert.Contains(t, contents, "database: ledger.db")
	assert.Contains(t, contents, "level: info")
}
