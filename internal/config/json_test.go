package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "0.9.0"},
		"storage": {"db": {"dsn": "vault.db"}},
		"sync": {
			"base_url": "https://api.github.com",
			"token": "ghp_secret",
			"gist_id": "abc123",
			"request_timeout": "15s"
		},
		"market": {"tick_interval": "2s", "seed": 7},
		"analyst": {"model": "gemini-2.0-flash", "api_key": "k"},
		"vault": {"autosave_debounce": "5s", "min_passphrase_score": 2}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.github.com", cfg.Sync.BaseURL)
	assert.Equal(t, "ghp_secret", cfg.Sync.Token)
	assert.Equal(t, "abc123", cfg.Sync.GistID)
	assert.Equal(t, 15*time.Second, cfg.Sync.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Market.TickInterval)
	assert.Equal(t, int64(7), cfg.Market.Seed)
	assert.Equal(t, "gemini-2.0-flash", cfg.Analyst.Model)
	assert.Equal(t, 5*time.Second, cfg.Vault.AutosaveDebounce)
	assert.Equal(t, 2, cfg.Vault.MinPassphraseScore)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also be given in raw nanoseconds.
	path := writeTempJSON(t, `{"vault": {"autosave_debounce": 5000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Vault.AutosaveDebounce)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)
	_, err := parseJSON(path)
	require.Error(t, err)
}
