package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "vault.db"}},
		Vault:   Vault{MinPassphraseScore: 2},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_InMemoryDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_PassphraseScoreRange(t *testing.T) {
	cfg := validConfig()
	cfg.Vault.MinPassphraseScore = 5
	assert.ErrorIs(t, cfg.validate(), ErrInvalidVaultConfigs)

	cfg.Vault.MinPassphraseScore = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidVaultConfigs)
}

func TestValidate_GistWithoutToken(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.GistID = "abc123"
	cfg.Sync.Token = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
}
