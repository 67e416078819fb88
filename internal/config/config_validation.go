// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// dashboard's startup invariants.
//
// The vault blob must live in a real file: an in-memory database would
// silently discard the only durable copy of the user's encrypted record.
// Sync, market, and analyst sections are optional and default inside their
// components, so they are not validated here.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Vault.MinPassphraseScore < 0 || cfg.Vault.MinPassphraseScore > 4 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Sync.GistID != "" && cfg.Sync.Token == "" {
		return ErrInvalidSyncConfigs
	}

	return nil
}
