// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// tradedeck dashboard. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend that
	// keeps the encrypted vault blob.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds configuration for the optional cloud backup of the
	// opaque vault blob.
	Sync Sync `envPrefix:"SYNC_"`

	// Market holds configuration for the simulated market data feed.
	Market Market `envPrefix:"MARKET_"`

	// Analyst holds configuration for the generative market analysis
	// integration.
	Analyst Analyst `envPrefix:"ANALYST_"`

	// Vault holds tunables for the local encrypted vault and its
	// autosave behaviour.
	Vault Vault `envPrefix:"VAULT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the dashboard footer and in log output.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that stores
// the encrypted vault blob. The database never contains plaintext.
type DB struct {
	// DSN is the SQLite file path (e.g. "tradedeck.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds settings for the cloud backup adapter. The adapter only ever
// transports the opaque encoded blob; keys and plaintext never leave the
// device.
type Sync struct {
	// BaseURL is the REST API base address of the backup host
	// (e.g. "https://api.github.com").
	// Env: SYNC_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the personal access token used to authenticate blob
	// uploads. Must be kept confidential.
	// Env: SYNC_TOKEN
	Token string `env:"TOKEN"`

	// GistID identifies the gist that stores the vault blob. Empty means
	// cloud backup is disabled.
	// Env: SYNC_GIST_ID
	GistID string `env:"GIST_ID"`

	// RequestTimeout is the maximum duration of a single backup request
	// (e.g. "15s").
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Market holds settings for the simulated market data generator.
type Market struct {
	// TickInterval is the delay between two simulated quote updates
	// (e.g. "2s").
	// Env: MARKET_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// Seed seeds the price random walk; zero selects a time-based seed.
	// A fixed seed makes feeds reproducible in demos and tests.
	// Env: MARKET_SEED
	Seed int64 `env:"SEED"`
}

// Analyst holds settings for the generative market analysis integration.
type Analyst struct {
	// Model is the model identifier used for analysis requests
	// (e.g. "gemini-2.0-flash").
	// Env: ANALYST_MODEL
	Model string `env:"MODEL"`

	// APIKey authenticates against the generative API. Must be kept
	// confidential; there is deliberately no flag for it.
	// Env: ANALYST_API_KEY
	APIKey string `env:"API_KEY"`
}

// Vault holds tunables for the local encrypted vault.
type Vault struct {
	// AutosaveDebounce is how long the autosave job waits after the last
	// record mutation before persisting (e.g. "5s").
	// Env: VAULT_AUTOSAVE_DEBOUNCE
	AutosaveDebounce time.Duration `env:"AUTOSAVE_DEBOUNCE"`

	// MinPassphraseScore is the minimum zxcvbn strength score (0-4)
	// accepted when creating or rotating a vault passphrase.
	// Env: VAULT_MIN_PASSPHRASE_SCORE
	MinPassphraseScore int `env:"MIN_PASSPHRASE_SCORE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
