package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local SQLite database path
//	-c/-config json file path with configs
//	-sync-url cloud backup REST base URL
//	-gist-id gist identifier holding the vault blob backup
//	-sync-timeout backup request timeout (e.g., "15s")
//	-tick-interval simulated market feed tick interval (e.g., "2s")
//	-seed market feed random walk seed
//	-model generative analysis model name
//	-autosave-debounce autosave debounce interval (e.g., "5s")
//	-min-passphrase-score minimum accepted passphrase strength (0-4)
//
// Secrets (the sync token and the analyst API key) are environment-only.
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var syncBaseURL string
	var gistID string
	var syncTimeout time.Duration
	var tickInterval time.Duration
	var seed int64
	var model string
	var autosaveDebounce time.Duration
	var minPassphraseScore int

	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&syncBaseURL, "sync-url", "", "Cloud backup REST base URL")
	flag.StringVar(&gistID, "gist-id", "", "Gist ID for the vault blob backup")
	flag.DurationVar(&syncTimeout, "sync-timeout", 0, "Backup request timeout (e.g., 15s)")
	flag.DurationVar(&tickInterval, "tick-interval", 0, "Market feed tick interval (e.g., 2s)")
	flag.Int64Var(&seed, "seed", 0, "Market feed random walk seed")
	flag.StringVar(&model, "model", "", "Generative analysis model name")
	flag.DurationVar(&autosaveDebounce, "autosave-debounce", 0, "Autosave debounce interval (e.g., 5s)")
	flag.IntVar(&minPassphraseScore, "min-passphrase-score", 0, "Minimum passphrase strength score (0-4)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			BaseURL:        syncBaseURL,
			GistID:         gistID,
			RequestTimeout: syncTimeout,
		},
		Market: Market{
			TickInterval: tickInterval,
			Seed:         seed,
		},
		Analyst: Analyst{
			Model: model,
		},
		Vault: Vault{
			AutosaveDebounce:   autosaveDebounce,
			MinPassphraseScore: minPassphraseScore,
		},
		JSONFilePath: jsonConfigPath,
	}
}
