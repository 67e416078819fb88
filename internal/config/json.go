package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		BaseURL        string   `json:"base_url"`
		Token          string   `json:"token"`
		GistID         string   `json:"gist_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"sync,omitempty"`

	Market struct {
		TickInterval Duration `json:"tick_interval"`
		Seed         int64    `json:"seed"`
	} `json:"market,omitempty"`

	Analyst struct {
		Model  string `json:"model"`
		APIKey string `json:"api_key"`
	} `json:"analyst,omitempty"`

	Vault struct {
		AutosaveDebounce   Duration `json:"autosave_debounce"`
		MinPassphraseScore int      `json:"min_passphrase_score"`
	} `json:"vault,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			BaseURL:        jsonCfg.Sync.BaseURL,
			Token:          jsonCfg.Sync.Token,
			GistID:         jsonCfg.Sync.GistID,
			RequestTimeout: time.Duration(jsonCfg.Sync.RequestTimeout),
		},
		Market: Market{
			TickInterval: time.Duration(jsonCfg.Market.TickInterval),
			Seed:         jsonCfg.Market.Seed,
		},
		Analyst: Analyst{
			Model:  jsonCfg.Analyst.Model,
			APIKey: jsonCfg.Analyst.APIKey,
		},
		Vault: Vault{
			AutosaveDebounce:   time.Duration(jsonCfg.Vault.AutosaveDebounce),
			MinPassphraseScore: jsonCfg.Vault.MinPassphraseScore,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
