// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package models

// Settings holds per-user dashboard preferences. All of it travels
// inside the encrypted record; none of it is persisted in plaintext.
type Settings struct {
	// Currency is the ISO 4217 code used for valuation and display
	// (e.g. "INR", "USD").
	Currency string `json:"currency"`

	// Theme is the dashboard colour theme identifier.
	Theme string `json:"theme"`

	// AutosaveSeconds is the debounce interval, in seconds, between a
	// record mutation and the automatic persist that follows it.
	AutosaveSeconds int `json:"autosave_seconds"`
}

// DefaultSettings returns the settings a brand-new vault starts with.
func DefaultSettings() Settings {
	return Settings{
		Currency:        "USD",
		Theme:           "dark",
		AutosaveSeconds: 5,
	}
}
