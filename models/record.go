// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package models

// Record is the complete plaintext state of a user's dashboard: the
// watchlist, the portfolio, price alerts, and display settings.
//
// The vault subsystem treats Record as an opaque value — it only ever
// sees the JSON serialization produced by the vault codec. Fields are
// inspected exclusively by the service layer.
type Record struct {
	// Watchlist is the ordered list of instrument tickers the user follows
	// (e.g. "TCS.NS", "AAPL").
	Watchlist []string `json:"watchlist"`

	// Portfolio holds the user's open positions.
	Portfolio []Position `json:"portfolio"`

	// Alerts holds the user's price alerts.
	Alerts []Alert `json:"alerts"`

	// Settings holds per-user display and behaviour preferences.
	Settings Settings `json:"settings"`
}

// NewRecord returns an empty Record with all collections initialised,
// so a freshly created vault round-trips to the same value.
func NewRecord() Record {
	return Record{
		Watchlist: []string{},
		Portfolio: []Position{},
		Alerts:    []Alert{},
		Settings:  DefaultSettings(),
	}
}

// Clone returns a deep copy sharing no mutable memory with r. Every
// handoff of a Record to another goroutine (autosave, background save,
// analysis) must pass a Clone so in-place mutations on the UI side can
// never tear a snapshot that is being serialised concurrently.
func (r Record) Clone() Record {
	// Collections come back initialised even when empty, matching
	// NewRecord, so a cloned record serialises identically.
	out := Record{
		Watchlist: make([]string, len(r.Watchlist)),
		Portfolio: make([]Position, len(r.Portfolio)),
		Alerts:    make([]Alert, len(r.Alerts)),
		Settings:  r.Settings,
	}
	copy(out.Watchlist, r.Watchlist)
	copy(out.Portfolio, r.Portfolio)
	copy(out.Alerts, r.Alerts)
	for i := range out.Portfolio {
		if t := out.Portfolio[i].OpenedAt; t != nil {
			opened := *t
			out.Portfolio[i].OpenedAt = &opened
		}
	}
	for i := range out.Alerts {
		if t := out.Alerts[i].CreatedAt; t != nil {
			created := *t
			out.Alerts[i].CreatedAt = &created
		}
	}
	return out
}
