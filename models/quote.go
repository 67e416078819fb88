// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a single simulated market data point for one instrument.
// Quotes are ephemeral view data; they are never written to the vault.
type Quote struct {
	// Ticker is the instrument identifier.
	Ticker string `json:"ticker"`

	// Last is the most recent simulated trade price.
	Last decimal.Decimal `json:"last"`

	// PrevClose is the previous session's closing price, used to compute
	// the day change shown on the dashboard.
	PrevClose decimal.Decimal `json:"prev_close"`

	// At is the simulated exchange timestamp of the quote.
	At time.Time `json:"at"`
}

// Change returns Last - PrevClose.
func (q Quote) Change() decimal.Decimal {
	return q.Last.Sub(q.PrevClose)
}
