// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is a single portfolio holding.
//
// Quantities and prices are decimals, not floats: portfolio arithmetic
// must be exact and must survive a JSON round-trip through the vault
// codec bit-for-bit.
type Position struct {
	// Ticker is the instrument identifier (e.g. "TCS.NS").
	Ticker string `json:"ticker"`

	// Quantity is the number of units held. Fractional units are allowed.
	Quantity decimal.Decimal `json:"quantity"`

	// AvgPrice is the volume-weighted average acquisition price per unit,
	// in the settings currency.
	AvgPrice decimal.Decimal `json:"avg_price"`

	// OpenedAt is when the position was first opened.
	OpenedAt *time.Time `json:"opened_at,omitempty"`
}

// CostBasis returns Quantity * AvgPrice.
func (p Position) CostBasis() decimal.Decimal {
	return p.Quantity.Mul(p.AvgPrice)
}
