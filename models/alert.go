// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertDirection tells on which side of the threshold an alert fires.
type AlertDirection string

const (
	// AlertAbove fires when the last price rises to or above the threshold.
	AlertAbove AlertDirection = "above"

	// AlertBelow fires when the last price falls to or below the threshold.
	AlertBelow AlertDirection = "below"
)

// Alert is a user-defined price alert on a single instrument.
type Alert struct {
	// ID is a client-generated UUID identifying the alert.
	ID string `json:"id"`

	// Ticker is the instrument the alert watches.
	Ticker string `json:"ticker"`

	// Threshold is the trigger price in the settings currency.
	Threshold decimal.Decimal `json:"threshold"`

	// Direction selects above/below semantics for the threshold.
	Direction AlertDirection `json:"direction"`

	// Triggered is set once the alert has fired; fired alerts are kept
	// for display until the user dismisses them.
	Triggered bool `json:"triggered"`

	// CreatedAt is when the user created the alert.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
