// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRecordCloneIsDeep(t *testing.T) {
	opened := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	rec := NewRecord()
	rec.Watchlist = []string{"TCS.NS", "AAPL"}
	rec.Portfolio = []Position{{
		Ticker:   "AAPL",
		Quantity: decimal.NewFromInt(10),
		AvgPrice: decimal.NewFromInt(150),
		OpenedAt: &opened,
	}}
	rec.Alerts = []Alert{{
		ID:        "a-1",
		Ticker:    "AAPL",
		Threshold: decimal.NewFromInt(170),
		Direction: AlertAbove,
		CreatedAt: &created,
	}}

	clone := rec.Clone()

	// Mutate the original through every shared path a live dashboard uses.
	rec.Watchlist[0] = "MSFT"
	rec.Watchlist = append(rec.Watchlist[:1], rec.Watchlist[2:]...)
	rec.Alerts[0].Triggered = true
	rec.Portfolio[0].Quantity = decimal.NewFromInt(999)
	*rec.Alerts[0].CreatedAt = created.Add(time.Hour)
	*rec.Portfolio[0].OpenedAt = opened.Add(time.Hour)

	if clone.Watchlist[0] != "TCS.NS" || len(clone.Watchlist) != 2 {
		t.Fatalf("clone watchlist changed with the original: %v", clone.Watchlist)
	}
	if clone.Alerts[0].Triggered {
		t.Fatal("clone alert flipped to triggered with the original")
	}
	if !clone.Portfolio[0].Quantity.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("clone position quantity changed: %s", clone.Portfolio[0].Quantity)
	}
	if !clone.Alerts[0].CreatedAt.Equal(created) {
		t.Fatalf("clone alert timestamp shares memory with the original: %s", clone.Alerts[0].CreatedAt)
	}
	if !clone.Portfolio[0].OpenedAt.Equal(opened) {
		t.Fatalf("clone position timestamp shares memory with the original: %s", clone.Portfolio[0].OpenedAt)
	}
}

func TestRecordCloneOfEmptyRecord(t *testing.T) {
	clone := NewRecord().Clone()

	if clone.Watchlist == nil || clone.Portfolio == nil || clone.Alerts == nil {
		t.Fatal("clone must keep collections initialised")
	}
	if len(clone.Watchlist)+len(clone.Portfolio)+len(clone.Alerts) != 0 {
		t.Fatal("clone of an empty record must be empty")
	}
}
