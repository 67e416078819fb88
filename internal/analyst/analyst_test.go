// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package analyst

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tradedeck-app/tradedeck/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildPrompt_IncludesPositionsAndQuotes(t *testing.T) {
	rec := models.NewRecord()
	rec.Portfolio = []models.Position{
		{Ticker: "AAPL", Quantity: dec("10"), AvgPrice: dec("150")},
	}
	rec.Watchlist = []string{"TCS.NS"}

	quotes := map[string]models.Quote{
		"AAPL":   {Ticker: "AAPL", Last: dec("170.5"), PrevClose: dec("168")},
		"TCS.NS": {Ticker: "TCS.NS", Last: dec("3200"), PrevClose: dec("3185")},
	}

	prompt := buildPrompt(rec, quotes)

	assert.Contains(t, prompt, "AAPL: 10 @ avg 150, last 170.5 (prev close 168)")
	assert.Contains(t, prompt, "TCS.NS: last 3200 (prev close 3185)")
	assert.Contains(t, prompt, "currency USD")
}

func TestBuildPrompt_EmptyPortfolio(t *testing.T) {
	prompt := buildPrompt(models.NewRecord(), nil)

	assert.Contains(t, prompt, "(no positions)")
	assert.NotContains(t, prompt, "Watchlist")
	assert.NotContains(t, prompt, "Pending alerts")
}

func TestBuildPrompt_OnlyPendingAlerts(t *testing.T) {
	rec := models.NewRecord()
	rec.Alerts = []models.Alert{
		{Ticker: "MSFT", Threshold: dec("250"), Direction: models.AlertBelow, Triggered: false},
		{Ticker: "AAPL", Threshold: dec("180"), Direction: models.AlertAbove, Triggered: true},
	}

	prompt := buildPrompt(rec, nil)

	assert.Contains(t, prompt, "MSFT below 250")
	assert.NotContains(t, prompt, "AAPL above 180", "fired alerts are old news")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	rec := models.NewRecord()
	rec.Alerts = []models.Alert{
		{Ticker: "MSFT", Threshold: dec("250"), Direction: models.AlertBelow},
		{Ticker: "AAPL", Threshold: dec("180"), Direction: models.AlertAbove},
	}

	a := buildPrompt(rec, nil)
	b := buildPrompt(rec, nil)
	assert.Equal(t, a, b)

	// Alerts come out sorted by ticker regardless of insertion order.
	assert.Less(t, strings.Index(a, "AAPL"), strings.Index(a, "MSFT"))
}

func TestBuildPrompt_NeverMentionsSecrets(t *testing.T) {
	rec := models.NewRecord()
	prompt := buildPrompt(rec, nil)

	for _, banned := range []string{"passphrase", "key", "blob", "salt", "nonce"} {
		assert.NotContains(t, strings.ToLower(prompt), banned)
	}
}
