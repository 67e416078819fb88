// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

// Package analyst produces short natural-language commentary on the
// user's portfolio via the Gemini API.
//
// Only already-public market data and the user's position sizes are sent
// in the prompt. No passphrase, key material, or vault blob is ever part
// of a request.
package analyst

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/genai"

	"github.com/tradedeck-app/tradedeck/internal/config"
	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/models"
)

const defaultModel = "gemini-2.0-flash"

const systemInstruction = `You are a succinct market analyst embedded in a
personal trading dashboard. Comment on the portfolio the user shows you:
concentration, notable moves since the previous close, and alerts close to
firing. Answer in at most five sentences. Never give personalised
investment advice.`

// Analyst wraps a Gemini client for portfolio commentary.
type Analyst struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

// New builds an Analyst from cfg. An empty cfg.APIKey falls back to the
// SDK's ambient credentials (GEMINI_API_KEY).
func New(ctx context.Context, cfg config.Analyst, log *logger.Logger) (*Analyst, error) {
	if log == nil {
		log = logger.Nop()
	}

	var cc *genai.ClientConfig
	if cfg.APIKey != "" {
		cc = &genai.ClientConfig{APIKey: cfg.APIKey}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("init analyst client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Analyst{client: client, model: model, log: log}, nil
}

// Analyze sends the current portfolio state and quotes to the model and
// returns its commentary.
func (a *Analyst) Analyze(ctx context.Context, rec models.Record, quotes map[string]models.Quote) (string, error) {
	prompt := buildPrompt(rec, quotes)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	})
	if err != nil {
		return "", fmt.Errorf("generate analysis: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty analysis response")
	}

	a.log.Debug().Int("prompt_bytes", len(prompt)).Msg("portfolio analysis generated")
	return text, nil
}

// buildPrompt renders the record and quotes as a compact plain-text
// briefing. Tickers are sorted so identical state yields an identical
// prompt.
func buildPrompt(rec models.Record, quotes map[string]models.Quote) string {
	var b strings.Builder

	b.WriteString("Portfolio (currency " + rec.Settings.Currency + "):\n")
	if len(rec.Portfolio) == 0 {
		b.WriteString("  (no positions)\n")
	}
	for _, pos := range rec.Portfolio {
		fmt.Fprintf(&b, "  %s: %s @ avg %s", pos.Ticker, pos.Quantity, pos.AvgPrice)
		if q, ok := quotes[pos.Ticker]; ok {
			fmt.Fprintf(&b, ", last %s (prev close %s)", q.Last, q.PrevClose)
		}
		b.WriteString("\n")
	}

	if len(rec.Watchlist) > 0 {
		b.WriteString("Watchlist:\n")
		for _, ticker := range rec.Watchlist {
			fmt.Fprintf(&b, "  %s", ticker)
			if q, ok := quotes[ticker]; ok {
				fmt.Fprintf(&b, ": last %s (prev close %s)", q.Last, q.PrevClose)
			}
			b.WriteString("\n")
		}
	}

	var pendingAlerts []models.Alert
	for _, alert := range rec.Alerts {
		if !alert.Triggered {
			pendingAlerts = append(pendingAlerts, alert)
		}
	}
	if len(pendingAlerts) > 0 {
		sort.Slice(pendingAlerts, func(i, j int) bool { return pendingAlerts[i].Ticker < pendingAlerts[j].Ticker })
		b.WriteString("Pending alerts:\n")
		for _, alert := range pendingAlerts {
			fmt.Fprintf(&b, "  %s %s %s\n", alert.Ticker, alert.Direction, alert.Threshold)
		}
	}

	return b.String()
}
