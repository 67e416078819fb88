// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package tui

import (
	"github.com/tradedeck-app/tradedeck/models"
)

// quotesMsg carries a per-tick snapshot from the market feed. The map is
// owned by the receiver; the feed never touches it again.
type quotesMsg struct {
	quotes map[string]models.Quote
}

type savedMsg struct {
	err error
}

type backupDoneMsg struct {
	err error
}

type rotateDoneMsg struct {
	err error
}

type analysisMsg struct {
	text string
	err  error
}

type importDoneMsg struct {
	positions []models.Position
	err       error
}

type exportDoneMsg struct {
	count int
	path  string
	err   error
}
