// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

// Package tui implements the interactive dashboard terminal UI.
//
// The dashboard is a single Bubble Tea program: the market feed pushes
// quote snapshots into it as messages, every record mutation happens on
// the program's update goroutine, and slow operations (save, backup,
// rotation, analysis) run as asynchronous commands that report back
// through messages.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradedeck-app/tradedeck/internal/adapter"
	"github.com/tradedeck-app/tradedeck/internal/analyst"
	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/internal/market"
	"github.com/tradedeck-app/tradedeck/internal/service"
	"github.com/tradedeck-app/tradedeck/models"
)

type TUI struct {
	services *service.Services
	feed     *market.Feed
	cloud    adapter.CloudSync // nil when backup is not configured
	analyst  *analyst.Analyst  // nil when no API key is configured
	log      *logger.Logger
}

func New(services *service.Services, feed *market.Feed, cloud adapter.CloudSync, an *analyst.Analyst, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, feed: feed, cloud: cloud, analyst: an, log: log}
}

// Dashboard runs the main dashboard loop over the unlocked record until
// the user quits. The feed's tick callback is bound to the program for
// the duration of the run; ticks arriving after the program exits are
// dropped by Bubble Tea.
func (t *TUI) Dashboard(ctx context.Context, rec models.Record) error {
	model := newDashboardModel(ctx, t.services, t.feed, t.cloud, t.analyst, rec)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.feed.SetOnTick(func(quotes map[string]models.Quote) {
		program.Send(quotesMsg{quotes: quotes})
	})

	_, err := program.Run()
	return err
}
