// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradedeck-app/tradedeck/internal/adapter"
	"github.com/tradedeck-app/tradedeck/internal/analyst"
	"github.com/tradedeck-app/tradedeck/internal/market"
	"github.com/tradedeck-app/tradedeck/internal/service"
	"github.com/tradedeck-app/tradedeck/models"
)

type viewMode int

const (
	modeDashboard viewMode = iota
	modeWatchForm
	modeBuyForm
	modeAlertForm
	modeRotateForm
	modeImportForm
	modeExportForm
	modeAnalysis
)

// dashboardModel is the Bubble Tea model for the whole dashboard. The
// unlocked record lives here and is only ever mutated on the update
// goroutine; anything that leaves this goroutine goes out as a deep
// clone.
type dashboardModel struct {
	ctx      context.Context
	services *service.Services
	feed     *market.Feed
	cloud    adapter.CloudSync
	analyst  *analyst.Analyst

	rec    models.Record
	quotes map[string]models.Quote

	mode   viewMode
	idx    int // cursor over watchlist rows
	status string
	errMsg string
	busy   bool // a save, backup, rotation, or analysis is in flight

	inputs []textinput.Model
	focus  int

	analysis string
}

func newDashboardModel(ctx context.Context, services *service.Services, feed *market.Feed, cloud adapter.CloudSync, an *analyst.Analyst, rec models.Record) dashboardModel {
	return dashboardModel{
		ctx:      ctx,
		services: services,
		feed:     feed,
		cloud:    cloud,
		analyst:  an,
		rec:      rec,
		quotes:   feed.Snapshot(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quotesMsg:
		return m.applyQuotes(msg)

	case savedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.status = "Saved"
		m.errMsg = ""
		return m, nil

	case backupDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("backup failed: %v", msg.err)
			return m, nil
		}
		m.status = "Encrypted vault backed up"
		m.errMsg = ""
		return m, nil

	case rotateDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("rotation failed: %v", msg.err)
			return m, nil
		}
		m.status = "Passphrase rotated"
		m.errMsg = ""
		return m, nil

	case analysisMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("analysis failed: %v", msg.err)
			return m, nil
		}
		m.analysis = msg.text
		m.errMsg = ""
		m.mode = modeAnalysis
		return m, nil

	case importDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("import failed: %v", msg.err)
			return m, nil
		}
		m.rec.Portfolio = append(m.rec.Portfolio, msg.positions...)
		for _, pos := range msg.positions {
			m.feed.Track(pos.Ticker, pos.AvgPrice)
		}
		m.services.AutosaveJob.Trigger(m.rec)
		m.status = fmt.Sprintf("Imported %d positions", len(msg.positions))
		m.errMsg = ""
		return m, nil

	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("export failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Exported %d positions to %s", msg.count, msg.path)
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.inForm() {
			return m.updateFormInput(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case modeDashboard:
		return m.updateDashboard(keyMsg)
	case modeAnalysis:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.quit) {
			m.mode = modeDashboard
		}
		return m, nil
	default:
		return m.updateForm(keyMsg)
	}
}

func (m dashboardModel) inForm() bool {
	return m.mode != modeDashboard && m.mode != modeAnalysis
}

// applyQuotes is the feed's tick landing on the update goroutine: refresh
// the quote board, fire due alerts, and schedule a save when state changed.
func (m dashboardModel) applyQuotes(msg quotesMsg) (tea.Model, tea.Cmd) {
	m.quotes = msg.quotes

	fired := m.services.PortfolioService.CheckAlerts(&m.rec, msg.quotes)
	if len(fired) == 0 {
		return m, nil
	}
	m.services.AutosaveJob.Trigger(m.rec)

	last := fired[len(fired)-1]
	m.status = fmt.Sprintf("ALERT %s %s %s (last %s)", last.Ticker, last.Direction, last.Threshold, msg.quotes[last.Ticker].Last)
	return m, nil
}

func (m dashboardModel) updateDashboard(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rec.Watchlist)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.watch):
		return m.startWatchForm(), nil

	case key.Matches(keyMsg, keys.unwatch):
		return m.unwatchSelected(), nil

	case key.Matches(keyMsg, keys.buy):
		return m.startBuyForm(), nil

	case key.Matches(keyMsg, keys.alert):
		return m.startAlertForm(), nil

	case key.Matches(keyMsg, keys.rotate):
		return m.startRotateForm(), nil

	case key.Matches(keyMsg, keys.importCSV):
		return m.startPathForm(modeImportForm), nil

	case key.Matches(keyMsg, keys.exportCSV):
		return m.startPathForm(modeExportForm), nil

	case key.Matches(keyMsg, keys.save):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Saving..."
		m.errMsg = ""
		return m, m.cmdSave()

	case key.Matches(keyMsg, keys.backup):
		if m.cloud == nil {
			m.errMsg = "cloud backup is not configured (set SYNC_TOKEN and SYNC_GIST_ID)"
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Backing up..."
		m.errMsg = ""
		return m, m.cmdBackup()

	case key.Matches(keyMsg, keys.analyze):
		if m.analyst == nil {
			m.errMsg = "analyst is not configured (set ANALYST_API_KEY)"
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Asking the analyst..."
		m.errMsg = ""
		return m, m.cmdAnalyze()
	}

	return m, nil
}

func (m dashboardModel) unwatchSelected() dashboardModel {
	if len(m.rec.Watchlist) == 0 {
		m.status = "Watchlist is empty"
		return m
	}

	ticker := m.rec.Watchlist[m.idx]
	m.rec.Watchlist = append(m.rec.Watchlist[:m.idx], m.rec.Watchlist[m.idx+1:]...)
	if m.idx >= len(m.rec.Watchlist) && m.idx > 0 {
		m.idx--
	}

	m.services.AutosaveJob.Trigger(m.rec)
	m.status = fmt.Sprintf("Stopped watching %s", ticker)
	m.errMsg = ""
	return m
}
