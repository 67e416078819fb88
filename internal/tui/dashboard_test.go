// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradedeck-app/tradedeck/internal/config"
	"github.com/tradedeck-app/tradedeck/internal/market"
	"github.com/tradedeck-app/tradedeck/internal/service"
	"github.com/tradedeck-app/tradedeck/internal/vault"
	"github.com/tradedeck-app/tradedeck/models"
)

// spyAutosave records every triggered snapshot without any goroutine.
type spyAutosave struct {
	triggered []models.Record
}

func (s *spyAutosave) Start(context.Context)     {}
func (s *spyAutosave) Trigger(rec models.Record) { s.triggered = append(s.triggered, rec.Clone()) }
func (s *spyAutosave) Stop()                     {}

type noopVaultService struct{}

func (noopVaultService) CreateVault(context.Context, string, models.Record) error { return nil }
func (noopVaultService) Open(context.Context, string) (models.Record, error) {
	return models.Record{}, nil
}
func (noopVaultService) SaveNow(context.Context, models.Record) error { return nil }
func (noopVaultService) RotatePassphrase(context.Context, string, models.Record) error {
	return nil
}
func (noopVaultService) CurrentBlob(context.Context) (string, error) { return "", nil }
func (noopVaultService) RestoreBlob(context.Context, string) error   { return nil }
func (noopVaultService) Lock()                                       {}
func (noopVaultService) State() vault.State                          { return vault.Unlocked }

func newTestModel(t *testing.T, rec models.Record) (dashboardModel, *spyAutosave) {
	t.Helper()

	autosave := &spyAutosave{}
	services := &service.Services{
		VaultService:     noopVaultService{},
		AutosaveJob:      autosave,
		PortfolioService: service.NewPortfolioService(nil),
		ImpExpService:    service.NewImpExpService(nil),
	}
	feed := market.NewFeed(config.Market{Seed: 1, TickInterval: time.Hour}, nil)

	return newDashboardModel(context.Background(), services, feed, nil, nil, rec), autosave
}

func pressKey(t *testing.T, m tea.Model, msg tea.KeyMsg) dashboardModel {
	t.Helper()

	updated, _ := m.Update(msg)
	dm, ok := updated.(dashboardModel)
	require.True(t, ok)
	return dm
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func quoteAt(ticker string, last string) models.Quote {
	return models.Quote{Ticker: ticker, Last: decimal.RequireFromString(last), At: time.Now()}
}

// ── Ticks and alerts ─────────────────────────────────────────────────────────

func TestDashboard_TickFiresAlertAndSchedulesSave(t *testing.T) {
	rec := models.NewRecord()
	m, autosave := newTestModel(t, rec)

	_, err := m.services.PortfolioService.NewAlert(&m.rec, "AAPL", "170", models.AlertAbove)
	require.NoError(t, err)

	updated, _ := m.Update(quotesMsg{quotes: map[string]models.Quote{"AAPL": quoteAt("AAPL", "171.50")}})
	dm := updated.(dashboardModel)

	assert.True(t, dm.rec.Alerts[0].Triggered)
	assert.Contains(t, dm.status, "ALERT AAPL above 170")
	require.Len(t, autosave.triggered, 1, "fired alert must schedule a save")
	assert.True(t, autosave.triggered[0].Alerts[0].Triggered)
}

func TestDashboard_TickWithoutCrossingChangesNothing(t *testing.T) {
	rec := models.NewRecord()
	m, autosave := newTestModel(t, rec)

	_, err := m.services.PortfolioService.NewAlert(&m.rec, "AAPL", "170", models.AlertAbove)
	require.NoError(t, err)

	updated, _ := m.Update(quotesMsg{quotes: map[string]models.Quote{"AAPL": quoteAt("AAPL", "150")}})
	dm := updated.(dashboardModel)

	assert.False(t, dm.rec.Alerts[0].Triggered)
	assert.Empty(t, autosave.triggered)
}

// ── Watchlist ────────────────────────────────────────────────────────────────

func TestDashboard_WatchFormAddsTicker(t *testing.T) {
	m, autosave := newTestModel(t, models.NewRecord())

	m = pressKey(t, m, runeKey('w'))
	require.Equal(t, modeWatchForm, m.mode)

	m.inputs[0].SetValue("tcs.ns")
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeDashboard, m.mode)
	assert.Equal(t, []string{"TCS.NS"}, m.rec.Watchlist)
	require.Len(t, autosave.triggered, 1)

	// The feed now tracks the new ticker.
	_, tracked := m.feed.Snapshot()["TCS.NS"]
	assert.True(t, tracked)
}

func TestDashboard_WatchFormRejectsDuplicate(t *testing.T) {
	rec := models.NewRecord()
	rec.Watchlist = []string{"AAPL"}
	m, autosave := newTestModel(t, rec)

	m = pressKey(t, m, runeKey('w'))
	m.inputs[0].SetValue("AAPL")
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeWatchForm, m.mode, "invalid submit keeps the form open")
	assert.Contains(t, m.errMsg, "already on the watchlist")
	assert.Empty(t, autosave.triggered)
}

func TestDashboard_UnwatchRemovesSelected(t *testing.T) {
	rec := models.NewRecord()
	rec.Watchlist = []string{"AAPL", "MSFT"}
	m, autosave := newTestModel(t, rec)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, runeKey('d'))

	assert.Equal(t, []string{"AAPL"}, m.rec.Watchlist)
	assert.Equal(t, 0, m.idx, "cursor clamps to the remaining rows")
	require.Len(t, autosave.triggered, 1)
}

// ── Positions and forms ──────────────────────────────────────────────────────

func TestDashboard_BuyFormAddsPosition(t *testing.T) {
	m, autosave := newTestModel(t, models.NewRecord())

	m = pressKey(t, m, runeKey('b'))
	require.Equal(t, modeBuyForm, m.mode)

	m.inputs[0].SetValue("aapl")
	m.inputs[1].SetValue("10")
	m.inputs[2].SetValue("150.50")
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.rec.Portfolio, 1)
	assert.Equal(t, "AAPL", m.rec.Portfolio[0].Ticker)
	assert.True(t, m.rec.Portfolio[0].Quantity.Equal(decimal.NewFromInt(10)))
	require.Len(t, autosave.triggered, 1)
}

func TestDashboard_BuyFormRejectsBadQuantity(t *testing.T) {
	m, autosave := newTestModel(t, models.NewRecord())

	m = pressKey(t, m, runeKey('b'))
	m.inputs[0].SetValue("AAPL")
	m.inputs[1].SetValue("-3")
	m.inputs[2].SetValue("150")
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBuyForm, m.mode)
	assert.Contains(t, m.errMsg, "invalid quantity")
	assert.Empty(t, m.rec.Portfolio)
	assert.Empty(t, autosave.triggered)
}

func TestDashboard_EscCancelsForm(t *testing.T) {
	m, _ := newTestModel(t, models.NewRecord())

	m = pressKey(t, m, runeKey('a'))
	require.Equal(t, modeAlertForm, m.mode)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeDashboard, m.mode)
	assert.Nil(t, m.inputs)
}

// ── Async results ────────────────────────────────────────────────────────────

func TestDashboard_ImportResultAppendsPositions(t *testing.T) {
	m, autosave := newTestModel(t, models.NewRecord())
	m.busy = true

	positions := []models.Position{{
		Ticker:   "TCS.NS",
		Quantity: decimal.NewFromInt(5),
		AvgPrice: decimal.RequireFromString("3450.10"),
	}}
	updated, _ := m.Update(importDoneMsg{positions: positions})
	dm := updated.(dashboardModel)

	assert.False(t, dm.busy)
	require.Len(t, dm.rec.Portfolio, 1)
	assert.Contains(t, dm.status, "Imported 1 positions")
	require.Len(t, autosave.triggered, 1)
}

func TestDashboard_SaveErrorSurfacesInView(t *testing.T) {
	m, _ := newTestModel(t, models.NewRecord())
	m.busy = true

	updated, _ := m.Update(savedMsg{err: assert.AnError})
	dm := updated.(dashboardModel)

	assert.False(t, dm.busy)
	assert.Contains(t, dm.errMsg, "save failed")
	assert.True(t, strings.Contains(dm.View(), "Error:"))
}

func TestDashboard_AnalysisResultOpensAnalysisView(t *testing.T) {
	m, _ := newTestModel(t, models.NewRecord())
	m.busy = true

	updated, _ := m.Update(analysisMsg{text: "hold everything"})
	dm := updated.(dashboardModel)

	require.Equal(t, modeAnalysis, dm.mode)
	assert.Contains(t, dm.View(), "hold everything")

	dm = pressKey(t, dm, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeDashboard, dm.mode)
}
