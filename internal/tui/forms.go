// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/tradedeck-app/tradedeck/models"
)

func newFormInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = width
	return in
}

func newPassphraseInput(placeholder string) textinput.Model {
	in := newFormInput(placeholder, 40)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func (m dashboardModel) startForm(mode viewMode, inputs ...textinput.Model) dashboardModel {
	inputs[0].Focus()
	m.mode = mode
	m.inputs = inputs
	m.focus = 0
	m.errMsg = ""
	return m
}

func (m dashboardModel) startWatchForm() dashboardModel {
	return m.startForm(modeWatchForm, newFormInput("ticker", 20))
}

func (m dashboardModel) startBuyForm() dashboardModel {
	return m.startForm(modeBuyForm,
		newFormInput("ticker", 20),
		newFormInput("quantity", 20),
		newFormInput("price", 20),
	)
}

func (m dashboardModel) startAlertForm() dashboardModel {
	return m.startForm(modeAlertForm,
		newFormInput("ticker", 20),
		newFormInput("above|below", 20),
		newFormInput("threshold price", 20),
	)
}

func (m dashboardModel) startRotateForm() dashboardModel {
	return m.startForm(modeRotateForm,
		newPassphraseInput("new passphrase"),
		newPassphraseInput("confirm passphrase"),
	)
}

func (m dashboardModel) startPathForm(mode viewMode) dashboardModel {
	return m.startForm(mode, newFormInput("file path", 40))
}

func (m dashboardModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeDashboard
		m.inputs = nil
		m.errMsg = ""
		return m, nil

	case key.Matches(keyMsg, keys.tab):
		m.focusNext()
		return m, nil

	case key.Matches(keyMsg, keys.backtab):
		m.focusPrev()
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		return m.submitForm()
	}

	return m.updateFormInput(keyMsg)
}

func (m dashboardModel) updateFormInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *dashboardModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *dashboardModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m dashboardModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeWatchForm:
		return m.submitWatch()
	case modeBuyForm:
		return m.submitBuy()
	case modeAlertForm:
		return m.submitAlert()
	case modeRotateForm:
		return m.submitRotate()
	case modeImportForm, modeExportForm:
		return m.submitPath()
	default:
		return m, nil
	}
}

func (m dashboardModel) closeForm(status string) dashboardModel {
	m.mode = modeDashboard
	m.inputs = nil
	m.status = status
	m.errMsg = ""
	return m
}

func (m dashboardModel) submitWatch() (tea.Model, tea.Cmd) {
	ticker := strings.ToUpper(strings.TrimSpace(m.inputs[0].Value()))
	if ticker == "" {
		m.errMsg = "ticker is required"
		return m, nil
	}
	for _, t := range m.rec.Watchlist {
		if t == ticker {
			m.errMsg = fmt.Sprintf("%s is already on the watchlist", ticker)
			return m, nil
		}
	}

	m.rec.Watchlist = append(m.rec.Watchlist, ticker)
	m.feed.Track(ticker, decimal.Zero)
	m.services.AutosaveJob.Trigger(m.rec)

	return m.closeForm(fmt.Sprintf("Watching %s", ticker)), nil
}

func (m dashboardModel) submitBuy() (tea.Model, tea.Cmd) {
	ticker := strings.ToUpper(strings.TrimSpace(m.inputs[0].Value()))
	if ticker == "" {
		m.errMsg = "ticker is required"
		return m, nil
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil || !qty.IsPositive() {
		m.errMsg = fmt.Sprintf("invalid quantity %q", m.inputs[1].Value())
		return m, nil
	}
	price, err := decimal.NewFromString(strings.TrimSpace(m.inputs[2].Value()))
	if err != nil || !price.IsPositive() {
		m.errMsg = fmt.Sprintf("invalid price %q", m.inputs[2].Value())
		return m, nil
	}

	m.rec.Portfolio = append(m.rec.Portfolio, models.Position{
		Ticker:   ticker,
		Quantity: qty,
		AvgPrice: price,
	})
	m.feed.Track(ticker, price)
	m.services.AutosaveJob.Trigger(m.rec)

	return m.closeForm(fmt.Sprintf("Added %s x%s @ %s", ticker, qty, price)), nil
}

func (m dashboardModel) submitAlert() (tea.Model, tea.Cmd) {
	ticker := strings.ToUpper(strings.TrimSpace(m.inputs[0].Value()))
	if ticker == "" {
		m.errMsg = "ticker is required"
		return m, nil
	}
	direction := models.AlertDirection(strings.ToLower(strings.TrimSpace(m.inputs[1].Value())))
	threshold := strings.TrimSpace(m.inputs[2].Value())

	alert, err := m.services.PortfolioService.NewAlert(&m.rec, ticker, threshold, direction)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.feed.Track(ticker, decimal.Zero)
	m.services.AutosaveJob.Trigger(m.rec)

	return m.closeForm(fmt.Sprintf("Alert set: %s %s %s", alert.Ticker, alert.Direction, alert.Threshold)), nil
}

func (m dashboardModel) submitRotate() (tea.Model, tea.Cmd) {
	newPassphrase := m.inputs[0].Value()
	confirm := m.inputs[1].Value()

	if newPassphrase == "" {
		m.errMsg = "passphrase cannot be empty"
		return m, nil
	}
	if newPassphrase != confirm {
		m.errMsg = "passphrases do not match"
		return m, nil
	}

	next := m.closeForm("Rotating passphrase...")
	next.busy = true
	return next, next.cmdRotate(newPassphrase)
}

func (m dashboardModel) submitPath() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.inputs[0].Value())
	if path == "" {
		m.errMsg = "file path is required"
		return m, nil
	}

	if m.mode == modeImportForm {
		next := m.closeForm("Importing...")
		next.busy = true
		return next, next.cmdImport(path)
	}

	next := m.closeForm("Exporting...")
	next.busy = true
	return next, next.cmdExport(path)
}
