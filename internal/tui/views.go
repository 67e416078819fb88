// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package tui

import (
	"fmt"
	"strings"
)

const dashboardHotKeys = "w: watch │ d: unwatch │ b: buy │ a: alert │ s: save │ u: backup │ r: rotate │ g: analyze │ i: import │ x: export │ q: quit"

const formHotKeys = "tab: next field │ shift+tab: prev field │ enter: confirm │ esc: cancel"

func (m dashboardModel) View() string {
	switch m.mode {
	case modeWatchForm:
		return m.viewForm("ADD TO WATCHLIST", []string{"Ticker"})
	case modeBuyForm:
		return m.viewForm("NEW POSITION", []string{"Ticker", "Quantity", "Price"})
	case modeAlertForm:
		return m.viewForm("NEW PRICE ALERT", []string{"Ticker", "Direction", "Threshold"})
	case modeRotateForm:
		return m.viewForm("ROTATE PASSPHRASE", []string{"New", "Confirm"})
	case modeImportForm:
		return m.viewForm("IMPORT POSITIONS (CSV)", []string{"File"})
	case modeExportForm:
		return m.viewForm("EXPORT POSITIONS (CSV)", []string{"File"})
	case modeAnalysis:
		return renderPage("ANALYST", m.analysis, "esc: back")
	default:
		return m.viewDashboard()
	}
}

func (m dashboardModel) viewDashboard() string {
	var b strings.Builder

	b.WriteString("[ WATCHLIST ]\n")
	if len(m.rec.Watchlist) == 0 {
		b.WriteString("  (empty)\n")
	}
	for i, ticker := range m.rec.Watchlist {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		q, ok := m.quotes[ticker]
		if !ok {
			fmt.Fprintf(&b, "%s%-10s %12s\n", cursor, fitText(ticker, 10), "-")
			continue
		}
		fmt.Fprintf(&b, "%s%-10s %12s  %s\n", cursor, fitText(ticker, 10), q.Last.StringFixed(4), styledChange(q.Change()))
	}

	b.WriteString("\n[ PORTFOLIO ]\n")
	v := m.services.PortfolioService.Valuation(m.rec, m.quotes)
	if len(v.Positions) == 0 {
		b.WriteString("  (no positions)\n")
	}
	for _, pv := range v.Positions {
		marker := ""
		if !pv.HasQuote {
			marker = " (at cost)"
		}
		fmt.Fprintf(&b, "  %-10s %s @ %s = %s (PnL %s)%s\n",
			fitText(pv.Position.Ticker, 10), pv.Position.Quantity, pv.LastPrice.StringFixed(4),
			v.FormatMoney(pv.MarketValue), v.FormatMoney(pv.PnL), marker)
	}
	if len(v.Positions) > 0 {
		fmt.Fprintf(&b, "  Total: %s (PnL %s)\n", v.FormatMoney(v.TotalValue), v.FormatMoney(v.TotalPnL))
	}

	b.WriteString("\n[ ALERTS ]\n")
	if len(m.rec.Alerts) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, a := range m.rec.Alerts {
		state := "pending"
		if a.Triggered {
			state = "FIRED"
		}
		fmt.Fprintf(&b, "  %-10s %-5s %12s  %s\n", fitText(a.Ticker, 10), a.Direction, a.Threshold.String(), state)
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("TRADEDECK", strings.TrimRight(b.String(), "\n"), dashboardHotKeys)
}

func (m dashboardModel) viewForm(title string, labels []string) string {
	var b strings.Builder

	width := 0
	for _, label := range labels {
		if len(label) > width {
			width = len(label)
		}
	}

	for i, label := range labels {
		fmt.Fprintf(&b, "%-*s : [ %s ]\n", width, label, m.inputs[i].View())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), formHotKeys)
}
