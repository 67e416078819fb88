// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Every command below runs on a Bubble Tea worker goroutine, so each one
// captures a deep clone of the record; the update goroutine keeps
// mutating the original while the command is in flight.

func (m dashboardModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	rec := m.rec.Clone()

	return func() tea.Msg {
		return savedMsg{err: svc.SaveNow(ctx, rec)}
	}
}

// cmdBackup persists the current record, then uploads the stored blob.
// The upload is the encoded ciphertext as-is; nothing is decrypted or
// re-encrypted on the way out.
func (m dashboardModel) cmdBackup() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	cloud := m.cloud
	rec := m.rec.Clone()

	return func() tea.Msg {
		if err := svc.SaveNow(ctx, rec); err != nil {
			return backupDoneMsg{err: err}
		}
		blob, err := svc.CurrentBlob(ctx)
		if err != nil {
			return backupDoneMsg{err: err}
		}
		return backupDoneMsg{err: cloud.Upload(ctx, blob)}
	}
}

func (m dashboardModel) cmdRotate(newPassphrase string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	rec := m.rec.Clone()

	return func() tea.Msg {
		return rotateDoneMsg{err: svc.RotatePassphrase(ctx, newPassphrase, rec)}
	}
}

func (m dashboardModel) cmdAnalyze() tea.Cmd {
	ctx := m.ctx
	an := m.analyst
	rec := m.rec.Clone()
	quotes := m.feed.Snapshot()

	return func() tea.Msg {
		text, err := an.Analyze(ctx, rec, quotes)
		return analysisMsg{text: text, err: err}
	}
}

func (m dashboardModel) cmdImport(path string) tea.Cmd {
	imp := m.services.ImpExpService

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		positions, err := imp.ImportPositions(f)
		return importDoneMsg{positions: positions, err: err}
	}
}

func (m dashboardModel) cmdExport(path string) tea.Cmd {
	imp := m.services.ImpExpService
	rec := m.rec.Clone()

	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()

		if err = imp.ExportPositions(f, rec.Portfolio); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{count: len(rec.Portfolio), path: path}
	}
}
