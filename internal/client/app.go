// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradedeck-app/tradedeck/internal/adapter"
	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/internal/market"
	"github.com/tradedeck-app/tradedeck/internal/service"
	"github.com/tradedeck-app/tradedeck/internal/store"
	"github.com/tradedeck-app/tradedeck/internal/tui"
	"github.com/tradedeck-app/tradedeck/internal/vault"
	"github.com/tradedeck-app/tradedeck/internal/workers"
	"github.com/tradedeck-app/tradedeck/models"
)

// App is the dashboard process lifecycle: unlock (or create) the vault
// on the plain terminal, then hand the unlocked record to the dashboard
// UI with the background workers running around it.
type App struct {
	services *service.Services
	feed     *market.Feed
	cloud    adapter.CloudSync // nil when backup is not configured
	ui       *tui.TUI
	log      *logger.Logger
}

func NewApp(services *service.Services, feed *market.Feed, cloud adapter.CloudSync, ui *tui.TUI, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{services: services, feed: feed, cloud: cloud, ui: ui, log: log}
}

// Run drives the whole session: unlock or create the vault, start the
// market feed and autosave workers, run the dashboard UI until the user
// quits, then flush and lock.
func (a *App) Run(ctx context.Context) error {
	rec, err := a.openOrCreate(ctx)
	if err != nil {
		return err
	}

	a.trackAll(rec)

	// Autosave starts before the feed and stops after it, so every alert
	// fired by a late tick still reaches disk.
	ws := workers.New(a.services.AutosaveJob, a.feed)
	ws.Start(ctx)

	err = a.ui.Dashboard(ctx, rec)

	ws.Stop()
	a.services.VaultService.Lock()
	a.log.Info().Msg("session ended, vault locked")

	return err
}

// openOrCreate unlocks an existing vault or walks the first-run flow.
func (a *App) openOrCreate(ctx context.Context) (models.Record, error) {
	for {
		passphrase, err := promptPassphrase("Passphrase: ")
		if err != nil {
			return models.Record{}, err
		}

		rec, err := a.services.VaultService.Open(ctx, passphrase)
		switch {
		case err == nil:
			fmt.Println("Vault unlocked.")
			return rec, nil

		case errors.Is(err, store.ErrNoVault):
			if a.cloud != nil {
				restored, rerr := a.restoreFlow(ctx)
				if rerr != nil {
					return models.Record{}, rerr
				}
				if restored {
					// The backup is installed locally; retry unlocking it.
					continue
				}
			}
			return a.createFlow(ctx, passphrase)

		case errors.Is(err, vault.ErrAuthentication):
			fmt.Println("Wrong passphrase, try again.")

		case errors.Is(err, vault.ErrBadFormat):
			return models.Record{}, fmt.Errorf("stored vault is unreadable: %w", err)

		default:
			return models.Record{}, err
		}
	}
}

// restoreFlow pulls the encrypted blob from the configured backup and
// installs it locally. Returns false without error when the backup host
// has no vault yet.
func (a *App) restoreFlow(ctx context.Context) (bool, error) {
	fmt.Println("No local vault; checking the configured backup.")

	blob, err := a.cloud.Download(ctx)
	if errors.Is(err, adapter.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("download backup: %w", err)
	}

	if err = a.services.VaultService.RestoreBlob(ctx, blob); err != nil {
		return false, err
	}

	fmt.Println("Backup restored, unlock it with its passphrase.")
	return true, nil
}

func (a *App) createFlow(ctx context.Context, passphrase string) (models.Record, error) {
	fmt.Println("No vault found on this device, creating one.")

	confirm, err := promptPassphrase("Confirm passphrase: ")
	if err != nil {
		return models.Record{}, err
	}
	if confirm != passphrase {
		return models.Record{}, fmt.Errorf("passphrases do not match")
	}

	rec := models.NewRecord()
	if err := a.services.VaultService.CreateVault(ctx, passphrase, rec); err != nil {
		if errors.Is(err, service.ErrWeakPassphrase) {
			return models.Record{}, fmt.Errorf("%w (use a longer, less predictable passphrase)", err)
		}
		return models.Record{}, err
	}

	fmt.Println("Vault created.")
	return rec, nil
}

// trackAll registers every portfolio and watchlist ticker with the feed.
func (a *App) trackAll(rec models.Record) {
	for _, pos := range rec.Portfolio {
		a.feed.Track(pos.Ticker, pos.AvgPrice)
	}
	for _, ticker := range rec.Watchlist {
		a.feed.Track(ticker, decimal.Zero)
	}
}
