// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package main

import (
	"context"
	"fmt"

	"github.com/tradedeck-app/tradedeck/internal/adapter"
	"github.com/tradedeck-app/tradedeck/internal/analyst"
	"github.com/tradedeck-app/tradedeck/internal/client"
	"github.com/tradedeck-app/tradedeck/internal/config"
	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/internal/market"
	"github.com/tradedeck-app/tradedeck/internal/service"
	"github.com/tradedeck-app/tradedeck/internal/store"
	"github.com/tradedeck-app/tradedeck/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// File logger keeps stdout free for the interactive dashboard.
	log := logger.NewFileLogger("tradedeck")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect local storage")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate local storage")
	}

	blobs := store.NewBlobRepository(db, log)
	services := service.NewServices(blobs, cfg.Vault.MinPassphraseScore, cfg.Vault.AutosaveDebounce, log)
	feed := market.NewFeed(cfg.Market, log)

	// Cloud backup and the analyst are both optional extras; the vault
	// works fully offline without them.
	var cloud adapter.CloudSync
	if cfg.Sync.GistID != "" {
		cloud, err = adapter.NewGistAdapter(cfg.Sync, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create cloud backup adapter")
		}
	}

	var an *analyst.Analyst
	if cfg.Analyst.APIKey != "" {
		an, err = analyst.New(ctx, cfg.Analyst, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create analyst")
		}
	}

	ui := tui.New(services, feed, cloud, an, log)

	app := client.NewApp(services, feed, cloud, ui, log)
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("dashboard run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
