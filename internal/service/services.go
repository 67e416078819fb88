// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package service

import (
	"time"

	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/internal/store"
	"github.com/tradedeck-app/tradedeck/internal/vault"
)

type Services struct {
	VaultService     VaultService
	AutosaveJob      AutosaveJob
	PortfolioService PortfolioService
	ImpExpService    ImpExpService
}

func NewServices(blobs store.BlobStore, minPassphraseScore int, autosaveDebounce time.Duration, log *logger.Logger) *Services {
	vaultSvc := NewVaultService(vault.New(log), blobs, minPassphraseScore, log)

	return &Services{
		VaultService:     vaultSvc,
		AutosaveJob:      NewAutosaveJob(vaultSvc, autosaveDebounce, log),
		PortfolioService: NewPortfolioService(log),
		ImpExpService:    NewImpExpService(log),
	}
}
