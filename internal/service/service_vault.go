// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/internal/store"
	"github.com/tradedeck-app/tradedeck/internal/vault"
	"github.com/tradedeck-app/tradedeck/models"
)

type vaultService struct {
	// mu serialises SaveNow and RotatePassphrase so a debounced autosave
	// can never interleave with a rotation in flight.
	mu sync.Mutex

	vault    *vault.Vault
	blobs    store.BlobStore
	log      *logger.Logger
	minScore int
}

// NewVaultService wires the vault lifecycle to the blob store. minScore
// is the minimum zxcvbn strength (0-4) accepted for new passphrases.
func NewVaultService(v *vault.Vault, blobs store.BlobStore, minScore int, log *logger.Logger) VaultService {
	if log == nil {
		log = logger.Nop()
	}
	return &vaultService{vault: v, blobs: blobs, log: log, minScore: minScore}
}

func (s *vaultService) CreateVault(ctx context.Context, passphrase string, rec models.Record) error {
	if err := s.checkStrength(passphrase); err != nil {
		return err
	}

	_, err := s.blobs.Load(ctx)
	if err == nil {
		return ErrVaultExists
	}
	if !errors.Is(err, store.ErrNoVault) {
		return fmt.Errorf("check existing vault: %w", err)
	}

	blob, err := s.vault.Create(passphrase, rec)
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	if err = s.blobs.Save(ctx, blob); err != nil {
		// The blob never hit disk; drop the session so the caller can
		// retry create from a clean Locked state.
		s.vault.Lock()
		return fmt.Errorf("persist new vault: %w", err)
	}

	s.log.Info().Msg("vault created and persisted")
	return nil
}

func (s *vaultService) Open(ctx context.Context, passphrase string) (models.Record, error) {
	blob, err := s.blobs.Load(ctx)
	if err != nil {
		return models.Record{}, err
	}

	rec, err := s.vault.Unlock(passphrase, blob)
	if err != nil {
		return models.Record{}, err
	}

	return rec, nil
}

func (s *vaultService) SaveNow(ctx context.Context, rec models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.vault.Persist(rec)
	if err != nil {
		return fmt.Errorf("seal record: %w", err)
	}

	if err = s.blobs.Save(ctx, blob); err != nil {
		return fmt.Errorf("persist blob: %w", err)
	}

	return nil
}

func (s *vaultService) RotatePassphrase(ctx context.Context, newPassphrase string, rec models.Record) error {
	if err := s.checkStrength(newPassphrase); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.vault.Rotate(newPassphrase, rec)
	if err != nil {
		return fmt.Errorf("rotate vault key: %w", err)
	}

	// The store moves the pre-rotation blob into its previous slot in the
	// same durable write, so at no point is the user left without a blob
	// that opens under a passphrase they know.
	if err = s.blobs.Save(ctx, blob); err != nil {
		return fmt.Errorf("persist rotated blob: %w", err)
	}

	s.log.Info().Msg("vault passphrase rotated and persisted")
	return nil
}

func (s *vaultService) CurrentBlob(ctx context.Context) (string, error) {
	return s.blobs.Load(ctx)
}

func (s *vaultService) RestoreBlob(ctx context.Context, blob string) error {
	_, err := s.blobs.Load(ctx)
	if err == nil {
		return ErrVaultExists
	}
	if !errors.Is(err, store.ErrNoVault) {
		return fmt.Errorf("check existing vault: %w", err)
	}

	if err = s.blobs.Save(ctx, blob); err != nil {
		return fmt.Errorf("persist restored vault: %w", err)
	}

	s.log.Info().Msg("vault blob restored from backup")
	return nil
}

func (s *vaultService) Lock() {
	s.vault.Lock()
}

func (s *vaultService) State() vault.State {
	return s.vault.State()
}

func (s *vaultService) checkStrength(passphrase string) error {
	score := zxcvbn.PasswordStrength(passphrase, nil).Score
	if score < s.minScore {
		return fmt.Errorf("%w: score %d, need %d", ErrWeakPassphrase, score, s.minScore)
	}
	return nil
}
