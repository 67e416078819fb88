// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tradedeck-app/tradedeck/internal/logger"
)

// defaultSlot is the single well-known key the vault blob lives under.
// The dashboard manages exactly one vault per device; there are no named
// vaults.
const defaultSlot = "default"

const (
	selectBlobSQL         = `SELECT blob FROM vault_slot WHERE slot = ?`
	selectPreviousBlobSQL = `SELECT previous_blob FROM vault_slot WHERE slot = ?`

	// The upsert moves the current blob into previous_blob in the same
	// statement, so the pre-rotation blob survives until the next Save.
	upsertBlobSQL = `INSERT INTO vault_slot (slot, blob, previous_blob, updated_at)
		VALUES (?, ?, NULL, ?)
		ON CONFLICT(slot) DO UPDATE SET
			previous_blob = vault_slot.blob,
			blob = excluded.blob,
			updated_at = excluded.updated_at`
)

// blobRepository is the SQLite-backed [BlobStore].
type blobRepository struct {
	db  *DB
	log *logger.Logger
}

// NewBlobRepository returns a [BlobStore] persisting the blob in the
// vault_slot table of db.
func NewBlobRepository(db *DB, log *logger.Logger) BlobStore {
	if log == nil {
		log = logger.Nop()
	}
	return &blobRepository{db: db, log: log}
}

// Load implements [BlobStore].
func (r *blobRepository) Load(ctx context.Context) (string, error) {
	var blob string
	err := r.db.QueryRowContext(ctx, selectBlobSQL, defaultSlot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoVault
	}
	if err != nil {
		return "", fmt.Errorf("load vault blob: %w", err)
	}
	return blob, nil
}

// Save implements [BlobStore].
func (r *blobRepository) Save(ctx context.Context, blob string) error {
	_, err := r.db.ExecContext(ctx, upsertBlobSQL, defaultSlot, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save vault blob: %w", err)
	}
	r.log.Debug().Int("blob_len", len(blob)).Msg("vault blob persisted")
	return nil
}

// LoadPrevious implements [BlobStore].
func (r *blobRepository) LoadPrevious(ctx context.Context) (string, error) {
	var prev sql.NullString
	err := r.db.QueryRowContext(ctx, selectPreviousBlobSQL, defaultSlot).Scan(&prev)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoVault
	}
	if err != nil {
		return "", fmt.Errorf("load previous vault blob: %w", err)
	}
	if !prev.Valid || prev.String == "" {
		return "", ErrNoVault
	}
	return prev.String, nil
}
