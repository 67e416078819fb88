// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package vault

import "errors"

var (
	// ErrAuthentication is returned when an open fails tag verification.
	// Wrong passphrase, tampered ciphertext, and truncated input all
	// collapse into this single error so callers cannot tell them apart.
	ErrAuthentication = errors.New("vault authentication failed")

	// ErrBadFormat is returned when a persisted blob or a decrypted record
	// is structurally unreadable. It is distinct from ErrAuthentication:
	// the caller reports "vault data corrupted", not "wrong passphrase".
	ErrBadFormat = errors.New("vault blob is malformed")

	// ErrEntropy is returned when the OS secure random source fails.
	// Fatal and non-retryable: retrying a broken entropy source risks
	// nonce reuse.
	ErrEntropy = errors.New("secure random source unavailable")

	// ErrLocked is returned by operations that require an unlocked vault.
	ErrLocked = errors.New("vault is locked")

	// ErrUnlocked is returned by Create/Unlock when the vault is already
	// unlocked; the caller must Lock first and re-synchronise its state.
	ErrUnlocked = errors.New("vault is already unlocked")
)
