// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

// Package adapter provides transport-layer abstractions for off-device
// vault backup.
//
// The primary abstraction is [CloudSync], which decouples the application
// from the backup destination. The package ships a GitHub Gist
// implementation ([NewGistAdapter]) that stores the encrypted blob as a
// single file in a private gist. Only ciphertext ever crosses the wire:
// the remote side holds no key material and cannot decrypt anything.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import "context"

// CloudSync defines transport-agnostic backup of the encrypted vault blob.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type CloudSync interface {
	// Upload replaces the remote copy of the vault blob with blob. The
	// blob is already encrypted and encoded; it is transported verbatim.
	Upload(ctx context.Context, blob string) error

	// Download fetches the remote copy of the vault blob. Returns
	// [ErrNotFound] (wrapped) if the remote side has no vault file yet.
	Download(ctx context.Context) (string, error)
}
