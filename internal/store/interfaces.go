package store

import "context"

// BlobStore is the key-value persistence surface for the encoded vault
// blob. The vault owns exactly one well-known slot; the store never
// interprets the blob's contents.
type BlobStore interface {
	// Load returns the current blob, or ErrNoVault if the slot is empty.
	Load(ctx context.Context) (string, error)

	// Save durably writes blob as the new current value of the slot. The
	// value that was current before the write is retained as the previous
	// blob, so a passphrase rotation can be confirmed before the
	// pre-rotation blob is discarded.
	Save(ctx context.Context, blob string) error

	// LoadPrevious returns the blob that was current before the latest
	// Save, or ErrNoVault if there is none. Used to recover from an
	// interrupted rotation.
	LoadPrevious(ctx context.Context) (string, error)
}
