// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

// Package vault implements the local encrypted vault: passphrase-based key
// derivation (Argon2id), authenticated encryption (AES-256-GCM), the
// persisted blob codec, and the Locked/Unlocked session lifecycle.
//
// The package is the module boundary that keeps the session key opaque:
// no exported API returns or serialises key material.
package vault

import (
	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/models"
)

// State is the two-state session lifecycle. A vault starts Locked,
// becomes Unlocked only on a successful Create or Unlock, and returns to
// Locked on Lock. The state is ephemeral and never persisted.
type State int

const (
	// Locked means no session key is held; only Create and Unlock are valid.
	Locked State = iota

	// Unlocked means a session key and salt are held in memory.
	Unlocked
)

// Vault owns the session key and salt for one dashboard session and
// orchestrates key derivation, sealing, and blob encoding.
//
// Vault performs no internal locking: the contract with the caller (UI
// event handlers and the debounced autosave job) is single-threaded,
// serialised access. See the service layer for the serialising wrapper.
type Vault struct {
	keys *keyRing
	log  *logger.Logger

	state State
	key   *SessionKey
	salt  []byte
}

// New returns a Locked vault with no key material.
func New(log *logger.Logger) *Vault {
	if log == nil {
		log = logger.Nop()
	}
	return &Vault{keys: newKeyRing(), log: log, state: Locked}
}

// State reports whether the vault currently holds a session key.
func (v *Vault) State() State {
	return v.state
}

// Create initialises a brand-new vault: it generates a fresh salt, derives
// a session key from passphrase, seals rec under a fresh nonce, and
// returns the encoded blob for the caller to persist. On success the vault
// transitions to Unlocked, holding the new key and salt.
//
// Returns ErrUnlocked if a session is already open, and ErrEntropy (fatal,
// non-retryable) if the OS random source fails.
func (v *Vault) Create(passphrase string, rec models.Record) (string, error) {
	if v.state == Unlocked {
		return "", ErrUnlocked
	}

	salt, err := v.keys.NewSalt()
	if err != nil {
		return "", err
	}
	key, err := v.keys.Derive(passphrase, salt)
	if err != nil {
		return "", err
	}

	blob, err := sealRecord(key, salt, rec)
	if err != nil {
		return "", err
	}

	v.key = key
	v.salt = salt
	v.state = Unlocked
	v.log.Info().Msg("vault created")

	return blob, nil
}

// Unlock opens an existing blob with passphrase and returns the plaintext
// record.
//
// The blob is decoded first: a structurally unreadable blob returns
// ErrBadFormat without ever running key derivation, so "corrupted vault"
// and "wrong passphrase" stay distinguishable. On ErrAuthentication the
// vault remains Locked; on success it transitions to Unlocked with the
// derived key and the blob's salt.
func (v *Vault) Unlock(passphrase, blob string) (models.Record, error) {
	if v.state == Unlocked {
		return models.Record{}, ErrUnlocked
	}

	salt, nonce, sealed, err := decodeBlob(blob)
	if err != nil {
		return models.Record{}, err
	}

	key, err := v.keys.Derive(passphrase, salt)
	if err != nil {
		return models.Record{}, err
	}

	plaintext, err := open(key, nonce, sealed)
	if err != nil {
		v.log.Warn().Msg("vault unlock rejected")
		return models.Record{}, err
	}

	rec, err := decodeRecord(plaintext)
	if err != nil {
		return models.Record{}, err
	}

	v.key = key
	v.salt = salt
	v.state = Unlocked
	v.log.Info().Msg("vault unlocked")

	return rec, nil
}

// Persist seals the current record under the session key with a fresh
// nonce and returns the encoded blob. The session salt is reused — salts
// change only on Create and Rotate — and is never mutated here.
//
// Valid only while Unlocked; returns ErrLocked otherwise.
func (v *Vault) Persist(rec models.Record) (string, error) {
	if v.state != Unlocked {
		return "", ErrLocked
	}
	return sealRecord(v.key, v.salt, rec)
}

// Rotate re-keys the vault under newPassphrase: a brand-new salt and
// session key replace the current ones, and rec is sealed into a new blob.
//
// The caller owns rotation durability: it must keep the old blob until
// the new one is confirmed written, so a failed write never leaves the
// user unable to unlock with either passphrase.
//
// Valid only while Unlocked; returns ErrLocked otherwise. If salt
// generation or derivation fails, the existing key and salt are kept
// untouched.
func (v *Vault) Rotate(newPassphrase string, rec models.Record) (string, error) {
	if v.state != Unlocked {
		return "", ErrLocked
	}

	salt, err := v.keys.NewSalt()
	if err != nil {
		return "", err
	}
	key, err := v.keys.Derive(newPassphrase, salt)
	if err != nil {
		return "", err
	}

	blob, err := sealRecord(key, salt, rec)
	if err != nil {
		return "", err
	}

	v.key = key
	v.salt = salt
	v.log.Info().Msg("vault passphrase rotated")

	return blob, nil
}

// Lock drops the session key and salt and returns the vault to Locked.
// Callable in any state; locking a Locked vault is a no-op.
func (v *Vault) Lock() {
	if v.state == Locked && v.key == nil {
		return
	}
	v.key = nil
	for i := range v.salt {
		v.salt[i] = 0
	}
	v.salt = nil
	v.state = Locked
	v.log.Info().Msg("vault locked")
}

// sealRecord is the shared seal path for Create, Persist, and Rotate:
// serialise the record, draw a fresh nonce, seal, encode.
func sealRecord(key *SessionKey, salt []byte, rec models.Record) (string, error) {
	plaintext, err := encodeRecord(rec)
	if err != nil {
		return "", err
	}

	nonce, err := newNonce()
	if err != nil {
		return "", err
	}

	sealed := seal(key, nonce, plaintext)
	return encodeBlob(salt, nonce, sealed), nil
}
