// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package vault

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// saltSize is the key-derivation salt length in bytes.
	saltSize = 16

	// nonceSize is the AES-GCM nonce length in bytes. A (key, nonce) pair
	// must never be used for two seal operations.
	nonceSize = 12

	// tagSize is the GCM authentication tag appended to every ciphertext.
	tagSize = 16
)

// newNonce reads a fresh 12-byte nonce from the OS CSPRNG. Returns
// ErrEntropy if the random read fails; the caller must treat that as fatal
// rather than retry.
func newNonce() ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return nonce, nil
}

// seal encrypts plaintext under key with the caller-supplied nonce and
// returns ciphertext with the 16-byte authentication tag appended.
func seal(key *SessionKey, nonce, plaintext []byte) []byte {
	return key.aead.Seal(nil, nonce, plaintext, nil)
}

// open decrypts and verifies sealed (ciphertext ‖ tag) in one pass.
//
// Every failure mode — wrong key, wrong nonce, tampered ciphertext, input
// shorter than a tag — returns the same ErrAuthentication, so no side
// channel reveals which one occurred. No partial plaintext is ever
// returned.
func open(key *SessionKey, nonce, sealed []byte) ([]byte, error) {
	if len(nonce) != key.aead.NonceSize() || len(sealed) < tagSize {
		return nil, ErrAuthentication
	}

	plaintext, err := key.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
