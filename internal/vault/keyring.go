// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// SessionKey is the symmetric key derived from the user's passphrase for
// the lifetime of one unlocked session.
//
// The type is deliberately opaque: the only field is an unexported AEAD
// handle, there is no byte accessor, and the raw key material is wiped as
// soon as the AEAD is constructed. Nothing outside this package can
// serialise, log, or copy the key bytes.
type SessionKey struct {
	aead cipher.AEAD
}

// keyRing derives session keys from passphrases.
type keyRing struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// newKeyRing constructs a keyRing with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func newKeyRing() *keyRing {
	return &keyRing{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// NewSalt reads 16 random bytes from the OS CSPRNG and returns them as a
// key-derivation salt. Returns ErrEntropy if the random read fails.
func (k *keyRing) NewSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return salt, nil
}

// Derive stretches passphrase and salt into a *SessionKey using Argon2id
// with the parameters stored in the receiver. Derivation is deterministic:
// the same (passphrase, salt) pair always yields a key that opens blobs
// sealed under any earlier derivation of that pair.
//
// Derivation never detects a wrong passphrase — a wrong passphrase simply
// produces a key whose open fails tag verification later.
func (k *keyRing) Derive(passphrase string, salt []byte) (*SessionKey, error) {
	raw := argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	// The AEAD holds its own key schedule; the raw bytes are not needed
	// past this point.
	for i := range raw {
		raw[i] = 0
	}

	return &SessionKey{aead: gcm}, nil
}
