// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package vault

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tradedeck-app/tradedeck/models"
)

// blobDelimiter separates the three blob fields. ':' is not part of the
// hex alphabet, so splitting on it is unambiguous.
const blobDelimiter = ":"

// encodeBlob packs (salt, nonce, ciphertext‖tag) into the single persisted
// text form: hex(salt):hex(nonce):hex(ciphertext‖tag). Field order is
// fixed and part of the storage contract.
func encodeBlob(salt, nonce, sealed []byte) string {
	return strings.Join([]string{
		hex.EncodeToString(salt),
		hex.EncodeToString(nonce),
		hex.EncodeToString(sealed),
	}, blobDelimiter)
}

// decodeBlob splits a persisted blob back into (salt, nonce, ciphertext‖tag).
//
// Every structural problem — wrong field count, non-hex characters, wrong
// salt/nonce length, ciphertext shorter than a tag — returns ErrBadFormat.
// decodeBlob never touches key derivation, so a corrupted blob is reported
// as "unreadable" before the user's passphrase is ever stretched.
func decodeBlob(blob string) (salt, nonce, sealed []byte, err error) {
	fields := strings.Split(blob, blobDelimiter)
	if len(fields) != 3 {
		return nil, nil, nil, fmt.Errorf("%w: want 3 fields, got %d", ErrBadFormat, len(fields))
	}

	if salt, err = hex.DecodeString(fields[0]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt is not hex", ErrBadFormat)
	}
	if nonce, err = hex.DecodeString(fields[1]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: nonce is not hex", ErrBadFormat)
	}
	if sealed, err = hex.DecodeString(fields[2]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext is not hex", ErrBadFormat)
	}

	if len(salt) != saltSize {
		return nil, nil, nil, fmt.Errorf("%w: salt length %d, want %d", ErrBadFormat, len(salt), saltSize)
	}
	if len(nonce) != nonceSize {
		return nil, nil, nil, fmt.Errorf("%w: nonce length %d, want %d", ErrBadFormat, len(nonce), nonceSize)
	}
	if len(sealed) < tagSize {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext shorter than auth tag", ErrBadFormat)
	}

	return salt, nonce, sealed, nil
}

// encodeRecord serialises the plaintext record to its canonical JSON byte
// form. The record is opaque to the vault; this is the only place its
// shape is touched, and only via the models package.
func encodeRecord(rec models.Record) ([]byte, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return payload, nil
}

// decodeRecord parses the JSON byte form back into a record. A decrypted
// payload that fails to parse means the vault contents are corrupt, which
// is a format problem, not an authentication one.
func decodeRecord(payload []byte) (models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return models.Record{}, fmt.Errorf("%w: record payload: %v", ErrBadFormat, err)
	}
	return rec, nil
}
