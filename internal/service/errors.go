package service

import "errors"

var (
	// ErrWeakPassphrase is returned when a new passphrase scores below
	// the configured minimum zxcvbn strength.
	ErrWeakPassphrase = errors.New("passphrase is too weak")

	// ErrVaultExists is returned by CreateVault when a blob is already
	// stored on this device.
	ErrVaultExists = errors.New("a vault already exists on this device")

	// ErrInvalidThreshold is returned when an alert threshold cannot be
	// parsed as a decimal price.
	ErrInvalidThreshold = errors.New("invalid alert threshold")
)
