// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package client

import (
	"fmt"
	"syscall"

	"golang.org/x/term"
)

// promptPassphrase reads a passphrase from the terminal without echo.
func promptPassphrase(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}

	passphrase := string(raw)
	zeroBytes(raw)

	if passphrase == "" {
		return "", fmt.Errorf("passphrase cannot be empty")
	}
	return passphrase, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
