// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

// Package client implements the interactive dashboard application runtime.
//
// It wires the unlock flow, the dashboard terminal UI, the vault and
// portfolio services, the simulated market feed, and the debounced
// autosave job into a single process lifecycle.
package client
