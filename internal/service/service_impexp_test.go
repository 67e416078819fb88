// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradedeck-app/tradedeck/models"
)

func TestImpExpService_ImportPositions(t *testing.T) {
	svc := NewImpExpService(nil)

	in := strings.NewReader("ticker,quantity,avg_price\naapl,10,150.25\nTCS.NS,5,3200\n")
	positions, err := svc.ImportPositions(in)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	assert.Equal(t, "AAPL", positions[0].Ticker, "tickers are normalised to upper case")
	assert.True(t, positions[0].Quantity.Equal(dec("10")))
	assert.True(t, positions[0].AvgPrice.Equal(dec("150.25")))
	assert.Equal(t, "TCS.NS", positions[1].Ticker)
}

func TestImpExpService_ImportRejectsBadHeader(t *testing.T) {
	svc := NewImpExpService(nil)

	_, err := svc.ImportPositions(strings.NewReader("symbol,qty,price\nAAPL,10,150\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestImpExpService_ImportRejectsBadNumbers(t *testing.T) {
	svc := NewImpExpService(nil)

	_, err := svc.ImportPositions(strings.NewReader("ticker,quantity,avg_price\nAAPL,ten,150\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")

	_, err = svc.ImportPositions(strings.NewReader("ticker,quantity,avg_price\nAAPL,10,cheap\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avg_price")
}

func TestImpExpService_ImportRejectsRaggedRows(t *testing.T) {
	svc := NewImpExpService(nil)

	_, err := svc.ImportPositions(strings.NewReader("ticker,quantity,avg_price\nAAPL,10\n"))
	require.Error(t, err)
}

func TestImpExpService_ExportImportRoundTrip(t *testing.T) {
	svc := NewImpExpService(nil)

	positions := []models.Position{
		{Ticker: "AAPL", Quantity: dec("10"), AvgPrice: dec("150.25")},
		{Ticker: "TCS.NS", Quantity: dec("5.5"), AvgPrice: dec("3200")},
	}

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPositions(&buf, positions))

	got, err := svc.ImportPositions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range positions {
		assert.Equal(t, positions[i].Ticker, got[i].Ticker)
		assert.True(t, positions[i].Quantity.Equal(got[i].Quantity))
		assert.True(t, positions[i].AvgPrice.Equal(got[i].AvgPrice))
	}
}

func TestImpExpService_ExportEmptyWritesHeaderOnly(t *testing.T) {
	svc := NewImpExpService(nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPositions(&buf, nil))
	assert.Equal(t, "ticker,quantity,avg_price\n", buf.String())
}
