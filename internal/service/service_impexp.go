// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/models"
)

var csvHeader = []string{"ticker", "quantity", "avg_price"}

type impExpService struct {
	log *logger.Logger
}

func NewImpExpService(log *logger.Logger) ImpExpService {
	if log == nil {
		log = logger.Nop()
	}
	return &impExpService{log: log}
}

func (s *impExpService) ImportPositions(r io.Reader) ([]models.Position, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("unexpected csv header %v, want %v", header, csvHeader)
		}
	}

	var positions []models.Position
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse quantity %q: %w", line, row[1], err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse avg_price %q: %w", line, row[2], err)
		}

		positions = append(positions, models.Position{
			Ticker:   strings.ToUpper(strings.TrimSpace(row[0])),
			Quantity: qty,
			AvgPrice: price,
		})
	}

	s.log.Debug().Int("positions", len(positions)).Msg("positions imported from csv")
	return positions, nil
}

func (s *impExpService) ExportPositions(w io.Writer, positions []models.Position) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, pos := range positions {
		row := []string{pos.Ticker, pos.Quantity.String(), pos.AvgPrice.String()}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", pos.Ticker, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
