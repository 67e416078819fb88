// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package service

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/models"
)

// PositionValuation is one position priced against the latest quote.
type PositionValuation struct {
	Position    models.Position
	LastPrice   decimal.Decimal
	MarketValue decimal.Decimal
	CostBasis   decimal.Decimal
	PnL         decimal.Decimal
	HasQuote    bool
}

// PortfolioValuation aggregates the priced positions of a record.
type PortfolioValuation struct {
	Positions  []PositionValuation
	TotalValue decimal.Decimal
	TotalCost  decimal.Decimal
	TotalPnL   decimal.Decimal
	Currency   string
}

// FormatMoney renders amount in the valuation's currency using its minor
// unit, e.g. "$1,234.56" for USD.
func (v PortfolioValuation) FormatMoney(amount decimal.Decimal) string {
	cur := money.GetCurrency(v.Currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + v.Currency
	}

	factor, err := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	if err != nil {
		// PowInt32 only fails on 0^negative; Fraction is never negative.
		// Fall back to the plain rendering rather than panic on a bad
		// currency table entry.
		return amount.StringFixed(2) + " " + v.Currency
	}
	minor := amount.Mul(factor).Round(0)
	return money.New(minor.IntPart(), v.Currency).Display()
}

type portfolioService struct {
	log *logger.Logger
}

func NewPortfolioService(log *logger.Logger) PortfolioService {
	if log == nil {
		log = logger.Nop()
	}
	return &portfolioService{log: log}
}

func (s *portfolioService) Valuation(rec models.Record, quotes map[string]models.Quote) PortfolioValuation {
	valuation := PortfolioValuation{
		Positions: make([]PositionValuation, 0, len(rec.Portfolio)),
		Currency:  rec.Settings.Currency,
	}

	for _, pos := range rec.Portfolio {
		pv := PositionValuation{
			Position:  pos,
			CostBasis: pos.CostBasis(),
		}

		if q, ok := quotes[pos.Ticker]; ok {
			pv.HasQuote = true
			pv.LastPrice = q.Last
			pv.MarketValue = pos.Quantity.Mul(q.Last)
		} else {
			// No quote yet: carry the position at cost so totals stay
			// meaningful before the feed warms up.
			pv.LastPrice = pos.AvgPrice
			pv.MarketValue = pv.CostBasis
		}
		pv.PnL = pv.MarketValue.Sub(pv.CostBasis)

		valuation.Positions = append(valuation.Positions, pv)
		valuation.TotalValue = valuation.TotalValue.Add(pv.MarketValue)
		valuation.TotalCost = valuation.TotalCost.Add(pv.CostBasis)
	}

	valuation.TotalPnL = valuation.TotalValue.Sub(valuation.TotalCost)
	return valuation
}

func (s *portfolioService) NewAlert(rec *models.Record, ticker string, threshold string, direction models.AlertDirection) (models.Alert, error) {
	price, err := decimal.NewFromString(threshold)
	if err != nil {
		return models.Alert{}, fmt.Errorf("%w: %q", ErrInvalidThreshold, threshold)
	}
	if !price.IsPositive() {
		return models.Alert{}, fmt.Errorf("%w: %q must be positive", ErrInvalidThreshold, threshold)
	}
	if direction != models.AlertAbove && direction != models.AlertBelow {
		return models.Alert{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidThreshold, direction)
	}

	now := time.Now().UTC()
	alert := models.Alert{
		ID:        uuid.NewString(),
		Ticker:    ticker,
		Threshold: price,
		Direction: direction,
		CreatedAt: &now,
	}
	rec.Alerts = append(rec.Alerts, alert)

	s.log.Debug().Str("ticker", ticker).Str("threshold", price.String()).Msg("alert added")
	return alert, nil
}

func (s *portfolioService) CheckAlerts(rec *models.Record, quotes map[string]models.Quote) []models.Alert {
	var fired []models.Alert

	for i := range rec.Alerts {
		a := &rec.Alerts[i]
		if a.Triggered {
			continue
		}

		q, ok := quotes[a.Ticker]
		if !ok {
			continue
		}

		crossed := false
		switch a.Direction {
		case models.AlertAbove:
			crossed = q.Last.GreaterThanOrEqual(a.Threshold)
		case models.AlertBelow:
			crossed = q.Last.LessThanOrEqual(a.Threshold)
		}

		if crossed {
			a.Triggered = true
			fired = append(fired, *a)
			s.log.Info().Str("ticker", a.Ticker).Str("last", q.Last.String()).Msg("price alert fired")
		}
	}

	return fired
}
