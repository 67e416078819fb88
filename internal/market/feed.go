// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

// Package market generates simulated quote streams for the dashboard.
// Prices follow a seeded random walk, so a fixed seed reproduces the
// exact same feed in demos and tests.
package market

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradedeck-app/tradedeck/internal/config"
	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/models"
)

// maxStepPct bounds a single tick's move to ±1% of the last price.
const maxStepPct = 0.01

// TickFunc receives a fresh snapshot of all tracked quotes after every
// feed tick. It is called from the feed goroutine.
type TickFunc func(quotes map[string]models.Quote)

// Feed is the simulated market data worker. Track the tickers of
// interest, then Start; the feed updates every tracked price once per
// tick interval and invokes the OnTick callback with a snapshot.
type Feed struct {
	interval time.Duration
	rng      *rand.Rand
	log      *logger.Logger
	onTick   TickFunc

	mu     sync.RWMutex
	quotes map[string]models.Quote

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeed builds a stopped feed from cfg. A zero cfg.Seed selects a
// time-based seed; the tick interval defaults to 2 seconds.
func NewFeed(cfg config.Market, log *logger.Logger) *Feed {
	if log == nil {
		log = logger.Nop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	return &Feed{
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
		quotes:   make(map[string]models.Quote),
	}
}

// SetOnTick registers the per-tick callback. Must be called before Start.
func (f *Feed) SetOnTick(fn TickFunc) {
	f.onTick = fn
}

// Track starts simulating ticker from the given starting price. Tracking
// an already-tracked ticker is a no-op, so callers can re-track the whole
// watchlist after every change.
func (f *Feed) Track(ticker string, start decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.quotes[ticker]; ok {
		return
	}
	if !start.IsPositive() {
		start = decimal.NewFromInt(100)
	}
	f.quotes[ticker] = models.Quote{
		Ticker:    ticker,
		Last:      start,
		PrevClose: start,
		At:        time.Now(),
	}
}

// Snapshot returns a copy of the current quotes keyed by ticker.
func (f *Feed) Snapshot() map[string]models.Quote {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]models.Quote, len(f.quotes))
	for k, v := range f.quotes {
		out[k] = v
	}
	return out
}

// Start launches the feed goroutine. Any previously running feed
// goroutine is stopped first.
func (f *Feed) Start(ctx context.Context) {
	f.Stop()

	f.jobMu.Lock()
	feedCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.wg.Add(1)
	f.jobMu.Unlock()

	go func() {
		defer f.wg.Done()

		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		f.log.Debug().Dur("interval", f.interval).Msg("market feed started")

		for {
			select {
			case <-feedCtx.Done():
				f.log.Debug().Msg("market feed stopped")
				return
			case <-ticker.C:
				f.step()
				if f.onTick != nil {
					f.onTick(f.Snapshot())
				}
			}
		}
	}()
}

// Stop cancels the feed goroutine and blocks until it has exited. Safe to
// call when the feed is not running.
func (f *Feed) Stop() {
	f.jobMu.Lock()
	cancel := f.cancel
	f.cancel = nil
	f.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	f.wg.Wait()
}

// step advances every tracked price by one random-walk increment.
func (f *Feed) step() {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Walk tickers in a stable order so a fixed seed reproduces the
	// exact same price path regardless of map iteration order.
	tickers := make([]string, 0, len(f.quotes))
	for t := range f.quotes {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	now := time.Now()
	for _, ticker := range tickers {
		q := f.quotes[ticker]
		pct := (f.rng.Float64()*2 - 1) * maxStepPct
		next := q.Last.Mul(decimal.NewFromFloat(1 + pct)).Round(4)
		if !next.IsPositive() {
			next = q.Last
		}

		f.quotes[ticker] = models.Quote{
			Ticker:    ticker,
			Last:      next,
			PrevClose: q.Last,
			At:        now,
		}
	}
}
