// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package market

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradedeck-app/tradedeck/internal/config"
	"github.com/tradedeck-app/tradedeck/models"
)

func newTestFeed(seed int64) *Feed {
	return NewFeed(config.Market{Seed: seed, TickInterval: 10 * time.Millisecond}, nil)
}

func TestFeed_TrackSetsStartingQuote(t *testing.T) {
	f := newTestFeed(1)
	f.Track("AAPL", decimal.NewFromInt(150))

	snap := f.Snapshot()
	require.Contains(t, snap, "AAPL")
	assert.True(t, snap["AAPL"].Last.Equal(decimal.NewFromInt(150)))
	assert.True(t, snap["AAPL"].PrevClose.Equal(decimal.NewFromInt(150)))
}

func TestFeed_TrackTwiceKeepsPrice(t *testing.T) {
	f := newTestFeed(1)
	f.Track("AAPL", decimal.NewFromInt(150))
	f.step()
	moved := f.Snapshot()["AAPL"].Last

	// Re-tracking after a step must not reset the walked price.
	f.Track("AAPL", decimal.NewFromInt(150))
	assert.True(t, f.Snapshot()["AAPL"].Last.Equal(moved))
}

func TestFeed_TrackNonPositiveStartDefaults(t *testing.T) {
	f := newTestFeed(1)
	f.Track("AAPL", decimal.Zero)

	assert.True(t, f.Snapshot()["AAPL"].Last.Equal(decimal.NewFromInt(100)))
}

func TestFeed_StepMovesWithinBounds(t *testing.T) {
	f := newTestFeed(42)
	f.Track("AAPL", decimal.NewFromInt(100))

	for i := 0; i < 500; i++ {
		before := f.Snapshot()["AAPL"].Last
		f.step()
		q := f.Snapshot()["AAPL"]

		assert.True(t, q.Last.IsPositive(), "price must stay positive")
		assert.True(t, q.PrevClose.Equal(before), "PrevClose must carry the pre-step price")

		move := q.Last.Sub(before).Abs()
		limit := before.Mul(decimal.NewFromFloat(maxStepPct)).Add(decimal.NewFromFloat(0.0001))
		assert.True(t, move.LessThanOrEqual(limit), "step %d moved %s from %s", i, move, before)
	}
}

func TestFeed_FixedSeedReproducesPath(t *testing.T) {
	a := newTestFeed(7)
	b := newTestFeed(7)
	for _, f := range []*Feed{a, b} {
		f.Track("AAPL", decimal.NewFromInt(100))
		f.Track("TCS.NS", decimal.NewFromInt(3200))
	}

	for i := 0; i < 50; i++ {
		a.step()
		b.step()
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	assert.True(t, sa["AAPL"].Last.Equal(sb["AAPL"].Last))
	assert.True(t, sa["TCS.NS"].Last.Equal(sb["TCS.NS"].Last))
}

func TestFeed_StartInvokesOnTick(t *testing.T) {
	f := newTestFeed(1)
	f.Track("AAPL", decimal.NewFromInt(100))

	var ticks atomic.Int64
	var sawAAPL atomic.Bool
	f.SetOnTick(func(quotes map[string]models.Quote) {
		ticks.Add(1)
		if _, ok := quotes["AAPL"]; ok {
			sawAAPL.Store(true)
		}
	})

	f.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	f.Stop()

	assert.GreaterOrEqual(t, ticks.Load(), int64(3))
	assert.True(t, sawAAPL.Load())
}

func TestFeed_StopStopsTicking(t *testing.T) {
	f := newTestFeed(1)
	f.Track("AAPL", decimal.NewFromInt(100))

	var ticks atomic.Int64
	f.SetOnTick(func(map[string]models.Quote) { ticks.Add(1) })

	f.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	f.Stop()

	after := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestFeed_StopBeforeStartNoPanic(t *testing.T) {
	f := newTestFeed(1)
	assert.NotPanics(t, func() { f.Stop() })
}

func TestFeed_SnapshotIsACopy(t *testing.T) {
	f := newTestFeed(1)
	f.Track("AAPL", decimal.NewFromInt(100))

	snap := f.Snapshot()
	snap["AAPL"] = models.Quote{Ticker: "AAPL", Last: decimal.NewFromInt(1)}

	assert.True(t, f.Snapshot()["AAPL"].Last.Equal(decimal.NewFromInt(100)))
}
