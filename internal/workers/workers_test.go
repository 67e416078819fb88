// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package workers

import (
	"context"
	"testing"
)

// mockWorker tracks Start/Stop calls and records its id into shared logs.
type mockWorker struct {
	id         int
	startCount int
	stopCount  int
	startLog   *[]int
	stopLog    *[]int
}

func (m *mockWorker) Start(_ context.Context) {
	m.startCount++
	if m.startLog != nil {
		*m.startLog = append(*m.startLog, m.id)
	}
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.stopLog != nil {
		*m.stopLog = append(*m.stopLog, m.id)
	}
}

func TestWorkers_StartStop_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	ws.Start(context.Background())
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.startCount != 1 || w.stopCount != 1 {
			t.Errorf("worker[%d]: start=%d stop=%d, want 1/1", i, w.startCount, w.stopCount)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()

	// Should not panic with no workers registered
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_StopReversesStartOrder(t *testing.T) {
	startLog := []int{}
	stopLog := []int{}

	ws := New(
		&mockWorker{id: 1, startLog: &startLog, stopLog: &stopLog},
		&mockWorker{id: 2, startLog: &startLog, stopLog: &stopLog},
		&mockWorker{id: 3, startLog: &startLog, stopLog: &stopLog},
	)
	ws.Start(context.Background())
	ws.Stop()

	wantStart := []int{1, 2, 3}
	wantStop := []int{3, 2, 1}
	for i := range wantStart {
		if startLog[i] != wantStart[i] {
			t.Errorf("startLog[%d]=%d, want %d", i, startLog[i], wantStart[i])
		}
		if stopLog[i] != wantStop[i] {
			t.Errorf("stopLog[%d]=%d, want %d", i, stopLog[i], wantStop[i])
		}
	}
}
