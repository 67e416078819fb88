// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package service

import (
	"context"
	"sync"
	"time"

	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/models"
)

type autosaveJob struct {
	saver    VaultService
	log      *logger.Logger
	debounce time.Duration

	// triggers carries the latest mutated record; capacity 1 plus the
	// drain in Trigger coalesces bursts from the single UI goroutine.
	triggers chan models.Record

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutosaveJob creates an autosaveJob that calls saver.SaveNow once per
// quiet period of length debounce. The job is idle until Start is called.
func NewAutosaveJob(saver VaultService, debounce time.Duration, log *logger.Logger) AutosaveJob {
	if log == nil {
		log = logger.Nop()
	}
	return &autosaveJob{
		saver:    saver,
		log:      log,
		debounce: debounce,
		triggers: make(chan models.Record, 1),
	}
}

// Start implements AutosaveJob. It stops any previously running job, then
// launches a background goroutine that waits for triggers, arms the
// debounce timer, and saves the most recent record when the timer fires.
// The goroutine exits when ctx is cancelled or Stop is called, flushing
// any pending record first.
func (j *autosaveJob) Start(ctx context.Context) {
	if j.debounce <= 0 {
		j.debounce = 5 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		var pending *models.Record

		timer := time.NewTimer(j.debounce)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-jobCtx.Done():
				select {
				case rec := <-j.triggers:
					pending = &rec
				default:
				}
				if pending != nil {
					// Final flush: the job context is gone, but the last
					// mutation still has to reach disk.
					if err := j.saver.SaveNow(context.Background(), *pending); err != nil {
						j.log.Err(err).Msg("autosave flush on stop failed")
					}
				}
				return

			case rec := <-j.triggers:
				pending = &rec
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(j.debounce)

			case <-timer.C:
				if pending == nil {
					continue
				}
				if err := j.saver.SaveNow(jobCtx, *pending); err != nil {
					j.log.Err(err).Msg("autosave failed")
				}
				pending = nil
			}
		}
	}()
}

// Trigger implements AutosaveJob. It replaces any queued record with a
// deep copy of rec, so only the newest state is ever saved and the
// caller is free to keep mutating rec while the save goroutine
// serialises the snapshot. Callers follow the vault's single-threaded
// contract, so drain-then-send cannot race another Trigger.
func (j *autosaveJob) Trigger(rec models.Record) {
	select {
	case <-j.triggers:
	default:
	}
	j.triggers <- rec.Clone()
}

// Stop implements AutosaveJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited, flushing any
// pending save. Safe to call when the job is not running (no-op then).
func (j *autosaveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
