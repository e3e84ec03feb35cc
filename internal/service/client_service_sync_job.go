// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// defaultSyncInterval is used when Start is given a non-positive interval.
const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	engine SyncEngine
	logger *logger.Logger

	// mu serializes Start and Stop, so at most one loop runs at a time.
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls engine.Sync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(engine SyncEngine, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{engine: engine, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls Sync every interval. A failed
// pass is logged and retried on the next tick. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stop()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Go(func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				changed, err := j.engine.Sync(jobCtx)
				if err != nil {
					j.logger.Err(err).Str("func", "clientSyncJob.Start").Msg("periodic sync failed")
					continue
				}
				if changed {
					j.logger.Debug().Msg("periodic sync applied changes")
				}
			}
		}
	})
}

// Stop implements ClientSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stop()
}

// stop requires j.mu.
func (j *clientSyncJob) stop() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
