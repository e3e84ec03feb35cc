// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

// NewSyncWorker runs the periodic sync job for the lifetime of the worker.
func NewSyncWorker(job service.ClientSyncJob, cfg config.ClientWorkers, logger *logger.Logger) Worker {
	return &syncWorker{
		job:      job,
		interval: cfg.SyncInterval,
		logger:   logger,
	}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")

	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()

	w.logger.Info().Msg("sync worker stopped")
}
