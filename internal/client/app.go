// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

var errNoServices = errors.New("client services are not initialized")

type app struct {
	services *service.ClientServices
	storages io.Closer
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp builds the client runtime. storages is closed when Run returns.
func NewApp(services *service.ClientServices, storages io.Closer, cfg config.ClientWorkers, logger *logger.Logger) (Client, error) {
	if services == nil || services.Sync == nil || services.SyncJob == nil {
		return nil, errNoServices
	}

	return &app{
		services: services,
		storages: storages,
		workers:  workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg, logger)),
		logger:   logger,
	}, nil
}

func (a *app) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *app) run(ctx context.Context) error {
	defer a.close()

	ctx = a.logger.WithContext(ctx)

	changed, err := a.services.Sync.Sync(ctx)
	if err != nil {
		// the cache stays usable; the worker retries on the next tick
		a.logger.Err(err).Msg("initial sync failed")
	} else {
		a.logger.Info().Bool("changed", changed).Msg("initial sync finished")
	}

	a.workers.Run(ctx)
	a.logger.Info().Msg("client stopped gracefully")

	return nil
}

func (a *app) close() {
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local storages")
	}
}
