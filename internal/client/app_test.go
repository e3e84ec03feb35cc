// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type spyCloser struct {
	closed int
	err    error
}

func (c *spyCloser) Close() error {
	c.closed++
	return c.err
}

func newTestApp(t *testing.T, closer *spyCloser) (*app, *mock.MockSyncEngine, *mock.MockClientSyncJob) {
	t.Helper()
	ctrl := gomock.NewController(t)
	engine := mock.NewMockSyncEngine(ctrl)
	job := mock.NewMockClientSyncJob(ctrl)

	c, err := NewApp(
		&service.ClientServices{Sync: engine, SyncJob: job},
		closer,
		config.ClientWorkers{SyncInterval: time.Minute},
		logger.Nop(),
	)
	require.NoError(t, err)

	return c.(*app), engine, job
}

func TestNewApp_NoServices(t *testing.T) {
	tests := []struct {
		name     string
		services *service.ClientServices
	}{
		{name: "nil", services: nil},
		{name: "empty", services: &service.ClientServices{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApp(tt.services, nil, config.ClientWorkers{}, logger.Nop())
			assert.ErrorIs(t, err, errNoServices)
		})
	}
}

func TestApp_Run_SyncsThenRunsWorkers(t *testing.T) {
	closer := &spyCloser{}
	a, engine, job := newTestApp(t, closer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		engine.EXPECT().Sync(gomock.Any()).Return(true, nil),
		job.EXPECT().Start(gomock.Any(), time.Minute).Do(func(context.Context, time.Duration) { cancel() }),
		job.EXPECT().Stop(),
	)

	require.NoError(t, a.run(ctx))
	assert.Equal(t, 1, closer.closed)
}

func TestApp_Run_InitialSyncErrorIsNotFatal(t *testing.T) {
	closer := &spyCloser{err: assert.AnError}
	a, engine, job := newTestApp(t, closer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine.EXPECT().Sync(gomock.Any()).Return(false, assert.AnError)
	job.EXPECT().Start(gomock.Any(), time.Minute)
	job.EXPECT().Stop()

	assert.NoError(t, a.run(ctx))
	assert.Equal(t, 1, closer.closed)
}
