// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSyncWorker_Run_StartsAndStopsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	gomock.InOrder(
		job.EXPECT().Start(ctx, 30*time.Second),
		job.EXPECT().Stop(),
	)

	w := NewSyncWorker(job, config.ClientWorkers{SyncInterval: 30 * time.Second}, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sync worker did not stop after cancellation")
	}
	assert.Error(t, ctx.Err())
}
