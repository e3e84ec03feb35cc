// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int64
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block or panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_Concurrent(t *testing.T) {
	// each worker waits for the other, so sequential execution would deadlock
	var started sync.WaitGroup
	started.Add(2)

	newBarrierWorker := func() Worker {
		return workerFunc(func(context.Context) {
			started.Done()
			started.Wait()
		})
	}

	done := make(chan struct{})
	go func() {
		NewWorkers(newBarrierWorker(), newBarrierWorker()).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not run concurrently")
	}
}

func TestWorkers_Run_WaitsForCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var stopped atomic.Bool
	w := workerFunc(func(ctx context.Context) {
		<-ctx.Done()
		stopped.Store(true)
	})

	done := make(chan struct{})
	go func() {
		NewWorkers(w).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned before the context was cancelled")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	<-done

	if !stopped.Load() {
		t.Error("expected worker to observe cancellation")
	}
}

// workerFunc adapts a function to the Worker interface.
type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) {
	f(ctx)
}
