// Package async runs best-effort side work (notification emails) detached
// from the request that triggered it. Failures are logged, never surfaced:
// by the time these tasks run the primary write has already committed.
package async

import (
	"context"
	"log/slog"
	"time"
)

type Dispatcher interface {
	Dispatch(name string, fn func(ctx context.Context) error)
}

type GoroutineDispatcher struct {
	timeout time.Duration
}

func NewGoroutineDispatcher() Dispatcher {
	return &GoroutineDispatcher{timeout: 30 * time.Second}
}

func (d *GoroutineDispatcher) Dispatch(name string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			slog.Error("background task failed", "task", name, "error", err)
		}
	}()
}

// SyncDispatcher runs tasks inline. Test use only.
type SyncDispatcher struct{}

func NewSyncDispatcher() Dispatcher {
	return &SyncDispatcher{}
}

func (d *SyncDispatcher) Dispatch(name string, fn func(ctx context.Context) error) {
	if err := fn(context.Background()); err != nil {
		slog.Error("background task failed", "task", name, "error", err)
	}
}
