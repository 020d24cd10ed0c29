// Package availability debounces advisory slot checks. Rapid date/time
// changes must issue only the last query, and a pending check is superseded
// (not merely delayed) by a newer input change.
package availability

import (
	"context"
	"sync"
	"time"

	"github.com/cermartin/sr/internal/usecase/queries"
)

type State string

const (
	StateIdle          State = "idle"
	StateChecking      State = "checking"
	StateAvailable     State = "available"
	StateUnavailable   State = "unavailable"
	StateIndeterminate State = "indeterminate"
)

// DefaultDelay is how long input must stay still before a query is issued.
const DefaultDelay = 400 * time.Millisecond

// Watcher tracks one pair of date/time inputs. Observe supersedes any
// pending or in-flight check; the notify callback only ever receives
// results for the current inputs. A failed query reports indeterminate,
// never a false "available".
type Watcher struct {
	checks queries.AvailabilityQueries
	delay  time.Duration
	notify func(State)

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

// NewWatcher reports state transitions through notify. The callback runs on
// the watcher's timer goroutine and must not call back into the watcher.
func NewWatcher(checks queries.AvailabilityQueries, delay time.Duration, notify func(State)) *Watcher {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Watcher{checks: checks, delay: delay, notify: notify}
}

// Observe registers a new date/time input pair and schedules a check after
// the debounce delay.
func (w *Watcher) Observe(date, startTime string) {
	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.supersedeLocked()
	w.timer = time.AfterFunc(w.delay, func() {
		w.run(seq, date, startTime)
	})
	w.mu.Unlock()

	w.notify(StateChecking)
}

// Stop cancels any pending or in-flight check. No notification follows.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	w.supersedeLocked()
}

func (w *Watcher) run(seq uint64, date, startTime string) {
	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.mu.Unlock()
	defer cancel()

	result, err := w.checks.Check(ctx, date, startTime)

	w.mu.Lock()
	stale := seq != w.seq
	w.mu.Unlock()
	if stale {
		return
	}

	switch {
	case err != nil:
		w.notify(StateIndeterminate)
	case result.Available:
		w.notify(StateAvailable)
	default:
		w.notify(StateUnavailable)
	}
}

func (w *Watcher) supersedeLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}
