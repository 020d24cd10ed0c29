//go:build unit

package availability_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/usecase/availability"
	"github.com/cermartin/sr/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	mu        sync.Mutex
	calls     []string
	available bool
	err       error
}

func (s *stubChecker) Check(_ context.Context, date, startTime string) (*queries.Availability, error) {
	s.mu.Lock()
	s.calls = append(s.calls, date+" "+startTime)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &queries.Availability{Available: s.available}, nil
}

func (s *stubChecker) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubChecker) lastCall() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return ""
	}
	return s.calls[len(s.calls)-1]
}

type stateRecorder struct {
	mu     sync.Mutex
	states []availability.State
	done   chan struct{}
}

func newStateRecorder() *stateRecorder {
	return &stateRecorder{done: make(chan struct{}, 16)}
}

func (r *stateRecorder) record(s availability.State) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *stateRecorder) waitFor(t *testing.T, terminal availability.State) []availability.State {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-r.done:
			r.mu.Lock()
			states := append([]availability.State(nil), r.states...)
			r.mu.Unlock()
			if len(states) > 0 && states[len(states)-1] == terminal {
				return states
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state %q", terminal)
		}
	}
}

func TestWatcherReportsAvailable(t *testing.T) {
	checker := &stubChecker{available: true}
	rec := newStateRecorder()
	w := availability.NewWatcher(checker, 10*time.Millisecond, rec.record)
	defer w.Stop()

	w.Observe("2026-09-12", "08:30")

	states := rec.waitFor(t, availability.StateAvailable)
	assert.Equal(t, availability.StateChecking, states[0])
	assert.Equal(t, 1, checker.callCount())
}

func TestWatcherReportsUnavailable(t *testing.T) {
	checker := &stubChecker{available: false}
	rec := newStateRecorder()
	w := availability.NewWatcher(checker, 10*time.Millisecond, rec.record)
	defer w.Stop()

	w.Observe("2026-09-12", "08:30")

	rec.waitFor(t, availability.StateUnavailable)
}

func TestWatcherFailureIsIndeterminateNotAvailable(t *testing.T) {
	checker := &stubChecker{err: errs.ErrProviderFailure}
	rec := newStateRecorder()
	w := availability.NewWatcher(checker, 10*time.Millisecond, rec.record)
	defer w.Stop()

	w.Observe("2026-09-12", "08:30")

	states := rec.waitFor(t, availability.StateIndeterminate)
	assert.NotContains(t, states, availability.StateAvailable)
}

func TestRapidChangesIssueOnlyLastQuery(t *testing.T) {
	checker := &stubChecker{available: true}
	rec := newStateRecorder()
	w := availability.NewWatcher(checker, 50*time.Millisecond, rec.record)
	defer w.Stop()

	w.Observe("2026-09-12", "07:30")
	w.Observe("2026-09-12", "08:00")
	w.Observe("2026-09-12", "08:30")

	rec.waitFor(t, availability.StateAvailable)

	// Earlier observations were superseded before their delay elapsed.
	assert.Equal(t, 1, checker.callCount())
	assert.Equal(t, "2026-09-12 08:30", checker.lastCall())
}

func TestStopSuppressesPendingCheck(t *testing.T) {
	checker := &stubChecker{available: true}
	rec := newStateRecorder()
	w := availability.NewWatcher(checker, 30*time.Millisecond, rec.record)

	w.Observe("2026-09-12", "08:30")
	w.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, checker.callCount())
}
