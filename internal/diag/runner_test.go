package diag

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-life-guard/internal/model"
)

// instantScheduler completes every sleep immediately unless the context is
// already cancelled.
type instantScheduler struct{}

func (instantScheduler) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// cancellingScheduler cancels the run during the Nth sleep.
type cancellingScheduler struct {
	cancelOn int
	cancel   context.CancelFunc
	calls    int
}

func (s *cancellingScheduler) Sleep(ctx context.Context, _ time.Duration) error {
	s.calls++
	if s.calls == s.cancelOn {
		s.cancel()
	}
	return ctx.Err()
}

// scriptedSource replays a fixed status sequence.
type scriptedSource struct {
	statuses []Status
	next     int
}

func (s *scriptedSource) Outcome(Check) Outcome {
	status := StatusSuccess
	if s.next < len(s.statuses) {
		status = s.statuses[s.next]
	}
	s.next++
	return Outcome{Status: status, Value: "25%"}
}

func allSuccess() *scriptedSource {
	return &scriptedSource{statuses: []Status{StatusSuccess, StatusSuccess, StatusSuccess, StatusSuccess, StatusSuccess}}
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	t.Run("completes every check in order", func(t *testing.T) {
		var events []Event
		runner := NewRunner("SLG-001", DefaultChecks(), time.Millisecond, instantScheduler{}, allSuccess(), func(e Event) {
			events = append(events, e)
		})

		summary, err := runner.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, 100, summary.OverallHealth)
		require.Zero(t, summary.WarningCount)
		require.Zero(t, summary.ErrorCount)

		snapshot := runner.Snapshot()
		require.Equal(t, RunComplete, snapshot.State)
		require.Len(t, snapshot.Items, 5)
		for _, item := range snapshot.Items {
			require.True(t, item.Status.Terminal())
			require.Equal(t, StatusSuccess, item.Status)
		}

		// check i+1 never starts before check i completes
		lastCompleted := -1
		checks := DefaultChecks()
		for _, e := range events {
			switch e.Kind {
			case EventCheckStarted:
				idx := checkIndex(t, checks, e.Check)
				require.Equal(t, lastCompleted+1, idx)
			case EventCheckCompleted:
				lastCompleted = checkIndex(t, checks, e.Check)
			}
		}
		require.Equal(t, 4, lastCompleted)
	})

	t.Run("progress advances by completed over total", func(t *testing.T) {
		var progress []float64
		runner := NewRunner("SLG-001", DefaultChecks(), time.Millisecond, instantScheduler{}, allSuccess(), func(e Event) {
			if e.Kind == EventCheckCompleted {
				progress = append(progress, e.Progress)
			}
		})

		_, err := runner.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, []float64{20, 40, 60, 80, 100}, progress)
	})

	t.Run("summary counts warnings and errors", func(t *testing.T) {
		source := &scriptedSource{statuses: []Status{StatusSuccess, StatusWarning, StatusError, StatusSuccess, StatusWarning}}
		runner := NewRunner("SLG-001", DefaultChecks(), time.Millisecond, instantScheduler{}, source, nil)

		summary, err := runner.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, 40, summary.OverallHealth)
		require.Equal(t, 2, summary.WarningCount)
		require.Equal(t, 1, summary.ErrorCount)
	})

	t.Run("cancellation freezes remaining items as checking", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		sched := &cancellingScheduler{cancelOn: 3, cancel: cancel}

		var cancelled bool
		runner := NewRunner("SLG-001", DefaultChecks(), time.Millisecond, sched, allSuccess(), func(e Event) {
			if e.Kind == EventRunCancelled {
				cancelled = true
			}
		})

		_, err := runner.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.True(t, cancelled)

		snapshot := runner.Snapshot()
		require.Equal(t, RunIdle, snapshot.State)
		require.Equal(t, StatusSuccess, snapshot.Items[0].Status)
		require.Equal(t, StatusSuccess, snapshot.Items[1].Status)
		require.Equal(t, StatusChecking, snapshot.Items[2].Status)
		require.Equal(t, StatusChecking, snapshot.Items[3].Status)
		require.Equal(t, StatusChecking, snapshot.Items[4].Status)
		require.Nil(t, snapshot.Summary)
	})

	t.Run("a new run resets items and progress", func(t *testing.T) {
		runner := NewRunner("SLG-001", DefaultChecks(), time.Millisecond, instantScheduler{}, allSuccess(), nil)

		_, err := runner.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, float64(100), runner.Progress())

		var sawReset bool
		runner.onEvent = func(e Event) {
			if e.Kind == EventCheckStarted && e.Check == DefaultChecks()[0].Name {
				sawReset = runner.Progress() == 0
			}
		}

		_, err = runner.Run(context.Background())
		require.NoError(t, err)
		require.True(t, sawReset)
		require.Equal(t, RunComplete, runner.Snapshot().State)
	})

	t.Run("concurrent run is rejected", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		runner := NewRunner("SLG-001", DefaultChecks(), time.Millisecond, blockingScheduler{started: started, release: release}, allSuccess(), nil)

		done := make(chan error, 1)
		go func() {
			_, err := runner.Run(context.Background())
			done <- err
		}()

		<-started
		require.True(t, runner.Running())
		_, err := runner.Run(context.Background())
		require.ErrorIs(t, err, model.ErrRunInProgress)

		close(release)
		require.NoError(t, <-done)
	})
}

// blockingScheduler parks the first sleep until released, then completes
// instantly.
type blockingScheduler struct {
	started chan struct{}
	release chan struct{}
}

func (s blockingScheduler) Sleep(ctx context.Context, _ time.Duration) error {
	select {
	case <-s.started:
	default:
		close(s.started)
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return ctx.Err()
}

func checkIndex(t *testing.T, checks []Check, name string) int {
	t.Helper()
	for i, check := range checks {
		if check.Name == name {
			return i
		}
	}
	t.Fatalf("unknown check %q", name)
	return -1
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	require.False(t, StatusChecking.Terminal())
	require.True(t, StatusSuccess.Terminal())
	require.True(t, StatusWarning.Terminal())
	require.True(t, StatusError.Terminal())
}
