package diag

import (
	"context"
	"time"
)

// Scheduler abstracts the per-step delay so the run loop stays testable
// without wall-clock waits. Sleep returns ctx.Err() when cancelled early.
type Scheduler interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerScheduler sleeps on a real timer.
type TimerScheduler struct{}

func (TimerScheduler) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
