package diag

import (
	"context"
	"sync"
	"time"

	"smart-life-guard/internal/model"
)

// EventKind classifies run progress notifications.
type EventKind string

const (
	EventRunStarted     EventKind = "run_started"
	EventCheckStarted   EventKind = "check_started"
	EventCheckCompleted EventKind = "check_completed"
	EventRunCompleted   EventKind = "run_completed"
	EventRunCancelled   EventKind = "run_cancelled"
)

// Event is one progress notification. Progress is (completed/total)*100.
type Event struct {
	Kind     EventKind `json:"kind"`
	DeviceID string    `json:"device_id"`
	Check    string    `json:"check,omitempty"`
	Item     *Item     `json:"item,omitempty"`
	Progress float64   `json:"progress"`
	Summary  *Summary  `json:"summary,omitempty"`
}

// Snapshot is the externally visible run state.
type Snapshot struct {
	DeviceID     string   `json:"device_id"`
	State        RunState `json:"state"`
	Items        []Item   `json:"items"`
	Progress     float64  `json:"progress"`
	CurrentCheck string   `json:"current_check,omitempty"`
	Summary      *Summary `json:"summary,omitempty"`
}

// Runner executes the diagnostic sequence for one device. Checks run one at
// a time; item i reaches a terminal state before item i+1 starts. A runner
// supports repeated runs but never concurrent ones.
type Runner struct {
	deviceID string
	checks   []Check
	delay    time.Duration
	sched    Scheduler
	outcomes OutcomeSource
	onEvent  func(Event)

	mu       sync.Mutex
	state    RunState
	items    []Item
	progress float64
	current  string
	summary  *Summary
}

func NewRunner(deviceID string, checks []Check, delay time.Duration, sched Scheduler, outcomes OutcomeSource, onEvent func(Event)) *Runner {
	if onEvent == nil {
		onEvent = func(Event) {}
	}

	return &Runner{
		deviceID: deviceID,
		checks:   checks,
		delay:    delay,
		sched:    sched,
		outcomes: outcomes,
		onEvent:  onEvent,
		state:    RunIdle,
		items:    freshItems(checks),
	}
}

func freshItems(checks []Check) []Item {
	items := make([]Item, len(checks))
	for i, check := range checks {
		items[i] = Item{Name: check.Name, Description: check.Description, Status: StatusChecking}
	}
	return items
}

// Run executes the full sequence, blocking until completion or
// cancellation. A second Run while one is in progress is rejected with
// ErrRunInProgress. Each new run resets every item and the progress figure.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	r.mu.Lock()
	if r.state == RunRunning {
		r.mu.Unlock()
		return nil, model.ErrRunInProgress
	}
	r.state = RunRunning
	r.items = freshItems(r.checks)
	r.progress = 0
	r.current = ""
	r.summary = nil
	r.mu.Unlock()

	r.onEvent(Event{Kind: EventRunStarted, DeviceID: r.deviceID})

	total := len(r.checks)
	for i, check := range r.checks {
		r.mu.Lock()
		r.current = check.Name
		r.mu.Unlock()
		r.onEvent(Event{Kind: EventCheckStarted, DeviceID: r.deviceID, Check: check.Name, Progress: r.Progress()})

		if err := r.sched.Sleep(ctx, r.delay); err != nil {
			// Cancelled mid-sequence: remaining items stay checking and no
			// further state is written.
			r.mu.Lock()
			r.state = RunIdle
			r.current = ""
			r.mu.Unlock()
			r.onEvent(Event{Kind: EventRunCancelled, DeviceID: r.deviceID, Check: check.Name})
			return nil, err
		}

		outcome := r.outcomes.Outcome(check)

		r.mu.Lock()
		r.items[i].Status = outcome.Status
		r.items[i].Value = outcome.Value
		r.progress = float64(i+1) / float64(total) * 100
		completed := r.items[i]
		progress := r.progress
		r.mu.Unlock()

		r.onEvent(Event{
			Kind:     EventCheckCompleted,
			DeviceID: r.deviceID,
			Check:    check.Name,
			Item:     &completed,
			Progress: progress,
		})
	}

	summary := r.finish()
	r.onEvent(Event{Kind: EventRunCompleted, DeviceID: r.deviceID, Progress: 100, Summary: summary})
	return summary, nil
}

func (r *Runner) finish() *Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	var success, warning, failed int
	for _, item := range r.items {
		switch item.Status {
		case StatusSuccess:
			success++
		case StatusWarning:
			warning++
		case StatusError:
			failed++
		}
	}

	health := 0
	if len(r.items) > 0 {
		health = int(float64(success) / float64(len(r.items)) * 100)
	}

	r.summary = &Summary{OverallHealth: health, WarningCount: warning, ErrorCount: failed}
	r.state = RunComplete
	r.current = ""
	return r.summary
}

// Running reports whether a run is in progress.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == RunRunning
}

// Progress returns the current percentage.
func (r *Runner) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress
}

// Snapshot returns a copy of the full run state.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]Item, len(r.items))
	copy(items, r.items)

	var summary *Summary
	if r.summary != nil {
		copied := *r.summary
		summary = &copied
	}

	return Snapshot{
		DeviceID:     r.deviceID,
		State:        r.state,
		Items:        items,
		Progress:     r.progress,
		CurrentCheck: r.current,
		Summary:      summary,
	}
}
