package upload

import (
	"context"
	"sync"
	"time"

	"github.com/rs/xid"
)

// State is the lifecycle of a simulated upload task.
type State string

const (
	StateRunning  State = "running"
	StateDone     State = "done"
	StateFailed   State = "failed"
	StateCanceled State = "canceled"
)

// Terminal reports whether s is an end state.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed || s == StateCanceled
}

// Progress is a single event in a task's finite progress sequence. The last
// event carries a terminal State; Error is set only for StateFailed.
type Progress struct {
	Percent int    `json:"percent"`
	State   State  `json:"state"`
	Error   string `json:"error,omitempty"`
}

// Simulator produces upload tasks with deterministic progress behaviour.
type Simulator struct {
	// StepInterval is the delay between progress events.
	StepInterval time.Duration
	// StepPercent is the increment per event; must divide 100 evenly.
	StepPercent int
	// FailWith, when non-nil, turns the terminal event into a failure after
	// the progress sequence completes. Used to exercise the failure path.
	FailWith error
}

// Task is one in-flight simulated upload. Its event sequence is lazy,
// finite and non-restartable: the channel closes after the terminal event.
type Task struct {
	ID      string
	Request Request

	events chan Progress
	cancel context.CancelFunc

	mu   sync.RWMutex
	last Progress
}

// Start validates req and launches a task emitting progress 0..100.
// Cancelling the context (or calling Task.Cancel) discards partial progress:
// the task ends with StateCanceled and no video record is ever created.
func (s *Simulator) Start(ctx context.Context, req Request) (*Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	step := s.StepPercent
	if step <= 0 || 100%step != 0 {
		step = 10
	}
	interval := s.StepInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		ID:      xid.New().String(),
		Request: req,
		// Buffered for the full sequence so the producer never blocks on a
		// slow consumer: 100/step progress events, the initial 0, and the
		// terminal event.
		events: make(chan Progress, 100/step+2),
		cancel: cancel,
		last:   Progress{Percent: 0, State: StateRunning},
	}

	go t.run(ctx, step, interval, s.FailWith)
	return t, nil
}

func (t *Task) run(ctx context.Context, step int, interval time.Duration, failWith error) {
	defer close(t.events)

	t.emit(Progress{Percent: 0, State: StateRunning})
	timer := time.NewTicker(interval)
	defer timer.Stop()

	for pct := step; pct <= 100; pct += step {
		select {
		case <-ctx.Done():
			t.emit(Progress{Percent: 0, State: StateCanceled})
			return
		case <-timer.C:
			state := StateRunning
			if pct == 100 {
				state = StateDone
				if failWith != nil {
					t.emit(Progress{Percent: pct, State: StateFailed, Error: failWith.Error()})
					return
				}
			}
			t.emit(Progress{Percent: pct, State: state})
		}
	}
}

func (t *Task) emit(p Progress) {
	t.mu.Lock()
	t.last = p
	t.mu.Unlock()

	select {
	case t.events <- p:
	default:
		// Buffer sized for the whole sequence; dropping here is unreachable
		// unless the task is misconfigured, and progress must never block.
	}
}

// Events returns the task's progress stream. The channel is closed after
// the terminal event.
func (t *Task) Events() <-chan Progress {
	return t.events
}

// Snapshot returns the most recent progress event.
func (t *Task) Snapshot() Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last
}

// Cancel aborts the task. Safe to call repeatedly and after completion.
func (t *Task) Cancel() {
	t.cancel()
}
