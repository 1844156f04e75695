// Package focus implements the pomodoro-style focus timer.
//
// The timer does not tick on its own. Remaining time is derived from an
// injected clock whenever the state is read or changed, so a paused server
// process or a slow client never drifts the count.
package focus

import (
	"fmt"
	"sync"
	"time"

	"github.com/oreum-app/oreum"
)

// Mode is the kind of period the timer is counting down.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// Default period lengths.
const (
	FocusDuration = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

// Presets are the quick-setup focus lengths in minutes.
var Presets = []int{10, 25, 50}

// Bounds for SetDuration, in minutes.
const (
	MinMinutes = 1
	MaxMinutes = 180
)

// State is a snapshot of the timer.
type State struct {
	Mode      Mode          `json:"mode"`
	Remaining time.Duration `json:"-"`
	Total     time.Duration `json:"-"`
	Running   bool          `json:"running"`

	RemainingSeconds int `json:"remainingSeconds"`
	TotalSeconds     int `json:"totalSeconds"`
}

// Timer counts down focus and break periods. A finished period stops the
// timer and switches to the other mode at its full default length.
type Timer struct {
	now        func() time.Time
	onComplete func(mode Mode, length time.Duration)

	mu        sync.Mutex
	mode      Mode
	total     time.Duration
	remaining time.Duration
	running   bool
	startedAt time.Time
}

// Option configures a [Timer].
type Option func(*Timer)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// OnComplete registers fn to be called, with the timer unlocked, each time a
// period runs out.
func OnComplete(fn func(mode Mode, length time.Duration)) Option {
	return func(t *Timer) { t.onComplete = fn }
}

// New returns a paused timer at the start of a focus period.
func New(opts ...Option) *Timer {
	t := &Timer{
		now:       time.Now,
		mode:      ModeFocus,
		total:     FocusDuration,
		remaining: FocusDuration,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// State returns the current snapshot.
func (t *Timer) State() State {
	t.mu.Lock()
	done := t.advance()
	s := t.snapshot()
	t.mu.Unlock()
	t.notify(done)
	return s
}

// Toggle starts a paused timer or pauses a running one.
func (t *Timer) Toggle() State {
	t.mu.Lock()
	done := t.advance()
	if t.running {
		t.running = false
	} else {
		t.running = true
		t.startedAt = t.now()
	}
	s := t.snapshot()
	t.mu.Unlock()
	t.notify(done)
	return s
}

// Reset pauses the timer and restores the full length of the current mode.
func (t *Timer) Reset() State {
	t.mu.Lock()
	done := t.advance()
	t.running = false
	t.remaining = t.total
	s := t.snapshot()
	t.mu.Unlock()
	t.notify(done)
	return s
}

// SetDuration pauses the timer and starts a fresh focus period of minutes.
// A period that already ran out is completed first.
func (t *Timer) SetDuration(minutes int) (State, error) {
	if minutes < MinMinutes || minutes > MaxMinutes {
		return State{}, fmt.Errorf("duration must be in [%d, %d] minutes, got %d: %w",
			MinMinutes, MaxMinutes, minutes, oreum.ErrValidation)
	}
	t.mu.Lock()
	done := t.advance()
	t.running = false
	t.mode = ModeFocus
	t.total = time.Duration(minutes) * time.Minute
	t.remaining = t.total
	s := t.snapshot()
	t.mu.Unlock()
	t.notify(done)
	return s, nil
}

type completion struct {
	mode   Mode
	length time.Duration
}

// advance moves the countdown to now. It returns the period that ran out,
// if any. Callers hold t.mu.
func (t *Timer) advance() *completion {
	if !t.running {
		return nil
	}
	now := t.now()
	elapsed := now.Sub(t.startedAt)
	t.startedAt = now
	if elapsed < t.remaining {
		t.remaining -= elapsed
		return nil
	}
	done := &completion{mode: t.mode, length: t.total}
	t.running = false
	if t.mode == ModeFocus {
		t.mode, t.total = ModeBreak, BreakDuration
	} else {
		t.mode, t.total = ModeFocus, FocusDuration
	}
	t.remaining = t.total
	return done
}

func (t *Timer) notify(done *completion) {
	if done != nil && t.onComplete != nil {
		t.onComplete(done.mode, done.length)
	}
}

func (t *Timer) snapshot() State {
	return State{
		Mode:             t.mode,
		Remaining:        t.remaining,
		Total:            t.total,
		Running:          t.running,
		RemainingSeconds: int((t.remaining + time.Second - 1) / time.Second),
		TotalSeconds:     int(t.total / time.Second),
	}
}
