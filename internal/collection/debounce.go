package collection

import (
	"sync"
	"time"
)

// DebounceDelay is the quiet period before a pending keyword filter commits.
const DebounceDelay = 300 * time.Millisecond

// Debouncer coalesces rapid calls into one, keeping only the most recent
// function. Scheduling a new call cancels any unfired prior one.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Debounce schedules fn to run after the quiet period, replacing any
// previously scheduled function.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops the pending function, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
