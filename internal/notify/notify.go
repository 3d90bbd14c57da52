// Package notify holds the single transient status notification shown after
// a mutation. Only one notification is live at a time; a new one replaces
// the prior one and restarts the auto-dismiss window.
package notify

import (
	"sync"
	"time"
)

// AutoDismissAfter is how long a notification stays visible without user
// interaction. The host UI schedules the dismissal.
const AutoDismissAfter = 3000 * time.Millisecond

// Severity classifies a notification for rendering.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "danger"
)

// Notification is the current toast state.
type Notification struct {
	Visible  bool
	Message  string
	Severity Severity
}

// Channel owns at most one active notification.
type Channel struct {
	mu      sync.Mutex
	current Notification
	seq     uint64
}

// NewChannel creates an empty notification channel.
func NewChannel() *Channel {
	return &Channel{}
}

// Notify replaces the active notification and returns a token identifying
// it. The host passes the token back to DismissExpired after the
// auto-dismiss window so that a newer notification is never cut short.
func (c *Channel) Notify(message string, severity Severity) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.current = Notification{Visible: true, Message: message, Severity: severity}
	return c.seq
}

// Success is shorthand for a success notification.
func (c *Channel) Success(message string) uint64 {
	return c.Notify(message, SeveritySuccess)
}

// Error is shorthand for a failure notification.
func (c *Channel) Error(message string) uint64 {
	return c.Notify(message, SeverityError)
}

// Dismiss clears the active notification unconditionally.
func (c *Channel) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = Notification{}
}

// DismissExpired clears the notification only if token still identifies the
// active one. Returns true if anything was cleared.
func (c *Channel) DismissExpired(token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq || !c.current.Visible {
		return false
	}
	c.current = Notification{}
	return true
}

// Token returns the token of the most recent notification. Hosts compare it
// across updates to schedule exactly one dismissal per notification.
func (c *Channel) Token() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Current returns the active notification state.
func (c *Channel) Current() Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
