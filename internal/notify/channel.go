// Package notify implements the single-slot transient status message shown
// after an operation reports an outcome. At most one notification is
// observable at any instant; a new one silently supersedes the current one.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultTTL is how long a notification stays visible unless dismissed or
// superseded first.
const DefaultTTL = 3000 * time.Millisecond

// Notification is one transient status message.
type Notification struct {
	Kind Kind
	Text string
}

// Channel holds at most one Notification and expires it on a timer.
// Safe for concurrent use; the expiry timer fires on its own goroutine.
type Channel struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	ttl     time.Duration
	gen     uint64
}

// NewChannel builds a Channel expiring notifications after ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewChannel(ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{ttl: ttl}
}

// Post replaces any current notification and restarts the expiry clock.
// A previously scheduled expiry becomes a no-op.
func (c *Channel) Post(kind Kind, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = &Notification{Kind: kind, Text: text}
	c.gen++

	gen := c.gen
	c.timer = time.AfterFunc(c.ttl, func() {
		c.expire(gen)
	})
}

// expire clears the slot only if no newer notification has been posted
// since the timer was armed.
func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.current = nil
	c.timer = nil
}

// Dismiss clears the current notification immediately and cancels its timer.
func (c *Channel) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
	c.gen++
}

// Current returns the visible notification, or nil when the slot is empty.
func (c *Channel) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	n := *c.current
	return &n
}
