package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostAndExpire(t *testing.T) {
	c := NewChannel(30 * time.Millisecond)

	c.Post(KindSuccess, "Created 2 expense(s).")
	n := c.Current()
	require.NotNil(t, n)
	assert.Equal(t, KindSuccess, n.Kind)
	assert.Equal(t, "Created 2 expense(s).", n.Text)

	assert.Eventually(t, func() bool {
		return c.Current() == nil
	}, time.Second, 5*time.Millisecond, "notification should expire on its own")
}

func TestPostSupersedes(t *testing.T) {
	c := NewChannel(40 * time.Millisecond)

	c.Post(KindSuccess, "first")
	time.Sleep(20 * time.Millisecond)
	c.Post(KindError, "second")

	// Only the second is observable.
	n := c.Current()
	require.NotNil(t, n)
	assert.Equal(t, KindError, n.Kind)
	assert.Equal(t, "second", n.Text)

	// Past the first's original deadline the second must still be visible:
	// the superseded timer firing has no effect.
	time.Sleep(25 * time.Millisecond)
	n = c.Current()
	require.NotNil(t, n)
	assert.Equal(t, "second", n.Text)

	assert.Eventually(t, func() bool {
		return c.Current() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestDismiss(t *testing.T) {
	c := NewChannel(time.Minute)

	c.Post(KindError, "No expenses to submit.")
	require.NotNil(t, c.Current())

	c.Dismiss()
	assert.Nil(t, c.Current())

	// dismissing an empty slot is harmless
	c.Dismiss()
	assert.Nil(t, c.Current())
}

func TestDismissThenPost(t *testing.T) {
	c := NewChannel(25 * time.Millisecond)

	c.Post(KindSuccess, "one")
	c.Dismiss()
	c.Post(KindSuccess, "two")

	n := c.Current()
	require.NotNil(t, n)
	assert.Equal(t, "two", n.Text)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	c := NewChannel(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
