package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyReplacesCurrent(t *testing.T) {
	c := NewChannel()

	c.Success("saved")
	c.Error("failed")

	got := c.Current()
	assert.True(t, got.Visible)
	assert.Equal(t, "failed", got.Message)
	assert.Equal(t, SeverityError, got.Severity)
}

func TestDismissExpired_StaleTokenKeepsNewerNotification(t *testing.T) {
	c := NewChannel()

	first := c.Success("first")
	second := c.Success("second")

	// The first notification's timer fires after it was replaced.
	assert.False(t, c.DismissExpired(first))
	assert.Equal(t, "second", c.Current().Message)

	assert.True(t, c.DismissExpired(second))
	assert.False(t, c.Current().Visible)
}

func TestDismissExpired_AlreadyDismissed(t *testing.T) {
	c := NewChannel()
	token := c.Error("oops")
	c.Dismiss()
	assert.False(t, c.DismissExpired(token))
}

func TestToken(t *testing.T) {
	c := NewChannel()
	assert.Equal(t, uint64(0), c.Token())
	token := c.Success("hi")
	assert.Equal(t, token, c.Token())
}
