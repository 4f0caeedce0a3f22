package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock is a manually advanced time source.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCenter() (*Center, *testClock) {
	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewCenter(WithClock(clock.Now)), clock
}

func TestCenterInsertionOrder(t *testing.T) {
	c, _ := newTestCenter()

	c.Success("primeiro")
	c.Error("segundo")
	c.Info("terceiro")

	active := c.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "primeiro", active[0].Message)
	assert.Equal(t, "segundo", active[1].Message)
	assert.Equal(t, "terceiro", active[2].Message)
	assert.Equal(t, VariantSuccess, active[0].Variant)
	assert.Equal(t, VariantError, active[1].Variant)
}

func TestCenterIDsAreUnique(t *testing.T) {
	c, _ := newTestCenter()

	id1 := c.Info("a")
	id2 := c.Info("b")
	assert.NotEqual(t, id1, id2)
	assert.Greater(t, id2, id1)
}

func TestCenterExpiry(t *testing.T) {
	c, clock := newTestCenter()

	c.Warning("some")
	clock.Advance(DefaultTTL - time.Millisecond)
	assert.Len(t, c.Active(), 1, "still inside the display window")

	clock.Advance(2 * time.Millisecond)
	assert.Empty(t, c.Active(), "expired after the display duration")
}

func TestCenterExpiryIsPerNotification(t *testing.T) {
	c, clock := newTestCenter()

	c.Info("velha")
	clock.Advance(2 * time.Second)
	c.Info("nova")

	clock.Advance(2 * time.Second)
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "nova", active[0].Message)
}

func TestCenterDismiss(t *testing.T) {
	c, _ := newTestCenter()

	id := c.Success("dispensável")
	c.Success("fica")

	c.Dismiss(id)
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "fica", active[0].Message)

	// Unknown ids are ignored.
	c.Dismiss(999)
	assert.Len(t, c.Active(), 1)
}
