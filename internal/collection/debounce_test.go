package collection

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceRunsOnlyTheLastCall(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Debounce(func() {
			fired.Add(1)
			last.Store(n)
		})
	}

	assert.Eventually(t, func() bool {
		return fired.Load() == 1 && last.Load() == 5
	}, 2*time.Second, 10*time.Millisecond)

	// No straggler fires afterwards.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebounceSeparateQuietPeriods(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Debounce(func() { fired.Add(1) })
	time.Sleep(60 * time.Millisecond)
	d.Debounce(func() { fired.Add(1) })
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(2), fired.Load())
}

func TestCancelDropsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	d.Debounce(func() { fired.Add(1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
