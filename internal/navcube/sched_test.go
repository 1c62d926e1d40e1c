package navcube

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerSchedulerCancelWaits(t *testing.T) {
	var calls atomic.Int64
	cancel := TickerScheduler{}.Every(time.Millisecond, func() {
		calls.Add(1)
	})

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, time.Millisecond)
	cancel()
	cancel()

	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestFrameSchedulerAdvance(t *testing.T) {
	s := NewFrameScheduler()
	var a, b int
	cancelA := s.Every(10*time.Millisecond, func() { a++ })
	s.Every(20*time.Millisecond, func() { b++ })
	assert.Equal(t, 2, s.Len())

	start := time.Unix(0, 0)
	assert.Equal(t, 2, s.Advance(start))
	assert.Equal(t, 1, s.Advance(start.Add(10*time.Millisecond)))
	assert.Equal(t, 2, s.Advance(start.Add(20*time.Millisecond)))
	assert.Equal(t, 3, a)
	assert.Equal(t, 2, b)

	// A long stall runs each job once
	assert.Equal(t, 2, s.Advance(start.Add(time.Second)))
	assert.Equal(t, 4, a)

	cancelA()
	assert.Equal(t, 1, s.Len())
	s.Advance(start.Add(2 * time.Second))
	assert.Equal(t, 4, a)
	assert.Equal(t, 4, b)
}
