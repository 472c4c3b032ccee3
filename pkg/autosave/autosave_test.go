package autosave

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

// manualScheduler fires timers only when Advance moves its clock past them.
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func newCounting() (*atomic.Int32, SaveFunc) {
	var n atomic.Int32
	return &n, func(context.Context) error {
		n.Add(1)
		return nil
	}
}

func TestDebounceCollapsesBurst(t *testing.T) {
	clock := &manualScheduler{}
	saves, save := newCounting()
	d := NewDebouncer(save, WithScheduler(clock))

	d.Trigger()
	clock.Advance(10 * time.Second)
	d.Trigger()
	clock.Advance(10 * time.Second)
	d.Trigger()

	assert.Equal(t, int32(0), saves.Load())
	assert.True(t, d.Pending())

	clock.Advance(DefaultDelay)
	assert.Equal(t, int32(1), saves.Load())
	assert.False(t, d.Pending())

	clock.Advance(time.Minute)
	assert.Equal(t, int32(1), saves.Load())
}

func TestCustomDelay(t *testing.T) {
	clock := &manualScheduler{}
	saves, save := newCounting()
	d := NewDebouncer(save, WithScheduler(clock), WithDelay(time.Second))

	d.Trigger()
	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, int32(0), saves.Load())
	clock.Advance(time.Millisecond)
	assert.Equal(t, int32(1), saves.Load())
}

func TestFlushSavesImmediatelyAndDisarms(t *testing.T) {
	clock := &manualScheduler{}
	saves, save := newCounting()
	d := NewDebouncer(save, WithScheduler(clock))

	d.Trigger()
	require.NoError(t, d.Flush(context.Background()))
	assert.Equal(t, int32(1), saves.Load())
	assert.False(t, d.Pending())

	clock.Advance(DefaultDelay)
	assert.Equal(t, int32(1), saves.Load())
}

func TestCancelDropsPendingSave(t *testing.T) {
	clock := &manualScheduler{}
	saves, save := newCounting()
	d := NewDebouncer(save, WithScheduler(clock))

	d.Trigger()
	d.Cancel()
	clock.Advance(DefaultDelay)
	assert.Equal(t, int32(0), saves.Load())
}

func TestStaleTimerIsIgnored(t *testing.T) {
	clock := &manualScheduler{}
	saves, save := newCounting()
	d := NewDebouncer(save, WithScheduler(clock))

	d.Trigger()
	clock.mu.Lock()
	stale := clock.timers[0]
	clock.mu.Unlock()

	d.Trigger()
	// the first timer lost the Stop race and runs anyway
	stale.f()
	assert.Equal(t, int32(0), saves.Load())
	assert.True(t, d.Pending())
}

func TestErrorHookReceivesFailure(t *testing.T) {
	clock := &manualScheduler{}
	boom := errors.New("backend down")
	var got error
	d := NewDebouncer(func(context.Context) error { return boom },
		WithScheduler(clock),
		WithOnError(func(err error) { got = err }))

	d.Trigger()
	clock.Advance(DefaultDelay)
	assert.ErrorIs(t, got, boom)

	err := d.Flush(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCloseIgnoresLaterTriggers(t *testing.T) {
	clock := &manualScheduler{}
	saves, save := newCounting()
	d := NewDebouncer(save, WithScheduler(clock))

	d.Trigger()
	d.Close()
	d.Trigger()
	clock.Advance(DefaultDelay)

	assert.Equal(t, int32(0), saves.Load())
	assert.False(t, d.Pending())
	require.NoError(t, d.Flush(context.Background()))
	assert.Equal(t, int32(0), saves.Load())
}

func TestRealSchedulerFires(t *testing.T) {
	done := make(chan struct{})
	d := NewDebouncer(func(context.Context) error {
		close(done)
		return nil
	}, WithDelay(10*time.Millisecond))

	d.Trigger()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save never ran")
	}
	assert.Eventually(t, func() bool { return !d.Pending() }, time.Second, 5*time.Millisecond)
}
