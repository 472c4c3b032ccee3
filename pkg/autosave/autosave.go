// Package autosave debounces bursts of edits into a single save.
package autosave

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the inactivity window before a pending change is saved.
const DefaultDelay = 15 * time.Second

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Tests swap in a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func RealScheduler() Scheduler {
	return realScheduler{}
}

// SaveFunc persists the current state. Its error goes to the OnError hook.
type SaveFunc func(ctx context.Context) error

type Option func(*Debouncer)

func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) { d.scheduler = s }
}

func WithDelay(delay time.Duration) Option {
	return func(d *Debouncer) {
		if delay > 0 {
			d.delay = delay
		}
	}
}

func WithOnError(fn func(error)) Option {
	return func(d *Debouncer) { d.onError = fn }
}

// Debouncer restarts its timer on every Trigger and calls save once the
// timer fires. A generation counter makes a stale timer a no-op even when
// Stop lost the race with the timer goroutine.
type Debouncer struct {
	save      SaveFunc
	scheduler Scheduler
	delay     time.Duration
	onError   func(error)

	mu         sync.Mutex
	timer      Timer
	generation uint64
	closed     bool
}

func NewDebouncer(save SaveFunc, opts ...Option) *Debouncer {
	d := &Debouncer{
		save:      save,
		scheduler: RealScheduler(),
		delay:     DefaultDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger marks a change and (re)starts the inactivity timer.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.stopLocked()
	d.generation++
	gen := d.generation
	d.timer = d.scheduler.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.closed || gen != d.generation || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.run(context.Background())
}

// Flush cancels a pending timer and saves right away. It saves even when
// nothing is pending; callers decide whether there is anything to write.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.stopLocked()
	d.generation++
	d.mu.Unlock()

	return d.run(ctx)
}

// Cancel drops a pending save without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.generation++
}

// Pending reports whether a timer is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Close cancels any pending save and ignores later triggers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.generation++
	d.closed = true
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) run(ctx context.Context) error {
	err := d.save(ctx)
	if err != nil && d.onError != nil {
		d.onError(err)
	}
	return err
}
