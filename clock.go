package cascade

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ClockState describes where a Clock is in its lifecycle.
type ClockState uint8

const (
	ClockIdle      ClockState = iota // constructed or reset; ticks are ignored
	ClockRunning                     // advancing on every tick
	ClockCompleted                   // reached full duration; parked until reset
)

// String returns the state name for debugging and test output.
func (s ClockState) String() string {
	switch s {
	case ClockIdle:
		return "Idle"
	case ClockRunning:
		return "Running"
	case ClockCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Driver delivers per-frame ticks to subscribers. Subscribe returns a cancel
// function. Cancellation is synchronous: once cancel returns, the callback is
// never invoked again, including by a Tick currently fanning out.
type Driver interface {
	Subscribe(fn func(dt float64)) (cancel func())
}

// FrameDriver is a minimal Driver the host pumps once per frame. There is no
// internal timer — call Tick with the frame delta from your game loop.
//
// FrameDriver is single-threaded like everything else in this package;
// Subscribe, Tick, and the cancel functions must all run on the same
// goroutine.
type FrameDriver struct {
	subs   map[int]func(dt float64)
	order  []int
	nextID int
}

// NewFrameDriver creates an empty FrameDriver.
func NewFrameDriver() *FrameDriver {
	return &FrameDriver{subs: make(map[int]func(dt float64))}
}

// Subscribe registers fn to receive every future Tick. The returned cancel
// function is idempotent.
func (d *FrameDriver) Subscribe(fn func(dt float64)) func() {
	id := d.nextID
	d.nextID++
	d.subs[id] = fn
	d.order = append(d.order, id)
	return func() { delete(d.subs, id) }
}

// Tick fans dt out to live subscribers in subscription order. Subscribers
// cancelled during the fan-out (a callback disposing a clock, for example) are
// skipped; subscribers added during the fan-out first fire on the next Tick.
func (d *FrameDriver) Tick(dt float64) {
	n := len(d.order)
	for i := 0; i < n; i++ {
		if fn, ok := d.subs[d.order[i]]; ok {
			fn(dt)
		}
	}
	// Compact cancelled entries so long-lived drivers don't accumulate them.
	live := d.order[:0]
	for _, id := range d.order {
		if _, ok := d.subs[id]; ok {
			live = append(live, id)
		}
	}
	d.order = live
}

// Clock is the single shared progress driver for a set of tracks. It advances
// a normalized progress value from 0 to 1 over a fixed duration in seconds,
// one cooperative tick at a time, and never rewinds while running.
//
// The progress ramp is a gween tween with linear easing; per-item and
// per-property shaping happens downstream in Tracks, not here.
type Clock struct {
	tween    *gween.Tween
	duration float64
	progress float64
	state    ClockState
	onTick   func(progress float64)
	cancel   func()
	disposed bool
}

// NewClock creates a clock that runs for duration seconds. If driver is
// non-nil the clock subscribes to it immediately and holds the cancel token
// until Dispose; pass nil to drive the clock manually with Tick.
func NewClock(duration float64, driver Driver) (*Clock, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v must be positive", ErrInvalidConfig, duration)
	}
	c := &Clock{
		tween:    gween.New(0, 1, float32(duration), ease.Linear),
		duration: duration,
	}
	if driver != nil {
		c.cancel = driver.Subscribe(c.Tick)
	}
	return c, nil
}

// OnTick registers fn to be called with the current progress on every tick
// that advances the clock, including the tick that completes it. Only one
// callback is held; passing nil clears it.
func (c *Clock) OnTick(fn func(progress float64)) {
	c.onTick = fn
}

// Start begins advancing the clock. Calling Start while already Running is a
// no-op. Starting from Completed is also a no-op — a finished clock stays
// parked until Reset or Replay rewinds it.
func (c *Clock) Start() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.state == ClockIdle {
		c.state = ClockRunning
	}
	return nil
}

// Reset rewinds the clock to progress 0 and parks it in Idle.
func (c *Clock) Reset() error {
	if c.disposed {
		return ErrDisposed
	}
	c.tween.Reset()
	c.progress = 0
	c.state = ClockIdle
	return nil
}

// Replay is Reset followed by Start: the clock restarts from progress 0 and
// produces the same tick sequence as a fresh run. Replay is a restart, never
// a continue.
func (c *Clock) Replay() error {
	if err := c.Reset(); err != nil {
		return err
	}
	return c.Start()
}

// Tick advances the clock by dt seconds. Ticks are ignored unless the clock
// is Running, so a subscribed clock can safely receive frames while Idle or
// Completed. Negative dt is ignored; progress never decreases while running.
func (c *Clock) Tick(dt float64) {
	if c.disposed || c.state != ClockRunning || dt < 0 {
		return
	}
	v, finished := c.tween.Update(float32(dt))
	c.progress = float64(v)
	if finished {
		c.progress = 1
		c.state = ClockCompleted
	}
	if c.onTick != nil {
		c.onTick(c.progress)
	}
}

// Progress returns the current timeline progress in [0,1].
func (c *Clock) Progress() float64 {
	return c.progress
}

// State returns the clock's lifecycle state.
func (c *Clock) State() ClockState {
	return c.state
}

// Duration returns the configured run time in seconds.
func (c *Clock) Duration() float64 {
	return c.duration
}

// Dispose cancels the driver subscription, if any. It takes effect before it
// returns — no tick can be observed afterward — and calling it again is a
// no-op. All control operations on a disposed clock return ErrDisposed.
func (c *Clock) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// IsDisposed returns true once Dispose has been called.
func (c *Clock) IsDisposed() bool {
	return c.disposed
}
