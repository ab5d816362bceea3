package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is where a controller is in its 0 to 1 range.
type AnimationStatus int

const (
	// AnimationDismissed means the controller rests at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means a run is moving the value up.
	AnimationForward
	// AnimationReverse means a run is moving the value down.
	AnimationReverse
	// AnimationCompleted means the controller rests at 1.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController moves Value between 0 and 1 over Duration, shaped by
// Curve. It only advances when its [Scheduler] is stepped.
//
// Each call to Play, AnimateTo or Forward starts a new run and supersedes the
// previous one. A run's completion callback fires exactly once when the run
// arrives; a run that is stopped or superseded never fires it, so callers can
// chain transitions from completions without guarding against stale ones.
//
// Call Dispose when the owner goes away.
type AnimationController struct {
	// Value is the current, curved value.
	Value float64
	// Duration is how long any run takes, regardless of distance.
	// Zero or less completes on the next Step.
	Duration time.Duration
	// Curve eases linear progress. Nil is linear.
	Curve func(float64) float64

	scheduler *Scheduler
	status    AnimationStatus
	run       *controllerRun

	listeners       listenerSet[func()]
	statusListeners listenerSet[func(AnimationStatus)]
}

type controllerRun struct {
	ticker   *Ticker
	from, to float64
	done     func()
}

// NewAnimationController creates a controller at 0 stepped by s.
func NewAnimationController(s *Scheduler, duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:  duration,
		Curve:     LinearCurve,
		scheduler: s,
	}
}

// Forward animates from the current value to 1.
func (c *AnimationController) Forward() {
	c.AnimateTo(1, nil)
}

// Play restarts from 0 and animates to 1, calling done on arrival.
func (c *AnimationController) Play(done func()) {
	c.Stop()
	c.Value = 0
	c.AnimateTo(1, done)
}

// AnimateTo animates from the current value to target and calls done on
// arrival.
func (c *AnimationController) AnimateTo(target float64, done func()) {
	c.Stop()
	r := &controllerRun{from: c.Value, to: target, done: done}
	r.ticker = c.scheduler.NewTicker(func(elapsed time.Duration) { c.advance(r, elapsed) })
	c.run = r

	if target >= c.Value {
		c.setStatus(AnimationForward)
	} else {
		c.setStatus(AnimationReverse)
	}
	r.ticker.Start()
}

func (c *AnimationController) advance(r *controllerRun, elapsed time.Duration) {
	if c.run != r {
		return
	}
	t := 1.0
	if c.Duration > 0 && r.from != r.to {
		t = min(float64(elapsed)/float64(c.Duration), 1)
	}
	eased := t
	if c.Curve != nil {
		eased = c.Curve(t)
	}
	c.Value = r.from + (r.to-r.from)*eased
	c.listeners.each(func(fn func()) { fn() })

	if t >= 1 && c.run == r {
		c.arrive(r)
	}
}

func (c *AnimationController) arrive(r *controllerRun) {
	r.ticker.Stop()
	c.run = nil
	switch {
	case c.Value <= 0:
		c.setStatus(AnimationDismissed)
	case c.Value >= 1:
		c.setStatus(AnimationCompleted)
	}
	if r.done != nil {
		r.done()
	}
}

// Stop halts the current run at its current value. Its completion callback
// is discarded.
func (c *AnimationController) Stop() {
	if c.run == nil {
		return
	}
	c.run.ticker.Stop()
	c.run = nil
}

// Status returns the current status.
func (c *AnimationController) Status() AnimationStatus { return c.status }

// IsAnimating reports whether a run is in progress.
func (c *AnimationController) IsAnimating() bool { return c.run != nil }

// IsCompleted reports whether the last run came to rest at 1.
func (c *AnimationController) IsCompleted() bool { return c.status == AnimationCompleted }

// AddListener registers fn to run after every value change and returns a
// function that removes it.
func (c *AnimationController) AddListener(fn func()) func() {
	return c.listeners.add(fn)
}

// AddStatusListener registers fn to run on every status change and returns a
// function that removes it.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	return c.statusListeners.add(fn)
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	c.statusListeners.each(func(fn func(AnimationStatus)) { fn(status) })
}

// Dispose stops the controller and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = listenerSet[func()]{}
	c.statusListeners = listenerSet[func(AnimationStatus)]{}
}

// listenerSet keeps listeners in registration order. Removal during
// iteration is safe; the removed listener is skipped.
type listenerSet[F any] struct {
	entries []*listenerEntry[F]
}

type listenerEntry[F any] struct {
	fn      F
	removed bool
}

func (s *listenerSet[F]) add(fn F) func() {
	e := &listenerEntry[F]{fn: fn}
	s.entries = append(s.entries, e)
	return func() {
		if e.removed {
			return
		}
		e.removed = true
		for i, other := range s.entries {
			if other == e {
				s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
				return
			}
		}
	}
}

func (s *listenerSet[F]) each(call func(F)) {
	for _, e := range append([]*listenerEntry[F](nil), s.entries...) {
		if !e.removed {
			call(e.fn)
		}
	}
}
