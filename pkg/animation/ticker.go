// Package animation provides the timing primitives that drive gallery
// transitions.
//
// # Core Components
//
//   - [Scheduler]: owns the active tickers for one UI thread and advances
//     them when the host calls [Scheduler.Step] once per display frame. Time
//     comes from an injected [Clock], so tests step animations
//     deterministically.
//
//   - [AnimationController]: drives a value between 0 and 1
//     over a Duration, shaped by an easing Curve, with value listeners,
//     status listeners and a one-shot completion callback.
//
//   - [Tween]: maps the controller's 0-1 value to another range or type,
//     such as a frame rect or a background color.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(nil)
//	fade := animation.NewAnimationController(sched, 150*time.Millisecond)
//	fade.Curve = animation.EaseInOut
//	fade.AddListener(func() { view.SetAlpha(fade.Value) })
//	fade.Play(func() { log.Println("faded in") })
//
//	// Once per frame, on the UI goroutine:
//	sched.Step()
//
// Nothing here is safe for concurrent use; everything runs on the goroutine
// that owns the Scheduler.
package animation

import "time"

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker and records its start time.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

// Scheduler advances tickers for a single UI thread.
type Scheduler struct {
	clock   Clock
	tickers []*Ticker
}

// NewScheduler returns a scheduler reading time from clock.
// A nil clock uses the system clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates an inactive ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers in the order they were started.
// Tickers started by a callback during Step first run on the next Step.
func (s *Scheduler) Step() {
	if len(s.tickers) == 0 {
		return
	}
	tickers := make([]*Ticker, len(s.tickers))
	copy(tickers, s.tickers)

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func (s *Scheduler) HasActiveTickers() bool {
	return len(s.tickers) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.tickers = append(s.tickers, t)
}

func (s *Scheduler) remove(t *Ticker) {
	for i, ticker := range s.tickers {
		if ticker == t {
			s.tickers = append(s.tickers[:i], s.tickers[i+1:]...)
			return
		}
	}
}
