package testing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/gallery/pkg/animation"
	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/gallery"
	"github.com/go-drift/gallery/pkg/graphics"
)

const (
	// DefaultScreenWidth is the logical width of the test screen.
	DefaultScreenWidth = 320
	// DefaultScreenHeight is the logical height of the test screen.
	DefaultScreenHeight = 480
	// FrameDuration is the clock advance of one pumped frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// TestDecorations are the fake decoration views of a Tester.
type TestDecorations struct {
	Close  *FakeButton
	Detail *FakeButton
	Share  *FakeButton
	Header *FakeView
	Footer *FakeSizedView
}

// Views returns the decorations as gallery views, in layout order.
func (d TestDecorations) Views() []*FakeView {
	return []*FakeView{&d.Close.FakeView, &d.Detail.FakeView, &d.Share.FakeView, d.Header, &d.Footer.FakeView}
}

// Tester drives a gallery session against fake host collaborators with a
// fake clock, so animations run deterministically.
type Tester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler

	Container   *FakeContainer
	Pager       *FakePager
	Source      *FakeSource
	Environment *FakeEnvironment
	Content     *FakeProvider
	Actions     *FakeActions
	Decorations TestDecorations
	Calls       *Recorder

	session *gallery.Session
}

// NewTester creates a tester with a full set of fakes. The displacement
// source sits in the top-left quadrant of the screen.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	screen := graphics.Size{Width: DefaultScreenWidth, Height: DefaultScreenHeight}
	return &Tester{
		clock:       clk,
		scheduler:   animation.NewScheduler(clk),
		Container:   NewFakeContainer(graphics.RectFromLTWH(0, 0, screen.Width, screen.Height)),
		Pager:       &FakePager{},
		Source:      NewFakeSource(graphics.RectFromLTWH(10, 10, 100, 75)),
		Environment: NewFakeEnvironment(screen),
		Content:     &FakeProvider{},
		Actions:     &FakeActions{},
		Decorations: TestDecorations{
			Close:  NewFakeButton(44, 44),
			Detail: NewFakeButton(44, 44),
			Share:  NewFakeButton(44, 44),
			Header: NewFakeView(80, 20),
			Footer: NewFakeSizedView(200, 40, 60),
		},
		Calls: &Recorder{},
	}
}

// NewTesterWithT creates a tester that disposes its session via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the session, if one was started.
func (t *Tester) Cleanup() {
	if t.session != nil {
		t.session.Dispose()
	}
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock { return t.clock }

// Scheduler returns the scheduler the session is stepped by.
func (t *Tester) Scheduler() *animation.Scheduler { return t.scheduler }

// Session returns the session created by Start.
func (t *Tester) Session() *gallery.Session { return t.session }

// Params returns session parameters wired to the tester's fakes and
// recorder.
func (t *Tester) Params(count, start int, opts ...config.Option) gallery.Params {
	d := t.Decorations
	return gallery.Params{
		ItemCount:  count,
		StartIndex: start,
		Source:     t.Source,
		Content:    t.Content,
		Options:    opts,
		Decorations: gallery.Decorations{
			Close:  d.Close,
			Detail: d.Detail,
			Share:  d.Share,
			Header: d.Header,
			Footer: d.Footer,
		},
		Container:   t.Container,
		Pager:       t.Pager,
		Environment: t.Environment,
		Scheduler:   t.scheduler,
		Actions:     t.Actions,
		Callbacks:   t.Calls.Callbacks(),
	}
}

// Start builds a session over count items at start.
func (t *Tester) Start(count, start int, opts ...config.Option) (*gallery.Session, error) {
	s, err := gallery.New(t.Params(count, start, opts...))
	if err != nil {
		return nil, err
	}
	t.session = s
	return s, nil
}

// Pump advances the clock by d and steps the scheduler once.
func (t *Tester) Pump(d time.Duration) {
	t.clock.Advance(d)
	t.scheduler.Step()
}

// PumpAndSettle steps frames until no animation is running or the timeout
// is reached. Each frame advances the fake clock by FrameDuration.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.scheduler.Step()
		if !t.scheduler.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Alphas returns the current alpha of every decoration.
func (t *Tester) Alphas() []float64 {
	views := t.Decorations.Views()
	out := make([]float64, len(views))
	for i, v := range views {
		out[i] = v.Alpha()
	}
	return out
}

// Recorder records session callbacks in the order they fire.
type Recorder struct {
	Log    []string
	Landed []int
	States []gallery.TransitionState

	Launched  int
	Closed    int
	Dismissed int
}

// Callbacks returns gallery callbacks that write into r.
func (r *Recorder) Callbacks() gallery.Callbacks {
	return gallery.Callbacks{
		OnLaunchCompleted: func() {
			r.Launched++
			r.Log = append(r.Log, "launched")
		},
		OnPageLanded: func(index int) {
			r.Landed = append(r.Landed, index)
			r.Log = append(r.Log, fmt.Sprintf("landed(%d)", index))
		},
		OnClosed: func() {
			r.Closed++
			r.Log = append(r.Log, "closed")
		},
		OnSwipedToDismiss: func() {
			r.Dismissed++
			r.Log = append(r.Log, "swiped")
		},
		OnStateChange: func(s gallery.TransitionState) {
			r.States = append(r.States, s)
		},
	}
}

// Entered counts recorded state changes into state. Each progress update
// of an interactive dismiss counts as its own change.
func (r *Recorder) Entered(state gallery.State) int {
	n := 0
	for _, s := range r.States {
		if s.State == state {
			n++
		}
	}
	return n
}
