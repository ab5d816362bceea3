// Package gallery is the navigation and transition core of a full-screen
// media gallery.
//
// A [Session] owns the state machine of one presentation: paging between
// items, the displacement present and close transitions, decoration fades
// and interactive swipe-to-dismiss. Rendering stays with the host, which
// supplies views through the interfaces in host.go and advances animations
// by calling [animation.Scheduler.Step] once per frame.
//
//	s, err := gallery.New(gallery.Params{
//	    ItemCount:  len(photos),
//	    StartIndex: tapped,
//	    Source:     thumbnail,
//	    Container:  container,
//	    Pager:      pager,
//	    Callbacks:  gallery.Callbacks{OnClosed: dismiss},
//	})
//	if err != nil {
//	    return err
//	}
//	s.Present()
//
// Sessions are not safe for concurrent use. All methods, and Step on the
// session's scheduler, must run on the host's UI goroutine.
package gallery

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/go-drift/gallery/pkg/animation"
	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/errors"
	"github.com/go-drift/gallery/pkg/graphics"
)

// Callbacks are the host notifications of a session. All are optional.
// Except OnPageLanded and OnStateChange, each fires at most once.
type Callbacks struct {
	// OnLaunchCompleted fires when the present transition finishes.
	OnLaunchCompleted func()
	// OnPageLanded fires whenever the current page changes, and once
	// synchronously from New with the start index.
	OnPageLanded func(index int)
	// OnClosed fires when an explicit close finishes.
	OnClosed func()
	// OnSwipedToDismiss fires when an interactive dismiss finishes.
	OnSwipedToDismiss func()
	// OnStateChange observes every transition state change.
	OnStateChange func(TransitionState)
}

// Params configures a new session.
type Params struct {
	ItemCount  int
	StartIndex int

	// Source is the thumbnail the transitions expand from and contract to.
	// It may be nil, in which case both transitions are fades.
	Source DisplacementSource
	// Content builds page bodies. It may be nil.
	Content ContentProvider
	// Options are applied in order over the defaults.
	Options []config.Option

	Decorations Decorations

	// Container and Pager are required.
	Container Container
	Pager     PageContainer

	// Environment supplies window level and orientation. A nil Environment
	// behaves as a rotation-aware application.
	Environment Environment

	// Scheduler steps the session's animations. When nil the session
	// creates one on the system clock; see [Session.Scheduler].
	Scheduler *animation.Scheduler

	// Actions receives detail and share requests. It may be nil.
	Actions ActionHandler

	Callbacks Callbacks
}

// Session is the navigation core of one gallery presentation.
type Session struct {
	id   string
	spec config.LayoutSpec

	itemCount    int
	startIndex   int
	currentIndex int

	decorationsHidden bool
	isRotating        bool
	closeInFlight     bool
	pendingClose      bool
	presented         bool
	disposed          bool

	state           TransitionState
	backgroundAlpha float64
	angle           float64

	container   Container
	pager       PageContainer
	env         Environment
	actions     ActionHandler
	callbacks   Callbacks
	decorations Decorations
	views       []View

	scheduler   *animation.Scheduler
	engine      *TransitionEngine
	factory     *Factory
	dataSource  *DataSource
	initialPage *Page

	toggle    *alphaFade
	closeFade *alphaFade
	rotation  *rotation

	launchedOnce  bool
	closedOnce    bool
	dismissedOnce bool

	unsubscribe func()
}

// New validates p and builds a session. Before returning it fires
// OnPageLanded with the start index.
func New(p Params) (*Session, error) {
	const op = "gallery.New"
	if p.ItemCount <= 0 {
		return nil, &errors.GalleryError{
			Op:   op,
			Kind: errors.KindInvalidConstruction,
			Err:  fmt.Errorf("%w: got %d", errors.ErrItemCount, p.ItemCount),
		}
	}
	if p.StartIndex < 0 || p.StartIndex >= p.ItemCount {
		return nil, &errors.GalleryError{
			Op:   op,
			Kind: errors.KindInvalidConstruction,
			Err:  fmt.Errorf("%w: %d not in [0, %d)", errors.ErrStartIndex, p.StartIndex, p.ItemCount),
		}
	}
	if p.Container == nil || p.Pager == nil {
		return nil, &errors.GalleryError{
			Op:   op,
			Kind: errors.KindInvalidConstruction,
			Err:  fmt.Errorf("%w: container and pager are required", errors.ErrMissingHost),
		}
	}

	spec := config.Resolve(p.Options...)
	sched := p.Scheduler
	if sched == nil {
		sched = animation.NewScheduler(nil)
	}

	s := &Session{
		id:                uuid.NewString(),
		spec:              spec,
		itemCount:         p.ItemCount,
		startIndex:        p.StartIndex,
		currentIndex:      p.StartIndex,
		decorationsHidden: spec.HideDecorationsOnLaunch,
		backgroundAlpha:   1,
		container:         p.Container,
		pager:             p.Pager,
		env:               p.Environment,
		actions:           p.Actions,
		callbacks:         p.Callbacks,
		decorations:       p.Decorations,
		views:             p.Decorations.all(),
		scheduler:         sched,
	}

	s.engine = NewTransitionEngine(sched, spec.Timings, p.Source, s.applyFrame)
	s.engine.SessionID = s.id
	s.engine.SetDecorations(s.views, s.decorationsHidden)
	s.toggle = newAlphaFade(sched, spec.Timings.DecorationToggle, s.views)
	s.closeFade = newAlphaFade(sched, spec.Timings.CloseFade, s.views)
	s.rotation = newRotation(s)

	spinner := Spinner{Style: spec.SpinnerStyle, Color: spec.SpinnerColor}
	s.factory = NewFactory(p.Content, NewFadeInCoordinator(), spinner, s.Dispatch)
	s.dataSource = NewDataSource(s.factory, s.itemCount, spec.Paging)

	s.pager.SetInterPageSpacing(spec.DividerWidth)
	s.initialPage = s.factory.InitialPage(s.startIndex)
	s.pager.SetPage(s.initialPage)

	s.setAlphas(s.restingAlpha())
	s.wireButtons()
	if s.env != nil {
		if spec.StatusBarHidden {
			s.env.SetWindowLevel(WindowLevelAboveStatusBar)
		}
		s.unsubscribe = s.env.SubscribeOrientation(s.orientationChanged)
	}
	s.Layout()

	s.notifyLanded(s.startIndex)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Spec returns the resolved layout configuration.
func (s *Session) Spec() config.LayoutSpec { return s.spec }

// Scheduler returns the scheduler the host must step once per frame.
func (s *Session) Scheduler() *animation.Scheduler { return s.scheduler }

// DataSource returns the pager's data source.
func (s *Session) DataSource() *DataSource { return s.dataSource }

// InitialPage returns the page built for the start index.
func (s *Session) InitialPage() *Page { return s.initialPage }

// CurrentIndex returns the index of the page on screen.
func (s *Session) CurrentIndex() int { return s.currentIndex }

// StartIndex returns the index the session was presented at.
func (s *Session) StartIndex() int { return s.startIndex }

// ItemCount returns the number of items.
func (s *Session) ItemCount() int { return s.itemCount }

// DecorationsHidden reports the logical decoration visibility.
func (s *Session) DecorationsHidden() bool { return s.decorationsHidden }

// TransitionState returns the current transition state.
func (s *Session) TransitionState() TransitionState { return s.state }

// IsRotating reports whether a rotation is in progress.
func (s *Session) IsRotating() bool { return s.isRotating }

// Present starts the present transition. It only has an effect once, from
// the idle state.
func (s *Session) Present() {
	if s.disposed || s.presented || s.state.State != StateIdle {
		return
	}
	s.presented = true
	s.setState(StatePresenting, 0)
	s.engine.Present(s.container.Bounds(), s.presentDone)
}

func (s *Session) presentDone() {
	s.initialPage.SetHidden(false)
	s.backgroundAlpha = 1
	s.container.SetBackgroundColor(graphics.ColorBlack)
	s.setState(StateIdle, 0)
	if !s.launchedOnce {
		s.launchedOnce = true
		s.call("gallery.OnLaunchCompleted", s.callbacks.OnLaunchCompleted)
	}
	s.runPendingClose()
}

// Dispatch handles one page event. It is the only way page content talks to
// the session, and the sink the page factory wires every page to.
func (s *Session) Dispatch(ev PageEvent) {
	if s.disposed || s.state.State == StateDismissed {
		return
	}
	switch ev.Kind {
	case EventSwipeDistance:
		if math.IsNaN(ev.Distance) {
			s.report("gallery.Dispatch", errors.KindInvalidEvent, errors.ErrSwipeDistance)
			return
		}
		s.swipe(graphics.Clamp01(ev.Distance))
	case EventSingleTap:
		s.toggleDecorations()
	case EventPageAppeared:
		if ev.Index < 0 || ev.Index >= s.itemCount {
			s.report("gallery.Dispatch", errors.KindInvalidEvent,
				fmt.Errorf("%w: %d not in [0, %d)", errors.ErrPageIndex, ev.Index, s.itemCount))
			return
		}
		s.land(ev.Index)
	default:
		s.report("gallery.Dispatch", errors.KindInvalidEvent, fmt.Errorf("%w: %s", errors.ErrEventKind, ev.Kind))
	}
}

func (s *Session) land(index int) {
	s.currentIndex = index
	s.notifyLanded(index)
}

func (s *Session) notifyLanded(index int) {
	if fn := s.callbacks.OnPageLanded; fn != nil {
		s.call("gallery.OnPageLanded", func() { fn(index) })
	}
}

// swipe applies interactive dismiss feedback for distance d in [0, 1].
func (s *Session) swipe(d float64) {
	switch s.state.State {
	case StateIdle, StateInteractiveDismiss:
	default:
		return
	}

	if d == 0 {
		if s.state.State == StateInteractiveDismiss {
			s.cancelSwipe()
		}
		return
	}
	if d >= 1 {
		s.dismiss()
		return
	}

	s.toggle.stop()
	s.setState(StateInteractiveDismiss, d)
	alpha := 0.0
	if !s.decorationsHidden {
		alpha = graphics.Clamp01(1 - d*s.spec.Timings.SwipeFadeFactor)
	}
	s.setAlphas(alpha)
	s.backgroundAlpha = 1 - d
	s.container.SetBackgroundColor(graphics.LerpColor(graphics.ColorBlack, graphics.ColorTransparent, d))
}

func (s *Session) cancelSwipe() {
	s.setState(StateIdle, 0)
	s.setAlphas(s.restingAlpha())
	s.backgroundAlpha = 1
	s.container.SetBackgroundColor(graphics.ColorBlack)
	s.runPendingClose()
}

func (s *Session) dismiss() {
	s.pendingClose = false
	s.toggle.stop()
	s.setState(StateClosing, 1)
	s.setAlphas(0)
	s.engine.Close(CloseRequest{
		Bounds:    s.container.Bounds(),
		FromAlpha: s.backgroundAlpha,
	}, func() {
		s.setState(StateDismissed, 1)
		if !s.dismissedOnce {
			s.dismissedOnce = true
			s.call("gallery.OnSwipedToDismiss", s.callbacks.OnSwipedToDismiss)
		}
		s.Dispose()
	})
}

// toggleDecorations flips the logical visibility and fades every decoration
// toward it from wherever it currently is.
func (s *Session) toggleDecorations() {
	if s.state.State != StateIdle {
		return
	}
	s.decorationsHidden = !s.decorationsHidden
	s.engine.SetDecorations(s.views, s.decorationsHidden)
	s.toggle.run(s.restingAlpha(), nil)
}

// Close runs the explicit close sequence: decorations fade out, the close
// transition plays, then OnClosed fires. It reports whether the call started
// or scheduled a close. A close while presenting or while a swipe is in
// progress is deferred until that resolves; repeated calls are no-ops.
func (s *Session) Close() bool {
	if s.disposed || s.closeInFlight || s.pendingClose {
		return false
	}
	switch s.state.State {
	case StatePresenting, StateInteractiveDismiss:
		s.pendingClose = true
		return true
	case StateIdle:
	default:
		return false
	}

	s.closeInFlight = true
	s.toggle.stop()
	s.setState(StateClosing, 0)
	s.closeFade.run(0, func() {
		s.engine.Close(CloseRequest{
			Bounds:    s.container.Bounds(),
			UseAnchor: s.currentIndex == s.startIndex,
			FromAlpha: s.backgroundAlpha,
		}, s.closeDone)
	})
	return true
}

func (s *Session) closeDone() {
	s.setState(StateDismissed, 0)
	if !s.closedOnce {
		s.closedOnce = true
		s.call("gallery.OnClosed", s.callbacks.OnClosed)
	}
	s.Dispose()
}

func (s *Session) runPendingClose() {
	if s.pendingClose {
		s.pendingClose = false
		s.Close()
	}
}

// Detail forwards a detail request for the current item to the host.
func (s *Session) Detail() {
	if s.disposed || s.actions == nil {
		return
	}
	index := s.currentIndex
	s.call("gallery.Detail", func() { s.actions.Detail(index) })
}

// Share forwards a share request for the current item to the host.
func (s *Session) Share() {
	if s.disposed || s.actions == nil {
		return
	}
	index := s.currentIndex
	s.call("gallery.Share", func() { s.actions.Share(index) })
}

// Layout positions the decorations for the container's current bounds. The
// host calls it on every layout pass.
func (s *Session) Layout() {
	if s.disposed {
		return
	}
	s.decorations.layout(s.spec, s.container.Bounds(), s.container.SafeAreaInsets())
}

// Dispose releases the session's subscriptions and stops its animations.
// It runs automatically once the session is dismissed and is safe to call
// more than once.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.env != nil && s.spec.StatusBarHidden {
		s.env.SetWindowLevel(WindowLevelNormal)
	}
	s.rotation.dispose()
	s.toggle.dispose()
	s.closeFade.dispose()
	s.engine.Dispose()
}

func (s *Session) wireButtons() {
	for _, b := range []struct {
		view   View
		action func()
	}{
		{s.decorations.Close, func() { s.Close() }},
		{s.decorations.Detail, s.Detail},
		{s.decorations.Share, s.Share},
	} {
		if t, ok := b.view.(Tappable); ok {
			t.OnTap(b.action)
		}
	}
}

func (s *Session) applyFrame(f TransitionFrame) {
	s.backgroundAlpha = f.BackgroundAlpha
	s.container.ApplyTransition(f)
}

func (s *Session) restingAlpha() float64 {
	if s.decorationsHidden {
		return 0
	}
	return 1
}

func (s *Session) setAlphas(alpha float64) {
	for _, v := range s.views {
		v.SetAlpha(alpha)
	}
}

func (s *Session) setState(state State, progress float64) {
	next := TransitionState{State: state, Progress: progress}
	if next == s.state {
		return
	}
	s.state = next
	if fn := s.callbacks.OnStateChange; fn != nil {
		s.call("gallery.OnStateChange", func() { fn(next) })
	}
}

func (s *Session) call(op string, fn func()) {
	if fn == nil {
		return
	}
	defer errors.Recover(op)
	fn()
}

func (s *Session) report(op string, kind errors.ErrorKind, err error) {
	errors.Report(&errors.GalleryError{
		Op:        op,
		Kind:      kind,
		SessionID: s.id,
		Err:       err,
	})
}
