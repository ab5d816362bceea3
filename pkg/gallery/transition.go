package gallery

import (
	"fmt"

	"github.com/go-drift/gallery/pkg/animation"
	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/errors"
	"github.com/go-drift/gallery/pkg/graphics"
)

// TransitionPhase distinguishes present frames from close frames.
type TransitionPhase int

const (
	PhasePresent TransitionPhase = iota
	PhaseClose
)

func (p TransitionPhase) String() string {
	switch p {
	case PhasePresent:
		return "present"
	case PhaseClose:
		return "close"
	default:
		return fmt.Sprintf("TransitionPhase(%d)", int(p))
	}
}

// TransitionFrame is one rendered step of a present or close transition.
type TransitionFrame struct {
	Phase TransitionPhase
	// HasGeometry is false for fade-only transitions, in which case Rect is
	// the zero value and only BackgroundAlpha changes.
	HasGeometry bool
	// Rect is the frame of the displaced image in container coordinates.
	Rect graphics.Rect
	// BackgroundAlpha is the opacity of the black backdrop.
	BackgroundAlpha float64
	// Progress is the eased transition progress in [0, 1].
	Progress float64
}

// CloseRequest parameterizes a close transition.
type CloseRequest struct {
	Bounds graphics.Rect
	// UseAnchor asks for displacement geometry back to the source. It should
	// only be set while the start page is on screen.
	UseAnchor bool
	// FromAlpha is the backdrop opacity when the close starts.
	FromAlpha float64
}

// TransitionEngine runs the present and close transitions. It borrows the
// displacement source and the decoration views; it owns neither.
type TransitionEngine struct {
	// SessionID tags reported errors.
	SessionID string

	source      DisplacementSource
	onFrame     func(TransitionFrame)
	present     *animation.AnimationController
	close       *animation.AnimationController
	decorations []View
	hidden      bool

	run activeRun
}

// activeRun holds the per-run interpolation state.
type activeRun struct {
	phase      TransitionPhase
	geometry   bool
	rect       *animation.Tween[graphics.Rect]
	background *animation.Tween[float64]
	decoration *animation.Tween[float64]
	hideSource bool
	done       func()
}

// NewTransitionEngine builds an engine whose durations come from t.
// onFrame receives every frame; it may be nil.
func NewTransitionEngine(s *animation.Scheduler, t config.Timings, source DisplacementSource, onFrame func(TransitionFrame)) *TransitionEngine {
	e := &TransitionEngine{
		source:  source,
		onFrame: onFrame,
		present: animation.NewAnimationController(s, t.Present),
		close:   animation.NewAnimationController(s, t.Close),
	}
	e.present.Curve = animation.EaseOut
	e.close.Curve = animation.IOSNavigationCurve
	e.present.AddListener(func() { e.emit(e.present.Value) })
	e.close.AddListener(func() { e.emit(e.close.Value) })
	return e
}

// SetDecorations hands the engine the decoration views to fade in during
// the present transition. Hidden decorations stay at alpha 0.
func (e *TransitionEngine) SetDecorations(views []View, hidden bool) {
	e.decorations = views
	e.hidden = hidden
}

// Active reports whether a transition is running.
func (e *TransitionEngine) Active() bool {
	return e.present.IsAnimating() || e.close.IsAnimating()
}

// Present runs the present transition and calls done exactly once when it
// completes. It reports whether displacement geometry is used.
func (e *TransitionEngine) Present(bounds graphics.Rect, done func()) bool {
	e.Stop()

	run := activeRun{
		phase:      PhasePresent,
		background: animation.TweenFloat64(0, 1),
		done:       done,
	}
	if from, ok := e.anchor("gallery.Present"); ok {
		run.geometry = true
		run.hideSource = true
		run.rect = animation.TweenRect(from, graphics.AspectFit(from.Size(), bounds))
	}
	if !e.hidden {
		run.decoration = animation.TweenFloat64(0, 1)
	}
	for _, v := range e.decorations {
		v.SetAlpha(0)
	}
	e.start(run, e.present)
	return run.geometry
}

// Close runs the close transition and calls done exactly once when it
// completes. It reports whether displacement geometry is used; without the
// anchor, or when the source has gone away, the close is a plain fade.
func (e *TransitionEngine) Close(req CloseRequest, done func()) bool {
	e.Stop()

	run := activeRun{
		phase:      PhaseClose,
		background: animation.TweenFloat64(req.FromAlpha, 0),
		done:       done,
	}
	if req.UseAnchor {
		if to, ok := e.anchor("gallery.Close"); ok {
			run.geometry = true
			run.hideSource = true
			run.rect = animation.TweenRect(graphics.AspectFit(to.Size(), req.Bounds), to)
		}
	}
	e.start(run, e.close)
	return run.geometry
}

// Stop abandons any running transition without calling its completion.
func (e *TransitionEngine) Stop() {
	e.present.Stop()
	e.close.Stop()
	if e.run.hideSource && e.source != nil && e.source.Attached() {
		e.source.SetHidden(false)
	}
	e.run = activeRun{}
}

// Dispose stops the engine and drops its listeners.
func (e *TransitionEngine) Dispose() {
	e.Stop()
	e.present.Dispose()
	e.close.Dispose()
}

func (e *TransitionEngine) start(run activeRun, c *animation.AnimationController) {
	e.run = run
	if run.hideSource {
		e.source.SetHidden(true)
	}
	e.emit(0)
	c.Play(e.finish)
}

func (e *TransitionEngine) finish() {
	run := e.run
	e.run = activeRun{}
	if run.hideSource && e.source != nil && e.source.Attached() {
		e.source.SetHidden(false)
	}
	if run.done != nil {
		run.done()
	}
}

func (e *TransitionEngine) emit(t float64) {
	run := e.run
	if run.background == nil {
		return
	}
	if run.decoration != nil {
		alpha := run.decoration.Evaluate(t)
		for _, v := range e.decorations {
			v.SetAlpha(alpha)
		}
	}
	if e.onFrame == nil {
		return
	}
	frame := TransitionFrame{
		Phase:           run.phase,
		HasGeometry:     run.geometry,
		BackgroundAlpha: graphics.Clamp01(run.background.Evaluate(t)),
		Progress:        t,
	}
	if run.geometry {
		frame.Rect = run.rect.Evaluate(t)
	}
	e.onFrame(frame)
}

// anchor revalidates the borrowed source. A detached source is reported and
// the caller falls back to a fade.
func (e *TransitionEngine) anchor(op string) (graphics.Rect, bool) {
	if e.source == nil {
		return graphics.Rect{}, false
	}
	if !e.source.Attached() {
		errors.Report(&errors.GalleryError{
			Op:        op,
			Kind:      errors.KindStaleAnchor,
			SessionID: e.SessionID,
			Err:       errors.ErrDetachedSource,
		})
		return graphics.Rect{}, false
	}
	rect := e.source.ScreenFrame()
	if rect.IsEmpty() {
		return graphics.Rect{}, false
	}
	return rect, true
}
