package testing

import (
	"github.com/go-drift/gallery/pkg/gallery"
	"github.com/go-drift/gallery/pkg/graphics"
)

// FakeView is a recording decoration view.
type FakeView struct {
	frame        graphics.Rect
	alpha        float64
	autoresizing gallery.Autoresizing
	// Frames counts SetFrame calls.
	Frames int
}

// NewFakeView returns a view of the given size at the origin, fully opaque.
func NewFakeView(width, height float64) *FakeView {
	return &FakeView{frame: graphics.RectFromLTWH(0, 0, width, height), alpha: 1}
}

func (v *FakeView) Frame() graphics.Rect { return v.frame }

func (v *FakeView) SetFrame(r graphics.Rect) {
	v.frame = r
	v.Frames++
}

func (v *FakeView) Alpha() float64 { return v.alpha }

func (v *FakeView) SetAlpha(a float64) { v.alpha = a }

func (v *FakeView) Autoresizing() gallery.Autoresizing { return v.autoresizing }

func (v *FakeView) SetAutoresizing(m gallery.Autoresizing) { v.autoresizing = m }

// FakeButton is a FakeView that accepts a tap handler.
type FakeButton struct {
	FakeView
	onTap func()
}

// NewFakeButton returns a button of the given size.
func NewFakeButton(width, height float64) *FakeButton {
	return &FakeButton{FakeView: *NewFakeView(width, height)}
}

func (b *FakeButton) OnTap(fn func()) { b.onTap = fn }

// Tap invokes the registered tap handler, if any.
func (b *FakeButton) Tap() {
	if b.onTap != nil {
		b.onTap()
	}
}

// FakeSizedView is a FakeView whose fitted height is fixed.
type FakeSizedView struct {
	FakeView
	FitHeight float64
}

// NewFakeSizedView returns a view that reports fitHeight for any width.
func NewFakeSizedView(width, height, fitHeight float64) *FakeSizedView {
	return &FakeSizedView{FakeView: *NewFakeView(width, height), FitHeight: fitHeight}
}

func (v *FakeSizedView) SizeThatFits(width float64) graphics.Size {
	return graphics.Size{Width: width, Height: v.FitHeight}
}

// FakeSource is a displacement source that can be detached.
type FakeSource struct {
	Rect       graphics.Rect
	IsAttached bool
	IsHidden   bool
	// HiddenChanges counts SetHidden calls.
	HiddenChanges int
}

// NewFakeSource returns an attached source at rect.
func NewFakeSource(rect graphics.Rect) *FakeSource {
	return &FakeSource{Rect: rect, IsAttached: true}
}

func (s *FakeSource) Attached() bool { return s.IsAttached }

func (s *FakeSource) ScreenFrame() graphics.Rect { return s.Rect }

func (s *FakeSource) SetHidden(hidden bool) {
	s.IsHidden = hidden
	s.HiddenChanges++
}

// Overlay is an overlay inserted into a FakeContainer.
type Overlay struct {
	Frame   graphics.Rect
	Color   graphics.Color
	Removed bool
}

// FakeContainer records everything the session does to its container.
type FakeContainer struct {
	bounds     graphics.Rect
	Safe       graphics.EdgeInsets
	Background graphics.Color
	Transition []gallery.TransitionFrame
	Angle      float64
	Rotations  int
	Overlays   []*Overlay
}

// NewFakeContainer returns a container with the given bounds and a black
// background.
func NewFakeContainer(bounds graphics.Rect) *FakeContainer {
	return &FakeContainer{bounds: bounds, Background: graphics.ColorBlack}
}

func (c *FakeContainer) Bounds() graphics.Rect { return c.bounds }

// SetBounds simulates a host resize.
func (c *FakeContainer) SetBounds(r graphics.Rect) { c.bounds = r }

func (c *FakeContainer) SafeAreaInsets() graphics.EdgeInsets { return c.Safe }

func (c *FakeContainer) SetBackgroundColor(col graphics.Color) { c.Background = col }

func (c *FakeContainer) ApplyTransition(f gallery.TransitionFrame) {
	c.Transition = append(c.Transition, f)
}

func (c *FakeContainer) ApplyRotation(radians float64, bounds graphics.Rect) {
	c.Angle = radians
	c.bounds = bounds
	c.Rotations++
}

func (c *FakeContainer) InsertOverlay(frame graphics.Rect, col graphics.Color) func() {
	o := &Overlay{Frame: frame, Color: col}
	c.Overlays = append(c.Overlays, o)
	return func() { o.Removed = true }
}

// LastFrame returns the most recent transition frame.
func (c *FakeContainer) LastFrame() (gallery.TransitionFrame, bool) {
	if len(c.Transition) == 0 {
		return gallery.TransitionFrame{}, false
	}
	return c.Transition[len(c.Transition)-1], true
}

// UsedGeometry reports whether any transition frame of phase carried
// displacement geometry.
func (c *FakeContainer) UsedGeometry(phase gallery.TransitionPhase) bool {
	for _, f := range c.Transition {
		if f.Phase == phase && f.HasGeometry {
			return true
		}
	}
	return false
}

// FakePager records the page container calls.
type FakePager struct {
	Spacing float64
	Page    *gallery.Page
}

func (p *FakePager) SetInterPageSpacing(s float64) { p.Spacing = s }

func (p *FakePager) SetPage(page *gallery.Page) { p.Page = page }

// FakeContent is page content that records its visibility.
type FakeContent struct {
	Index  int
	Hidden bool
}

func (c *FakeContent) SetHidden(hidden bool) { c.Hidden = hidden }

// FakeProvider builds FakeContent and keeps every piece it built.
type FakeProvider struct {
	Built []*FakeContent
}

func (p *FakeProvider) Content(index int) gallery.PageContent {
	c := &FakeContent{Index: index}
	p.Built = append(p.Built, c)
	return c
}

// FakeEnvironment is a controllable application environment.
type FakeEnvironment struct {
	Aware       bool
	Screen      graphics.Size
	Level       gallery.WindowLevel
	LevelWrites int
	subscribers map[int]func(gallery.Orientation)
	nextID      int
}

// NewFakeEnvironment returns a portrait-locked environment of the given
// screen size.
func NewFakeEnvironment(screen graphics.Size) *FakeEnvironment {
	return &FakeEnvironment{Screen: screen, subscribers: make(map[int]func(gallery.Orientation))}
}

func (e *FakeEnvironment) RotationAware() bool { return e.Aware }

func (e *FakeEnvironment) ScreenSize() graphics.Size { return e.Screen }

func (e *FakeEnvironment) SetWindowLevel(l gallery.WindowLevel) {
	e.Level = l
	e.LevelWrites++
}

func (e *FakeEnvironment) SubscribeOrientation(fn func(gallery.Orientation)) func() {
	id := e.nextID
	e.nextID++
	e.subscribers[id] = fn
	return func() { delete(e.subscribers, id) }
}

// Subscribers returns the number of live orientation subscriptions.
func (e *FakeEnvironment) Subscribers() int { return len(e.subscribers) }

// Rotate delivers an orientation change to every subscriber.
func (e *FakeEnvironment) Rotate(o gallery.Orientation) {
	for _, fn := range e.subscribers {
		fn(o)
	}
}

// FakeActions records detail and share requests.
type FakeActions struct {
	Details []int
	Shares  []int
}

func (a *FakeActions) Detail(index int) { a.Details = append(a.Details, index) }

func (a *FakeActions) Share(index int) { a.Shares = append(a.Shares, index) }
