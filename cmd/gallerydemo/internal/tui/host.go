package tui

import (
	"github.com/go-drift/gallery/pkg/caption"
	"github.com/go-drift/gallery/pkg/gallery"
	"github.com/go-drift/gallery/pkg/graphics"
)

// A terminal cell is treated as an 8x16 point box, so the session lays out
// in points and the view converts back to cells.
const (
	cellWidth  = 8
	cellHeight = 16
)

func cellsToRect(cols, rows int) graphics.Rect {
	return graphics.RectFromLTWH(0, 0, float64(cols*cellWidth), float64(rows*cellHeight))
}

// view is the base terminal view. It only stores what the session sets.
type view struct {
	frame graphics.Rect
	alpha float64
	mask  gallery.Autoresizing
}

func newView(w, h float64) *view {
	return &view{frame: graphics.RectFromLTWH(0, 0, w, h), alpha: 1}
}

func (v *view) Frame() graphics.Rect                   { return v.frame }
func (v *view) SetFrame(r graphics.Rect)               { v.frame = r }
func (v *view) Alpha() float64                         { return v.alpha }
func (v *view) SetAlpha(a float64)                     { v.alpha = a }
func (v *view) SetAutoresizing(m gallery.Autoresizing) { v.mask = m }

// visible reports whether the view is opaque enough to draw.
func (v *view) visible() bool { return v.alpha >= 0.5 }

type button struct {
	*view
	label string
	onTap func()
}

func newButton(label string) *button {
	return &button{view: newView(float64(len(label)+2)*cellWidth, cellHeight), label: label}
}

func (b *button) OnTap(fn func()) { b.onTap = fn }

func (b *button) tap() {
	if b.onTap != nil && b.visible() {
		b.onTap()
	}
}

// footer shows the caption of the current item and sizes itself by
// measuring the composed spans.
type footer struct {
	*view
	spans []caption.Span
}

func (f *footer) SizeThatFits(width float64) graphics.Size {
	m := caption.Measure(f.spans, width)
	return graphics.Size{Width: width, Height: m.Height}
}

type container struct {
	bounds     graphics.Rect
	background graphics.Color
	frame      gallery.TransitionFrame
	angle      float64
	overlays   int
}

func (c *container) Bounds() graphics.Rect                     { return c.bounds }
func (c *container) SafeAreaInsets() graphics.EdgeInsets       { return graphics.EdgeInsets{} }
func (c *container) SetBackgroundColor(col graphics.Color)     { c.background = col }
func (c *container) ApplyTransition(f gallery.TransitionFrame) { c.frame = f }

func (c *container) ApplyRotation(radians float64, bounds graphics.Rect) {
	c.angle = radians
	c.bounds = bounds
}

func (c *container) InsertOverlay(graphics.Rect, graphics.Color) func() {
	c.overlays++
	return func() { c.overlays-- }
}

type pager struct {
	spacing float64
	page    *gallery.Page
}

func (p *pager) SetInterPageSpacing(s float64) { p.spacing = s }
func (p *pager) SetPage(page *gallery.Page)    { p.page = page }

// thumbnail is the grid cell a gallery opens from.
type thumbnail struct {
	frame  graphics.Rect
	hidden bool
}

func (t *thumbnail) Attached() bool             { return true }
func (t *thumbnail) ScreenFrame() graphics.Rect { return t.frame }
func (t *thumbnail) SetHidden(h bool)           { t.hidden = h }

type content struct {
	index  int
	hidden bool
}

func (c *content) SetHidden(h bool) { c.hidden = h }

type provider struct{}

func (provider) Content(index int) gallery.PageContent { return &content{index: index} }

type environment struct {
	aware       bool
	screen      graphics.Size
	level       gallery.WindowLevel
	orientation gallery.Orientation
	subscribers []func(gallery.Orientation)
}

func (e *environment) RotationAware() bool                  { return e.aware }
func (e *environment) ScreenSize() graphics.Size            { return e.screen }
func (e *environment) SetWindowLevel(l gallery.WindowLevel) { e.level = l }

func (e *environment) SubscribeOrientation(fn func(gallery.Orientation)) func() {
	e.subscribers = append(e.subscribers, fn)
	i := len(e.subscribers) - 1
	return func() { e.subscribers[i] = nil }
}

var orientations = []gallery.Orientation{
	gallery.OrientationPortrait,
	gallery.OrientationLandscapeLeft,
	gallery.OrientationPortraitUpsideDown,
	gallery.OrientationLandscapeRight,
}

// rotate advances to the next orientation clockwise and notifies subscribers.
func (e *environment) rotate() {
	next := orientations[0]
	for i, o := range orientations {
		if o == e.orientation {
			next = orientations[(i+1)%len(orientations)]
		}
	}
	e.orientation = next
	for _, fn := range e.subscribers {
		if fn != nil {
			fn(next)
		}
	}
}

// actions turns detail and share into status messages.
type actions struct {
	notify func(string)
	items  []caption.Footer
}

func (a actions) Detail(index int) {
	a.notify("detail: " + a.items[index].Summary)
}

func (a actions) Share(index int) {
	a.notify("shared item " + caption.Counter(index, len(a.items)))
}
