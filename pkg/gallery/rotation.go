package gallery

import (
	"math"

	"github.com/go-drift/gallery/pkg/animation"
	"github.com/go-drift/gallery/pkg/graphics"
)

// footerRotationHeight is the footer height while rotating.
const footerRotationHeight = 100

// overlayScale is how many screen sizes the rotation overlay spans, so the
// mask still covers the presenting view at any intermediate angle.
const overlayScale = 5

// rotation rotates the container itself for applications that are locked to
// portrait but still want the gallery to follow the device.
type rotation struct {
	s          *Session
	controller *animation.AnimationController
	from       float64
	to         float64
	bounds     graphics.Rect
	remove     func()
}

func newRotation(s *Session) *rotation {
	r := &rotation{
		s:          s,
		controller: animation.NewAnimationController(s.scheduler, s.spec.Timings.Rotation),
	}
	r.controller.AddListener(r.apply)
	return r
}

// RotationAngle returns the container rotation for a device orientation.
func RotationAngle(o Orientation) float64 {
	switch o {
	case OrientationLandscapeLeft:
		return math.Pi / 2
	case OrientationLandscapeRight:
		return -math.Pi / 2
	case OrientationPortraitUpsideDown:
		return math.Pi
	default:
		return 0
	}
}

// RotatedBounds returns the container bounds for a device orientation.
// Landscape swaps the screen's width and height.
func RotatedBounds(o Orientation, screen graphics.Size) graphics.Rect {
	if o.IsLandscape() {
		screen = screen.Swapped()
	}
	return graphics.RectFromLTWH(0, 0, screen.Width, screen.Height)
}

func (s *Session) orientationChanged(o Orientation) {
	if s.disposed || s.env == nil || s.env.RotationAware() {
		return
	}
	if o.IsFlat() || s.isRotating {
		return
	}
	switch s.state.State {
	case StateClosing, StateDismissed:
		return
	}
	s.isRotating = true
	s.rotation.start(o, s.env.ScreenSize())
}

func (r *rotation) start(o Orientation, screen graphics.Size) {
	s := r.s
	overlay := graphics.RectFromCenter(s.container.Bounds().Center(), graphics.Size{
		Width:  screen.Width * overlayScale,
		Height: screen.Height * overlayScale,
	})
	r.remove = s.container.InsertOverlay(overlay, graphics.ColorBlack)

	if footer := s.decorations.Footer; footer != nil {
		width := screen.Width
		if o.IsLandscape() {
			width = screen.Height
		}
		footer.SetFrame(graphics.RectFromLTWH(0, 0, width, footerRotationHeight))
	}

	r.from = s.angle
	r.to = RotationAngle(o)
	r.bounds = RotatedBounds(o, screen)
	r.controller.Play(r.finish)
}

func (r *rotation) apply() {
	s := r.s
	s.angle = graphics.LerpFloat64(r.from, r.to, r.controller.Value)
	s.container.ApplyRotation(s.angle, r.bounds)
	s.Layout()
}

func (r *rotation) finish() {
	r.removeOverlay()
	r.s.isRotating = false
}

func (r *rotation) removeOverlay() {
	if r.remove != nil {
		r.remove()
		r.remove = nil
	}
}

func (r *rotation) dispose() {
	r.controller.Stop()
	r.controller.Dispose()
	r.removeOverlay()
	r.s.isRotating = false
}
