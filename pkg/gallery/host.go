package gallery

import (
	"fmt"

	"github.com/go-drift/gallery/pkg/graphics"
)

// Autoresizing describes how a view follows its container when the container
// resizes between layout passes.
type Autoresizing uint8

const (
	FlexibleLeftMargin Autoresizing = 1 << iota
	FlexibleRightMargin
	FlexibleTopMargin
	FlexibleBottomMargin
	FlexibleWidth
)

// View is a host view handle. The session sets frame, alpha and
// autoresizing; it never inspects content.
type View interface {
	Frame() graphics.Rect
	SetFrame(graphics.Rect)
	Alpha() float64
	SetAlpha(float64)
	SetAutoresizing(Autoresizing)
}

// Sizer is implemented by views that can report a height for a given width.
// PinBoth header and footer layouts use it.
type Sizer interface {
	SizeThatFits(width float64) graphics.Size
}

// Tappable is implemented by button views that can report taps. The session
// routes close, detail and share taps through it when available.
type Tappable interface {
	OnTap(func())
}

// DisplacementSource is the thumbnail the present and close transitions
// expand from and contract to. It is borrowed: the host may remove it at any
// time, so the session checks Attached before every use.
type DisplacementSource interface {
	Attached() bool
	ScreenFrame() graphics.Rect
	SetHidden(bool)
}

// Container is the gallery's own full-screen view.
type Container interface {
	Bounds() graphics.Rect
	SafeAreaInsets() graphics.EdgeInsets
	SetBackgroundColor(graphics.Color)
	// ApplyTransition renders one frame of the present or close transition.
	ApplyTransition(TransitionFrame)
	// ApplyRotation sets the container transform and bounds.
	ApplyRotation(radians float64, bounds graphics.Rect)
	// InsertOverlay places a view behind the container (in the presenting
	// view) and returns a function that removes it.
	InsertOverlay(frame graphics.Rect, color graphics.Color) (remove func())
}

// PageContainer is the horizontal pager that hosts page content.
type PageContainer interface {
	SetInterPageSpacing(float64)
	SetPage(*Page)
}

// ContentProvider builds the content of a page. Rendering and loading stay
// with the host.
type ContentProvider interface {
	Content(index int) PageContent
}

// PageContent is the host-rendered body of a page.
type PageContent interface {
	SetHidden(bool)
}

// ActionHandler receives the detail and share actions for the current item.
type ActionHandler interface {
	Detail(index int)
	Share(index int)
}

// Orientation is a device orientation reported by the host.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationPortrait
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
	OrientationFaceUp
	OrientationFaceDown
)

func (o Orientation) String() string {
	switch o {
	case OrientationUnknown:
		return "unknown"
	case OrientationPortrait:
		return "portrait"
	case OrientationPortraitUpsideDown:
		return "portrait_upside_down"
	case OrientationLandscapeLeft:
		return "landscape_left"
	case OrientationLandscapeRight:
		return "landscape_right"
	case OrientationFaceUp:
		return "face_up"
	case OrientationFaceDown:
		return "face_down"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// IsLandscape reports whether o is a landscape orientation.
func (o Orientation) IsLandscape() bool {
	return o == OrientationLandscapeLeft || o == OrientationLandscapeRight
}

// IsPortrait reports whether o is a portrait orientation.
func (o Orientation) IsPortrait() bool {
	return o == OrientationPortrait || o == OrientationPortraitUpsideDown
}

// IsFlat reports whether o carries no usable rotation.
func (o Orientation) IsFlat() bool {
	return !o.IsLandscape() && !o.IsPortrait()
}

// WindowLevel is the stacking level of the host window.
type WindowLevel int

const (
	WindowLevelNormal WindowLevel = iota
	WindowLevelAboveStatusBar
)

// Environment is the application-level context a session needs. It replaces
// global lookups of the key window and orientation notifications.
type Environment interface {
	// RotationAware reports whether the application rotates its own
	// windows. When true the session leaves rotation alone.
	RotationAware() bool
	ScreenSize() graphics.Size
	SetWindowLevel(WindowLevel)
	// SubscribeOrientation registers fn for orientation changes and
	// returns a function that removes the subscription.
	SubscribeOrientation(fn func(Orientation)) (unsubscribe func())
}
