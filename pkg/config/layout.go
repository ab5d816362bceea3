// Package config resolves the layout options of a gallery session.
//
// Options are directives applied in order, so a later directive for the same
// concern overrides an earlier one. [Resolve] folds them over the defaults
// into an immutable [LayoutSpec]:
//
//	spec := config.Resolve(
//	    config.WithPagingMode(config.PagingInfinite),
//	    config.WithFooterLayout(config.BarPinBoth(0, 8, 8)),
//	)
//
// Options can also come from an optional gallery.yaml, see [LoadOptional].
package config

import (
	"fmt"
	"time"

	"github.com/go-drift/gallery/pkg/graphics"
)

// PagingMode selects whether paging wraps around at the ends.
type PagingMode int

const (
	// PagingStandard stops at the first and last item.
	PagingStandard PagingMode = iota
	// PagingInfinite wraps indices modulo the item count.
	PagingInfinite
)

func (m PagingMode) String() string {
	switch m {
	case PagingStandard:
		return "standard"
	case PagingInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("PagingMode(%d)", int(m))
	}
}

// ButtonPin is the horizontal edge a button is pinned to.
type ButtonPin int

const (
	ButtonPinLeft ButtonPin = iota
	ButtonPinRight
)

// ButtonLayout places a close, detail or share button below the safe-area top.
type ButtonLayout struct {
	Pin ButtonPin
	// Top is the margin below the safe-area top.
	Top float64
	// Side is the margin from the pinned edge.
	Side float64
}

// PinLeft pins a button to the top-left corner.
func PinLeft(top, left float64) ButtonLayout {
	return ButtonLayout{Pin: ButtonPinLeft, Top: top, Side: left}
}

// PinRight pins a button to the top-right corner.
func PinRight(top, right float64) ButtonLayout {
	return ButtonLayout{Pin: ButtonPinRight, Top: top, Side: right}
}

// BarPin is the placement rule for a header or footer.
type BarPin int

const (
	BarPinCenter BarPin = iota
	BarPinLeft
	BarPinRight
	BarPinBothSides
)

// BarLayout places a header (from the safe-area top) or a footer (from the
// safe-area bottom).
type BarLayout struct {
	Pin BarPin
	// Margin is the distance from the safe-area top or bottom.
	Margin float64
	Left   float64
	Right  float64
}

// BarCenter centers the bar horizontally.
func BarCenter(margin float64) BarLayout {
	return BarLayout{Pin: BarPinCenter, Margin: margin}
}

// BarPinLeftEdge pins the bar to the left edge.
func BarPinLeftEdge(margin, left float64) BarLayout {
	return BarLayout{Pin: BarPinLeft, Margin: margin, Left: left}
}

// BarPinRightEdge pins the bar to the right edge.
func BarPinRightEdge(margin, right float64) BarLayout {
	return BarLayout{Pin: BarPinRight, Margin: margin, Right: right}
}

// BarPinBoth stretches the bar between both edges.
func BarPinBoth(margin, left, right float64) BarLayout {
	return BarLayout{Pin: BarPinBothSides, Margin: margin, Left: left, Right: right}
}

// SpinnerStyle is the activity indicator style handed to page content.
type SpinnerStyle int

const (
	SpinnerWhite SpinnerStyle = iota
	SpinnerWhiteLarge
	SpinnerGray
)

// Timings holds the durations of every gallery animation.
type Timings struct {
	Present          time.Duration
	Close            time.Duration
	DecorationToggle time.Duration
	CloseFade        time.Duration
	Rotation         time.Duration
	// SwipeFadeFactor scales swipe distance into decoration fade, so
	// decorations are gone at distance 1/SwipeFadeFactor.
	SwipeFadeFactor float64
}

// DefaultTimings returns the stock animation timings.
func DefaultTimings() Timings {
	return Timings{
		Present:          250 * time.Millisecond,
		Close:            time.Second,
		DecorationToggle: 150 * time.Millisecond,
		CloseFade:        100 * time.Millisecond,
		Rotation:         0,
		SwipeFadeFactor:  6,
	}
}

// LayoutSpec is the resolved, immutable configuration of one session.
type LayoutSpec struct {
	Close  ButtonLayout
	Detail ButtonLayout
	Share  ButtonLayout
	Header BarLayout
	Footer BarLayout

	Paging                  PagingMode
	StatusBarHidden         bool
	HideDecorationsOnLaunch bool
	DividerWidth            float64
	SpinnerStyle            SpinnerStyle
	SpinnerColor            graphics.Color
	Timings                 Timings
}

// Default returns the LayoutSpec produced by Resolve with no options.
func Default() LayoutSpec {
	return LayoutSpec{
		Close:           PinLeft(1, 1),
		Detail:          PinRight(1, 50),
		Share:           PinRight(1, 1),
		Header:          BarCenter(15),
		Footer:          BarPinLeftEdge(1, 1),
		Paging:          PagingStandard,
		StatusBarHidden: true,
		DividerWidth:    10,
		SpinnerStyle:    SpinnerWhite,
		SpinnerColor:    graphics.ColorWhite,
		Timings:         DefaultTimings(),
	}
}

// Option is a single configuration directive. The set of options is closed:
// only the constructors in this package produce them.
type Option interface {
	apply(*LayoutSpec)
}

type optionFunc func(*LayoutSpec)

func (f optionFunc) apply(s *LayoutSpec) { f(s) }

// Resolve applies opts in order over the defaults.
func Resolve(opts ...Option) LayoutSpec {
	spec := Default()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&spec)
		}
	}
	return spec
}

// WithPagingMode sets standard or infinite paging.
func WithPagingMode(m PagingMode) Option {
	return optionFunc(func(s *LayoutSpec) { s.Paging = m })
}

// WithDividerWidth sets the spacing between pages.
func WithDividerWidth(w float64) Option {
	return optionFunc(func(s *LayoutSpec) { s.DividerWidth = w })
}

// WithStatusBarHidden controls whether the gallery window covers the status bar.
func WithStatusBarHidden(hidden bool) Option {
	return optionFunc(func(s *LayoutSpec) { s.StatusBarHidden = hidden })
}

// WithDecorationsHiddenOnLaunch starts the session with decorations hidden.
func WithDecorationsHiddenOnLaunch(hidden bool) Option {
	return optionFunc(func(s *LayoutSpec) { s.HideDecorationsOnLaunch = hidden })
}

// WithSpinnerStyle sets the page loading indicator style.
func WithSpinnerStyle(style SpinnerStyle) Option {
	return optionFunc(func(s *LayoutSpec) { s.SpinnerStyle = style })
}

// WithSpinnerColor sets the page loading indicator color.
func WithSpinnerColor(c graphics.Color) Option {
	return optionFunc(func(s *LayoutSpec) { s.SpinnerColor = c })
}

// WithCloseLayout places the close button.
func WithCloseLayout(l ButtonLayout) Option {
	return optionFunc(func(s *LayoutSpec) { s.Close = l })
}

// WithDetailLayout places the detail button.
func WithDetailLayout(l ButtonLayout) Option {
	return optionFunc(func(s *LayoutSpec) { s.Detail = l })
}

// WithShareLayout places the share button.
func WithShareLayout(l ButtonLayout) Option {
	return optionFunc(func(s *LayoutSpec) { s.Share = l })
}

// WithHeaderLayout places the header view.
func WithHeaderLayout(l BarLayout) Option {
	return optionFunc(func(s *LayoutSpec) { s.Header = l })
}

// WithFooterLayout places the footer view.
func WithFooterLayout(l BarLayout) Option {
	return optionFunc(func(s *LayoutSpec) { s.Footer = l })
}

// WithTimings replaces all animation timings.
func WithTimings(t Timings) Option {
	return optionFunc(func(s *LayoutSpec) { s.Timings = t })
}
