package gallery

import (
	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/graphics"
)

// Decorations are the optional overlay views layered above the pages.
// Nil slots are skipped by layout and animation.
type Decorations struct {
	Close  View
	Detail View
	Share  View
	Header View
	Footer View
}

// all returns the non-nil decoration views.
func (d Decorations) all() []View {
	views := make([]View, 0, 5)
	for _, v := range []View{d.Close, d.Detail, d.Share, d.Header, d.Footer} {
		if v != nil {
			views = append(views, v)
		}
	}
	return views
}

// layout positions every present decoration inside bounds.
func (d Decorations) layout(spec config.LayoutSpec, bounds graphics.Rect, safe graphics.EdgeInsets) {
	place := func(v View, frame graphics.Rect, mask Autoresizing) {
		v.SetAutoresizing(mask)
		v.SetFrame(frame)
	}
	for _, b := range []struct {
		view View
		rule config.ButtonLayout
	}{
		{d.Close, spec.Close},
		{d.Detail, spec.Detail},
		{d.Share, spec.Share},
	} {
		if b.view == nil {
			continue
		}
		frame, mask := LayoutButton(b.rule, bounds, safe, b.view.Frame().Size())
		place(b.view, frame, mask)
	}
	if d.Header != nil {
		frame, mask := LayoutBar(EdgeTop, spec.Header, bounds, safe, d.Header.Frame().Size(), sizerOf(d.Header))
		place(d.Header, frame, mask)
	}
	if d.Footer != nil {
		frame, mask := LayoutBar(EdgeBottom, spec.Footer, bounds, safe, d.Footer.Frame().Size(), sizerOf(d.Footer))
		place(d.Footer, frame, mask)
	}
}

func sizerOf(v View) Sizer {
	if s, ok := v.(Sizer); ok {
		return s
	}
	return nil
}

// BarEdge is the safe-area edge a bar is anchored to.
type BarEdge int

const (
	// EdgeTop anchors a header below the safe-area top.
	EdgeTop BarEdge = iota
	// EdgeBottom anchors a footer above the safe-area bottom.
	EdgeBottom
)

// LayoutButton computes the frame of a button of the given size. Buttons
// hang below the safe-area top.
func LayoutButton(l config.ButtonLayout, bounds graphics.Rect, safe graphics.EdgeInsets, size graphics.Size) (graphics.Rect, Autoresizing) {
	y := bounds.Top + safe.Top + l.Top
	switch l.Pin {
	case config.ButtonPinRight:
		x := bounds.Right - l.Side - size.Width
		return graphics.RectFromLTWH(x, y, size.Width, size.Height), FlexibleBottomMargin | FlexibleLeftMargin
	default:
		x := bounds.Left + l.Side
		return graphics.RectFromLTWH(x, y, size.Width, size.Height), FlexibleBottomMargin | FlexibleRightMargin
	}
}

// LayoutBar computes the frame of a header or footer. PinBothSides bars take
// the full width between the margins and, when fit is non-nil, the height it
// reports for that width.
func LayoutBar(edge BarEdge, l config.BarLayout, bounds graphics.Rect, safe graphics.EdgeInsets, size graphics.Size, fit Sizer) (graphics.Rect, Autoresizing) {
	var x float64
	var mask Autoresizing
	switch l.Pin {
	case config.BarPinCenter:
		x = bounds.Center().X - size.Width/2
		mask = FlexibleLeftMargin | FlexibleRightMargin
	case config.BarPinBothSides:
		size.Width = bounds.Width() - l.Left - l.Right
		if fit != nil {
			size.Height = fit.SizeThatFits(size.Width).Height
		}
		x = bounds.Left + l.Left
		mask = FlexibleWidth
	case config.BarPinRight:
		x = bounds.Right - l.Right - size.Width
		mask = FlexibleLeftMargin
	default:
		x = bounds.Left + l.Left
		mask = FlexibleRightMargin
	}

	var y float64
	if edge == EdgeBottom {
		y = bounds.Bottom - size.Height - safe.Bottom - l.Margin
		mask |= FlexibleTopMargin
	} else {
		y = bounds.Top + safe.Top + l.Margin
		mask |= FlexibleBottomMargin
	}
	return graphics.RectFromLTWH(x, y, size.Width, size.Height), mask
}
