package gallery

import (
	"testing"

	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/graphics"
)

type fixedSizer float64

func (h fixedSizer) SizeThatFits(width float64) graphics.Size {
	return graphics.Size{Width: width, Height: float64(h)}
}

func TestLayoutButton(t *testing.T) {
	bounds := graphics.RectFromLTWH(0, 0, 400, 800)
	safe := graphics.EdgeInsets{Top: 44, Bottom: 34}
	size := graphics.Size{Width: 30, Height: 30}

	tests := []struct {
		name  string
		rule  config.ButtonLayout
		frame graphics.Rect
		mask  Autoresizing
	}{
		{"pin left", config.PinLeft(2, 8), graphics.RectFromLTWH(8, 46, 30, 30), FlexibleBottomMargin | FlexibleRightMargin},
		{"pin right", config.PinRight(2, 8), graphics.RectFromLTWH(362, 46, 30, 30), FlexibleBottomMargin | FlexibleLeftMargin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, mask := LayoutButton(tt.rule, bounds, safe, size)
			if frame != tt.frame {
				t.Errorf("expected frame %v, got %v", tt.frame, frame)
			}
			if mask != tt.mask {
				t.Errorf("expected mask %b, got %b", tt.mask, mask)
			}
		})
	}
}

func TestLayoutBar(t *testing.T) {
	bounds := graphics.RectFromLTWH(0, 0, 400, 800)
	safe := graphics.EdgeInsets{Top: 44, Bottom: 34}
	size := graphics.Size{Width: 100, Height: 20}

	tests := []struct {
		name  string
		edge  BarEdge
		rule  config.BarLayout
		fit   Sizer
		frame graphics.Rect
		mask  Autoresizing
	}{
		{"header center", EdgeTop, config.BarCenter(15), nil,
			graphics.RectFromLTWH(150, 59, 100, 20), FlexibleBottomMargin | FlexibleLeftMargin | FlexibleRightMargin},
		{"header left", EdgeTop, config.BarPinLeftEdge(5, 10), nil,
			graphics.RectFromLTWH(10, 49, 100, 20), FlexibleBottomMargin | FlexibleRightMargin},
		{"header right", EdgeTop, config.BarPinRightEdge(5, 10), nil,
			graphics.RectFromLTWH(290, 49, 100, 20), FlexibleBottomMargin | FlexibleLeftMargin},
		{"header both without sizer", EdgeTop, config.BarPinBoth(5, 10, 30), nil,
			graphics.RectFromLTWH(10, 49, 360, 20), FlexibleBottomMargin | FlexibleWidth},
		{"footer center", EdgeBottom, config.BarCenter(6), nil,
			graphics.RectFromLTWH(150, 740, 100, 20), FlexibleTopMargin | FlexibleLeftMargin | FlexibleRightMargin},
		{"footer left", EdgeBottom, config.BarPinLeftEdge(1, 1), nil,
			graphics.RectFromLTWH(1, 745, 100, 20), FlexibleTopMargin | FlexibleRightMargin},
		{"footer right", EdgeBottom, config.BarPinRightEdge(1, 4), nil,
			graphics.RectFromLTWH(296, 745, 100, 20), FlexibleTopMargin | FlexibleLeftMargin},
		{"footer both with sizer", EdgeBottom, config.BarPinBoth(0, 20, 20), fixedSizer(64),
			graphics.RectFromLTWH(20, 702, 360, 64), FlexibleTopMargin | FlexibleWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, mask := LayoutBar(tt.edge, tt.rule, bounds, safe, size, tt.fit)
			if frame != tt.frame {
				t.Errorf("expected frame %v, got %v", tt.frame, frame)
			}
			if mask != tt.mask {
				t.Errorf("expected mask %b, got %b", tt.mask, mask)
			}
		})
	}
}

func TestDecorations_AllSkipsNil(t *testing.T) {
	if got := (Decorations{}).all(); len(got) != 0 {
		t.Errorf("expected no views, got %d", len(got))
	}
}

func TestRotationHelpers(t *testing.T) {
	screen := graphics.Size{Width: 320, Height: 480}
	tests := []struct {
		o      Orientation
		bounds graphics.Rect
	}{
		{OrientationPortrait, graphics.RectFromLTWH(0, 0, 320, 480)},
		{OrientationPortraitUpsideDown, graphics.RectFromLTWH(0, 0, 320, 480)},
		{OrientationLandscapeLeft, graphics.RectFromLTWH(0, 0, 480, 320)},
		{OrientationLandscapeRight, graphics.RectFromLTWH(0, 0, 480, 320)},
	}
	for _, tt := range tests {
		if got := RotatedBounds(tt.o, screen); got != tt.bounds {
			t.Errorf("%s: expected %v, got %v", tt.o, tt.bounds, got)
		}
	}
	if RotationAngle(OrientationLandscapeLeft) != -RotationAngle(OrientationLandscapeRight) {
		t.Error("expected landscape angles to mirror")
	}
	if RotationAngle(OrientationPortrait) != 0 {
		t.Error("expected portrait to be unrotated")
	}
}
