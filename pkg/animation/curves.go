package animation

import "math"

// Curves map linear progress t in [0, 1] to eased progress. The gallery uses
// EaseOut for the present displacement, EaseInOut for decoration fades and
// IOSNavigationCurve for the slower close.

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 { return t }

var (
	// IOSNavigationCurve approximates the system navigation transition.
	IOSNavigationCurve = CubicBezier(0.22, 1.0, 0.36, 1.0)
	// EaseIn starts slowly and accelerates.
	EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// EaseOut starts quickly and decelerates.
	EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)
	// EaseInOut starts and ends slowly.
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// CubicBezier returns an easing function through (0,0) and (1,1) with
// control points (x1,y1) and (x2,y2), as in CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	b := newUnitBezier(x1, y1, x2, y2)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return b.y(b.solveX(t))
	}
}

const bezierEpsilon = 1e-7

// unitBezier holds the polynomial form of a cubic bezier with fixed end
// points, a*t^3 + b*t^2 + c*t, for each axis.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newUnitBezier(x1, y1, x2, y2 float64) unitBezier {
	var u unitBezier
	u.cx = 3 * x1
	u.bx = 3*(x2-x1) - u.cx
	u.ax = 1 - u.cx - u.bx
	u.cy = 3 * y1
	u.by = 3*(y2-y1) - u.cy
	u.ay = 1 - u.cy - u.by
	return u
}

func (u unitBezier) x(s float64) float64  { return ((u.ax*s+u.bx)*s + u.cx) * s }
func (u unitBezier) y(s float64) float64  { return ((u.ay*s+u.by)*s + u.cy) * s }
func (u unitBezier) dx(s float64) float64 { return (3*u.ax*s+2*u.bx)*s + u.cx }

// solveX finds the curve parameter whose x is t. Newton's method usually
// converges in a few steps; bisection covers flat derivatives.
func (u unitBezier) solveX(t float64) float64 {
	s := t
	for range 8 {
		err := u.x(s) - t
		if math.Abs(err) < bezierEpsilon {
			return s
		}
		d := u.dx(s)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		s -= err / d
	}

	lo, hi := 0.0, 1.0
	s = t
	for range 30 {
		x := u.x(s)
		if math.Abs(x-t) < bezierEpsilon {
			break
		}
		if x > t {
			hi = s
		} else {
			lo = s
		}
		s = (lo + hi) / 2
	}
	return s
}
