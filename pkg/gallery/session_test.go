package gallery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/errors"
	"github.com/go-drift/gallery/pkg/gallery"
	"github.com/go-drift/gallery/pkg/graphics"
	gallerytest "github.com/go-drift/gallery/pkg/testing"
)

const settle = 5 * time.Second

type captureHandler struct {
	errs   []*errors.GalleryError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.GalleryError) { h.errs = append(h.errs, err) }

func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func (h *captureHandler) kinds() []errors.ErrorKind {
	out := make([]errors.ErrorKind, len(h.errs))
	for i, e := range h.errs {
		out[i] = e.Kind
	}
	return out
}

func captureReports(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func start(t *testing.T, count, index int, opts ...config.Option) (*gallerytest.Tester, *gallery.Session) {
	t.Helper()
	tester := gallerytest.NewTesterWithT(t)
	s, err := tester.Start(count, index, opts...)
	require.NoError(t, err)
	return tester, s
}

func TestNew_InvalidConstruction(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		start  int
		strip  bool
		target error
	}{
		{name: "zero items", count: 0, start: 0, target: errors.ErrItemCount},
		{name: "negative items", count: -3, start: 0, target: errors.ErrItemCount},
		{name: "negative start", count: 3, start: -1, target: errors.ErrStartIndex},
		{name: "start at count", count: 3, start: 3, target: errors.ErrStartIndex},
		{name: "missing host", count: 3, start: 0, strip: true, target: errors.ErrMissingHost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := gallerytest.NewTesterWithT(t)
			p := tester.Params(tt.count, tt.start)
			if tt.strip {
				p.Container = nil
			}

			s, err := gallery.New(p)
			require.Nil(t, s)
			require.ErrorIs(t, err, tt.target)
			require.Equal(t, errors.KindInvalidConstruction, errors.KindOf(err))
			require.Empty(t, tester.Calls.Landed)
		})
	}
}

func TestNew_LandsStartIndexBeforeAnyCompletion(t *testing.T) {
	for count := 1; count <= 4; count++ {
		for index := 0; index < count; index++ {
			tester, s := start(t, count, index)
			s.Present()
			require.NoError(t, tester.PumpAndSettle(settle))

			require.Equal(t, []string{landed(index), "launched"}, tester.Calls.Log)
		}
	}
}

func TestNew_WiresHost(t *testing.T) {
	tester, s := start(t, 5, 2, config.WithDividerWidth(24))

	require.NotEmpty(t, s.ID())
	require.Equal(t, 24.0, tester.Pager.Spacing)
	require.Equal(t, 2, tester.Pager.Page.Index)
	require.True(t, tester.Pager.Page.ShowDisplaced)
	require.True(t, tester.Pager.Page.Hidden())
	require.Equal(t, gallery.WindowLevelAboveStatusBar, tester.Environment.Level)
	require.Equal(t, 1, tester.Environment.Subscribers())
	require.Same(t, tester.Scheduler(), s.Scheduler())
}

func TestNew_StatusBarVisibleLeavesWindowLevel(t *testing.T) {
	tester, s := start(t, 2, 0, config.WithStatusBarHidden(false))
	s.Dispose()

	require.Zero(t, tester.Environment.LevelWrites)
}

func TestNew_DistinctIDs(t *testing.T) {
	_, a := start(t, 1, 0)
	_, b := start(t, 1, 0)
	require.NotEqual(t, a.ID(), b.ID())
}

func TestPageLanding(t *testing.T) {
	tester, s := start(t, 5, 2)
	require.Equal(t, []int{2}, tester.Calls.Landed)

	s.Dispatch(gallery.PageAppeared(3))

	require.Equal(t, 3, s.CurrentIndex())
	require.Equal(t, []int{2, 3}, tester.Calls.Landed)
}

func TestPageLanding_ArrivalOrder(t *testing.T) {
	tester, s := start(t, 5, 0)
	for _, i := range []int{1, 2, 1, 4, 4} {
		s.Dispatch(gallery.PageAppeared(i))
	}

	require.Equal(t, []int{0, 1, 2, 1, 4, 4}, tester.Calls.Landed)
	require.Equal(t, 4, s.CurrentIndex())
}

func TestPageLanding_OutOfRangeReported(t *testing.T) {
	reports := captureReports(t)
	tester, s := start(t, 3, 0)

	s.Dispatch(gallery.PageAppeared(7))
	s.Dispatch(gallery.PageAppeared(-1))

	require.Equal(t, 0, s.CurrentIndex())
	require.Equal(t, []int{0}, tester.Calls.Landed)
	require.Equal(t, []errors.ErrorKind{errors.KindInvalidEvent, errors.KindInvalidEvent}, reports.kinds())
	require.ErrorIs(t, reports.errs[0], errors.ErrPageIndex)
	require.Equal(t, s.ID(), reports.errs[0].SessionID)
}

func TestDispatch_UnknownKindReported(t *testing.T) {
	reports := captureReports(t)
	_, s := start(t, 3, 0)

	s.Dispatch(gallery.PageEvent{Kind: gallery.EventKind(42)})

	require.Len(t, reports.errs, 1)
	require.ErrorIs(t, reports.errs[0], errors.ErrEventKind)
}

func TestPresent(t *testing.T) {
	tester, s := start(t, 3, 1)
	s.Present()

	require.Equal(t, gallery.StatePresenting, s.TransitionState().State)
	require.True(t, tester.Source.IsHidden)

	first, ok := tester.Container.LastFrame()
	require.True(t, ok)
	require.True(t, first.HasGeometry)
	require.Equal(t, tester.Source.Rect, first.Rect)
	require.Zero(t, first.BackgroundAlpha)
	require.Equal(t, []float64{0, 0, 0, 0, 0}, tester.Alphas())

	require.NoError(t, tester.PumpAndSettle(settle))

	last, _ := tester.Container.LastFrame()
	want := graphics.AspectFit(tester.Source.Rect.Size(), tester.Container.Bounds())
	require.True(t, last.Rect.ApproxEqual(want), "got %v want %v", last.Rect, want)
	require.InDelta(t, 1, last.BackgroundAlpha, 1e-9)
	require.Equal(t, gallery.StateIdle, s.TransitionState().State)
	require.False(t, tester.Pager.Page.Hidden())
	require.False(t, tester.Content.Built[0].Hidden)
	require.False(t, tester.Source.IsHidden)
	require.Equal(t, []float64{1, 1, 1, 1, 1}, tester.Alphas())
	require.Equal(t, 1, tester.Calls.Launched)
}

func TestPresent_PageStaysHiddenUntilCompletion(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Present()

	tester.Pump(0)
	tester.Pump(100 * time.Millisecond)
	require.True(t, tester.Pager.Page.Hidden())
	require.Zero(t, tester.Calls.Launched)

	require.NoError(t, tester.PumpAndSettle(settle))
	require.False(t, tester.Pager.Page.Hidden())
}

func TestPresent_OnlyOnce(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.Equal(t, 1, tester.Calls.Launched)
	require.Equal(t, 1, tester.Calls.Entered(gallery.StatePresenting))
}

func TestPresent_HiddenDecorationsStayHidden(t *testing.T) {
	tester, s := start(t, 3, 0, config.WithDecorationsHiddenOnLaunch(true))
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.True(t, s.DecorationsHidden())
	require.Equal(t, []float64{0, 0, 0, 0, 0}, tester.Alphas())
}

func TestPresent_DetachedSourceFades(t *testing.T) {
	reports := captureReports(t)
	tester, s := start(t, 3, 0)
	tester.Source.IsAttached = false

	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.False(t, tester.Container.UsedGeometry(gallery.PhasePresent))
	require.Equal(t, []errors.ErrorKind{errors.KindStaleAnchor}, reports.kinds())
	require.ErrorIs(t, reports.errs[0], errors.ErrDetachedSource)
	require.Zero(t, tester.Source.HiddenChanges)
	require.Equal(t, 1, tester.Calls.Launched)
}

func TestPresent_NilSourceFadesQuietly(t *testing.T) {
	reports := captureReports(t)
	tester := gallerytest.NewTesterWithT(t)
	p := tester.Params(3, 0)
	p.Source = nil
	s, err := gallery.New(p)
	require.NoError(t, err)

	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.False(t, tester.Container.UsedGeometry(gallery.PhasePresent))
	require.Empty(t, reports.errs)
	s.Dispose()
}

func TestSwipe_DecorationAlpha(t *testing.T) {
	for _, d := range []float64{0, 0.05, 0.1, 1.0 / 6, 0.2, 0.5, 0.99, 1} {
		for _, hidden := range []bool{false, true} {
			tester, s := start(t, 3, 0, config.WithDecorationsHiddenOnLaunch(hidden))
			s.Dispatch(gallery.SwipeDistance(0, d))

			want := graphics.Clamp01(1 - d*6)
			if hidden {
				want = 0
			}
			for _, a := range tester.Alphas() {
				require.InDelta(t, want, a, 1e-9, "d=%v hidden=%v", d, hidden)
			}
		}
	}
}

func TestSwipe_CustomFadeFactor(t *testing.T) {
	timings := config.DefaultTimings()
	timings.SwipeFadeFactor = 2
	tester, s := start(t, 3, 0, config.WithTimings(timings))

	s.Dispatch(gallery.SwipeDistance(0, 0.25))

	for _, a := range tester.Alphas() {
		require.InDelta(t, 0.5, a, 1e-9)
	}
}

func TestSwipe_Background(t *testing.T) {
	tester, s := start(t, 3, 0)

	s.Dispatch(gallery.SwipeDistance(0, 0.5))

	require.Equal(t, graphics.LerpColor(graphics.ColorBlack, graphics.ColorTransparent, 0.5), tester.Container.Background)
	require.Equal(t, gallery.TransitionState{State: gallery.StateInteractiveDismiss, Progress: 0.5}, s.TransitionState())
}

func TestSwipe_ClampsDistance(t *testing.T) {
	tester, s := start(t, 3, 0)

	s.Dispatch(gallery.SwipeDistance(0, -0.4))
	require.Equal(t, gallery.StateIdle, s.TransitionState().State)
	require.Equal(t, []float64{1, 1, 1, 1, 1}, tester.Alphas())

	s.Dispatch(gallery.SwipeDistance(0, 3))
	require.Equal(t, gallery.StateClosing, s.TransitionState().State)
}

func TestSwipe_NaNReported(t *testing.T) {
	reports := captureReports(t)
	_, s := start(t, 3, 0)

	s.Dispatch(gallery.SwipeDistance(0, nan()))

	require.Equal(t, gallery.StateIdle, s.TransitionState().State)
	require.Len(t, reports.errs, 1)
	require.ErrorIs(t, reports.errs[0], errors.ErrSwipeDistance)
}

func TestSwipe_CancelRestoresAlphas(t *testing.T) {
	for _, hidden := range []bool{false, true} {
		tester, s := start(t, 3, 0, config.WithDecorationsHiddenOnLaunch(hidden))
		want := tester.Alphas()

		s.Dispatch(gallery.SwipeDistance(0, 0.1))
		s.Dispatch(gallery.SwipeDistance(0, 0.12))
		s.Dispatch(gallery.SwipeDistance(0, 0))

		require.Equal(t, gallery.StateIdle, s.TransitionState().State)
		require.Equal(t, want, tester.Alphas())
		require.Equal(t, graphics.ColorBlack, tester.Container.Background)
	}
}

func TestSwipe_DismissOnce(t *testing.T) {
	tester, s := start(t, 5, 2)

	s.Dispatch(gallery.SwipeDistance(2, 0.6))
	s.Dispatch(gallery.SwipeDistance(2, 1))
	s.Dispatch(gallery.SwipeDistance(2, 1))
	s.Dispatch(gallery.SwipeDistance(2, 0))
	require.NoError(t, tester.PumpAndSettle(settle))

	require.Equal(t, 1, tester.Calls.Entered(gallery.StateClosing))
	require.Equal(t, 1, tester.Calls.Dismissed)
	require.Zero(t, tester.Calls.Closed)
	require.Equal(t, gallery.StateDismissed, s.TransitionState().State)
	require.False(t, tester.Container.UsedGeometry(gallery.PhaseClose))
	require.Zero(t, tester.Environment.Subscribers())
}

func TestSwipe_IgnoredWhilePresenting(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Present()

	s.Dispatch(gallery.SwipeDistance(0, 1))
	require.NoError(t, tester.PumpAndSettle(settle))

	require.Zero(t, tester.Calls.Dismissed)
	require.Equal(t, gallery.StateIdle, s.TransitionState().State)
}

func TestToggle_RoundTrip(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))
	before := tester.Alphas()

	s.Dispatch(gallery.SingleTap(0))
	require.NoError(t, tester.PumpAndSettle(settle))
	require.True(t, s.DecorationsHidden())
	require.Equal(t, []float64{0, 0, 0, 0, 0}, tester.Alphas())

	s.Dispatch(gallery.SingleTap(0))
	require.NoError(t, tester.PumpAndSettle(settle))
	require.False(t, s.DecorationsHidden())
	require.Equal(t, before, tester.Alphas())
}

func TestToggle_ReentrantTapFollowsLogicalFlag(t *testing.T) {
	tester, s := start(t, 3, 0)

	s.Dispatch(gallery.SingleTap(0))
	tester.Pump(0)
	tester.Pump(70 * time.Millisecond)
	mid := tester.Alphas()[0]
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)

	s.Dispatch(gallery.SingleTap(0))
	require.False(t, s.DecorationsHidden())
	require.NoError(t, tester.PumpAndSettle(settle))
	require.Equal(t, []float64{1, 1, 1, 1, 1}, tester.Alphas())
}

func TestToggle_FromPageContent(t *testing.T) {
	tester, s := start(t, 3, 1)

	tester.Pager.Page.Tapped()

	require.True(t, s.DecorationsHidden())
}

func TestClose_Idempotent(t *testing.T) {
	tester, s := start(t, 5, 2)
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.True(t, s.Close())
	require.False(t, s.Close())
	tester.Decorations.Close.Tap()
	require.NoError(t, tester.PumpAndSettle(settle))
	require.False(t, s.Close())

	require.Equal(t, 1, tester.Calls.Closed)
	require.Zero(t, tester.Calls.Dismissed)
	require.Equal(t, gallery.StateDismissed, s.TransitionState().State)
}

func TestClose_ViaButton(t *testing.T) {
	tester, s := start(t, 3, 0)

	tester.Decorations.Close.Tap()
	tester.Decorations.Close.Tap()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.Equal(t, 1, tester.Calls.Closed)
	require.Equal(t, gallery.StateDismissed, s.TransitionState().State)
}

func TestClose_FadesDecorationsFirst(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Close()

	tester.Pump(0)
	tester.Pump(50 * time.Millisecond)
	require.Empty(t, tester.Container.Transition)
	mid := tester.Alphas()[0]
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)

	tester.Pump(50 * time.Millisecond)
	require.Equal(t, []float64{0, 0, 0, 0, 0}, tester.Alphas())
	require.NotEmpty(t, tester.Container.Transition)
	require.Equal(t, gallery.PhaseClose, tester.Container.Transition[0].Phase)
	require.Zero(t, tester.Calls.Closed)

	require.NoError(t, tester.PumpAndSettle(settle))
	require.Equal(t, 1, tester.Calls.Closed)
}

func TestClose_AtStartIndexUsesGeometry(t *testing.T) {
	tester, s := start(t, 5, 2)
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))

	s.Close()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.True(t, tester.Container.UsedGeometry(gallery.PhaseClose))
	last, _ := tester.Container.LastFrame()
	require.Equal(t, gallery.PhaseClose, last.Phase)
	require.True(t, last.Rect.ApproxEqual(tester.Source.Rect))
	require.InDelta(t, 0, last.BackgroundAlpha, 1e-9)
	require.False(t, tester.Source.IsHidden)
}

func TestClose_AwayFromStartIndexFades(t *testing.T) {
	tester, s := start(t, 5, 2)
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))
	s.Dispatch(gallery.PageAppeared(3))

	s.Close()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.False(t, tester.Container.UsedGeometry(gallery.PhaseClose))
	require.Equal(t, 1, tester.Calls.Closed)
}

func TestClose_BackAtStartIndexUsesGeometry(t *testing.T) {
	tester, s := start(t, 5, 2)
	s.Dispatch(gallery.PageAppeared(3))
	s.Dispatch(gallery.PageAppeared(2))

	s.Close()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.True(t, tester.Container.UsedGeometry(gallery.PhaseClose))
}

func TestClose_DetachedSourceFades(t *testing.T) {
	reports := captureReports(t)
	tester, s := start(t, 5, 2)
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))
	tester.Source.IsAttached = false

	s.Close()
	require.NoError(t, tester.PumpAndSettle(settle))

	require.False(t, tester.Container.UsedGeometry(gallery.PhaseClose))
	require.Equal(t, []errors.ErrorKind{errors.KindStaleAnchor}, reports.kinds())
	require.Equal(t, "gallery.Close", reports.errs[0].Op)
	require.Equal(t, 1, tester.Calls.Closed)
}

func TestClose_DeferredWhilePresenting(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Present()

	require.True(t, s.Close())
	require.False(t, s.Close())
	require.Equal(t, gallery.StatePresenting, s.TransitionState().State)

	require.NoError(t, tester.PumpAndSettle(settle))

	require.Equal(t, []string{landed(0), "launched", "closed"}, tester.Calls.Log)
}

func TestClose_DeferredUntilSwipeCancels(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Dispatch(gallery.SwipeDistance(0, 0.3))

	require.True(t, s.Close())
	require.Equal(t, gallery.StateInteractiveDismiss, s.TransitionState().State)

	s.Dispatch(gallery.SwipeDistance(0, 0))
	require.NoError(t, tester.PumpAndSettle(settle))

	require.Equal(t, 1, tester.Calls.Closed)
	require.Zero(t, tester.Calls.Dismissed)
}

func TestClose_DroppedWhenSwipeDismisses(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Dispatch(gallery.SwipeDistance(0, 0.3))
	s.Close()

	s.Dispatch(gallery.SwipeDistance(0, 1))
	require.NoError(t, tester.PumpAndSettle(settle))

	require.Zero(t, tester.Calls.Closed)
	require.Equal(t, 1, tester.Calls.Dismissed)
}

func TestClose_IgnoresEventsAfterDismissal(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Close()
	require.NoError(t, tester.PumpAndSettle(settle))

	s.Dispatch(gallery.PageAppeared(1))
	s.Dispatch(gallery.SingleTap(1))

	require.Equal(t, []int{0}, tester.Calls.Landed)
	require.Equal(t, 0, s.CurrentIndex())
}

func TestDetailAndShare(t *testing.T) {
	tester, s := start(t, 5, 1)

	tester.Decorations.Detail.Tap()
	s.Dispatch(gallery.PageAppeared(3))
	tester.Decorations.Share.Tap()
	s.Detail()

	require.Equal(t, []int{1, 3}, tester.Actions.Details)
	require.Equal(t, []int{3}, tester.Actions.Shares)
}

func TestDetail_NoHandler(t *testing.T) {
	tester := gallerytest.NewTesterWithT(t)
	p := tester.Params(3, 0)
	p.Actions = nil
	s, err := gallery.New(p)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		s.Detail()
		s.Share()
	})
	s.Dispose()
}

func TestLayout(t *testing.T) {
	tester, s := start(t, 3, 0)
	d := tester.Decorations

	require.Equal(t, graphics.RectFromLTWH(1, 1, 44, 44), d.Close.Frame())
	require.Equal(t, graphics.RectFromLTWH(226, 1, 44, 44), d.Detail.Frame())
	require.Equal(t, graphics.RectFromLTWH(275, 1, 44, 44), d.Share.Frame())
	require.Equal(t, graphics.RectFromLTWH(120, 15, 80, 20), d.Header.Frame())
	require.Equal(t, graphics.RectFromLTWH(1, 439, 200, 40), d.Footer.Frame())

	tester.Container.Safe = graphics.EdgeInsets{Top: 20, Bottom: 34}
	s.Layout()

	require.Equal(t, graphics.RectFromLTWH(1, 21, 44, 44), d.Close.Frame())
	require.Equal(t, graphics.RectFromLTWH(120, 35, 80, 20), d.Header.Frame())
	require.Equal(t, graphics.RectFromLTWH(1, 405, 200, 40), d.Footer.Frame())
}

func TestLayout_FollowsResize(t *testing.T) {
	tester, s := start(t, 3, 0, config.WithFooterLayout(config.BarPinBoth(8, 10, 10)))
	d := tester.Decorations
	require.Equal(t, graphics.RectFromLTWH(10, 412, 300, 60), d.Footer.Frame())

	tester.Container.SetBounds(graphics.RectFromLTWH(0, 0, 480, 320))
	s.Layout()

	require.Equal(t, graphics.RectFromLTWH(10, 252, 460, 60), d.Footer.Frame())
	require.Equal(t, graphics.RectFromLTWH(435, 1, 44, 44), d.Share.Frame())
}

func TestMissingDecorationsAreSkipped(t *testing.T) {
	tester := gallerytest.NewTesterWithT(t)
	p := tester.Params(3, 0)
	p.Decorations = gallery.Decorations{}
	s, err := gallery.New(p)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		s.Present()
		require.NoError(t, tester.PumpAndSettle(settle))
		s.Layout()
		s.Dispatch(gallery.SingleTap(0))
		s.Dispatch(gallery.SwipeDistance(0, 0.4))
		s.Dispatch(gallery.SwipeDistance(0, 0))
		s.Close()
		require.NoError(t, tester.PumpAndSettle(settle))
	})
	require.Equal(t, 1, tester.Calls.Closed)
}

func TestRotation(t *testing.T) {
	tester, s := start(t, 3, 0)
	env := tester.Environment

	env.Rotate(gallery.OrientationLandscapeLeft)
	require.True(t, s.IsRotating())
	require.Len(t, tester.Container.Overlays, 1)
	overlay := tester.Container.Overlays[0]
	require.Equal(t, graphics.RectFromLTWH(-640, -960, 1600, 2400), overlay.Frame)
	require.Equal(t, graphics.ColorBlack, overlay.Color)
	require.Equal(t, graphics.RectFromLTWH(0, 0, 480, 100), tester.Decorations.Footer.Frame())

	env.Rotate(gallery.OrientationLandscapeRight)
	require.Len(t, tester.Container.Overlays, 1)

	tester.Pump(gallerytest.FrameDuration)

	require.False(t, s.IsRotating())
	require.True(t, overlay.Removed)
	require.InDelta(t, gallery.RotationAngle(gallery.OrientationLandscapeLeft), tester.Container.Angle, 1e-9)
	require.Equal(t, graphics.RectFromLTWH(0, 0, 480, 320), tester.Container.Bounds())
	require.Equal(t, graphics.RectFromLTWH(435, 1, 44, 44), tester.Decorations.Share.Frame())

	env.Rotate(gallery.OrientationPortrait)
	tester.Pump(gallerytest.FrameDuration)
	require.InDelta(t, 0, tester.Container.Angle, 1e-9)
	require.Equal(t, graphics.RectFromLTWH(0, 0, 320, 480), tester.Container.Bounds())
	require.Len(t, tester.Container.Overlays, 2)
}

func TestRotation_Ignored(t *testing.T) {
	t.Run("flat orientations", func(t *testing.T) {
		tester, s := start(t, 3, 0)
		for _, o := range []gallery.Orientation{gallery.OrientationFaceUp, gallery.OrientationFaceDown, gallery.OrientationUnknown} {
			tester.Environment.Rotate(o)
		}
		require.False(t, s.IsRotating())
		require.Empty(t, tester.Container.Overlays)
	})

	t.Run("rotation aware application", func(t *testing.T) {
		tester, s := start(t, 3, 0)
		tester.Environment.Aware = true
		tester.Environment.Rotate(gallery.OrientationLandscapeLeft)
		tester.Pump(gallerytest.FrameDuration)

		require.False(t, s.IsRotating())
		require.Empty(t, tester.Container.Overlays)
		require.Zero(t, tester.Container.Rotations)
	})

	t.Run("after dispose", func(t *testing.T) {
		tester, s := start(t, 3, 0)
		s.Dispose()
		tester.Environment.Rotate(gallery.OrientationLandscapeLeft)
		require.Empty(t, tester.Container.Overlays)
	})
}

func TestRotation_Animated(t *testing.T) {
	timings := config.DefaultTimings()
	timings.Rotation = 200 * time.Millisecond
	tester, s := start(t, 3, 0, config.WithTimings(timings))

	tester.Environment.Rotate(gallery.OrientationPortraitUpsideDown)
	tester.Pump(0)
	tester.Pump(100 * time.Millisecond)
	require.True(t, s.IsRotating())
	require.Greater(t, tester.Container.Angle, 0.0)

	require.NoError(t, tester.PumpAndSettle(settle))
	require.False(t, s.IsRotating())
	require.InDelta(t, gallery.RotationAngle(gallery.OrientationPortraitUpsideDown), tester.Container.Angle, 1e-9)
	require.True(t, tester.Container.Overlays[0].Removed)
}

func TestDispose(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Present()
	tester.Pump(0)

	s.Dispose()
	s.Dispose()

	require.Zero(t, tester.Environment.Subscribers())
	require.Equal(t, gallery.WindowLevelNormal, tester.Environment.Level)
	require.Equal(t, 2, tester.Environment.LevelWrites)
	require.False(t, tester.Scheduler().HasActiveTickers())

	s.Dispatch(gallery.PageAppeared(1))
	require.False(t, s.Close())
	require.Equal(t, []int{0}, tester.Calls.Landed)
	require.Zero(t, tester.Calls.Launched)
}

func TestCallbackPanicsAreRecovered(t *testing.T) {
	reports := captureReports(t)
	tester := gallerytest.NewTesterWithT(t)
	p := tester.Params(3, 0)
	p.Callbacks.OnPageLanded = func(int) { panic("host bug") }

	s, err := gallery.New(p)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Len(t, reports.panics, 1)
	require.Equal(t, "gallery.OnPageLanded", reports.panics[0].Op)
	s.Dispose()
}

func TestStateChanges(t *testing.T) {
	tester, s := start(t, 3, 0)
	s.Present()
	require.NoError(t, tester.PumpAndSettle(settle))
	s.Close()
	require.NoError(t, tester.PumpAndSettle(settle))

	var states []gallery.State
	for _, st := range tester.Calls.States {
		states = append(states, st.State)
	}
	require.Equal(t, []gallery.State{
		gallery.StatePresenting,
		gallery.StateIdle,
		gallery.StateClosing,
		gallery.StateDismissed,
	}, states)
}

func TestSnapshot_ToggleRoundTrip(t *testing.T) {
	tester, s := start(t, 3, 0)
	before := tester.CaptureSnapshot()

	s.Dispatch(gallery.SingleTap(0))
	require.NoError(t, tester.PumpAndSettle(settle))
	require.NotEmpty(t, tester.CaptureSnapshot().Diff(before))

	s.Dispatch(gallery.SingleTap(0))
	require.NoError(t, tester.PumpAndSettle(settle))
	require.Empty(t, tester.CaptureSnapshot().Diff(before))
}

func landed(i int) string {
	return "landed(" + string(rune('0'+i)) + ")"
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
