package gallery

import (
	"time"

	"github.com/go-drift/gallery/pkg/animation"
	"github.com/go-drift/gallery/pkg/graphics"
)

// alphaFade animates a set of views from their current alphas to one target.
// Restarting mid-flight picks up from wherever each view currently is.
type alphaFade struct {
	controller *animation.AnimationController
	views      []View
	from       []float64
	to         float64
}

func newAlphaFade(s *animation.Scheduler, d time.Duration, views []View) *alphaFade {
	f := &alphaFade{
		controller: animation.NewAnimationController(s, d),
		views:      views,
	}
	f.controller.Curve = animation.EaseInOut
	f.controller.AddListener(f.apply)
	return f
}

func (f *alphaFade) run(to float64, done func()) {
	f.controller.Stop()
	f.from = f.from[:0]
	for _, v := range f.views {
		f.from = append(f.from, v.Alpha())
	}
	f.to = to
	f.controller.Play(done)
}

func (f *alphaFade) apply() {
	t := f.controller.Value
	for i, v := range f.views {
		if i < len(f.from) {
			v.SetAlpha(graphics.LerpFloat64(f.from[i], f.to, t))
		}
	}
}

func (f *alphaFade) active() bool { return f.controller.IsAnimating() }

func (f *alphaFade) stop() { f.controller.Stop() }

func (f *alphaFade) dispose() {
	f.controller.Stop()
	f.controller.Dispose()
}
