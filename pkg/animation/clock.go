package animation

import "time"

// Clock provides time for animations. Tests inject a fake clock through
// [NewScheduler] to control animation timing deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}
