package carousel

import "time"

// Timer is the handle of a pending callback.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks. The carousel never sleeps; every
// delay goes through AfterFunc so tests can substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock runs callbacks on the runtime timer.
var RealClock Clock = realClock{}
