package scheduler

import "time"

// Clock abstracts wall time so cadence behavior is testable against a
// simulated clock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// RealClock is the production clock.
var RealClock Clock = realClock{}
