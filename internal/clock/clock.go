package clock

import "time"

// Clock abstracts wall-clock time so services can be tested against a
// frozen clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
