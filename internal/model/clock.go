package model

import "time"

// Clock supplies the current wall time. Repositories take a Clock so tests
// can pin "now" to a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock returns a Clock backed by the process-local wall clock.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
