package utils

import "time"

// Clock returns the current time. Tests pin it to a fixed instant.
type Clock func() time.Time

func SystemClock() Clock {
	return time.Now
}

func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
