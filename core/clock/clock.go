package clock

import "time"

// Clock abstracts the current time so slot generation, host selection and
// expiry sweeps can be tested with fixed instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Fixed returns a Clock that always reports t
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

// NowMillis returns the clock's current time as epoch milliseconds
func NowMillis(c Clock) int64 {
	return c.Now().UnixMilli()
}
