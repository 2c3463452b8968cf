package util

import (
	"time"
)

// Timer helps measure elapsed time.
type Timer struct {
	start time.Time
}

// NewTimer creates and starts a new Timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the Timer was started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Ms returns the elapsed time in milliseconds since the Timer was started.
func (t *Timer) Ms() float64 {
	return float64(t.Elapsed().Nanoseconds()) / 1e6
}
