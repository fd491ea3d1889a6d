package gameloop

import "time"

// Clock is the loop's time source. Tests substitute a manual clock so
// pacing and dt are exact.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the monotonic wall clock and blocks with time.Sleep.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for at least d.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
