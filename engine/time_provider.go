package engine

import "time"

// Timer is a one-shot timer whose channel receives once when it expires
type Timer interface {
	C() <-chan time.Time
	// Stop prevents the timer from firing, reports false if it already fired or was stopped
	Stop() bool
}

// Clock supplies wall time and timers to the game loop
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// NewTimer arms a runtime timer
func (p *TimeProvider) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) C() <-chan time.Time { return r.t.C }

func (r *realTimer) Stop() bool { return r.t.Stop() }
