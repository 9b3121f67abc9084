package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Timers fire only when Advance/SetTime moves the clock past their deadline
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer

	// armed receives the duration of every timer created, lets tests sync with the loop
	armed chan time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		armed:       make(chan time.Duration, 16),
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// NewTimer registers a timer against mocked time
func (m *MockTimeProvider) NewTimer(d time.Duration) Timer {
	m.mu.Lock()
	t := &mockTimer{
		owner:    m,
		deadline: m.currentTime.Add(d),
		ch:       make(chan time.Time, 1),
	}
	if d <= 0 {
		t.fired = true
		t.ch <- m.currentTime
	} else {
		m.timers = append(m.timers, t)
	}
	m.mu.Unlock()

	select {
	case m.armed <- d:
	default:
	}
	return t
}

// Armed returns the channel of armed timer durations
func (m *MockTimeProvider) Armed() <-chan time.Duration {
	return m.armed
}

// SetTime sets the current time for the mock and fires due timers
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
	m.fireLocked()
}

// Advance advances the current time by the given duration and fires due timers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.fireLocked()
}

// PendingTimers returns the number of armed, unfired timers
func (m *MockTimeProvider) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *MockTimeProvider) fireLocked() {
	remaining := m.timers[:0]
	for _, t := range m.timers {
		if !t.deadline.After(m.currentTime) {
			t.fired = true
			t.ch <- m.currentTime
			continue
		}
		remaining = append(remaining, t)
	}
	m.timers = remaining
}

func (m *MockTimeProvider) remove(t *mockTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			break
		}
	}
	return true
}

type mockTimer struct {
	owner    *MockTimeProvider
	deadline time.Time
	ch       chan time.Time
	fired    bool
	stopped  bool
}

func (t *mockTimer) C() <-chan time.Time { return t.ch }

func (t *mockTimer) Stop() bool { return t.owner.remove(t) }
