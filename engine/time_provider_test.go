package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestTimeProviderTimer(t *testing.T) {
	provider := NewTimeProvider()

	timer := provider.NewTimer(5 * time.Millisecond)
	select {
	case <-timer.C():
	case <-time.After(time.Second):
		t.Fatal("Timer did not fire within 1s")
	}

	stopped := provider.NewTimer(time.Hour)
	if !stopped.Stop() {
		t.Error("Expected Stop to report true for a pending timer")
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	now := mock.Now()
	if !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	now = mock.Now()
	if !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	now = mock.Now()
	expected := newTime.Add(1 * time.Hour)
	if !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}
}

func TestMockTimerFiresOnAdvance(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	timer := mock.NewTimer(time.Second)
	if d := <-mock.Armed(); d != time.Second {
		t.Errorf("Expected armed duration 1s, got %v", d)
	}

	mock.Advance(999 * time.Millisecond)
	select {
	case <-timer.C():
		t.Fatal("Timer fired before its deadline")
	default:
	}

	mock.Advance(time.Millisecond)
	select {
	case <-timer.C():
	default:
		t.Fatal("Timer did not fire at its deadline")
	}

	if timer.Stop() {
		t.Error("Expected Stop to report false after firing")
	}
	if mock.PendingTimers() != 0 {
		t.Errorf("Expected no pending timers, got %d", mock.PendingTimers())
	}
}

func TestMockTimerStop(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	timer := mock.NewTimer(time.Second)
	if !timer.Stop() {
		t.Error("Expected Stop to report true for a pending timer")
	}

	mock.Advance(2 * time.Second)
	select {
	case <-timer.C():
		t.Fatal("Stopped timer fired")
	default:
	}
}

func TestMockTimerZeroDuration(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	timer := mock.NewTimer(0)
	select {
	case <-timer.C():
	default:
		t.Fatal("Zero-duration timer should fire immediately")
	}
}
