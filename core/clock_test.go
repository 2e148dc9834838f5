package core

import "testing"

func TestManualClock(t *testing.T) {
	clock := NewManualClock(42)
	if clock.Now() != 42 {
		t.Errorf("Expected 42, got %d", clock.Now())
	}
	clock.Advance(8)
	if clock.Now() != 50 {
		t.Errorf("Expected 50 after advance, got %d", clock.Now())
	}
	clock.Set(3)
	if clock.Now() != 3 {
		t.Errorf("Expected 3 after set, got %d", clock.Now())
	}
}

func TestUptime(t *testing.T) {
	SetTime(1000)
	ClockInit()
	SetTime(1500)
	if GetUptime() != 500 {
		t.Errorf("Expected uptime 500, got %d", GetUptime())
	}
	SetTime(10)
	if GetUptime() != 0 {
		t.Errorf("Expected uptime clamped to 0, got %d", GetUptime())
	}
	if MicrosFromMillis(33) != 33000 {
		t.Errorf("MicrosFromMillis(33) = %d", MicrosFromMillis(33))
	}
}
