package core

import "testing"

func TestSoftTimerJustFinishedOneShot(t *testing.T) {
	clock := NewManualClock(5000)
	timer := NewSoftTimer(clock)
	timer.Start(1000, 0)

	for _, step := range []uint64{0, 250, 500, 249} {
		clock.Advance(step)
		if timer.JustFinished() {
			t.Fatalf("JustFinished returned true at elapsed %d", timer.Elapsed())
		}
	}

	clock.Advance(1) // exactly 1000us
	if !timer.JustFinished() {
		t.Fatal("Expected JustFinished to return true at the deadline")
	}
	if timer.JustFinished() {
		t.Error("Second JustFinished call should return false")
	}
	if timer.IsRunning() {
		t.Error("Timer should stop after JustFinished returns true")
	}
}

func TestSoftTimerDeferredStart(t *testing.T) {
	clock := NewManualClock(0)
	timer := NewSoftTimer(clock)
	timer.Start(100, 400)

	if timer.Elapsed() != 0 {
		t.Errorf("Expected elapsed 0 before the deferred origin, got %d", timer.Elapsed())
	}
	if timer.Remaining() != 100 {
		t.Errorf("Expected remaining 100 before the deferred origin, got %d", timer.Remaining())
	}

	clock.Advance(499)
	if timer.JustFinished() {
		t.Error("Timer finished before defer+delay")
	}
	clock.Advance(1)
	if !timer.JustFinished() {
		t.Error("Timer did not finish at defer+delay")
	}
}

func TestSoftTimerRepeatDoesNotDrift(t *testing.T) {
	clock := NewManualClock(0)
	timer := NewSoftTimer(clock)
	timer.Start(1000, 0)

	// Checked late: 1300us instead of 1000us
	clock.Set(1300)
	if !timer.JustFinished() {
		t.Fatal("Expected timer to finish")
	}
	timer.Repeat()

	if timer.StartTime() != 1000 {
		t.Errorf("Expected repeat origin 1000, got %d", timer.StartTime())
	}
	if timer.Remaining() != 700 {
		t.Errorf("Expected 700us remaining after late check, got %d", timer.Remaining())
	}

	clock.Set(2000)
	if !timer.JustFinished() {
		t.Error("Repeated timer should finish at 2000us")
	}
}

func TestSoftTimerRestart(t *testing.T) {
	clock := NewManualClock(0)
	timer := NewSoftTimer(clock)
	timer.Start(1000, 0)

	clock.Set(1300)
	timer.Restart()
	if timer.StartTime() != 1300 {
		t.Errorf("Expected restart origin 1300, got %d", timer.StartTime())
	}
	if timer.Delay() != 1000 {
		t.Errorf("Restart changed the delay to %d", timer.Delay())
	}
}

func TestSoftTimerFinish(t *testing.T) {
	clock := NewManualClock(0)
	timer := NewSoftTimer(clock)
	timer.Start(1000000, 0)

	timer.Finish()
	if timer.Remaining() != 0 {
		t.Errorf("Expected 0 remaining after Finish, got %d", timer.Remaining())
	}
	if !timer.JustFinished() {
		t.Error("Finish should force the next JustFinished to succeed")
	}
	if timer.JustFinished() {
		t.Error("Finish should only force one completion")
	}
}

func TestSoftTimerStoppedReportsZero(t *testing.T) {
	clock := NewManualClock(100)
	timer := NewSoftTimer(clock)
	timer.Start(50, 0)
	clock.Advance(20)
	timer.Stop()

	if timer.Elapsed() != 0 || timer.Remaining() != 0 {
		t.Errorf("Stopped timer should report 0/0, got elapsed=%d remaining=%d",
			timer.Elapsed(), timer.Remaining())
	}
	if timer.JustFinished() {
		t.Error("Stopped timer should never finish")
	}
}

func TestSoftTimerClockBehindStart(t *testing.T) {
	clock := NewManualClock(10000)
	timer := NewSoftTimer(clock)
	timer.Start(100, 0)

	// Counter wrapped or was reset
	clock.Set(5)
	if timer.Elapsed() != 0 {
		t.Errorf("Expected elapsed clamped to 0, got %d", timer.Elapsed())
	}
	if timer.Remaining() != 100 {
		t.Errorf("Expected full delay remaining, got %d", timer.Remaining())
	}
}

func TestSoftTimerExecWhenFinished(t *testing.T) {
	clock := NewManualClock(0)
	timer := NewSoftTimer(clock)
	timer.Start(1000, 0)

	calls := 0
	work := func() {
		calls++
		clock.Advance(30)
	}

	if cost := timer.ExecWhenFinished(work); cost != 0 || calls != 0 {
		t.Fatalf("Callback ran early: calls=%d cost=%d", calls, cost)
	}

	clock.Set(1000)
	cost := timer.ExecWhenFinished(work)
	if calls != 1 {
		t.Fatalf("Expected 1 call, got %d", calls)
	}
	if cost != 30 {
		t.Errorf("Expected callback cost 30us, got %d", cost)
	}
	if !timer.IsRunning() {
		t.Error("ExecWhenFinished should re-arm the timer")
	}
	if timer.StartTime() != 1000 {
		t.Errorf("Expected next origin 1000, got %d", timer.StartTime())
	}

	clock.Set(1999)
	timer.ExecWhenFinished(work)
	if calls != 1 {
		t.Errorf("Callback ran before the second deadline")
	}
	clock.Set(2000)
	timer.ExecWhenFinished(work)
	if calls != 2 {
		t.Errorf("Expected 2 calls after the second deadline, got %d", calls)
	}
}

func TestSoftTimerZeroValueUsesSystemClock(t *testing.T) {
	SetTime(0)
	var timer SoftTimer
	timer.Start(10, 0)

	SetTime(9)
	if timer.JustFinished() {
		t.Error("Zero-value timer finished early")
	}
	SetTime(10)
	if !timer.JustFinished() {
		t.Error("Zero-value timer should read the system clock")
	}
}
