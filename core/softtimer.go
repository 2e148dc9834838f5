package core

// SoftTimer is a cooperative, non-blocking interval timer polled from the
// main loop. It never sleeps and never calls back on its own; the loop asks
// JustFinished (or ExecWhenFinished) once per iteration.
//
// The zero value is a stopped timer on the SystemClock.
type SoftTimer struct {
	clock     Clock
	startTime uint64 // deadline origin, may lie in the future after a deferred Start
	delay     uint64
	running   bool
	finishNow bool
}

// NewSoftTimer returns a stopped timer reading the given clock
func NewSoftTimer(clock Clock) *SoftTimer {
	return &SoftTimer{clock: clock}
}

// SetClock replaces the clock; used when a timer is embedded by value
func (t *SoftTimer) SetClock(clock Clock) {
	t.clock = clock
}

func (t *SoftTimer) now() uint64 {
	if t.clock == nil {
		return GetTime()
	}
	return t.clock.Now()
}

// Start arms the timer: it finishes delay microseconds after now+deferBy
func (t *SoftTimer) Start(delay, deferBy uint64) {
	t.startTime = t.now() + deferBy
	t.delay = delay
	t.running = true
	t.finishNow = false
}

// Stop disarms the timer
func (t *SoftTimer) Stop() {
	t.running = false
	t.finishNow = false
}

// Repeat re-arms the timer for another delay measured from the previous
// deadline origin, not from now, so a periodic task does not drift.
func (t *SoftTimer) Repeat() {
	t.startTime += t.delay
	t.running = true
	t.finishNow = false
}

// Restart re-arms the timer from the current time with the same delay
func (t *SoftTimer) Restart() {
	t.Start(t.delay, 0)
}

// Finish forces the next JustFinished check to succeed regardless of the
// elapsed time. It is the only cancellation primitive.
func (t *SoftTimer) Finish() {
	t.finishNow = true
}

// JustFinished reports whether the timer has reached its deadline. It
// returns true at most once per deadline and stops the timer when it does.
func (t *SoftTimer) JustFinished() bool {
	if t.running && (t.finishNow || t.elapsed() >= t.delay) {
		t.Stop()
		return true
	}
	return false
}

// IsRunning reports whether the timer is armed
func (t *SoftTimer) IsRunning() bool {
	return t.running
}

// ExecWhenFinished runs fn if the timer just finished, then re-arms it with
// Repeat. It returns how long fn took in microseconds, or 0 if fn did not
// run.
func (t *SoftTimer) ExecWhenFinished(fn func()) uint64 {
	if !t.JustFinished() {
		return 0
	}
	begin := t.now()
	fn()
	end := t.now()
	t.Repeat()
	if end < begin {
		return 0
	}
	return end - begin
}

// StartTime returns the deadline origin
func (t *SoftTimer) StartTime() uint64 {
	return t.startTime
}

// Delay returns the configured delay
func (t *SoftTimer) Delay() uint64 {
	return t.delay
}

// Elapsed returns microseconds since the deadline origin, or 0 for a
// stopped timer or a clock reading behind the origin.
func (t *SoftTimer) Elapsed() uint64 {
	if !t.running {
		return 0
	}
	return t.elapsed()
}

// Remaining returns microseconds until the deadline, 0 once it has passed,
// after Finish, or for a stopped timer.
func (t *SoftTimer) Remaining() uint64 {
	if !t.running || t.finishNow {
		return 0
	}
	el := t.elapsed()
	if el >= t.delay {
		return 0
	}
	return t.delay - el
}

func (t *SoftTimer) elapsed() uint64 {
	now := t.now()
	if now < t.startTime {
		return 0
	}
	return now - t.startTime
}
