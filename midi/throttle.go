package midi

import "hexboard/core"

// Throttle rate-limits a continuously varying controller. The newest
// value is always the one sent; intermediate values inside one cooldown
// are dropped.
type Throttle struct {
	cooldown core.SoftTimer
	interval uint64
	value    int16
	sent     int16
	pending  bool
}

// NewThrottle returns a throttle with the given spacing in microseconds.
// The initial value counts as already sent.
func NewThrottle(clock core.Clock, interval uint64, initial int16) *Throttle {
	t := &Throttle{interval: interval, value: initial, sent: initial}
	t.cooldown.SetClock(clock)
	return t
}

// Set records a new value to send
func (t *Throttle) Set(v int16) {
	t.value = v
	t.pending = v != t.sent
}

// Value returns the most recently set value
func (t *Throttle) Value() int16 {
	return t.value
}

// Poll returns the value to send now, if any. Call it once per loop.
func (t *Throttle) Poll() (int16, bool) {
	if !t.pending {
		return 0, false
	}
	if t.cooldown.IsRunning() && !t.cooldown.JustFinished() {
		return 0, false
	}
	t.pending = false
	t.sent = t.value
	t.cooldown.Start(t.interval, 0)
	return t.value, true
}
