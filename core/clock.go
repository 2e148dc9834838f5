package core

// ClockFreq is the rate of the monotonic counter behind GetTime (1MHz on
// the RP2040 timer peripheral).
const ClockFreq = 1000000

var (
	systemMicros uint64
	bootTime     uint64 // Clock reading at ClockInit
)

// Clock is a monotonic microsecond counter. Everything time-based in the
// core reads through this interface so tests can drive a ManualClock.
type Clock interface {
	Now() uint64
}

// SystemClock reads the package-level counter that the target's main loop
// refreshes from hardware on every iteration.
type SystemClock struct{}

// Now returns the current system time in microseconds
func (SystemClock) Now() uint64 {
	return GetTime()
}

// GetTime returns the current system time in microseconds
func GetTime() uint64 {
	return getSystemMicros()
}

// SetTime sets the current system time (for hardware integration)
func SetTime(us uint64) {
	setSystemMicros(us)
}

// GetUptime returns microseconds since ClockInit
func GetUptime() uint64 {
	now := GetTime()
	if now < bootTime {
		return 0
	}
	return now - bootTime
}

// ClockInit records the boot time for uptime calculation
func ClockInit() {
	bootTime = GetTime()
}

// MicrosFromMillis converts milliseconds to clock ticks
func MicrosFromMillis(ms uint32) uint64 {
	return uint64(ms) * (ClockFreq / 1000)
}

// ManualClock is a Clock that only moves when told to. The host simulator
// runs the board on one; tests use it to step through deadlines.
type ManualClock struct {
	now uint64
}

// NewManualClock returns a clock reading start
func NewManualClock(start uint64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading
func (c *ManualClock) Now() uint64 {
	return c.now
}

// Set jumps the clock to us. Moving backwards is allowed and models a
// counter wrap.
func (c *ManualClock) Set(us uint64) {
	c.now = us
}

// Advance moves the clock forward by us
func (c *ManualClock) Advance(us uint64) {
	c.now += us
}
