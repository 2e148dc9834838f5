//go:build tinygo

package core

// The Cortex-M0+ has no 64-bit atomics, so the two halves of the counter
// are guarded by masking interrupts instead.

// getSystemMicros returns the current system time
func getSystemMicros() uint64 {
	state := disableInterrupts()
	us := systemMicros
	restoreInterrupts(state)
	return us
}

// setSystemMicros sets the system time
func setSystemMicros(us uint64) {
	state := disableInterrupts()
	systemMicros = us
	restoreInterrupts(state)
}
