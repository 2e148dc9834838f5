//go:build !tinygo

package core

// getSystemMicros returns the current system time (regular Go implementation)
func getSystemMicros() uint64 {
	return systemMicros
}

// setSystemMicros sets the system time (regular Go implementation)
func setSystemMicros(us uint64) {
	systemMicros = us
}
