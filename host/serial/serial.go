// Package serial carries the simulator's MIDI stream over a serial port,
// for USB-serial MIDI bridges and DIN MIDI adapters.
package serial

import (
	"io"
)

// Port is an open serial device. Tests substitute an in-memory port.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate; 31250 is the DIN MIDI rate
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a DIN MIDI rate configuration for device
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        31250,
		ReadTimeout: 100,
	}
}
