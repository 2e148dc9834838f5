//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"hexboard/core"
)

// Timer peripheral: a free-running 64-bit microsecond counter. The base
// address differs per chip, see clock_rp2040.go and clock_rp2350.go.
const (
	timerTIMERAWH = timerBase + 0x24 // raw high word, no latching
	timerTIMERAWL = timerBase + 0x28 // raw low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// GetHardwareUptime reads the full 64-bit timer. The high word is read
// on both sides of the low word to catch a carry between the reads.
func GetHardwareUptime() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
	}
}

// UpdateSystemTime copies the hardware timer into the core clock. Called
// once per loop iteration before the board polls.
func UpdateSystemTime() {
	core.SetTime(GetHardwareUptime())
}

// InitClock starts the core clock from the current hardware time
func InitClock() {
	UpdateSystemTime()
	core.ClockInit()
}
