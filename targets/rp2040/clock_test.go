//go:build rp2040 || rp2350

package main

import "testing"

func TestTimerRawRegisters(t *testing.T) {
	if timerTIMERAWH != timerBase+0x24 || timerTIMERAWL != timerBase+0x28 {
		t.Errorf("raw timer offsets wrong: %#x %#x", timerTIMERAWH, timerTIMERAWL)
	}
}
