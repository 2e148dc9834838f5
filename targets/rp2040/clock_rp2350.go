//go:build rp2350

package main

// TIMER0 base on the RP2350, not the RP2040 address
const timerBase = 0x400B0000
