//go:build rp2040

package main

// TIMER base on the RP2040
const timerBase = 0x40054000
