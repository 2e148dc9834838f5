//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"hexboard/hexgrid"
)

// Address lines of the 16-way multiplexer, least significant first
var muxPins = [4]machine.Pin{machine.GPIO4, machine.GPIO5, machine.GPIO2, machine.GPIO3}

// One input per key column; pressed keys pull the line low
var columnPins = [hexgrid.Columns]machine.Pin{
	machine.GPIO6, machine.GPIO7, machine.GPIO8, machine.GPIO9, machine.GPIO10,
	machine.GPIO11, machine.GPIO12, machine.GPIO13, machine.GPIO14, machine.GPIO15,
}

// muxSettle is the wait after switching address before columns are read
const muxSettle = 14 * time.Microsecond

// matrixScanner reads the key matrix through the multiplexer
type matrixScanner struct{}

func newMatrixScanner() *matrixScanner {
	for _, p := range muxPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	for _, p := range columnPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return &matrixScanner{}
}

func (m *matrixScanner) Scan(samples []bool) {
	addr := -1
	for id := range samples {
		mux, col := hexgrid.ScanAddress(id)
		if mux >= hexgrid.MuxAddresses {
			break
		}
		if mux != addr {
			addr = mux
			selectAddress(addr)
		}
		samples[id] = !columnPins[col].Get()
	}
}

func selectAddress(addr int) {
	for bit, p := range muxPins {
		p.Set(addr&(1<<bit) != 0)
	}
	time.Sleep(muxSettle)
}
