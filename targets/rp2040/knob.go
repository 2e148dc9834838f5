//go:build rp2040 || rp2350

package main

import "machine"

const (
	knobPinA     = machine.GPIO20
	knobPinB     = machine.GPIO21
	knobPinClick = machine.GPIO24
)

// knobPins reads the encoder contacts and the push switch. All three are
// pulled up, so released reads high.
type knobPins struct{}

func newKnobPins() knobPins {
	for _, p := range [...]machine.Pin{knobPinA, knobPinB, knobPinClick} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return knobPins{}
}

func (knobPins) ReadAB() (bool, bool) {
	return knobPinA.Get(), knobPinB.Get()
}

func (knobPins) ReadClick() bool {
	return knobPinClick.Get()
}
