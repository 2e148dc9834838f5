//go:build rp2040 || rp2350

package main

import (
	"errors"
	"io"
	"machine/usb/adc/midi"
)

var errMIDIMessage = errors.New("usb midi: unsupported message")

// usbMIDI sends channel messages as USB-MIDI event packets on cable 0
type usbMIDI struct {
	port io.Writer
	pkt  [4]byte
}

func newUSBMIDI() *usbMIDI {
	return &usbMIDI{port: midi.Port()}
}

// Send wraps one channel voice message. The code index number of a
// channel message is its status nibble.
func (u *usbMIDI) Send(msg []byte) error {
	if len(msg) == 0 || msg[0] < 0x80 || msg[0] >= 0xF0 {
		return errMIDIMessage
	}
	u.pkt = [4]byte{msg[0] >> 4, msg[0], 0, 0}
	copy(u.pkt[2:], msg[1:])
	_, err := u.port.Write(u.pkt[:])
	return err
}
