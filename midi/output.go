// Package midi builds the MIDI messages the board sends: notes with
// per-note pitch bend for microtonal tunings, command-key controllers and
// rate-limited continuous controllers.
package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"

	"hexboard/core"
)

const (
	DefaultVelocity = 100
	CooldownMicros  = 32768 // minimum spacing of continuous controller messages

	StandardChannel  = 0 // 12 EDO notes and all controllers
	FirstNoteChannel = 1 // microtonal notes rotate over channels 2..16
	LastNoteChannel  = 15

	ModWheelCC     = 1
	CommandCCBase  = 20 // command key n sends controller CommandCCBase+n
	AllNotesOffCC  = 123
	CommandOnValue = 127
)

// Output sends MIDI through a core.MIDIOut transport. Send errors are
// counted, not returned: a dropped message must not stall the poll loop.
type Output struct {
	out        core.MIDIOut
	velocity   uint8
	channels   Allocator
	sendErrors uint32
}

// NewOutput returns an Output sending at the default velocity
func NewOutput(out core.MIDIOut) *Output {
	return &Output{out: out, velocity: DefaultVelocity}
}

// SetVelocity sets the note-on velocity, clamped to 1..127
func (o *Output) SetVelocity(v uint8) {
	if v == 0 {
		v = 1
	} else if v > 127 {
		v = 127
	}
	o.velocity = v
}

// Velocity returns the note-on velocity
func (o *Output) Velocity() uint8 {
	return o.velocity
}

// SendErrors returns the number of messages the transport refused
func (o *Output) SendErrors() uint32 {
	return o.sendErrors
}

func (o *Output) send(msg gomidi.Message) {
	if o.out == nil {
		return
	}
	if err := o.out.Send([]byte(msg)); err != nil {
		o.sendErrors++
	}
}

// NoteOn starts a note and returns the channel it sounds on. Microtonal
// notes get a channel of their own with the bend sent first.
func (o *Output) NoteOn(note uint8, bend int16, microtonal bool) uint8 {
	ch := uint8(StandardChannel)
	if microtonal {
		ch = o.channels.Acquire()
		o.send(gomidi.Pitchbend(ch, bend))
	}
	o.send(gomidi.NoteOn(ch, note, o.velocity))
	return ch
}

// NoteOff stops a note started by NoteOn
func (o *Output) NoteOff(note, ch uint8, microtonal bool) {
	o.send(gomidi.NoteOff(ch, note))
	if microtonal {
		o.channels.Release(ch)
	}
}

// Command sends the controller of command key n, 127 while pressed and 0
// on release.
func (o *Output) Command(n int, pressed bool) {
	val := uint8(0)
	if pressed {
		val = CommandOnValue
	}
	o.send(gomidi.ControlChange(StandardChannel, uint8(CommandCCBase+n), val))
}

// ControlChange sends one controller value on the standard channel
func (o *Output) ControlChange(cc, val uint8) {
	o.send(gomidi.ControlChange(StandardChannel, cc, val))
}

// Pitchbend sends a bend on the standard channel
func (o *Output) Pitchbend(val int16) {
	o.send(gomidi.Pitchbend(StandardChannel, val))
}

// AllNotesOff silences every channel and frees all note channels
func (o *Output) AllNotesOff() {
	for ch := uint8(0); ch <= LastNoteChannel; ch++ {
		o.send(gomidi.ControlChange(ch, AllNotesOffCC, 0))
	}
	o.channels.Reset()
}

// ChannelsInUse returns the number of note channels currently held
func (o *Output) ChannelsInUse() int {
	return o.channels.InUse()
}
