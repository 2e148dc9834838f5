package main

import (
	"log/slog"

	gomidi "gitlab.com/gomidi/midi/v2"

	"hexboard/core"
	"hexboard/hexgrid"
)

// virtualKeys is a key matrix driven by script commands
type virtualKeys struct {
	down [hexgrid.KeyCount]bool
}

func (k *virtualKeys) Scan(samples []bool) {
	copy(samples, k.down[:])
}

// virtualKnob holds the encoder and switch pin levels. Idle pins read
// high: both encoder contacts open and the switch released.
type virtualKnob struct {
	a, b  bool
	click bool
}

func newVirtualKnob() *virtualKnob {
	return &virtualKnob{a: true, b: true, click: true}
}

func (k *virtualKnob) ReadAB() (bool, bool) { return k.a, k.b }
func (k *virtualKnob) ReadClick() bool      { return k.click }

// Pin phases of one detent, A then B, ending back at rest
var (
	ccwPhases = [4][2]bool{{false, true}, {false, false}, {true, false}, {true, true}}
	cwPhases  = [4][2]bool{{true, false}, {false, false}, {false, true}, {true, true}}
)

// frameStrip keeps the last frame the board showed
type frameStrip struct {
	frame [hexgrid.KeyCount]core.LEDCode
	shows int
}

func (s *frameStrip) Show(codes []core.LEDCode) error {
	copy(s.frame[:], codes)
	s.shows++
	return nil
}

// logMIDI prints every message instead of sending it
type logMIDI struct {
	log *slog.Logger
}

func (m logMIDI) Send(msg []byte) error {
	m.log.Info("midi", "msg", gomidi.Message(msg).String())
	return nil
}

// logSynth reports the frequencies the audio path would play
type logSynth struct {
	log *slog.Logger
}

func (s logSynth) NoteOn(key int, hz float32) {
	s.log.Debug("synth on", "key", key, "hz", hz)
}

func (s logSynth) NoteOff(key int) {
	s.log.Debug("synth off", "key", key)
}
