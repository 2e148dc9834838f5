// Package board runs one HexBoard poll loop iteration at a time: it reads
// the keys and knob, sends MIDI for every key transition and redraws the
// LEDs from cached codes on a fixed frame interval.
//
// The active preset is owned here. Every change goes through ApplyPreset,
// which validates first and refreshes every key's cached codes before it
// returns, so a rejected preset leaves the board untouched and an accepted
// one is never observed half-applied.
package board

import (
	"hexboard/animate"
	"hexboard/core"
	"hexboard/hexgrid"
	"hexboard/keys"
	"hexboard/microtonal"
	"hexboard/midi"
	"hexboard/rotary"
)

// KnobMode selects what knob turns control
type KnobMode uint8

const (
	KnobMenu      KnobMode = iota // turns are queued for the menu
	KnobModWheel                  // turns move the modulation wheel
	KnobPitchBend                 // turns bend the standard channel
)

const (
	// ModWheelStep is the controller change per knob detent
	ModWheelStep = 8
	// PitchBendStep is the bend change per knob detent
	PitchBendStep = 1024

	minBend = -8192
	maxBend = 8191
)

// Config wires the board to its collaborators. Only Scanner is required.
type Config struct {
	Scanner  core.KeyScanner
	Knob     core.KnobPins
	LEDs     core.LEDStrip
	MIDI     core.MIDIOut
	Synth    core.Synth
	Clock    core.Clock
	Velocity uint8
	KnobMode KnobMode
	// KnobImmediate drops extra detents instead of queueing them
	KnobImmediate bool
	InvertKnob    bool
}

// Board is the poll loop state. It is not safe for concurrent use; call
// every method from the loop goroutine.
type Board struct {
	scanner core.KeyScanner
	knobPin core.KnobPins
	leds    core.LEDStrip
	synth   core.Synth
	clock   core.Clock

	cells   keys.Cells
	samples [hexgrid.KeyCount]bool
	frame   [hexgrid.KeyCount]core.LEDCode
	playing [hexgrid.KeyCount]bool

	preset    microtonal.Preset
	engine    *microtonal.Engine
	bendNotes bool // notes need per-note pitch bend

	knob        rotary.Decoder
	knobMode    KnobMode
	pendingTurn int
	clicked     bool

	midi      *midi.Output
	modWheel  *midi.Throttle
	pitchBend *midi.Throttle

	animTimer core.SoftTimer
	drawFn    func()
	redraw    bool // draw on the next poll regardless of the frame timer
	now       uint64

	frames    uint32
	ledErrors uint32
}

// New builds a board and applies p. It fails only if p is invalid.
func New(cfg Config, p microtonal.Preset) (*Board, error) {
	if cfg.Scanner == nil {
		panic("board: key scanner not configured")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}

	b := &Board{
		scanner:   cfg.Scanner,
		knobPin:   cfg.Knob,
		leds:      cfg.LEDs,
		synth:     cfg.Synth,
		clock:     clock,
		knobMode:  cfg.KnobMode,
		midi:      midi.NewOutput(cfg.MIDI),
		modWheel:  midi.NewThrottle(clock, midi.CooldownMicros, 0),
		pitchBend: midi.NewThrottle(clock, midi.CooldownMicros, 0),
	}
	if cfg.Velocity != 0 {
		b.midi.SetVelocity(cfg.Velocity)
	}
	if cfg.KnobImmediate {
		b.knob.SetMode(rotary.Immediate)
	}
	if cfg.InvertKnob {
		b.knob.InvertDirection()
	}
	b.cells.Init()
	b.drawFn = b.drawFrame

	if err := b.ApplyPreset(p); err != nil {
		return nil, err
	}
	b.animTimer.SetClock(clock)
	b.animTimer.Start(animate.FrameInterval, 0)
	return b, nil
}

// ApplyPreset makes p the active preset. On error nothing changes.
// Sounding notes are released before the new mapping takes effect.
func (b *Board) ApplyPreset(p microtonal.Preset) error {
	now := b.clock.Now()
	e, err := microtonal.NewEngine(p)
	if err != nil {
		core.RecordTiming(core.EvtPresetRejected, 0, now, uint32(p.TuningIndex), uint32(p.LayoutIndex))
		return err
	}

	b.releaseAll()
	b.preset = p
	b.engine = e
	b.bendNotes = e.Tuning().StepSize != 100
	b.cells.RecomputeAll(e)
	b.redraw = true

	core.RecordTiming(core.EvtPresetSwap, 0, now, uint32(p.TuningIndex), uint32(p.LayoutIndex))
	return nil
}

// Preset returns a copy of the active preset
func (b *Board) Preset() microtonal.Preset {
	return b.preset
}

// Engine returns the mapping engine of the active preset
func (b *Board) Engine() *microtonal.Engine {
	return b.engine
}

// Poll runs one loop iteration
func (b *Board) Poll() {
	b.now = b.clock.Now()

	b.scanner.Scan(b.samples[:])
	for i := range b.cells {
		c := &b.cells[i]
		switch c.Update(b.samples[i], b.now) {
		case keys.JustPressed:
			b.press(c)
		case keys.JustReleased:
			b.release(c)
		}
	}

	b.pollKnob()

	if v, ok := b.modWheel.Poll(); ok {
		b.midi.ControlChange(midi.ModWheelCC, uint8(v))
		core.RecordTiming(core.EvtControl, 0, b.now, midi.ModWheelCC, uint32(v))
	}
	if v, ok := b.pitchBend.Poll(); ok {
		b.midi.Pitchbend(v)
		core.RecordTiming(core.EvtControl, 0, b.now, 0, uint32(int32(v)-minBend))
	}

	if b.redraw {
		b.redraw = false
		b.animTimer.Restart()
		b.drawFn()
		return
	}
	if cost := b.animTimer.ExecWhenFinished(b.drawFn); cost > 0 {
		core.RecordTiming(core.EvtFrame, 0, b.now, uint32(cost), b.frames)
	}
}

func (b *Board) press(c *keys.ButtonCell) {
	if c.IsCommand {
		b.midi.Command(hexgrid.CommandIndex(int(c.ID)), true)
		return
	}
	if !c.Playable(b.preset.ScaleLock) {
		return
	}
	c.Channel = b.midi.NoteOn(c.Note, c.Bend, b.bendNotes)
	b.playing[c.ID] = true
	if b.synth != nil {
		b.synth.NoteOn(int(c.ID), c.Frequency)
	}
	core.RecordTiming(core.EvtNoteOn, c.ID, b.now, uint32(c.Note), uint32(c.Channel))
}

func (b *Board) release(c *keys.ButtonCell) {
	if c.IsCommand {
		b.midi.Command(hexgrid.CommandIndex(int(c.ID)), false)
		return
	}
	if !b.playing[c.ID] {
		return
	}
	b.midi.NoteOff(c.Note, c.Channel, b.bendNotes)
	b.playing[c.ID] = false
	if b.synth != nil {
		b.synth.NoteOff(int(c.ID))
	}
	core.RecordTiming(core.EvtNoteOff, c.ID, b.now, uint32(c.Note), uint32(c.Channel))
}

// releaseAll stops every sounding note using the mapping it started with
func (b *Board) releaseAll() {
	for i := range b.cells {
		if b.playing[i] {
			b.release(&b.cells[i])
		}
	}
}

func (b *Board) pollKnob() {
	if b.knobPin == nil {
		return
	}
	pinA, pinB := b.knobPin.ReadAB()
	b.knob.Update(pinA, pinB)
	if b.knob.Click(b.knobPin.ReadClick()) {
		b.clicked = true
	}

	turn := b.knob.ConsumeTurn()
	if turn == 0 {
		return
	}
	core.RecordTiming(core.EvtKnobTurn, 0, b.now, uint32(turn+1), 0)
	switch b.knobMode {
	case KnobModWheel:
		b.SetModWheel(int(b.modWheel.Value()) + turn*ModWheelStep)
	case KnobPitchBend:
		b.SetPitchBend(int(b.pitchBend.Value()) + turn*PitchBendStep)
	default:
		b.pendingTurn += turn
	}
}

// KnobEvents returns and clears the knob input gathered since the last
// call: the net detent count (counter-clockwise positive) and whether the
// switch was clicked.
func (b *Board) KnobEvents() (turn int, clicked bool) {
	turn, clicked = b.pendingTurn, b.clicked
	b.pendingTurn, b.clicked = 0, false
	return turn, clicked
}

// SetModWheel queues a modulation wheel value, clamped to 0..127. It is
// sent no more often than the controller cooldown allows.
func (b *Board) SetModWheel(v int) {
	if v < 0 {
		v = 0
	} else if v > 127 {
		v = 127
	}
	b.modWheel.Set(int16(v))
}

// ModWheel returns the most recent modulation wheel value
func (b *Board) ModWheel() uint8 {
	return uint8(b.modWheel.Value())
}

// SetPitchBend queues a bend for the standard channel, clamped to
// -8192..8191 with 0 centred. It shares the controller cooldown.
func (b *Board) SetPitchBend(v int) {
	if v < minBend {
		v = minBend
	} else if v > maxBend {
		v = maxBend
	}
	b.pitchBend.Set(int16(v))
}

// PitchBend returns the most recent knob bend value
func (b *Board) PitchBend() int16 {
	return b.pitchBend.Value()
}

// SetKnobMode selects what knob turns control
func (b *Board) SetKnobMode(m KnobMode) {
	b.knobMode = m
	b.pendingTurn = 0
}

func (b *Board) drawFrame() {
	animate.Frame(&b.cells, b.preset.Animation, b.now)
	b.cells.Frame(b.frame[:], b.preset.ScaleLock)
	b.frames++
	if b.leds == nil {
		return
	}
	if err := b.leds.Show(b.frame[:]); err != nil {
		b.ledErrors++
	}
}

// Frame returns the LED codes of the last drawn frame. The slice is owned
// by the board and overwritten by the next frame.
func (b *Board) Frame() []core.LEDCode {
	return b.frame[:]
}

// Cell returns a copy of the state of key id
func (b *Board) Cell(id int) (keys.ButtonCell, bool) {
	if id < 0 || id >= hexgrid.KeyCount {
		return keys.ButtonCell{}, false
	}
	return b.cells[id], true
}

// Sounding reports whether key id currently has a note on
func (b *Board) Sounding(id int) bool {
	return id >= 0 && id < hexgrid.KeyCount && b.playing[id]
}

// Panic releases every note and sends all-notes-off on every channel
func (b *Board) Panic() {
	b.releaseAll()
	b.midi.AllNotesOff()
}

// Stats reports frame and transport counters
func (b *Board) Stats() (frames, ledErrors, midiErrors uint32) {
	return b.frames, b.ledErrors, b.midi.SendErrors()
}
