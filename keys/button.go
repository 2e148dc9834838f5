// Package keys tracks the press history of every key on the board and
// caches the LED codes and pitch derived for it from the active preset.
package keys

import (
	"hexboard/core"
	"hexboard/hexgrid"
	"hexboard/microtonal"
)

// ButtonState is the last two raw samples of a key, oldest in the high bit
type ButtonState uint8

const (
	Idle         ButtonState = 0b00
	JustPressed  ButtonState = 0b01
	JustReleased ButtonState = 0b10
	Held         ButtonState = 0b11
)

// transitions[state][sample] is ((state << 1) | sample) & 0b11
var transitions = [4][2]ButtonState{
	Idle:         {Idle, JustPressed},
	JustPressed:  {JustReleased, Held},
	JustReleased: {Idle, JustPressed},
	Held:         {JustReleased, Held},
}

// Next returns the state after shifting in sample
func (s ButtonState) Next(sample bool) ButtonState {
	in := 0
	if sample {
		in = 1
	}
	return transitions[s&0b11][in]
}

// IsDown reports whether the latest sample was a press
func (s ButtonState) IsDown() bool {
	return s&1 != 0
}

func (s ButtonState) String() string {
	switch s {
	case Idle:
		return "idle"
	case JustPressed:
		return "just-pressed"
	case JustReleased:
		return "just-released"
	case Held:
		return "held"
	default:
		return "invalid"
	}
}

// CodeSource derives the mapping of a key under the active preset
type CodeSource interface {
	Map(id int) microtonal.KeyMapping
}

// ButtonCell is the state of one key. Pitch and color fields are a cache
// of CodeSource.Map and are only valid after RecomputeCachedCodes.
type ButtonCell struct {
	ID            uint8
	Coord         hexgrid.HexCoordinate
	State         ButtonState
	LastPressTime uint64
	Animated      bool // part of the animation in the current frame

	Note       uint8 // MIDI note, command number or microtonal.UnusedNote
	IsCommand  bool
	InScale    bool
	StepsFromC int16
	Degree     uint8
	BendCents  float32
	Bend       int16
	Channel    uint8 // zero-based MIDI channel while sounding
	Frequency  float32

	Codes microtonal.CodeSet
}

// Update shifts in one pre-debounced sample and returns the new state.
// Entering JustPressed stamps LastPressTime with now.
func (c *ButtonCell) Update(sample bool, now uint64) ButtonState {
	c.State = c.State.Next(sample)
	if c.State == JustPressed {
		c.LastPressTime = now
	}
	return c.State
}

// Pressed reports whether the key is down
func (c *ButtonCell) Pressed() bool {
	return c.State.IsDown()
}

// RecomputeCachedCodes refreshes every derived field from src
func (c *ButtonCell) RecomputeCachedCodes(src CodeSource) {
	m := src.Map(int(c.ID))
	c.Note = m.Note
	c.IsCommand = m.IsCommand
	c.InScale = m.InScale
	c.StepsFromC = int16(m.StepsFromC)
	c.Degree = uint8(m.Degree)
	c.BendCents = m.Pitch.BendCents
	c.Bend = m.Pitch.Bend
	c.Frequency = m.Pitch.Frequency
	c.Codes = m.Codes
}

// Playable reports whether a press of this key should sound a note
func (c *ButtonCell) Playable(scaleLock bool) bool {
	if c.IsCommand || c.Note == microtonal.UnusedNote {
		return false
	}
	return c.InScale || !scaleLock
}

// DisplayCode picks the cached code to show this frame
func (c *ButtonCell) DisplayCode(scaleLock bool) core.LEDCode {
	switch {
	case c.Animated:
		return c.Codes.Anim
	case c.Pressed():
		if !c.IsCommand && scaleLock && !c.InScale {
			return c.Codes.Off
		}
		return c.Codes.Play
	case c.InScale:
		return c.Codes.Rest
	case scaleLock:
		return c.Codes.Off
	default:
		return c.Codes.Dim
	}
}

// Cells is the fixed array of all keys, indexed by key id
type Cells [hexgrid.KeyCount]ButtonCell

// Init assigns ids and coordinates and clears all state
func (cs *Cells) Init() {
	for i := range cs {
		h, _ := hexgrid.CoordinateForKey(i)
		cs[i] = ButtonCell{ID: uint8(i), Coord: h, Note: microtonal.UnusedNote}
	}
}

// RecomputeAll refreshes the cache of every cell from src
func (cs *Cells) RecomputeAll(src CodeSource) {
	for i := range cs {
		cs[i].RecomputeCachedCodes(src)
	}
}

// Frame writes the display code of every cell into dst
func (cs *Cells) Frame(dst []core.LEDCode, scaleLock bool) {
	for i := range cs {
		if i >= len(dst) {
			return
		}
		dst[i] = cs[i].DisplayCode(scaleLock)
	}
}
