package microtonal

import (
	"math"

	"hexboard/core"
	"hexboard/hexgrid"
)

const (
	CommandBase    = 192 // first command number; command n is CommandBase+n
	UnusedNote     = 255
	ConcertA       = 440.0
	PitchBendSemis = 2 // bend range of the receiving synth, each direction
	MiddleA        = 69
)

// Command key colors
var (
	commandRest = ColorValue{Hue: HueNone, Sat: SatBW, Val: ValueLow}
	commandPlay = ColorValue{Hue: HueNone, Sat: SatBW, Val: ValueFull}
)

// Pitch is the playback form of a note
type Pitch struct {
	Note      uint8   // nearest MIDI note, or UnusedNote when out of range
	BendCents float32 // offset from Note
	Bend      int16   // BendCents on a 14-bit signed scale
	Frequency float32 // Hz
}

// CodeSet holds the five precomputed LED codes of one key
type CodeSet struct {
	Anim core.LEDCode
	Play core.LEDCode
	Rest core.LEDCode
	Off  core.LEDCode
	Dim  core.LEDCode
}

// KeyMapping is everything derived from one key under one preset
type KeyMapping struct {
	IsCommand  bool
	Note       uint8 // MIDI note, command number or UnusedNote
	InScale    bool
	StepsFromC int
	Degree     int
	Pitch      Pitch
	Codes      CodeSet
}

// Engine converts hex coordinates into pitch, scale degree and color for
// one validated preset. Build a new Engine for every preset change.
type Engine struct {
	preset  Preset
	tuning  *TuningDef
	layout  *LayoutDef
	scale   *ScaleDef
	palette *PaletteDef
	middleC int // steps from the grid origin to the middle-C key
	inScale [MaxScaleDivisions]bool
}

// NewEngine validates p and prepares the per-preset tables
func NewEngine(p Preset) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		preset:  p,
		tuning:  p.Tuning(),
		layout:  p.Layout(),
		scale:   p.Scale(),
		palette: p.Palette(),
	}
	mc, _ := hexgrid.CoordinateForKey(int(e.layout.HexMiddleC))
	e.middleC = e.StepsFromAnchor(mc)
	e.scale.Mask(&e.inScale, int(e.tuning.CycleLength))
	return e, nil
}

// Preset returns a copy of the engine's preset
func (e *Engine) Preset() Preset {
	return e.preset
}

// Tuning returns the active tuning
func (e *Engine) Tuning() *TuningDef {
	return e.tuning
}

// Layout returns the active layout
func (e *Engine) Layout() *LayoutDef {
	return e.layout
}

// StepsFromAnchor returns the tuning steps from the grid origin to h
// along the layout's two axes.
func (e *Engine) StepsFromAnchor(h hexgrid.HexCoordinate) int {
	across, downLeft := hexgrid.Lattice(hexgrid.HexCoordinate{}, h)
	return across*int(e.layout.AcrossSteps) + downLeft*int(e.layout.DnLeftSteps)
}

// StepsFromC returns the tuning steps from middle C to h
func (e *Engine) StepsFromC(h hexgrid.HexCoordinate) int {
	return e.StepsFromAnchor(h) - e.middleC
}

// KeyDegree returns the scale degree, in [0, cycle length)
func (e *Engine) KeyDegree(stepsFromC int) int {
	return e.preset.KeyDegree(stepsFromC)
}

// InScale reports whether a degree belongs to the active scale
func (e *Engine) InScale(degree int) bool {
	if degree < 0 || degree >= int(e.tuning.CycleLength) {
		return false
	}
	return e.inScale[degree]
}

// Pitch converts steps from middle C into a MIDI note, bend and frequency
func (e *Engine) Pitch(stepsFromC int) Pitch {
	steps := e.preset.PitchRelToA4(stepsFromC)
	cents := float64(steps) * float64(e.tuning.StepSize)
	exact := MiddleA + cents/100
	note := math.Round(exact)
	bendCents := (exact - note) * 100

	bend := math.Round(bendCents / (PitchBendSemis * 100) * 8192)
	if bend > 8191 {
		bend = 8191
	} else if bend < -8192 {
		bend = -8192
	}

	p := Pitch{
		Note:      UnusedNote,
		BendCents: float32(bendCents),
		Bend:      int16(bend),
		Frequency: float32(ConcertA * math.Pow(2, cents/1200)),
	}
	if note >= 0 && note <= 127 {
		p.Note = uint8(note)
	}
	return p
}

// Color returns the base color of a note, or false when the palette
// leaves it unassigned.
func (e *Engine) Color(stepsFromC, degree int) (ColorValue, bool) {
	cycle := int(e.tuning.CycleLength)
	if e.preset.ColorMode == RainbowMode {
		return ColorValue{
			Hue: 360 * float32(degree) / float32(cycle),
			Sat: SatVivid,
			Val: ValueNormal,
		}, true
	}
	idx := degree
	if !e.preset.PaletteAtKeyCenter {
		idx = core.PositiveMod(stepsFromC, cycle)
	}
	return e.palette.Color(idx)
}

// Codes derives the five LED codes of a base color at the preset
// brightness. Unassigned colors are dark in every role.
func (e *Engine) Codes(c ColorValue, assigned bool) CodeSet {
	if !assigned {
		return CodeSet{}
	}
	b := e.preset.Brightness
	play := c.Tint().Code(b)
	return CodeSet{
		Anim: play,
		Play: play,
		Rest: c.Code(b),
		Off:  0,
		Dim:  c.Shade().Code(b),
	}
}

// Map derives the full mapping of key id. Command keys are always in
// scale and carry CommandBase+n in Note.
func (e *Engine) Map(id int) KeyMapping {
	if n := hexgrid.CommandIndex(id); n >= 0 {
		b := e.preset.Brightness
		rest := commandRest.Code(b)
		return KeyMapping{
			IsCommand: true,
			Note:      uint8(CommandBase + n),
			InScale:   true,
			Codes: CodeSet{
				Anim: commandPlay.Code(b),
				Play: commandPlay.Code(b),
				Rest: rest,
				Dim:  rest,
			},
		}
	}

	h, ok := hexgrid.CoordinateForKey(id)
	if !ok {
		return KeyMapping{Note: UnusedNote}
	}
	steps := e.StepsFromC(h)
	degree := e.KeyDegree(steps)
	pitch := e.Pitch(steps)
	color, assigned := e.Color(steps, degree)
	return KeyMapping{
		Note:       pitch.Note,
		InScale:    e.InScale(degree),
		StepsFromC: steps,
		Degree:     degree,
		Pitch:      pitch,
		Codes:      e.Codes(color, assigned),
	}
}

// NoteName returns the name of the note stepsFromC above middle C
func (e *Engine) NoteName(stepsFromC int) string {
	return e.tuning.KeyName(stepsFromC + e.tuning.SpanCtoA())
}
