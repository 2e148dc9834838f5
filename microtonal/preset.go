package microtonal

import "hexboard/core"

// ColorMode selects how key colors are derived
type ColorMode uint8

const (
	RainbowMode ColorMode = iota // hue follows the key degree around the cycle
	TieredMode                   // colors come from the tuning's palette
	colorModeCount
)

func (m ColorMode) String() string {
	switch m {
	case RainbowMode:
		return "rainbow"
	case TieredMode:
		return "tiered"
	default:
		return "unknown"
	}
}

// Animation selects the key-press animation
type Animation uint8

const (
	AnimateNone Animation = iota
	AnimateStar
	AnimateSplash
	AnimateOrbit
	AnimateOctave
	AnimateByNote
	animationCount
)

var animationNames = [animationCount]string{"none", "star", "splash", "orbit", "octave", "by-note"}

func (a Animation) String() string {
	if a >= animationCount {
		return "unknown"
	}
	return animationNames[a]
}

// ParseAnimation returns the animation with the given name
func ParseAnimation(name string) (Animation, bool) {
	for i, n := range animationNames {
		if n == name {
			return Animation(i), true
		}
	}
	return AnimateNone, false
}

// Preset is the live playing configuration: one entry from each catalog
// plus the key and transposition. Derived quantities are computed on
// demand and never stored.
type Preset struct {
	TuningIndex   int
	LayoutIndex   int
	ScaleIndex    int
	PaletteIndex  int
	KeyStepsFromA int // key of the scale, 0 = A
	Transpose     int // in tuning steps

	ColorMode          ColorMode
	PaletteAtKeyCenter bool // color by scale degree rather than by note name
	ScaleLock          bool // out-of-scale keys are dark and silent
	Brightness         uint8
	Animation          Animation
}

// DefaultPreset is 12 EDO, Wicki-Hayden, no scale, key of C
func DefaultPreset() Preset {
	return Preset{
		TuningIndex:        Tuning12EDO,
		LayoutIndex:        0,
		ScaleIndex:         0,
		PaletteIndex:       Tuning12EDO,
		KeyStepsFromA:      tunings[Tuning12EDO].SpanCtoA(),
		ColorMode:          TieredMode,
		PaletteAtKeyCenter: true,
		Brightness:         BrightMid,
		Animation:          AnimateNone,
	}
}

// Validate checks every index against the catalogs and the relationships
// between them. A preset that passes can be handed to NewEngine.
func (p Preset) Validate() error {
	t, ok := Tuning(p.TuningIndex)
	if !ok {
		return &PresetError{"tuning", p.TuningIndex, ErrInvalidTuning}
	}
	l, ok := Layout(p.LayoutIndex)
	if !ok || int(l.Tuning) != p.TuningIndex {
		return &PresetError{"layout", p.LayoutIndex, ErrInvalidLayout}
	}
	if err := l.Validate(int(t.CycleLength)); err != nil {
		return &PresetError{"layout", p.LayoutIndex, err}
	}
	s, ok := Scale(p.ScaleIndex)
	if !ok || !s.FitsTuning(p.TuningIndex) {
		return &PresetError{"scale", p.ScaleIndex, ErrInvalidScale}
	}
	pal, ok := Palette(p.PaletteIndex)
	if !ok || int(pal.Tuning) != p.TuningIndex {
		return &PresetError{"palette", p.PaletteIndex, ErrInvalidPalette}
	}
	if !t.HasKey(p.KeyStepsFromA) {
		return &PresetError{"key", p.KeyStepsFromA, ErrInvalidKey}
	}
	if p.ColorMode >= colorModeCount {
		return &PresetError{"color mode", int(p.ColorMode), ErrInvalidOption}
	}
	if p.Animation >= animationCount {
		return &PresetError{"animation", int(p.Animation), ErrInvalidOption}
	}
	return nil
}

// Tuning returns the selected tuning. The preset must be valid.
func (p Preset) Tuning() *TuningDef {
	return &tunings[p.TuningIndex]
}

// Layout returns the selected layout. The preset must be valid.
func (p Preset) Layout() *LayoutDef {
	return &layouts[p.LayoutIndex]
}

// Scale returns the selected scale. The preset must be valid.
func (p Preset) Scale() *ScaleDef {
	return &scales[p.ScaleIndex]
}

// Palette returns the selected palette. The preset must be valid.
func (p Preset) Palette() *PaletteDef {
	return &palettes[p.PaletteIndex]
}

// KeyStepsFromC is the distance of the key from C in tuning steps
func (p Preset) KeyStepsFromC() int {
	return p.Tuning().SpanCtoA() - p.KeyStepsFromA
}

// KeyDegree returns the scale degree of a note stepsFromC above middle C
func (p Preset) KeyDegree(stepsFromC int) int {
	return core.PositiveMod(stepsFromC+p.KeyStepsFromC(), int(p.Tuning().CycleLength))
}

// PitchRelToA4 returns the pitch of a note in tuning steps from A4
func (p Preset) PitchRelToA4(stepsFromC int) int {
	return stepsFromC + p.Tuning().SpanCtoA() + p.Transpose
}

// KeyName returns the name of the selected key
func (p Preset) KeyName() string {
	return p.Tuning().KeyName(p.KeyStepsFromA)
}

// WithTuning returns a copy switched to tuning t with that tuning's first
// layout, its palette, no scale, the key of C and no transposition.
func (p Preset) WithTuning(t int) Preset {
	tuning, ok := Tuning(t)
	if !ok {
		p.TuningIndex = t
		return p
	}
	begin, _ := LayoutsFor(t)
	p.TuningIndex = t
	p.LayoutIndex = begin
	p.ScaleIndex = 0
	p.PaletteIndex = t
	p.KeyStepsFromA = tuning.SpanCtoA()
	p.Transpose = 0
	return p
}
