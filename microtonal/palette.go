package microtonal

// MaxSwatches bounds the number of colors in one palette
const MaxSwatches = 12

// PaletteDef assigns a swatch to every step of one tuning. Degree table
// entries are 1-based swatch numbers; 0 means no color.
type PaletteDef struct {
	Tuning      uint8
	swatches    [MaxSwatches]ColorValue
	swatchCount uint8
	degrees     [MaxScaleDivisions]uint8
	degreeCount uint8
}

func palette(tuning uint8, swatches []ColorValue, degrees ...uint8) PaletteDef {
	p := PaletteDef{
		Tuning:      tuning,
		swatchCount: uint8(len(swatches)),
		degreeCount: uint8(len(degrees)),
	}
	copy(p.swatches[:], swatches)
	copy(p.degrees[:], degrees)
	return p
}

// Color returns the swatch assigned to step, or false when the step has
// no color.
func (p *PaletteDef) Color(step int) (ColorValue, bool) {
	if step < 0 || step >= int(p.degreeCount) {
		return ColorValue{}, false
	}
	n := p.degrees[step]
	if n == 0 || n > p.swatchCount {
		return ColorValue{}, false
	}
	return p.swatches[n-1], true
}

// Swatches returns the palette colors
func (p *PaletteDef) Swatches() []ColorValue {
	return p.swatches[:p.swatchCount]
}

// Degrees returns the 1-based swatch number of each step
func (p *PaletteDef) Degrees() []uint8 {
	return p.degrees[:p.degreeCount]
}

// PaletteCount is the number of palettes in the catalog
const PaletteCount = len(palettes)

// Palette returns palette i
func Palette(i int) (*PaletteDef, bool) {
	if i < 0 || i >= PaletteCount {
		return nil, false
	}
	return &palettes[i], true
}

// PalettesFor appends the indices of the palettes made for tuning t
func PalettesFor(dst []int, t int) []int {
	for i := range palettes {
		if int(palettes[i].Tuning) == t {
			dst = append(dst, i)
		}
	}
	return dst
}

var palettes = [TuningCount]PaletteDef{
	Tuning12EDO: palette(Tuning12EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueBlue, SatDull, ValueShade},
			{HueCyan, SatDull, ValueNormal},
			{HueIndigo, SatVivid, ValueNormal},
		},
		1, 2, 1, 2, 1, 3, 4, 3, 4, 3, 4, 3,
	),
	Tuning17EDO: palette(Tuning17EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueIndigo, SatVivid, ValueNormal},
			{HueRed, SatVivid, ValueNormal},
		},
		1, 2, 3, 1, 2, 3, 1, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1,
	),
	Tuning19EDO: palette(Tuning19EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueYellow, SatVivid, ValueNormal},
			{HueBlue, SatVivid, ValueNormal},
			{HueMagenta, SatVivid, ValueNormal},
		},
		1, 2, 3, 1, 2, 3, 1, 4, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 4,
	),
	Tuning22EDO: palette(Tuning22EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueBlue, SatVivid, ValueNormal},
			{HueMagenta, SatVivid, ValueNormal},
			{HueYellow, SatVivid, ValueNormal},
		},
		1, 2, 3, 4, 1, 2, 3, 4, 1, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1,
	),
	Tuning24EDO: palette(Tuning24EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueLime, SatDull, ValueShade},
			{HueCyan, SatVivid, ValueNormal},
			{HueIndigo, SatDull, ValueShade},
			{HueCyan, SatDull, ValueShade},
		},
		1, 2, 3, 4, 1, 2, 3, 4, 1, 5, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 5,
	),
	Tuning31EDO: palette(Tuning31EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueRed, SatDull, ValueNormal},
			{HueYellow, SatDull, ValueShade},
			{HueCyan, SatDull, ValueShade},
			{HueIndigo, SatDull, ValueNormal},
			{HueRed, SatDull, ValueShade},
			{HueIndigo, SatDull, ValueShade},
		},
		1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 6, 7, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1,
		2, 3, 4, 5, 1, 6, 7,
	),
	Tuning41EDO: palette(Tuning41EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueRed, SatDull, ValueNormal},
			{HueBlue, SatVivid, ValueNormal},
			{HueCyan, SatDull, ValueShade},
			{HueGreen, SatDull, ValueShade},
			{HueMagenta, SatDull, ValueNormal},
			{HueYellow, SatVivid, ValueNormal},
		},
		1, 2, 3, 4, 5, 6, 7, 1, 2, 3, 4, 5, 6, 7, 1, 2, 3, 1, 2, 3, 4, 5, 6, 7,
		1, 2, 3, 4, 5, 6, 7, 1, 2, 3, 4, 5, 6, 7, 1, 6, 7,
	),
	Tuning53EDO: palette(Tuning53EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueOrange, SatVivid, ValueNormal},
			{HueMagenta, SatDull, ValueNormal},
			{HueIndigo, SatVivid, ValueNormal},
			{HueGreen, SatVivid, ValueShade},
			{HueYellow, SatVivid, ValueShade},
			{HueRed, SatVivid, ValueNormal},
			{HuePurple, SatDull, ValueNormal},
			{HueCyan, SatVivid, ValueShade},
		},
		1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3, 9, 1, 2,
		3, 4, 5, 6, 7, 8, 9, 1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3, 4, 5, 6, 7, 8,
		9, 1, 2, 3, 9,
	),
	Tuning72EDO: palette(Tuning72EDO,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueGreen, SatDull, ValueShade},
			{HueRed, SatDull, ValueShade},
			{HuePurple, SatDull, ValueShade},
			{HueBlue, SatDull, ValueShade},
			{HueYellow, SatDull, ValueShade},
			{HueIndigo, SatVivid, ValueShade},
		},
		1, 2, 3, 4, 5, 6, 7, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6, 7, 2, 3, 4, 5, 6,
		1, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6, 7, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6,
		7, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6, 7, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6,
	),
	TuningBP: palette(TuningBP,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueIndigo, SatVivid, ValueNormal},
			{HueRed, SatVivid, ValueNormal},
		},
		1, 2, 3, 1, 2, 3, 1, 1, 2, 3, 1, 2, 3,
	),
	TuningAlpha: palette(TuningAlpha,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueYellow, SatVivid, ValueNormal},
			{HueIndigo, SatVivid, ValueNormal},
			{HueLime, SatVivid, ValueNormal},
			{HueRed, SatVivid, ValueNormal},
			{HueCyan, SatVivid, ValueNormal},
		},
		1, 2, 3, 4, 1, 2, 3, 5, 6,
	),
	TuningBeta: palette(TuningBeta,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueIndigo, SatVivid, ValueNormal},
			{HueRed, SatVivid, ValueNormal},
			{HueMagenta, SatDull, ValueNormal},
		},
		1, 2, 3, 1, 4, 1, 2, 3, 1, 2, 3,
	),
	TuningGamma: palette(TuningGamma,
		[]ColorValue{
			{HueNone, SatBW, ValueNormal},
			{HueRed, SatVivid, ValueNormal},
			{HueBlue, SatVivid, ValueNormal},
			{HueYellow, SatVivid, ValueNormal},
			{HuePurple, SatVivid, ValueNormal},
			{HueGreen, SatVivid, ValueNormal},
		},
		1, 4, 2, 5, 3, 6, 1, 4, 1, 4, 2, 5, 3, 6, 1, 4, 2, 5, 3, 6,
	),
}
