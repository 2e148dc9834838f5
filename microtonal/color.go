package microtonal

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"tinygo.org/x/drivers/pixel"

	"hexboard/core"
)

// Value levels for palette swatches
const (
	ValueBlack  = 0
	ValueLow    = 127
	ValueShade  = 164
	ValueNormal = 180
	ValueFull   = 255
)

// Saturation levels for palette swatches
const (
	SatBW       = 0
	SatTint     = 32
	SatDull     = 85
	SatModerate = 120
	SatVivid    = 255
)

// Hues in degrees
const (
	HueNone    = 0.0
	HueRed     = 0.0
	HueOrange  = 36.0
	HueYellow  = 72.0
	HueLime    = 108.0
	HueGreen   = 144.0
	HueCyan    = 180.0
	HueBlue    = 216.0
	HueIndigo  = 252.0
	HuePurple  = 288.0
	HueMagenta = 324.0
)

// Global brightness levels
const (
	BrightMax    = 255
	BrightHigh   = 210
	BrightMid    = 180
	BrightLow    = 150
	BrightDim    = 110
	BrightDimmer = 70
	BrightOff    = 0
)

// gammaExponent matches the curve of the usual NeoPixel gamma table
const gammaExponent = 2.6

var gammaTable [256]uint8

func init() {
	for i := range gammaTable {
		gammaTable[i] = uint8(math.Pow(float64(i)/255, gammaExponent)*255 + 0.5)
	}
}

// ColorValue is a hue/saturation/value triplet. Hue is in degrees.
type ColorValue struct {
	Hue float32
	Sat uint8
	Val uint8
}

// Tint returns the color lightened for a sounding key
func (c ColorValue) Tint() ColorValue {
	sat := c.Sat
	if sat > SatModerate {
		sat = SatModerate
	}
	return ColorValue{Hue: c.Hue, Sat: sat, Val: ValueFull}
}

// Shade returns the color darkened for an out-of-scale key
func (c ColorValue) Shade() ColorValue {
	sat := c.Sat
	if sat > SatDull {
		sat = SatDull
	}
	return ColorValue{Hue: c.Hue, Sat: sat, Val: ValueLow}
}

// Pixel converts the color to gamma-corrected RGB with its value scaled
// by brightness.
func (c ColorValue) Pixel(brightness uint8) pixel.RGB888 {
	val := uint16(c.Val) * uint16(brightness) / 255
	if val == 0 {
		return pixel.NewRGB888(0, 0, 0)
	}
	hue := math.Mod(float64(c.Hue), 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsv(hue, float64(c.Sat)/255, float64(val)/255).RGB255()
	return pixel.NewRGB888(gammaTable[r], gammaTable[g], gammaTable[b])
}

// Code packs the color into an LED code at the given brightness
func (c ColorValue) Code(brightness uint8) core.LEDCode {
	return PackPixel(c.Pixel(brightness))
}

// PackPixel packs an RGB pixel into an LED code
func PackPixel(p pixel.RGB888) core.LEDCode {
	return core.LEDCode(p.R)<<16 | core.LEDCode(p.G)<<8 | core.LEDCode(p.B)
}
