// Package render draws a board frame in the terminal
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"hexboard/core"
	"hexboard/hexgrid"
)

const (
	litGlyph  = "●"
	darkGlyph = "·"
)

// displayGamma undoes the LED gamma table so the terminal shows roughly
// what the eye sees on the strip
const displayGamma = 1 / 2.6

var darkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#333"))

// KeyColor converts an LED code to a terminal color
func KeyColor(code core.LEDCode) lipgloss.Color {
	r, g, b := code.RGB()
	c := colorful.Color{R: delinearize(r), G: delinearize(g), B: delinearize(b)}
	return lipgloss.Color(c.Clamped().Hex())
}

func delinearize(v uint8) float64 {
	return math.Pow(float64(v)/255, displayGamma)
}

// RenderKey renders a single LED
func RenderKey(code core.LEDCode) string {
	if code == 0 {
		return darkStyle.Render(darkGlyph)
	}
	return lipgloss.NewStyle().Foreground(KeyColor(code)).Render(litGlyph)
}

// RenderFrame lays the frame out as the physical hex grid, odd rows
// shifted half a key to the right. codes is indexed by key id.
func RenderFrame(codes []core.LEDCode) string {
	lines := make([]string, hexgrid.Rows)
	for row := 0; row < hexgrid.Rows; row++ {
		var line strings.Builder
		if row&1 == 1 {
			line.WriteString(" ")
		}
		for col := 0; col < hexgrid.Columns; col++ {
			if col > 0 {
				line.WriteString(" ")
			}
			id := row*hexgrid.Columns + col
			var code core.LEDCode
			if id < len(codes) {
				code = codes[id]
			}
			line.WriteString(RenderKey(code))
		}
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}
