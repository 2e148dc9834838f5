//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"machine"
	"runtime/interrupt"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
	"tinygo.org/x/drivers/ws2812"

	"hexboard/core"
	"hexboard/hexgrid"
)

const ledPin = machine.GPIO22

// pioStrip drives the LEDs from a PIO state machine with DMA
type pioStrip struct {
	ws  *piolib.WS2812B
	grb [hexgrid.KeyCount]uint32
}

func (s *pioStrip) Show(codes []core.LEDCode) error {
	n := copyGRB(s.grb[:], codes)
	return s.ws.WriteRaw(s.grb[:n])
}

// copyGRB packs codes into the PIO program's left-aligned GRB words
func copyGRB(dst []uint32, codes []core.LEDCode) int {
	n := min(len(dst), len(codes))
	for i := 0; i < n; i++ {
		r, g, b := codes[i].RGB()
		dst[i] = uint32(g)<<24 | uint32(r)<<16 | uint32(b)<<8
	}
	return n
}

// bitbangStrip is the CPU-timed fallback when no state machine is free
type bitbangStrip struct {
	dev    ws2812.Device
	colors [hexgrid.KeyCount]color.RGBA
}

func (s *bitbangStrip) Show(codes []core.LEDCode) error {
	n := min(len(s.colors), len(codes))
	for i := 0; i < n; i++ {
		r, g, b := codes[i].RGB()
		s.colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	state := interrupt.Disable()
	err := s.dev.WriteColors(s.colors[:n])
	interrupt.Restore(state)
	return err
}

// newLEDStrip prefers PIO and falls back to bit-banging
func newLEDStrip(pin machine.Pin) core.LEDStrip {
	if sm, err := pio.PIO0.ClaimStateMachine(); err == nil {
		if ws, err := piolib.NewWS2812B(sm, pin); err == nil {
			ws.EnableDMA(true)
			core.DebugPrintln("[LED] PIO WS2812B on state machine")
			return &pioStrip{ws: ws}
		}
	}
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	core.DebugPrintln("[LED] bit-banged WS2812")
	return &bitbangStrip{dev: ws2812.New(pin)}
}
