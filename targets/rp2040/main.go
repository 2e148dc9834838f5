//go:build rp2040 || rp2350

package main

import (
	"machine"
	"machine/usb"
	"runtime"

	"hexboard/board"
	"hexboard/core"
	"hexboard/microtonal"
	"hexboard/settings"
)

var (
	loopPanics   uint32
	saveFailures uint32
)

func main() {
	// A watchdog left running by a previous image would reset us mid-boot
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	usb.Product = "HexBoard"
	usb.Manufacturer = "HexBoard"

	InitDebugUART()
	core.InitAsyncDebug()
	InitClock()

	core.SetKeyScanner(newMatrixScanner())
	core.SetLEDStrip(newLEDStrip(ledPin))
	core.SetMIDIOut(newUSBMIDI())

	store := &flashStore{}
	preset, err := settings.Load(store)
	if err != nil {
		core.DebugPrintln("[SETTINGS] using defaults: " + err.Error())
	}

	cfg := board.Config{
		Scanner: core.MustKeyScanner(),
		Knob:    newKnobPins(),
		LEDs:    core.MustLEDStrip(),
		MIDI:    core.MustMIDIOut(),
		Clock:   core.SystemClock{},
	}
	b, err := board.New(cfg, preset)
	if err != nil {
		b, err = board.New(cfg, microtonal.DefaultPreset())
		if err != nil {
			panic("default preset rejected: " + err.Error())
		}
	}
	p := b.Preset()
	core.DebugPrintln("[BOOT] " + p.Tuning().Name + " / " + p.KeyName())

	for {
		func() {
			defer func() {
				if r := recover(); r != nil {
					loopPanics++
					b.Panic()
				}
			}()

			UpdateSystemTime()
			b.Poll()
			handleKnob(b, store)
		}()

		runtime.Gosched()
	}
}

// handleKnob applies menu-mode knob input: turns transpose by one step per
// detent and a click stores the preset.
func handleKnob(b *board.Board, store *flashStore) {
	turn, clicked := b.KnobEvents()
	if turn != 0 {
		p := b.Preset()
		if err := b.SetTranspose(p.Transpose + turn); err != nil {
			core.DebugAsync("[KNOB] " + err.Error())
		}
	}
	if clicked {
		if err := settings.Save(store, b.Preset()); err != nil {
			saveFailures++
			core.DebugAsync("[SETTINGS] save failed: " + err.Error())
			return
		}
		core.DebugAsync("[SETTINGS] saved")
	}
}
