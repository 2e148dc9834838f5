// Package settings persists the active preset and loads host
// configuration.
//
// On the board the preset is stored as one protocol frame whose tag is the
// blob version and whose payload is a sequence of VLQ fields.
package settings

import (
	"errors"

	"hexboard/microtonal"
	"hexboard/protocol"
)

// BlobVersion is bumped whenever the field list changes
const BlobVersion = 1

var (
	ErrCorrupt = errors.New("settings: corrupt blob")
	ErrVersion = errors.New("settings: unsupported blob version")
)

const (
	flagPaletteAtKeyCenter = 1 << iota
	flagScaleLock
)

// Encode appends p to output as a sealed blob
func Encode(output protocol.OutputBuffer, p microtonal.Preset) error {
	var payload protocol.ScratchOutput
	for _, v := range [...]int{
		p.TuningIndex,
		p.LayoutIndex,
		p.ScaleIndex,
		p.PaletteIndex,
		p.KeyStepsFromA,
		p.Transpose,
	} {
		protocol.EncodeVLQInt(&payload, int32(v))
	}
	var flags uint32
	if p.PaletteAtKeyCenter {
		flags |= flagPaletteAtKeyCenter
	}
	if p.ScaleLock {
		flags |= flagScaleLock
	}
	protocol.EncodeVLQUint(&payload, uint32(p.ColorMode))
	protocol.EncodeVLQUint(&payload, flags)
	protocol.EncodeVLQUint(&payload, uint32(p.Brightness))
	protocol.EncodeVLQUint(&payload, uint32(p.Animation))
	return protocol.EncodeFrame(output, BlobVersion, payload.Result())
}

// Decode reads a blob written by Encode. The preset is validated against
// the current catalogs, so a blob saved by an older catalog may decode
// cleanly and still be rejected with a microtonal error.
func Decode(data []byte) (microtonal.Preset, error) {
	var p microtonal.Preset
	version, payload, _, err := protocol.DecodeFrame(data)
	if err != nil {
		return p, ErrCorrupt
	}
	if version != BlobVersion {
		return p, ErrVersion
	}

	var fields [10]int32
	for i := range fields {
		v, err := protocol.DecodeVLQInt(&payload)
		if err != nil {
			return p, ErrCorrupt
		}
		fields[i] = v
	}
	if len(payload) != 0 {
		return p, ErrCorrupt
	}

	p = microtonal.Preset{
		TuningIndex:        int(fields[0]),
		LayoutIndex:        int(fields[1]),
		ScaleIndex:         int(fields[2]),
		PaletteIndex:       int(fields[3]),
		KeyStepsFromA:      int(fields[4]),
		Transpose:          int(fields[5]),
		ColorMode:          microtonal.ColorMode(fields[6]),
		PaletteAtKeyCenter: fields[7]&flagPaletteAtKeyCenter != 0,
		ScaleLock:          fields[7]&flagScaleLock != 0,
		Brightness:         uint8(fields[8]),
		Animation:          microtonal.Animation(fields[9]),
	}
	if fields[6] < 0 || fields[6] > 255 || fields[8] < 0 || fields[8] > 255 || fields[9] < 0 || fields[9] > 255 {
		return microtonal.Preset{}, ErrCorrupt
	}
	if err := p.Validate(); err != nil {
		return microtonal.Preset{}, err
	}
	return p, nil
}
