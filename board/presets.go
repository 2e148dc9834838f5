package board

import "hexboard/microtonal"

// The helpers below are the menu's mutation sites. Each builds a modified
// copy of the active preset and routes it through ApplyPreset.

// SelectTuning switches tuning and resets layout, scale, key and
// transposition to that tuning's defaults.
func (b *Board) SelectTuning(t int) error {
	return b.ApplyPreset(b.preset.WithTuning(t))
}

// SelectLayout switches to layout i of the current tuning
func (b *Board) SelectLayout(i int) error {
	p := b.preset
	p.LayoutIndex = i
	return b.ApplyPreset(p)
}

// SelectScale switches to scale i
func (b *Board) SelectScale(i int) error {
	p := b.preset
	p.ScaleIndex = i
	return b.ApplyPreset(p)
}

// SetKey sets the key, in steps from A
func (b *Board) SetKey(stepsFromA int) error {
	p := b.preset
	p.KeyStepsFromA = stepsFromA
	return b.ApplyPreset(p)
}

// SetTranspose sets the transposition in tuning steps
func (b *Board) SetTranspose(steps int) error {
	p := b.preset
	p.Transpose = steps
	return b.ApplyPreset(p)
}

// SetColorMode selects rainbow or palette colors
func (b *Board) SetColorMode(m microtonal.ColorMode, atKeyCenter bool) error {
	p := b.preset
	p.ColorMode = m
	p.PaletteAtKeyCenter = atKeyCenter
	return b.ApplyPreset(p)
}

// SetScaleLock turns scale lock on or off
func (b *Board) SetScaleLock(on bool) error {
	p := b.preset
	p.ScaleLock = on
	return b.ApplyPreset(p)
}

// SetBrightness sets the global LED brightness
func (b *Board) SetBrightness(level uint8) error {
	p := b.preset
	p.Brightness = level
	return b.ApplyPreset(p)
}

// SetAnimation selects the key-press animation
func (b *Board) SetAnimation(a microtonal.Animation) error {
	p := b.preset
	p.Animation = a
	return b.ApplyPreset(p)
}
