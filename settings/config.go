//go:build !tinygo

package settings

import (
	"encoding/json"
	"fmt"

	"hexboard/microtonal"
)

// Config is the host-side JSON configuration. Catalog entries are named
// rather than indexed so files survive catalog reordering.
type Config struct {
	Tuning     string `json:"tuning"`
	Layout     string `json:"layout"`
	Scale      string `json:"scale"`
	Key        string `json:"key"`
	Transpose  int    `json:"transpose"`
	ColorMode  string `json:"color_mode"` // "rainbow" or "tiered"
	PaletteAt  string `json:"palette_at"` // "key" or "c"
	ScaleLock  bool   `json:"scale_lock"`
	Brightness int    `json:"brightness"`
	Animation  string `json:"animation"`

	Velocity   int    `json:"velocity"`
	KnobMode   string `json:"knob_mode"` // "menu", "modwheel" or "pitchbend"
	InvertKnob bool   `json:"invert_knob"`

	MIDIPort string `json:"midi_port"` // serial device; empty logs MIDI instead
	Baud     int    `json:"baud"`
	Settings string `json:"settings"` // path of the saved preset blob
}

// LoadConfig parses a JSON configuration and fills in defaults
func LoadConfig(jsonData []byte) (*Config, error) {
	var config Config

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// DefaultConfig returns the configuration matching the default preset
func DefaultConfig() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

func applyDefaults(config *Config) {
	if config.Tuning == "" {
		config.Tuning = "12 EDO"
	}
	t, ok := microtonal.FindTuning(config.Tuning)
	if !ok {
		// left for Preset to report
		return
	}
	tuning, _ := microtonal.Tuning(t)

	if config.Layout == "" {
		begin, _ := microtonal.LayoutsFor(t)
		if l, ok := microtonal.Layout(begin); ok {
			config.Layout = l.Name
		}
	}
	if config.Scale == "" {
		config.Scale = "None"
	}
	if config.Key == "" {
		config.Key = tuning.KeyName(tuning.SpanCtoA())
	}
	if config.ColorMode == "" {
		config.ColorMode = "tiered"
	}
	if config.PaletteAt == "" {
		config.PaletteAt = "key"
	}
	if config.Brightness == 0 {
		config.Brightness = microtonal.BrightMid
	}
	if config.Animation == "" {
		config.Animation = "none"
	}
	if config.Velocity == 0 {
		config.Velocity = 100
	}
	if config.KnobMode == "" {
		config.KnobMode = "menu"
	}
	if config.Baud == 0 {
		config.Baud = 31250
	}
}

// Preset resolves the named catalog entries
func (c *Config) Preset() (microtonal.Preset, error) {
	p := microtonal.DefaultPreset()

	t, ok := microtonal.FindTuning(c.Tuning)
	if !ok {
		return p, fmt.Errorf("tuning %q: %w", c.Tuning, microtonal.ErrInvalidTuning)
	}
	p = p.WithTuning(t)
	tuning := p.Tuning()

	if p.LayoutIndex, ok = microtonal.FindLayout(t, c.Layout); !ok {
		return p, fmt.Errorf("layout %q for %s: %w", c.Layout, tuning.Name, microtonal.ErrInvalidLayout)
	}
	if p.ScaleIndex, ok = microtonal.FindScale(t, c.Scale); !ok {
		return p, fmt.Errorf("scale %q for %s: %w", c.Scale, tuning.Name, microtonal.ErrInvalidScale)
	}
	if p.KeyStepsFromA, ok = tuning.FindKey(c.Key); !ok {
		return p, fmt.Errorf("key %q for %s: %w", c.Key, tuning.Name, microtonal.ErrInvalidKey)
	}
	p.Transpose = c.Transpose

	switch c.ColorMode {
	case "rainbow":
		p.ColorMode = microtonal.RainbowMode
	case "tiered":
		p.ColorMode = microtonal.TieredMode
	default:
		return p, fmt.Errorf("color mode %q: %w", c.ColorMode, microtonal.ErrInvalidOption)
	}
	switch c.PaletteAt {
	case "key":
		p.PaletteAtKeyCenter = true
	case "c":
		p.PaletteAtKeyCenter = false
	default:
		return p, fmt.Errorf("palette anchor %q: %w", c.PaletteAt, microtonal.ErrInvalidOption)
	}
	if c.Brightness < 0 || c.Brightness > 255 {
		return p, fmt.Errorf("brightness %d: %w", c.Brightness, microtonal.ErrInvalidOption)
	}
	p.Brightness = uint8(c.Brightness)
	p.ScaleLock = c.ScaleLock
	if p.Animation, ok = microtonal.ParseAnimation(c.Animation); !ok {
		return p, fmt.Errorf("animation %q: %w", c.Animation, microtonal.ErrInvalidOption)
	}

	return p, p.Validate()
}
