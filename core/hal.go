package core

// LEDCode is a packed 0x00RRGGBB pixel value, already gamma corrected and
// scaled by the global brightness.
type LEDCode uint32

// RGB unpacks the code into its channels
func (c LEDCode) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// KeyScanner is the abstract key-matrix interface that core code uses.
// Platform-specific implementations drive the multiplexer and column pins.
type KeyScanner interface {
	// Scan fills samples with one pressed/not-pressed reading per key id.
	// Readings must already be stable; the core does no debouncing.
	Scan(samples []bool)
}

// KnobPins supplies raw samples from the rotary encoder
type KnobPins interface {
	// ReadAB returns the two quadrature pin levels
	ReadAB() (a, b bool)

	// ReadClick returns the push-switch pin level
	ReadClick() bool
}

// LEDStrip transmits a full frame of pixel codes, one per key id
type LEDStrip interface {
	Show(codes []LEDCode) error
}

// MIDIOut transmits one complete MIDI message (status byte included)
type MIDIOut interface {
	Send(msg []byte) error
}

// Synth is the on-board audio collaborator
type Synth interface {
	NoteOn(key int, hz float32)
	NoteOff(key int)
}

// SettingsStore persists the settings blob across power cycles
type SettingsStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Global singletons used by target code; the board takes its collaborators
// explicitly, these exist so drivers can be registered from init code.
var (
	keyScanner KeyScanner
	ledStrip   LEDStrip
	midiOut    MIDIOut
)

// SetKeyScanner is called by target-specific code to register its driver.
func SetKeyScanner(s KeyScanner) {
	keyScanner = s
}

// MustKeyScanner returns the configured scanner or panics if missing.
func MustKeyScanner() KeyScanner {
	if keyScanner == nil {
		panic("key scanner not configured")
	}
	return keyScanner
}

// SetLEDStrip is called by target-specific code to register its driver.
func SetLEDStrip(s LEDStrip) {
	ledStrip = s
}

// MustLEDStrip returns the configured LED strip or panics if missing.
func MustLEDStrip() LEDStrip {
	if ledStrip == nil {
		panic("LED strip not configured")
	}
	return ledStrip
}

// SetMIDIOut is called by target-specific code to register its transport.
func SetMIDIOut(m MIDIOut) {
	midiOut = m
}

// MustMIDIOut returns the configured MIDI transport or panics if missing.
func MustMIDIOut() MIDIOut {
	if midiOut == nil {
		panic("MIDI output not configured")
	}
	return midiOut
}
