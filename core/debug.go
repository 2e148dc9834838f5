package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures one loop event for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	Key       uint8  // Key id, when the event concerns one key
	Clock     uint32 // Low 32 bits of the clock at the event
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtFrame          = 1 // Animation frame rendered; Value1 = cost in us
	EvtNoteOn         = 2 // Note sent; Value1 = note, Value2 = channel
	EvtNoteOff        = 3 // Note released; Value1 = note, Value2 = channel
	EvtPresetSwap     = 4 // Preset accepted; Value1 = tuning, Value2 = layout
	EvtPresetRejected = 5 // Preset refused by validation
	EvtKnobTurn       = 6 // Knob delta consumed; Value1 = delta + 1
	EvtControl        = 7 // Continuous control flushed; Value1 = controller
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (set by platform code)
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled controls whether DebugPrintln writes anything
	debugEnabled bool

	timingRing     [TimingRingSize]TimingEvent
	timingRingHead uint8
	timingEnabled  = true

	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the goroutine that drains DebugAsync messages.
// Call this from main() after SetDebugWriter.
func InitAsyncDebug() {
	debugChan = make(chan string, 16)
	go debugOutputWorker()
}

func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message synchronously when debug is enabled.
// Keep it off the poll loop; use DebugAsync there.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a message for the async writer. It never blocks: the
// message is dropped if the channel is full or async output is not running.
func DebugAsync(msg string) {
	if debugChan == nil || !debugEnabled {
		return
	}
	select {
	case debugChan <- msg:
	default:
	}
}

// RecordTiming captures an event in the ring buffer
func RecordTiming(eventType, key uint8, clock uint64, value1, value2 uint32) {
	if !timingEnabled {
		return
	}
	idx := timingRingHead
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		Key:       key,
		Clock:     uint32(clock),
		Value1:    value1,
		Value2:    value2,
	}
	timingRingHead = (idx + 1) % TimingRingSize
}

// TimingEvents copies the ring, oldest first, into dst and returns the
// number of populated entries.
func TimingEvents(dst *[TimingRingSize]TimingEvent) int {
	n := 0
	for i := uint8(0); i < TimingRingSize; i++ {
		evt := timingRing[(timingRingHead+i)%TimingRingSize]
		if evt.EventType == 0 {
			continue
		}
		dst[n] = evt
		n++
	}
	return n
}

// DumpTimingRing writes the ring through the debug writer, oldest first
func DumpTimingRing() {
	if debugPrintln == nil {
		return
	}

	var events [TimingRingSize]TimingEvent
	n := TimingEvents(&events)

	debugPrintln("[TIMING] === Timing Ring Dump ===")
	for i := 0; i < n; i++ {
		evt := &events[i]
		debugPrintln("[TIMING] " + eventName(evt.EventType) +
			" key=" + itoa(int(evt.Key)) +
			" clock=" + utoa(evt.Clock) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

func eventName(t uint8) string {
	switch t {
	case EvtFrame:
		return "FRAME"
	case EvtNoteOn:
		return "NOTE_ON"
	case EvtNoteOff:
		return "NOTE_OFF"
	case EvtPresetSwap:
		return "PRESET"
	case EvtPresetRejected:
		return "PRESET_REJECTED!"
	case EvtKnobTurn:
		return "KNOB"
	case EvtControl:
		return "CONTROL"
	default:
		return "UNKNOWN"
	}
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	for i := range timingRing {
		timingRing[i] = TimingEvent{}
	}
	timingRingHead = 0
}
