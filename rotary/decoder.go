// Package rotary decodes the menu knob: a mechanical quadrature encoder
// with a push switch.
//
// One detent moves the A\B pins through 11, 01, 00, 10, 11 when turned
// counter-clockwise and 11, 10, 00, 01, 11 clockwise. The decoder only
// counts a turn once the pins return to 11 after visiting every state in
// order, which rejects contact bounce without a timer.
package rotary

// KnobState is the position of the decoder within one detent
type KnobState uint8

const (
	Neutral KnobState = iota
	CCW1
	CCW2
	CCW3
	CW1
	CW2
	CW3
)

var stateNames = [...]string{"neutral", "ccw1", "ccw2", "ccw3", "cw1", "cw2", "cw3"}

func (s KnobState) String() string {
	if int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// step is one table entry: the next state plus a completed-turn flag
type step struct {
	next KnobState
	turn int8 // +1 counter-clockwise, -1 clockwise
}

// table[state][(B<<1)|A]
var table = [7][4]step{
	Neutral: {{Neutral, 0}, {CW1, 0}, {CCW1, 0}, {Neutral, 0}},
	CCW1:    {{CCW2, 0}, {Neutral, 0}, {CCW1, 0}, {Neutral, 0}},
	CCW2:    {{CCW2, 0}, {CCW3, 0}, {CCW1, 0}, {Neutral, 0}},
	CCW3:    {{CCW2, 0}, {CCW3, 0}, {Neutral, 0}, {Neutral, +1}},
	CW1:     {{CW2, 0}, {CW1, 0}, {Neutral, 0}, {Neutral, 0}},
	CW2:     {{CW2, 0}, {CW1, 0}, {CW3, 0}, {Neutral, 0}},
	CW3:     {{CW2, 0}, {Neutral, 0}, {CW3, 0}, {Neutral, -1}},
}

// Mode selects how ConsumeTurn drains the turn buffer
type Mode uint8

const (
	// Buffered returns one detent per call until the buffer is empty
	Buffered Mode = iota
	// Immediate reports the direction once and discards the rest
	Immediate
)

// Decoder is the knob state machine. The zero value is a buffered decoder
// at rest with the click switch released (pulled high).
type Decoder struct {
	state    KnobState
	turns    int
	mode     Mode
	inverted bool
	clickLow bool // last click sample was low
}

// New returns a decoder in the given mode
func New(mode Mode) *Decoder {
	return &Decoder{mode: mode}
}

// Update consumes one sample of the quadrature pins
func (d *Decoder) Update(a, b bool) {
	if d.inverted {
		a, b = b, a
	}
	idx := 0
	if a {
		idx |= 1
	}
	if b {
		idx |= 2
	}
	s := table[d.state][idx]
	d.state = s.next
	d.turns += int(s.turn)
}

// ConsumeTurn returns +1 (counter-clockwise), -1 (clockwise) or 0
func (d *Decoder) ConsumeTurn() int {
	dir := 0
	switch {
	case d.turns > 0:
		dir = 1
	case d.turns < 0:
		dir = -1
	}
	if d.mode == Buffered {
		d.turns -= dir
	} else {
		d.turns = 0
	}
	return dir
}

// Click consumes one sample of the switch pin and reports a low-to-high
// edge. The previous sample starts high.
func (d *Decoder) Click(sample bool) bool {
	rising := sample && d.clickLow
	d.clickLow = !sample
	return rising
}

// InvertDirection swaps the roles of the A and B pins
func (d *Decoder) InvertDirection() {
	d.inverted = !d.inverted
}

// SetMode changes how ConsumeTurn drains the buffer
func (d *Decoder) SetMode(mode Mode) {
	d.mode = mode
}

// Pending returns the signed number of detents not yet consumed
func (d *Decoder) Pending() int {
	return d.turns
}

// State returns the position within the current detent
func (d *Decoder) State() KnobState {
	return d.state
}
