package rotary

import "testing"

// pins is one A\B sample
type pins struct{ a, b bool }

var (
	ccwDetent = []pins{{true, true}, {false, true}, {false, false}, {true, false}, {true, true}}
	cwDetent  = []pins{{true, true}, {true, false}, {false, false}, {false, true}, {true, true}}
)

func feed(d *Decoder, seq []pins) {
	for _, p := range seq {
		d.Update(p.a, p.b)
	}
}

func TestCounterClockwiseDetent(t *testing.T) {
	d := New(Buffered)
	feed(d, ccwDetent)
	if d.Pending() != 1 {
		t.Fatalf("Expected +1 pending, got %d", d.Pending())
	}
	if d.State() != Neutral {
		t.Errorf("Expected neutral after a full detent, got %v", d.State())
	}
	if got := d.ConsumeTurn(); got != 1 {
		t.Errorf("Expected +1, got %d", got)
	}
	if got := d.ConsumeTurn(); got != 0 {
		t.Errorf("Expected empty buffer, got %d", got)
	}
}

func TestClockwiseDetent(t *testing.T) {
	d := New(Buffered)
	feed(d, cwDetent)
	if got := d.ConsumeTurn(); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
}

func TestIntermediateStates(t *testing.T) {
	d := New(Buffered)
	expected := []KnobState{Neutral, CCW1, CCW2, CCW3, Neutral}
	for i, p := range ccwDetent {
		d.Update(p.a, p.b)
		if d.State() != expected[i] {
			t.Errorf("Step %d: expected %v, got %v", i, expected[i], d.State())
		}
	}
}

func TestBounceDoesNotCount(t *testing.T) {
	d := New(Buffered)
	// start a turn, bounce back to neutral, then stop
	feed(d, []pins{{true, true}, {false, true}, {true, true}, {false, true}, {false, false}, {false, true}, {true, true}})
	if d.Pending() != 0 {
		t.Errorf("Incomplete detent counted: %d", d.Pending())
	}
}

func TestBufferedMode(t *testing.T) {
	d := New(Buffered)
	for i := 0; i < 3; i++ {
		feed(d, ccwDetent)
	}
	for i := 0; i < 3; i++ {
		if got := d.ConsumeTurn(); got != 1 {
			t.Fatalf("Call %d: expected +1, got %d", i, got)
		}
	}
	if d.ConsumeTurn() != 0 {
		t.Error("Buffer should be empty after three turns")
	}
}

func TestImmediateMode(t *testing.T) {
	d := New(Immediate)
	for i := 0; i < 3; i++ {
		feed(d, cwDetent)
	}
	if got := d.ConsumeTurn(); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
	if d.Pending() != 0 || d.ConsumeTurn() != 0 {
		t.Error("Immediate mode should discard the overshoot")
	}
}

func TestOppositeTurnsCancel(t *testing.T) {
	d := New(Buffered)
	feed(d, ccwDetent)
	feed(d, cwDetent)
	if d.ConsumeTurn() != 0 {
		t.Error("One turn each way should net to zero")
	}
}

func TestInvertDirection(t *testing.T) {
	d := New(Buffered)
	d.InvertDirection()
	feed(d, ccwDetent)
	if got := d.ConsumeTurn(); got != -1 {
		t.Errorf("Inverted knob: expected -1, got %d", got)
	}
	d.InvertDirection()
	feed(d, ccwDetent)
	if got := d.ConsumeTurn(); got != 1 {
		t.Errorf("Restored knob: expected +1, got %d", got)
	}
}

func TestClickRisingEdgeOnly(t *testing.T) {
	var d Decoder
	samples := []bool{true, true, false, false, true, true, false, true}
	expected := []bool{false, false, false, false, true, false, false, true}
	for i, s := range samples {
		if got := d.Click(s); got != expected[i] {
			t.Errorf("Sample %d (%v): expected %v, got %v", i, s, expected[i], got)
		}
	}
}

func TestStateNames(t *testing.T) {
	if CCW2.String() != "ccw2" || CW3.String() != "cw3" || KnobState(9).String() != "invalid" {
		t.Error("Unexpected state names")
	}
}
