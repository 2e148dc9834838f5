package keys

import (
	"testing"

	"hexboard/core"
	"hexboard/hexgrid"
	"hexboard/microtonal"
)

func TestPressReleasePattern(t *testing.T) {
	var c ButtonCell
	samples := []bool{true, true, false, false}
	expected := []ButtonState{JustPressed, Held, JustReleased, Idle}

	for i, s := range samples {
		if got := c.Update(s, uint64(i)); got != expected[i] {
			t.Errorf("Step %d: expected %v, got %v", i, expected[i], got)
		}
	}
}

func TestTransitionTableIsShiftAndMask(t *testing.T) {
	for s := ButtonState(0); s < 4; s++ {
		for _, sample := range []bool{false, true} {
			bit := ButtonState(0)
			if sample {
				bit = 1
			}
			expected := ((s << 1) | bit) & 0b11
			if got := s.Next(sample); got != expected {
				t.Errorf("%v + %v: expected %v, got %v", s, sample, expected, got)
			}
		}
	}
}

func TestTransientStatesLastOnePoll(t *testing.T) {
	var c ButtonCell
	c.Update(true, 0)
	if c.Update(true, 1) != Held {
		t.Error("JustPressed should decay to Held")
	}
	c.Update(false, 2)
	if c.Update(false, 3) != Idle {
		t.Error("JustReleased should decay to Idle")
	}
	// a one-poll tap passes through both transient states
	if c.Update(true, 4) != JustPressed || c.Update(false, 5) != JustReleased {
		t.Error("Tap did not produce JustPressed then JustReleased")
	}
}

func TestLastPressTime(t *testing.T) {
	var c ButtonCell
	c.Update(true, 1000)
	c.Update(true, 2000)
	c.Update(false, 3000)
	if c.LastPressTime != 1000 {
		t.Errorf("Expected press stamped at 1000, got %d", c.LastPressTime)
	}
	c.Update(true, 4000)
	if c.LastPressTime != 4000 {
		t.Errorf("Expected re-press stamped at 4000, got %d", c.LastPressTime)
	}
}

func TestRecomputeMatchesEngine(t *testing.T) {
	p := microtonal.DefaultPreset()
	p.ScaleIndex, _ = microtonal.FindScale(microtonal.Tuning12EDO, "Blues")
	e, err := microtonal.NewEngine(p)
	if err != nil {
		t.Fatal(err)
	}

	var cells Cells
	cells.Init()
	cells.RecomputeAll(e)

	for id := range cells {
		c := &cells[id]
		m := e.Map(id)
		if c.Codes != m.Codes {
			t.Errorf("Key %d: cached codes %+v differ from %+v", id, c.Codes, m.Codes)
		}
		if c.Note != m.Note || c.InScale != m.InScale || c.IsCommand != m.IsCommand {
			t.Errorf("Key %d: cached mapping differs", id)
		}
		if int(c.StepsFromC) != m.StepsFromC || c.Frequency != m.Pitch.Frequency {
			t.Errorf("Key %d: cached pitch differs", id)
		}
	}
}

func TestDisplayCodePriority(t *testing.T) {
	c := ButtonCell{
		InScale: true,
		Codes: microtonal.CodeSet{
			Anim: 1, Play: 2, Rest: 3, Off: 4, Dim: 5,
		},
	}
	expect := func(name string, scaleLock bool, code core.LEDCode) {
		t.Helper()
		if got := c.DisplayCode(scaleLock); got != code {
			t.Errorf("%s: expected code %d, got %d", name, code, got)
		}
	}

	expect("resting in scale", false, 3)
	c.InScale = false
	expect("resting out of scale", false, 5)
	expect("locked out of scale", true, 4)

	c.State = Held
	expect("pressed", false, 2)
	expect("pressed but locked out", true, 4)
	c.InScale = true
	expect("pressed in scale with lock", true, 2)

	c.Animated = true
	expect("animated", false, 1)
}

func TestPlayable(t *testing.T) {
	c := ButtonCell{Note: 60, InScale: false}
	if !c.Playable(false) {
		t.Error("Out-of-scale note should play without scale lock")
	}
	if c.Playable(true) {
		t.Error("Out-of-scale note should be silent with scale lock")
	}
	c.Note = microtonal.UnusedNote
	if c.Playable(false) {
		t.Error("Unused note should never play")
	}
	c = ButtonCell{Note: microtonal.CommandBase, IsCommand: true, InScale: true}
	if c.Playable(false) {
		t.Error("Command keys are not notes")
	}
}

func TestCellsInitAndFrame(t *testing.T) {
	var cells Cells
	cells.Init()
	for id := range cells {
		h, _ := hexgrid.CoordinateForKey(id)
		if cells[id].ID != uint8(id) || cells[id].Coord != h {
			t.Fatalf("Cell %d initialised with id %d coord %+v", id, cells[id].ID, cells[id].Coord)
		}
		cells[id].InScale = true
		cells[id].Codes.Rest = core.LEDCode(id + 1)
	}

	frame := make([]core.LEDCode, hexgrid.KeyCount)
	cells.Frame(frame, false)
	for id, code := range frame {
		if code != core.LEDCode(id+1) {
			t.Fatalf("Frame[%d] = %d, expected %d", id, code, id+1)
		}
	}
}
