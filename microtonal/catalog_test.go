package microtonal

import (
	"errors"
	"testing"
)

func TestCatalogSizes(t *testing.T) {
	if TuningCount != 13 {
		t.Errorf("Expected 13 tunings, got %d", TuningCount)
	}
	if LayoutCount != 44 {
		t.Errorf("Expected 44 layouts, got %d", LayoutCount)
	}
	if ScaleCount != 88 {
		t.Errorf("Expected 88 scales, got %d", ScaleCount)
	}
	if PaletteCount != TuningCount {
		t.Errorf("Expected one palette per tuning, got %d", PaletteCount)
	}
}

func TestTuningKeyChoicesAreConsecutive(t *testing.T) {
	for i := 0; i < TuningCount; i++ {
		tuning, _ := Tuning(i)
		keys := tuning.KeyChoices()
		if len(keys) != int(tuning.CycleLength) {
			t.Errorf("%s: %d key choices for cycle %d", tuning.Name, len(keys), tuning.CycleLength)
		}
		if tuning.CycleLength == 0 || tuning.CycleLength > MaxScaleDivisions {
			t.Errorf("%s: cycle length %d out of range", tuning.Name, tuning.CycleLength)
		}
		for j, k := range keys {
			if int(k.Offset) != tuning.SpanCtoA()+j {
				t.Errorf("%s: key %q has offset %d, expected %d", tuning.Name, k.Name, k.Offset, tuning.SpanCtoA()+j)
			}
		}
		if tuning.SpanCtoA() > 0 {
			t.Errorf("%s: C lies above A", tuning.Name)
		}
	}
}

func TestKeyNames(t *testing.T) {
	tuning, _ := Tuning(Tuning12EDO)
	testCases := map[int]string{0: "A", -9: "C", 2: "B", 3: "C", -10: "B", 1: "Bb"}
	for steps, expected := range testCases {
		if got := tuning.KeyName(steps); got != expected {
			t.Errorf("KeyName(%d) = %q, expected %q", steps, got, expected)
		}
	}
	if idx, ok := FindTuning("31 EDO"); !ok || idx != Tuning31EDO {
		t.Errorf("FindTuning(31 EDO) = %d,%v", idx, ok)
	}
	if _, ok := FindTuning("7 EDO"); ok {
		t.Error("FindTuning should fail for an unknown name")
	}
}

func TestScaleGapsSumToCycle(t *testing.T) {
	for i := 0; i < ScaleCount; i++ {
		s, _ := Scale(i)
		if s.IsChromatic() {
			if s.Tuning != AllTunings {
				t.Errorf("Chromatic scale %q is tied to tuning %d", s.Name, s.Tuning)
			}
			continue
		}
		tuning, ok := Tuning(int(s.Tuning))
		if !ok {
			t.Fatalf("Scale %q has unknown tuning %d", s.Name, s.Tuning)
		}
		sum := 0
		for _, g := range s.Gaps() {
			if g == 0 {
				t.Errorf("%s %s has a zero gap", tuning.Name, s.Name)
			}
			sum += int(g)
		}
		if sum != int(tuning.CycleLength) {
			t.Errorf("%s %s: gaps sum to %d, expected %d", tuning.Name, s.Name, sum, tuning.CycleLength)
		}
	}
}

func TestPaletteDegreeTables(t *testing.T) {
	for i := 0; i < PaletteCount; i++ {
		p, _ := Palette(i)
		tuning, _ := Tuning(int(p.Tuning))
		if len(p.Degrees()) != int(tuning.CycleLength) {
			t.Errorf("%s palette covers %d steps, expected %d", tuning.Name, len(p.Degrees()), tuning.CycleLength)
		}
		for step, n := range p.Degrees() {
			if n == 0 || int(n) > len(p.Swatches()) {
				t.Errorf("%s palette step %d references swatch %d of %d", tuning.Name, step, n, len(p.Swatches()))
			}
			if _, ok := p.Color(step); !ok {
				t.Errorf("%s palette step %d has no color", tuning.Name, step)
			}
		}
		if _, ok := p.Color(int(tuning.CycleLength)); ok {
			t.Errorf("%s palette returned a color past the cycle", tuning.Name)
		}
	}
}

func TestLayoutsValidAndGrouped(t *testing.T) {
	covered := 0
	for tIdx := 0; tIdx < TuningCount; tIdx++ {
		tuning, _ := Tuning(tIdx)
		begin, end := LayoutsFor(tIdx)
		if end <= begin {
			t.Errorf("%s has no layouts", tuning.Name)
		}
		for i := begin; i < end; i++ {
			l, _ := Layout(i)
			if int(l.Tuning) != tIdx {
				t.Errorf("Layout %d %q belongs to tuning %d, not %d", i, l.Name, l.Tuning, tIdx)
			}
			if err := l.Validate(int(tuning.CycleLength)); err != nil {
				t.Errorf("%s %s: %v", tuning.Name, l.Name, err)
			}
		}
		covered += end - begin
	}
	if covered != LayoutCount {
		t.Errorf("LayoutsFor covered %d layouts, expected %d", covered, LayoutCount)
	}

	if idx, ok := FindLayout(Tuning53EDO, "Wicki-Hayden"); !ok || idx != 28 {
		t.Errorf("FindLayout(53 EDO, Wicki-Hayden) = %d,%v, expected 28", idx, ok)
	}
}

func TestDegenerateLayouts(t *testing.T) {
	testCases := []struct {
		name     string
		layout   LayoutDef
		cycle    int
		expected error
	}{
		{"zero across", LayoutDef{HexMiddleC: 64, AcrossSteps: 0, DnLeftSteps: -7}, 12, ErrDegenerateLayout},
		{"zero down-left", LayoutDef{HexMiddleC: 64, AcrossSteps: 2, DnLeftSteps: 0}, 12, ErrDegenerateLayout},
		{"common factor", LayoutDef{HexMiddleC: 64, AcrossSteps: 2, DnLeftSteps: -4}, 12, ErrDegenerateLayout},
		{"middle C off board", LayoutDef{HexMiddleC: 150, AcrossSteps: 2, DnLeftSteps: -7}, 12, ErrInvalidLayout},
		{"middle C on command key", LayoutDef{HexMiddleC: 60, AcrossSteps: 2, DnLeftSteps: -7}, 12, ErrInvalidLayout},
		{"coprime with cycle", LayoutDef{HexMiddleC: 65, AcrossSteps: 2, DnLeftSteps: -4}, 13, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.layout.Validate(tc.cycle)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestScalesFor(t *testing.T) {
	got := ScalesFor(nil, Tuning12EDO)
	if len(got) != 18 {
		t.Errorf("Expected 18 scales for 12 EDO (including None), got %d", len(got))
	}
	if got[0] != 0 {
		t.Errorf("Expected the chromatic scale first, got %d", got[0])
	}
	for _, idx := range ScalesFor(nil, TuningAlpha) {
		s, _ := Scale(idx)
		if !s.FitsTuning(TuningAlpha) {
			t.Errorf("Scale %q does not fit Carlos Alpha", s.Name)
		}
	}
	if idx, ok := FindScale(Tuning12EDO, "Major"); !ok || idx != 1 {
		t.Errorf("FindScale(12 EDO, Major) = %d,%v", idx, ok)
	}
	if _, ok := FindScale(Tuning17EDO, "Major"); ok {
		t.Error("Major is not a 17 EDO scale")
	}
	if pals := PalettesFor(nil, Tuning41EDO); len(pals) != 1 || pals[0] != Tuning41EDO {
		t.Errorf("PalettesFor(41 EDO) = %v", pals)
	}
}

func TestScaleContains(t *testing.T) {
	major, _ := Scale(1)
	in := []int{0, 2, 4, 5, 7, 9, 11}
	out := []int{1, 3, 6, 8, 10}
	for _, d := range in {
		if !major.Contains(d) {
			t.Errorf("Degree %d should be in the major scale", d)
		}
	}
	for _, d := range out {
		if major.Contains(d) {
			t.Errorf("Degree %d should not be in the major scale", d)
		}
	}

	var mask [MaxScaleDivisions]bool
	major.Mask(&mask, 12)
	for d := 0; d < 12; d++ {
		if mask[d] != major.Contains(d) {
			t.Errorf("Mask and Contains disagree at degree %d", d)
		}
	}

	none, _ := Scale(0)
	for d := 0; d < 72; d++ {
		if !none.Contains(d) {
			t.Fatalf("Chromatic scale should contain degree %d", d)
		}
	}
}
