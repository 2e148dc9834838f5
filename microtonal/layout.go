package microtonal

import "hexboard/hexgrid"

// LayoutDef is an isomorphic key layout. Moving one hex across or one hex
// down-left always changes the pitch by the same number of tuning steps.
type LayoutDef struct {
	Name        string
	Portrait    bool  // menu orientation only
	HexMiddleC  uint8 // key id that plays middle C
	AcrossSteps int8
	DnLeftSteps int8
	Tuning      uint8
}

// Validate checks that the layout reaches every step of a cycle of the
// given length and that its middle-C key exists.
func (l *LayoutDef) Validate(cycleLength int) error {
	if int(l.HexMiddleC) >= hexgrid.KeyCount || hexgrid.CommandIndex(int(l.HexMiddleC)) >= 0 {
		return ErrInvalidLayout
	}
	if l.AcrossSteps == 0 || l.DnLeftSteps == 0 {
		return ErrDegenerateLayout
	}
	g := gcd(gcd(int(l.AcrossSteps), int(l.DnLeftSteps)), cycleLength)
	if g != 1 {
		return ErrDegenerateLayout
	}
	return nil
}

// LayoutCount is the number of layouts in the catalog
const LayoutCount = len(layouts)

// Layout returns layout i
func Layout(i int) (*LayoutDef, bool) {
	if i < 0 || i >= LayoutCount {
		return nil, false
	}
	return &layouts[i], true
}

// LayoutsFor returns the half-open index range of the layouts designed for
// tuning t. Layouts are grouped by tuning in the catalog.
func LayoutsFor(t int) (begin, end int) {
	begin = 0
	for begin < LayoutCount && int(layouts[begin].Tuning) < t {
		begin++
	}
	end = begin
	for end < LayoutCount && int(layouts[end].Tuning) == t {
		end++
	}
	return begin, end
}

// FindLayout returns the index of the named layout for tuning t
func FindLayout(t int, name string) (int, bool) {
	begin, end := LayoutsFor(t)
	for i := begin; i < end; i++ {
		if layouts[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

var layouts = [...]LayoutDef{
	{"Wicki-Hayden", true, 64, 2, -7, Tuning12EDO},
	{"Harmonic Table", false, 75, -7, 3, Tuning12EDO},
	{"Janko", false, 65, -1, -1, Tuning12EDO},
	{"Gerhard", false, 65, -1, -3, Tuning12EDO},
	{"Accordion C-sys.", true, 75, 2, -3, Tuning12EDO},
	{"Accordion B-sys.", true, 64, 1, -3, Tuning12EDO},

	{"Full Gamut", true, 65, 1, -9, Tuning17EDO},
	{"Bosanquet-Wilson", false, 65, -2, -1, Tuning17EDO},
	{"Neutral Thirds A", false, 65, -1, -2, Tuning17EDO},
	{"Neutral Thirds B", false, 65, 1, -3, Tuning17EDO},

	{"Full Gamut", true, 65, 1, -9, Tuning19EDO},
	{"Bosanquet-Wilson", false, 65, -1, -2, Tuning19EDO},
	{"Kleismic", false, 65, -1, -4, Tuning19EDO},

	{"Full Gamut", true, 65, 1, -8, Tuning22EDO},
	{"Bosanquet-Wilson", false, 65, -3, -1, Tuning22EDO},
	{"Porcupine", false, 65, 1, -4, Tuning22EDO},

	{"Full Gamut", true, 65, 1, -9, Tuning24EDO},
	{"Bosanquet-Wilson", false, 65, -1, -3, Tuning24EDO},
	{"Inverted", false, 65, 1, -4, Tuning24EDO},

	{"Full Gamut", true, 65, 1, -7, Tuning31EDO},
	{"Bosanquet-Wilson", false, 65, -2, -3, Tuning31EDO},
	{"Double Bosanquet", false, 65, -1, -4, Tuning31EDO},
	{"Anti-Double Bos.", false, 65, 1, -5, Tuning31EDO},

	{"Full Gamut", false, 65, 1, -8, Tuning41EDO},
	{"Bosanquet-Wilson", false, 65, -4, -3, Tuning41EDO},
	{"Gerhard", false, 65, 3, -10, Tuning41EDO},
	{"Baldy", false, 65, -1, -6, Tuning41EDO},
	{"Rodan", true, 65, -1, -7, Tuning41EDO},

	{"Wicki-Hayden", true, 64, 9, -31, Tuning53EDO},
	{"Bosanquet-Wilson", false, 65, -5, -4, Tuning53EDO},
	{"Kleismic A", false, 65, -8, -3, Tuning53EDO},
	{"Kleismic B", false, 65, -5, -3, Tuning53EDO},
	{"Harmonic Table", false, 75, -31, 14, Tuning53EDO},
	{"Buzzard", false, 65, -9, -1, Tuning53EDO},

	{"Full Gamut", true, 65, 1, -9, Tuning72EDO},
	{"Expanded Janko", false, 65, -1, -6, Tuning72EDO},

	{"Full Gamut", true, 65, 1, -9, TuningBP},
	{"Standard", false, 65, -2, -1, TuningBP},

	{"Full Gamut", true, 65, 1, -9, TuningAlpha},
	{"Compressed", false, 65, -2, -1, TuningAlpha},

	{"Full Gamut", true, 65, 1, -9, TuningBeta},
	{"Compressed", false, 65, -2, -1, TuningBeta},

	{"Full Gamut", true, 65, 1, -9, TuningGamma},
	{"Compressed", false, 65, -2, -1, TuningGamma},
}
