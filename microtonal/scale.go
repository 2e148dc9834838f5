package microtonal

// AllTunings marks a scale usable with every tuning
const AllTunings = 255

// ScaleDef is a scale pattern: the gaps in tuning steps between
// consecutive degrees. The gaps of every scale sum to the cycle length
// of its tuning. A scale with no gaps includes every step.
type ScaleDef struct {
	Name    string
	Tuning  uint8
	gaps    [MaxScaleDivisions]uint8
	gapsLen uint8
}

func scale(name string, tuning uint8, gaps ...uint8) ScaleDef {
	s := ScaleDef{Name: name, Tuning: tuning, gapsLen: uint8(len(gaps))}
	copy(s.gaps[:], gaps)
	return s
}

// Gaps returns the step pattern
func (s *ScaleDef) Gaps() []uint8 {
	return s.gaps[:s.gapsLen]
}

// IsChromatic reports whether the scale includes every step
func (s *ScaleDef) IsChromatic() bool {
	return s.gapsLen == 0
}

// FitsTuning reports whether the scale may be used with tuning t
func (s *ScaleDef) FitsTuning(t int) bool {
	return s.Tuning == AllTunings || int(s.Tuning) == t
}

// Contains reports whether degree is reached by summing gaps from zero
func (s *ScaleDef) Contains(degree int) bool {
	if s.IsChromatic() {
		return true
	}
	pos := 0
	for _, g := range s.Gaps() {
		if pos == degree {
			return true
		}
		pos += int(g)
	}
	return false
}

// Mask fills dst with the membership of each degree of a cycle of the
// given length.
func (s *ScaleDef) Mask(dst *[MaxScaleDivisions]bool, cycleLength int) {
	for i := range dst {
		dst[i] = false
	}
	if s.IsChromatic() {
		for i := 0; i < cycleLength; i++ {
			dst[i] = true
		}
		return
	}
	pos := 0
	for _, g := range s.Gaps() {
		if pos < cycleLength {
			dst[pos] = true
		}
		pos += int(g)
	}
}

// ScaleCount is the number of scales in the catalog
const ScaleCount = len(scales)

// Scale returns scale i
func Scale(i int) (*ScaleDef, bool) {
	if i < 0 || i >= ScaleCount {
		return nil, false
	}
	return &scales[i], true
}

// ScalesFor appends the indices of the scales usable with tuning t
func ScalesFor(dst []int, t int) []int {
	for i := range scales {
		if scales[i].FitsTuning(t) {
			dst = append(dst, i)
		}
	}
	return dst
}

// FindScale returns the index of the named scale usable with tuning t
func FindScale(t int, name string) (int, bool) {
	for i := range scales {
		if scales[i].FitsTuning(t) && scales[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

var scales = [...]ScaleDef{
	scale("None", AllTunings),

	scale("Major", Tuning12EDO, 2, 2, 1, 2, 2, 2, 1),
	scale("Minor, natural", Tuning12EDO, 2, 1, 2, 2, 1, 2, 2),
	scale("Minor, melodic", Tuning12EDO, 2, 1, 2, 2, 2, 2, 1),
	scale("Minor, harmonic", Tuning12EDO, 2, 1, 2, 2, 1, 3, 1),
	scale("Pentatonic, major", Tuning12EDO, 2, 2, 3, 2, 3),
	scale("Pentatonic, minor", Tuning12EDO, 3, 2, 2, 3, 2),
	scale("Blues", Tuning12EDO, 3, 1, 1, 1, 1, 3, 2),
	scale("Double Harmonic", Tuning12EDO, 1, 3, 1, 2, 1, 3, 1),
	scale("Phrygian", Tuning12EDO, 1, 2, 2, 2, 1, 2, 2),
	scale("Phrygian Dominant", Tuning12EDO, 1, 3, 1, 2, 1, 2, 2),
	scale("Dorian", Tuning12EDO, 2, 1, 2, 2, 2, 1, 2),
	scale("Lydian", Tuning12EDO, 2, 2, 2, 1, 2, 2, 1),
	scale("Lydian Dominant", Tuning12EDO, 2, 2, 2, 1, 2, 1, 2),
	scale("Mixolydian", Tuning12EDO, 2, 2, 1, 2, 2, 1, 2),
	scale("Locrian", Tuning12EDO, 1, 2, 2, 1, 2, 2, 2),
	scale("Whole tone", Tuning12EDO, 2, 2, 2, 2, 2, 2),
	scale("Octatonic", Tuning12EDO, 2, 1, 2, 1, 2, 1, 2, 1),

	scale("Diatonic", Tuning17EDO, 3, 3, 1, 3, 3, 3, 1),
	scale("Pentatonic", Tuning17EDO, 3, 3, 4, 3, 4),
	scale("Harmonic", Tuning17EDO, 3, 2, 3, 2, 2, 2, 3),
	scale("Husayni maqam", Tuning17EDO, 2, 2, 3, 3, 2, 1, 1, 3),
	scale("Blues", Tuning17EDO, 4, 3, 1, 1, 1, 4, 3),
	scale("Hydra", Tuning17EDO, 3, 3, 1, 1, 2, 3, 2, 1, 1),

	scale("Diatonic", Tuning19EDO, 3, 3, 2, 3, 3, 3, 2),
	scale("Pentatonic", Tuning19EDO, 3, 3, 5, 3, 5),
	scale("Semaphore", Tuning19EDO, 3, 1, 3, 1, 3, 3, 1, 3, 1),
	scale("Negri", Tuning19EDO, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2),
	scale("Sensi", Tuning19EDO, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2, 1),
	scale("Kleismic", Tuning19EDO, 1, 3, 1, 1, 3, 1, 1, 3, 1, 3, 1),
	scale("Magic", Tuning19EDO, 3, 1, 1, 1, 3, 1, 1, 1, 3, 1, 1, 1, 1),
	scale("Kind of blues", Tuning19EDO, 4, 4, 1, 2, 4, 4),

	scale("Diatonic", Tuning22EDO, 4, 4, 1, 4, 4, 4, 1),
	scale("Pentatonic", Tuning22EDO, 4, 4, 5, 4, 5),
	scale("Orwell", Tuning22EDO, 3, 2, 3, 2, 3, 2, 3, 2, 2),
	scale("Porcupine", Tuning22EDO, 4, 3, 3, 3, 3, 3, 3),
	scale("Pajara", Tuning22EDO, 2, 2, 3, 2, 2, 2, 3, 2, 2, 2),

	scale("Diatonic 12", Tuning24EDO, 4, 4, 2, 4, 4, 4, 2),
	scale("Diatonic Soft", Tuning24EDO, 3, 5, 2, 3, 5, 4, 2),
	scale("Diatonic Neutral", Tuning24EDO, 4, 3, 3, 4, 3, 4, 3),
	scale("Pentatonic (12)", Tuning24EDO, 4, 4, 6, 4, 6),
	scale("Pentatonic (Haba)", Tuning24EDO, 5, 5, 5, 5, 4),
	scale("Invert Pentatonic", Tuning24EDO, 6, 3, 6, 6, 3),
	scale("Rast maqam", Tuning24EDO, 4, 3, 3, 4, 4, 2, 1, 3),
	scale("Bayati maqam", Tuning24EDO, 3, 3, 4, 4, 2, 1, 3, 4),
	scale("Hijaz maqam", Tuning24EDO, 2, 6, 2, 4, 2, 1, 3, 4),
	scale("8-EDO", Tuning24EDO, 3, 3, 3, 3, 3, 3, 3, 3),
	scale("Wyschnegradsky", Tuning24EDO, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 1),

	scale("Diatonic", Tuning31EDO, 5, 5, 3, 5, 5, 5, 3),
	scale("Pentatonic", Tuning31EDO, 5, 5, 8, 5, 8),
	scale("Harmonic", Tuning31EDO, 5, 5, 4, 4, 4, 3, 3, 3),
	scale("Mavila", Tuning31EDO, 5, 3, 3, 3, 5, 3, 3, 3, 3),
	scale("Quartal", Tuning31EDO, 2, 2, 7, 2, 2, 7, 2, 7),
	scale("Orwell", Tuning31EDO, 4, 3, 4, 3, 4, 3, 4, 3, 3),
	scale("Neutral", Tuning31EDO, 4, 4, 4, 4, 4, 4, 4, 3),
	scale("Miracle", Tuning31EDO, 4, 3, 3, 3, 3, 3, 3, 3, 3, 3),

	scale("Diatonic", Tuning41EDO, 7, 7, 3, 7, 7, 7, 3),
	scale("Pentatonic", Tuning41EDO, 7, 7, 10, 7, 10),
	scale("Pure major", Tuning41EDO, 7, 6, 4, 7, 6, 7, 4),
	scale("5-limit chromatic", Tuning41EDO, 4, 3, 4, 2, 4, 3, 4, 4, 2, 4, 3, 4),
	scale("7-limit chromatic", Tuning41EDO, 3, 4, 2, 4, 4, 3, 4, 2, 4, 4, 3, 4),
	scale("Harmonic", Tuning41EDO, 5, 4, 4, 4, 4, 3, 3, 3, 3, 3, 2, 3),
	scale("Middle East-ish", Tuning41EDO, 7, 5, 7, 5, 5, 7, 5),
	scale("Thai", Tuning41EDO, 6, 6, 6, 6, 6, 6, 5),
	scale("Slendro", Tuning41EDO, 8, 8, 8, 8, 9),
	scale("Pelog / Mavila", Tuning41EDO, 8, 5, 5, 8, 5, 5, 5),

	scale("Diatonic", Tuning53EDO, 9, 9, 4, 9, 9, 9, 4),
	scale("Pentatonic", Tuning53EDO, 9, 9, 13, 9, 13),
	scale("Rast makam", Tuning53EDO, 9, 8, 5, 9, 9, 4, 4, 5),
	scale("Usshak makam", Tuning53EDO, 7, 6, 9, 9, 4, 4, 5, 9),
	scale("Hicaz makam", Tuning53EDO, 5, 12, 5, 9, 4, 9, 9),
	scale("Orwell", Tuning53EDO, 7, 5, 7, 5, 7, 5, 7, 5, 5),
	scale("Sephiroth", Tuning53EDO, 6, 5, 5, 6, 5, 5, 6, 5, 5, 5),
	scale("Smitonic", Tuning53EDO, 11, 11, 3, 11, 3, 11, 3),
	scale("Slendric", Tuning53EDO, 7, 3, 7, 3, 7, 3, 7, 3, 7, 3, 3),
	scale("Semiquartal", Tuning53EDO, 9, 2, 9, 2, 9, 2, 9, 2, 9),

	scale("Diatonic", Tuning72EDO, 12, 12, 6, 12, 12, 12, 6),
	scale("Pentatonic", Tuning72EDO, 12, 12, 18, 12, 18),
	scale("Ben Johnston", Tuning72EDO, 6, 6, 6, 5, 5, 5, 9, 8, 4, 4, 7, 7),
	scale("18-EDO", Tuning72EDO, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4),
	scale("Miracle", Tuning72EDO, 5, 2, 5, 2, 5, 2, 2, 5, 2, 5, 2, 5, 2, 5, 2, 5, 2, 5, 2, 5, 2),
	scale("Marvolo", Tuning72EDO, 5, 5, 5, 5, 5, 5, 5, 2, 5, 5, 5, 5, 5, 5, 5),
	scale("Catakleismic", Tuning72EDO, 4, 7, 4, 4, 4, 7, 4, 4, 4, 7, 4, 4, 4, 7, 4),
	scale("Palace", Tuning72EDO, 10, 9, 11, 12, 10, 9, 11),

	scale("Lambda", TuningBP, 2, 1, 2, 1, 2, 1, 2, 1, 1),

	scale("Super Meta Lydian", TuningAlpha, 3, 2, 2, 2),

	scale("Super Meta Lydian", TuningBeta, 3, 3, 3, 2),

	scale("Super Meta Lydian", TuningGamma, 6, 5, 5, 4),
}
