package microtonal

import "hexboard/core"

// MaxScaleDivisions bounds the cycle length of every tuning
const MaxScaleDivisions = 72

// Tuning indices
const (
	Tuning12EDO = iota
	Tuning17EDO
	Tuning19EDO
	Tuning22EDO
	Tuning24EDO
	Tuning31EDO
	Tuning41EDO
	Tuning53EDO
	Tuning72EDO
	TuningBP
	TuningAlpha
	TuningBeta
	TuningGamma
	TuningCount
)

// KeyChoice names one step of a tuning and its offset in steps from A
type KeyChoice struct {
	Name   string
	Offset int8
}

// TuningDef is an equal-step tuning. Key choices are ordered from C
// upwards, one per step of the cycle.
type TuningDef struct {
	Name        string
	CycleLength uint8
	StepSize    float32 // cents
	keys        [MaxScaleDivisions]KeyChoice
}

func tuning(name string, stepSize float32, keys []KeyChoice) TuningDef {
	t := TuningDef{Name: name, StepSize: stepSize, CycleLength: uint8(len(keys))}
	copy(t.keys[:], keys)
	return t
}

// SpanCtoA is the offset of C from A in steps (zero or negative)
func (t *TuningDef) SpanCtoA() int {
	return int(t.keys[0].Offset)
}

// KeyChoices returns the named steps of the cycle
func (t *TuningDef) KeyChoices() []KeyChoice {
	return t.keys[:t.CycleLength]
}

// FindKey returns the offset from A of the key choice with the given name
func (t *TuningDef) FindKey(name string) (int, bool) {
	for _, k := range t.KeyChoices() {
		if k.Name == name {
			return int(k.Offset), true
		}
	}
	return 0, false
}

// HasKey reports whether stepsFromA names one of the key choices
func (t *TuningDef) HasKey(stepsFromA int) bool {
	span := t.SpanCtoA()
	return stepsFromA >= span && stepsFromA < span+int(t.CycleLength)
}

// KeyName returns the name of the step stepsFromA away from A, reduced
// into the cycle.
func (t *TuningDef) KeyName(stepsFromA int) string {
	return t.keys[core.PositiveMod(stepsFromA-t.SpanCtoA(), int(t.CycleLength))].Name
}

// Tuning returns tuning i
func Tuning(i int) (*TuningDef, bool) {
	if i < 0 || i >= TuningCount {
		return nil, false
	}
	return &tunings[i], true
}

// FindTuning returns the index of the tuning with the given name
func FindTuning(name string) (int, bool) {
	for i := range tunings {
		if tunings[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

var tunings = [TuningCount]TuningDef{
	Tuning12EDO: tuning("12 EDO", 100.000, []KeyChoice{
		{"C", -9}, {"C#", -8}, {"D", -7}, {"Eb", -6}, {"E", -5}, {"F", -4},
		{"F#", -3}, {"G", -2}, {"G#", -1}, {"A", 0}, {"Bb", 1}, {"B", 2},
	}),
	Tuning17EDO: tuning("17 EDO", 70.5882, []KeyChoice{
		{"C", -13}, {"Db", -12}, {"C#", -11}, {"D", -10}, {"Eb", -9}, {"D#", -8},
		{"E", -7}, {"F", -6}, {"Gb", -5}, {"F#", -4}, {"G", -3}, {"Ab", -2},
		{"G#", -1}, {"A", 0}, {"Bb", 1}, {"A#", 2}, {"B", 3},
	}),
	Tuning19EDO: tuning("19 EDO", 63.1579, []KeyChoice{
		{"C", -14}, {"C#", -13}, {"Db", -12}, {"D", -11}, {"D#", -10}, {"Eb", -9},
		{"E", -8}, {"E#", -7}, {"F", -6}, {"F#", -5}, {"Gb", -4}, {"G", -3},
		{"G#", -2}, {"Ab", -1}, {"A", 0}, {"A#", 1}, {"Bb", 2}, {"B", 3},
		{"Cb", 4},
	}),
	Tuning22EDO: tuning("22 EDO", 54.5455, []KeyChoice{
		{"C", -17}, {"^C", -16}, {"vC#", -15}, {"vD", -14}, {"D", -13}, {"^D", -12},
		{"^Eb", -11}, {"vE", -10}, {"E", -9}, {"F", -8}, {"^F", -7}, {"vF#", -6},
		{"vG", -5}, {"G", -4}, {"^G", -3}, {"vG#", -2}, {"vA", -1}, {"A", 0},
		{"^A", 1}, {"^Bb", 2}, {"vB", 3}, {"B", 4},
	}),
	Tuning24EDO: tuning("24 EDO", 50.0000, []KeyChoice{
		{"C", -18}, {"C+", -17}, {"C#", -16}, {"Dd", -15}, {"D", -14}, {"D+", -13},
		{"Eb", -12}, {"Ed", -11}, {"E", -10}, {"E+", -9}, {"F", -8}, {"F+", -7},
		{"F#", -6}, {"Gd", -5}, {"G", -4}, {"G+", -3}, {"G#", -2}, {"Ad", -1},
		{"A", 0}, {"A+", 1}, {"Bb", 2}, {"Bd", 3}, {"B", 4}, {"Cd", 5},
	}),
	Tuning31EDO: tuning("31 EDO", 38.7097, []KeyChoice{
		{"C", -23}, {"C+", -22}, {"C#", -21}, {"Db", -20}, {"Dd", -19}, {"D", -18},
		{"D+", -17}, {"D#", -16}, {"Eb", -15}, {"Ed", -14}, {"E", -13}, {"E+", -12},
		{"Fd", -11}, {"F", -10}, {"F+", -9}, {"F#", -8}, {"Gb", -7}, {"Gd", -6},
		{"G", -5}, {"G+", -4}, {"G#", -3}, {"Ab", -2}, {"Ad", -1}, {"A", 0},
		{"A+", 1}, {"A#", 2}, {"Bb", 3}, {"Bd", 4}, {"B", 5}, {"B+", 6},
		{"Cd", 7},
	}),
	Tuning41EDO: tuning("41 EDO", 29.2683, []KeyChoice{
		{"C", -31}, {"^C", -30}, {"C+", -29}, {"Db", -28}, {"C#", -27}, {"Dd", -26},
		{"vD", -25}, {"D", -24}, {"^D", -23}, {"D+", -22}, {"Eb", -21}, {"D#", -20},
		{"Ed", -19}, {"vE", -18}, {"E", -17}, {"^E", -16}, {"vF", -15}, {"F", -14},
		{"^F", -13}, {"F+", -12}, {"Gb", -11}, {"F#", -10}, {"Gd", -9}, {"vG", -8},
		{"G", -7}, {"^G", -6}, {"G+", -5}, {"Ab", -4}, {"G#", -3}, {"Ad", -2},
		{"vA", -1}, {"A", 0}, {"^A", 1}, {"A+", 2}, {"Bb", 3}, {"A#", 4},
		{"Bd", 5}, {"vB", 6}, {"B", 7}, {"^B", 8}, {"vC", 9},
	}),
	Tuning53EDO: tuning("53 EDO", 22.6415, []KeyChoice{
		{"C", -40}, {"^C", -39}, {">C", -38}, {"vDb", -37}, {"Db", -36}, {"C#", -35},
		{"^C#", -34}, {"<D", -33}, {"vD", -32}, {"D", -31}, {"^D", -30}, {">D", -29},
		{"vEb", -28}, {"Eb", -27}, {"D#", -26}, {"^D#", -25}, {"<E", -24}, {"vE", -23},
		{"E", -22}, {"^E", -21}, {">E", -20}, {"vF", -19}, {"F", -18}, {"^F", -17},
		{">F", -16}, {"vGb", -15}, {"Gb", -14}, {"F#", -13}, {"^F#", -12}, {"<G", -11},
		{"vG", -10}, {"G", -9}, {"^G", -8}, {">G", -7}, {"vAb", -6}, {"Ab", -5},
		{"G#", -4}, {"^G#", -3}, {"<A", -2}, {"vA", -1}, {"A", 0}, {"^A", 1},
		{">A", 2}, {"vBb", 3}, {"Bb", 4}, {"A#", 5}, {"^A#", 6}, {"<B", 7},
		{"vB", 8}, {"B", 9}, {"^B", 10}, {"<C", 11}, {"vC", 12},
	}),
	Tuning72EDO: tuning("72 EDO", 16.6667, []KeyChoice{
		{"C", -54}, {"^C", -53}, {">C", -52}, {"C+", -51}, {"<C#", -50}, {"vC#", -49},
		{"C#", -48}, {"^C#", -47}, {">C#", -46}, {"Dd", -45}, {"<D", -44}, {"vD", -43},
		{"D", -42}, {"^D", -41}, {">D", -40}, {"D+", -39}, {"<Eb", -38}, {"vEb", -37},
		{"Eb", -36}, {"^Eb", -35}, {">Eb", -34}, {"Ed", -33}, {"<E", -32}, {"vE", -31},
		{"E", -30}, {"^E", -29}, {">E", -28}, {"E+", -27}, {"<F", -26}, {"vF", -25},
		{"F", -24}, {"^F", -23}, {">F", -22}, {"F+", -21}, {"<F#", -20}, {"vF#", -19},
		{"F#", -18}, {"^F#", -17}, {">F#", -16}, {"Gd", -15}, {"<G", -14}, {"vG", -13},
		{"G", -12}, {"^G", -11}, {">G", -10}, {"G+", -9}, {"<G#", -8}, {"vG#", -7},
		{"G#", -6}, {"^G#", -5}, {">G#", -4}, {"Ad", -3}, {"<A", -2}, {"vA", -1},
		{"A", 0}, {"^A", 1}, {">A", 2}, {"A+", 3}, {"<Bb", 4}, {"vBb", 5},
		{"Bb", 6}, {"^Bb", 7}, {">Bb", 8}, {"Bd", 9}, {"<B", 10}, {"vB", 11},
		{"B", 12}, {"^B", 13}, {">B", 14}, {"Cd", 15}, {"<C", 16}, {"vC", 17},
	}),
	TuningBP: tuning("Bohlen-Pierce", 146.304, []KeyChoice{
		{"C", -10}, {"Db", -9}, {"D", -8}, {"E", -7}, {"F", -6}, {"Gb", -5},
		{"G", -4}, {"H", -3}, {"Jb", -2}, {"J", -1}, {"A", 0}, {"Bb", 1},
		{"B", 2},
	}),
	TuningAlpha: tuning("Carlos Alpha", 77.9650, []KeyChoice{
		{"I", 0}, {"I#", 1}, {"II-", 2}, {"II+", 3}, {"III", 4}, {"III#", 5},
		{"IV-", 6}, {"IV+", 7}, {"Ib", 8},
	}),
	TuningBeta: tuning("Carlos Beta", 63.8329, []KeyChoice{
		{"I", 0}, {"I#", 1}, {"IIb", 2}, {"II", 3}, {"II#", 4}, {"III", 5},
		{"III#", 6}, {"IVb", 7}, {"IV", 8}, {"IV#", 9}, {"Ib", 10},
	}),
	TuningGamma: tuning("Carlos Gamma", 35.0985, []KeyChoice{
		{"I", 0}, {"^I", 1}, {"IIb", 2}, {"^IIb", 3}, {"I#", 4}, {"^I#", 5},
		{"II", 6}, {"^II", 7}, {"III", 8}, {"^III", 9}, {"IVb", 10}, {"^IVb", 11},
		{"III#", 12}, {"^III#", 13}, {"IV", 14}, {"^IV", 15}, {"Ib", 16}, {"^Ib", 17},
		{"IV#", 18}, {"^IV#", 19},
	}),
}
