package main

import (
	"fmt"
	"io"
	"log/slog"

	"hexboard/board"
	"hexboard/core"
	"hexboard/hexgrid"
	"hexboard/host/render"
	"hexboard/host/script"
	"hexboard/microtonal"
	"hexboard/settings"
)

// tickMicros is the simulated poll period
const tickMicros = 1000

// sim drives a board from script commands on a virtual clock
type sim struct {
	board *board.Board
	clock *core.ManualClock
	keys  *virtualKeys
	knob  *virtualKnob
	strip *frameStrip
	store core.SettingsStore
	flush func() error // drains the MIDI transport after each poll
	out   io.Writer
	log   *slog.Logger
	cmds  *script.Registry
}

type simOptions struct {
	Config *settings.Config
	Preset microtonal.Preset
	MIDI   core.MIDIOut
	Flush  func() error
	Store  core.SettingsStore
	Out    io.Writer
	Log    *slog.Logger
}

func newSim(opts simOptions) (*sim, error) {
	s := &sim{
		clock: core.NewManualClock(0),
		keys:  &virtualKeys{},
		knob:  newVirtualKnob(),
		strip: &frameStrip{},
		store: opts.Store,
		flush: opts.Flush,
		out:   opts.Out,
		log:   opts.Log,
		cmds:  script.NewRegistry(),
	}
	if s.store == nil {
		s.store = &settings.MemoryStore{}
	}

	cfg := board.Config{
		Scanner:    s.keys,
		Knob:       s.knob,
		LEDs:       s.strip,
		MIDI:       opts.MIDI,
		Synth:      logSynth{log: s.log},
		Clock:      s.clock,
		InvertKnob: opts.Config.InvertKnob,
	}
	if opts.Config.Velocity > 0 && opts.Config.Velocity <= 127 {
		cfg.Velocity = uint8(opts.Config.Velocity)
	}
	switch opts.Config.KnobMode {
	case "menu":
		cfg.KnobMode = board.KnobMenu
	case "modwheel":
		cfg.KnobMode = board.KnobModWheel
	case "pitchbend":
		cfg.KnobMode = board.KnobPitchBend
	default:
		return nil, fmt.Errorf("knob mode %q: %w", opts.Config.KnobMode, microtonal.ErrInvalidOption)
	}

	b, err := board.New(cfg, opts.Preset)
	if err != nil {
		return nil, err
	}
	s.board = b
	s.registerCommands()
	return s, nil
}

// tick advances the clock by one poll period and polls once
func (s *sim) tick() error {
	s.clock.Advance(tickMicros)
	s.board.Poll()
	if s.flush != nil {
		return s.flush()
	}
	return nil
}

func (s *sim) wait(ms int) error {
	for i := 0; i < ms; i++ {
		if err := s.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (s *sim) run(r io.Reader) error {
	return s.cmds.Run(r)
}

func (s *sim) keyArgs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no keys", script.ErrUsage)
	}
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := script.Int(arg)
		if err != nil {
			return nil, err
		}
		if id < 0 || id >= hexgrid.KeyCount {
			return nil, fmt.Errorf("%w: key %d out of range", script.ErrUsage, id)
		}
		ids[i] = id
	}
	return ids, nil
}

func (s *sim) setKeys(args []string, down bool) error {
	ids, err := s.keyArgs(args)
	if err != nil {
		return err
	}
	for _, id := range ids {
		s.keys.down[id] = down
	}
	return s.tick()
}

func (s *sim) turn(detents int) error {
	phases := &ccwPhases
	if detents < 0 {
		phases = &cwPhases
		detents = -detents
	}
	for i := 0; i < detents; i++ {
		for _, p := range phases {
			s.knob.a, s.knob.b = p[0], p[1]
			if err := s.tick(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *sim) click() error {
	s.knob.click = false
	if err := s.tick(); err != nil {
		return err
	}
	s.knob.click = true
	return s.tick()
}

func (s *sim) show() {
	p := s.board.Preset()
	fmt.Fprintf(s.out, "%s | %s | %s | key %s | transpose %d\n",
		p.Tuning().Name, p.Layout().Name, p.Scale().Name, p.KeyName(), p.Transpose)
	fmt.Fprintln(s.out, render.RenderFrame(s.board.Frame()))
}

// logPreset reports the preset after a successful change
func (s *sim) logPreset() {
	p := s.board.Preset()
	s.log.Info("preset",
		"tuning", p.Tuning().Name,
		"layout", p.Layout().Name,
		"scale", p.Scale().Name,
		"key", p.KeyName(),
		"transpose", p.Transpose)
}
