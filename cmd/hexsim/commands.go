package main

import (
	"fmt"

	"hexboard/board"
	"hexboard/core"
	"hexboard/host/script"
	"hexboard/microtonal"
	"hexboard/settings"
)

func (s *sim) registerCommands() {
	r := s.cmds

	r.Register("press", "<key>...", func(args []string) error {
		return s.setKeys(args, true)
	})
	r.Register("release", "<key>...", func(args []string) error {
		return s.setKeys(args, false)
	})
	r.Register("tap", "<key> [ms]", func(args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: want key and optional duration", script.ErrUsage)
		}
		ms := 100
		if len(args) == 2 {
			var err error
			if ms, err = script.Int(args[1]); err != nil {
				return err
			}
		}
		if err := s.setKeys(args[:1], true); err != nil {
			return err
		}
		if err := s.wait(ms); err != nil {
			return err
		}
		return s.setKeys(args[:1], false)
	})
	r.Register("wait", "<ms>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		ms, err := script.Int(args[0])
		if err != nil {
			return err
		}
		return s.wait(ms)
	})

	r.Register("knob", "<detents>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		n, err := script.Int(args[0])
		if err != nil {
			return err
		}
		if err := s.turn(n); err != nil {
			return err
		}
		turn, clicked := s.board.KnobEvents()
		s.log.Info("knob", "turn", turn, "clicked", clicked, "modwheel", s.board.ModWheel(), "bend", s.board.PitchBend())
		return nil
	})
	r.Register("click", "", func(args []string) error {
		if err := s.click(); err != nil {
			return err
		}
		turn, clicked := s.board.KnobEvents()
		s.log.Info("knob", "turn", turn, "clicked", clicked)
		return nil
	})
	r.Register("modwheel", "on|off", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		on, err := script.Bool(args[0])
		if err != nil {
			return err
		}
		if on {
			s.board.SetKnobMode(board.KnobModWheel)
		} else {
			s.board.SetKnobMode(board.KnobMenu)
		}
		return nil
	})

	r.Register("bend", "on|off|<value>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		switch args[0] {
		case "on":
			s.board.SetKnobMode(board.KnobPitchBend)
			return nil
		case "off":
			s.board.SetKnobMode(board.KnobMenu)
			return nil
		}
		v, err := script.Int(args[0])
		if err != nil {
			return err
		}
		s.board.SetPitchBend(v)
		return nil
	})

	s.registerPresetCommands()

	r.Register("show", "", func(args []string) error {
		s.show()
		return nil
	})
	r.Register("stats", "", func(args []string) error {
		frames, ledErrors, midiErrors := s.board.Stats()
		s.log.Info("stats", "frames", frames, "led_errors", ledErrors, "midi_errors", midiErrors, "uptime_us", s.clock.Now())
		return nil
	})
	r.Register("timing", "", func(args []string) error {
		core.DumpTimingRing()
		return nil
	})
	r.Register("panic", "", func(args []string) error {
		s.board.Panic()
		return s.tick()
	})
	r.Register("save", "", func(args []string) error {
		return settings.Save(s.store, s.board.Preset())
	})
	r.Register("load", "", func(args []string) error {
		p, err := settings.Load(s.store)
		if err != nil {
			s.log.Warn("stored preset unusable, using defaults", "err", err)
		}
		if err := s.board.ApplyPreset(p); err != nil {
			return err
		}
		s.logPreset()
		return nil
	})
	r.Register("help", "", func(args []string) error {
		fmt.Fprint(s.out, r.Help())
		return nil
	})
}

// preset changes share the same argument handling and logging
func (s *sim) presetCommand(name, usage string, apply func(args []string) error) {
	s.cmds.Register(name, usage, func(args []string) error {
		if err := apply(args); err != nil {
			return err
		}
		s.logPreset()
		return nil
	})
}

func (s *sim) registerPresetCommands() {
	b := s.board

	s.presetCommand("tuning", "<name>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		t, ok := microtonal.FindTuning(args[0])
		if !ok {
			return fmt.Errorf("%q: %w", args[0], microtonal.ErrInvalidTuning)
		}
		return b.SelectTuning(t)
	})
	s.presetCommand("layout", "<name>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		l, ok := microtonal.FindLayout(b.Preset().TuningIndex, args[0])
		if !ok {
			return fmt.Errorf("%q: %w", args[0], microtonal.ErrInvalidLayout)
		}
		return b.SelectLayout(l)
	})
	s.presetCommand("scale", "<name>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		sc, ok := microtonal.FindScale(b.Preset().TuningIndex, args[0])
		if !ok {
			return fmt.Errorf("%q: %w", args[0], microtonal.ErrInvalidScale)
		}
		return b.SelectScale(sc)
	})
	s.presetCommand("key", "<name>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		k, ok := b.Preset().Tuning().FindKey(args[0])
		if !ok {
			return fmt.Errorf("%q: %w", args[0], microtonal.ErrInvalidKey)
		}
		return b.SetKey(k)
	})
	s.presetCommand("transpose", "<steps>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		n, err := script.Int(args[0])
		if err != nil {
			return err
		}
		return b.SetTranspose(n)
	})
	s.presetCommand("color", "rainbow|tiered [key|c]", func(args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: want mode and optional anchor", script.ErrUsage)
		}
		var mode microtonal.ColorMode
		switch args[0] {
		case "rainbow":
			mode = microtonal.RainbowMode
		case "tiered":
			mode = microtonal.TieredMode
		default:
			return fmt.Errorf("%w: color mode %q", script.ErrUsage, args[0])
		}
		atKey := b.Preset().PaletteAtKeyCenter
		if len(args) == 2 {
			atKey = args[1] == "key"
		}
		return b.SetColorMode(mode, atKey)
	})
	s.presetCommand("scalelock", "on|off", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		on, err := script.Bool(args[0])
		if err != nil {
			return err
		}
		return b.SetScaleLock(on)
	})
	s.presetCommand("brightness", "<0-255>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		n, err := script.Int(args[0])
		if err != nil {
			return err
		}
		if n < 0 || n > 255 {
			return fmt.Errorf("%w: brightness %d", script.ErrUsage, n)
		}
		return b.SetBrightness(uint8(n))
	})
	s.presetCommand("animation", "<name>", func(args []string) error {
		if err := script.Args(args, 1); err != nil {
			return err
		}
		a, ok := microtonal.ParseAnimation(args[0])
		if !ok {
			return fmt.Errorf("%q: %w", args[0], microtonal.ErrInvalidOption)
		}
		return b.SetAnimation(a)
	})
}
