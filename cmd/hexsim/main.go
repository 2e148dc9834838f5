// Command hexsim runs the HexBoard firmware core on the host. It reads a
// script of key presses, knob turns and preset changes, prints MIDI or
// sends it to a serial MIDI port, and can draw the LED grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"hexboard/core"
	"hexboard/host/serial"
	"hexboard/settings"
)

var (
	configPath = flag.String("config", "", "JSON configuration file")
	scriptPath = flag.String("script", "", "Script file (default stdin)")
	port       = flag.String("port", "", "Serial MIDI device (overrides config)")
	listPorts  = flag.Bool("list", false, "List serial ports and exit")
	debug      = flag.Bool("debug", false, "Enable debug logging")
	timing     = flag.Bool("timing", false, "Dump the timing ring on exit")
)

var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func main() {
	flag.Parse()
	initLogger(*debug)

	if *listPorts {
		ports, err := serial.ListPorts()
		if err != nil {
			logger.Error("list serial ports", "err", err)
			os.Exit(1)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	if err := run(); err != nil {
		logger.Error("hexsim", "err", err)
		os.Exit(1)
	}
}

func loadConfig() (*settings.Config, error) {
	if *configPath == "" {
		return settings.DefaultConfig(), nil
	}
	data, err := os.ReadFile(*configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := settings.LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", *configPath, err)
	}
	return cfg, nil
}

func run() error {
	core.SetDebugWriter(func(msg string) { logger.Info(msg) })
	core.SetDebugEnabled(*debug)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *port != "" {
		cfg.MIDIPort = *port
	}

	preset, err := cfg.Preset()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	opts := simOptions{
		Config: cfg,
		Preset: preset,
		MIDI:   logMIDI{log: logger},
		Out:    os.Stdout,
		Log:    logger,
	}

	if cfg.Settings != "" {
		store := settings.FileStore{Path: cfg.Settings}
		opts.Store = store
		if data, err := store.Load(); err != nil {
			return err
		} else if len(data) > 0 {
			saved, err := settings.Decode(data)
			if err != nil {
				logger.Warn("saved preset unusable, using config", "path", cfg.Settings, "err", err)
			} else {
				opts.Preset = saved
			}
		}
	}

	if cfg.MIDIPort != "" {
		p, err := serial.Open(&serial.Config{Device: cfg.MIDIPort, Baud: cfg.Baud})
		if err != nil {
			return err
		}
		defer p.Close()
		logger.Info("serial: port opened", "device", cfg.MIDIPort, "baud", cfg.Baud)
		w := serial.NewMIDIWriter(p, 1024)
		opts.MIDI = w
		opts.Flush = w.Flush
	}

	s, err := newSim(opts)
	if err != nil {
		return err
	}
	s.logPreset()

	var in io.Reader = os.Stdin
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	err = s.run(in)
	if *timing {
		core.DumpTimingRing()
	}
	return err
}
