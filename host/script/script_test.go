package script

import (
	"errors"
	"strings"
	"testing"
)

func TestExecDispatch(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register("scale", "<name>", func(args []string) error {
		got = args
		return nil
	})

	if err := r.Exec(`scale "Minor, natural"  # quoted names keep spaces`); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "Minor, natural" {
		t.Errorf("Expected one argument, got %q", got)
	}
}

func TestExecBlankAndComment(t *testing.T) {
	r := NewRegistry()
	for _, line := range []string{"", "   ", "# nothing"} {
		if err := r.Exec(line); err != nil {
			t.Errorf("%q: %v", line, err)
		}
	}
}

func TestExecUnknown(t *testing.T) {
	r := NewRegistry()
	if err := r.Exec("jump 3"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}
}

func TestUsageError(t *testing.T) {
	r := NewRegistry()
	r.Register("press", "<key>", func(args []string) error {
		if err := Args(args, 1); err != nil {
			return err
		}
		_, err := Int(args[0])
		return err
	})

	err := r.Exec("press")
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("Expected ErrUsage, got %v", err)
	}
	if !strings.Contains(err.Error(), "press <key>") {
		t.Errorf("Expected usage in %q", err)
	}
	if err := r.Exec("press x"); !errors.Is(err, ErrUsage) {
		t.Errorf("Expected ErrUsage for a non-number, got %v", err)
	}
	if err := r.Exec("press 64"); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestRunReportsLine(t *testing.T) {
	r := NewRegistry()
	count := 0
	r.Register("tick", "", func(args []string) error {
		count++
		return nil
	})

	err := r.Run(strings.NewReader("tick\n\n# rest\ntick\nboom\ntick\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "line 5:") {
		t.Errorf("Expected an error on line 5, got %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 ticks before the error, got %d", count)
	}
}

func TestRegistryHelpOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("b", "", func([]string) error { return nil })
	r.Register("a", "<n>", func([]string) error { return nil })
	r.Register("b", "<x>", func([]string) error { return nil })

	if r.Count() != 2 {
		t.Errorf("Expected 2 commands, got %d", r.Count())
	}
	if help := r.Help(); help != "b <x>\na <n>\n" {
		t.Errorf("Unexpected help %q", help)
	}
}

func TestBool(t *testing.T) {
	for arg, want := range map[string]bool{"on": true, "OFF": false, "1": true, "no": false} {
		got, err := Bool(arg)
		if err != nil || got != want {
			t.Errorf("Bool(%q): expected %v, got %v (%v)", arg, want, got, err)
		}
	}
	if _, err := Bool("maybe"); !errors.Is(err, ErrUsage) {
		t.Errorf("Expected ErrUsage, got %v", err)
	}
}
