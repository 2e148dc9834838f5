package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Args checks that exactly n arguments were given
func Args(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrUsage, n, len(args))
	}
	return nil
}

// Int parses a decimal argument
func Int(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUsage, arg)
	}
	return v, nil
}

// Bool parses on/off style arguments
func Bool(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not on or off", ErrUsage, arg)
}
