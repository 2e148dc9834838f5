package microtonal

import (
	"errors"

	"hexboard/core"
)

var (
	ErrInvalidTuning    = errors.New("invalid tuning")
	ErrInvalidLayout    = errors.New("invalid layout")
	ErrDegenerateLayout = errors.New("layout does not span the tuning")
	ErrInvalidScale     = errors.New("invalid scale")
	ErrInvalidPalette   = errors.New("invalid palette")
	ErrInvalidKey       = errors.New("invalid key")
	ErrInvalidOption    = errors.New("invalid display option")
)

// PresetError reports which preset field was rejected. It unwraps to one
// of the sentinel errors above.
type PresetError struct {
	Field string
	Value int
	Err   error
}

func (e *PresetError) Error() string {
	return e.Field + " " + itoa(e.Value) + ": " + e.Err.Error()
}

func (e *PresetError) Unwrap() error {
	return e.Err
}

func itoa(n int) string {
	return core.Itoa(n)
}
