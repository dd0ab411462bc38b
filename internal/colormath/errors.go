package colormath

import (
	"errors"
	"fmt"
)

// ErrEmptyImage is returned by DominantColor when the source has no pixels.
var ErrEmptyImage = errors.New("image has zero area")

// FormatError reports text that matches no supported color encoding.
type FormatError struct {
	Input  string // The rejected text
	Reason string // What was wrong with it
	Err    error  // Underlying parse error, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid color format %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid color format %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnknownColorNameError reports text that is neither hex, comma form, nor a known color name.
type UnknownColorNameError struct {
	Name string
}

func (e *UnknownColorNameError) Error() string {
	return fmt.Sprintf("unknown color name %q", e.Name)
}
