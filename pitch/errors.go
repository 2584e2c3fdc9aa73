package pitch

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNote     = errors.New("invalid note")
	ErrInvalidPitch    = errors.New("invalid pitch")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidKey      = errors.New("invalid key")
)

// Error describes malformed input.
//
// Kind is one of the Err* values above, Offset is the byte offset in Input
// where parsing stopped, or -1 when the whole input is at fault.
type Error struct {
	Kind   error
	Input  string
	Offset int
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v %q", e.Kind, e.Input)
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, input string, offset int) *Error {
	return &Error{Kind: kind, Input: input, Offset: offset}
}
