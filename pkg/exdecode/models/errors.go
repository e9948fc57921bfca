package models

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a bit selection outside a signal's width.
var ErrIndexOutOfRange = errors.New("signal index out of range")

// ErrDuplicateSignal indicates a second registration of the same key.
var ErrDuplicateSignal = errors.New("duplicate signal")

// ErrUnknownSignal indicates a reference to a key that was never registered.
var ErrUnknownSignal = errors.New("unknown signal")

// ErrAlreadyConnected indicates an attempt to drive a signal that already has a source.
var ErrAlreadyConnected = errors.New("signal already connected")

// IndexRangeError reports a selection that does not fit its signal.
type IndexRangeError struct {
	Signal SignalKey
	Width  int
	Range  IndexRange
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("signal %s of width %d cannot select %s", e.Signal, e.Width, e.Range)
}

func (e *IndexRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}
