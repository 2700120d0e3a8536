package cstr

import (
	"errors"
	"fmt"
)

var (
	// ErrBadArgumentType reports an operand of a foreign type. The
	// wrapped message names the offending Go type.
	ErrBadArgumentType = errors.New("bad argument type")

	// ErrIndexOutOfRange reports an integer index outside [0, len).
	ErrIndexOutOfRange = errors.New("index is out of bounds")

	// ErrNotFound reports an absent substring from Index or RIndex.
	// Distinct from ErrIndexOutOfRange.
	ErrNotFound = errors.New("substring not found")

	// ErrBuilderConsumed is the panic value raised when a Builder is
	// appended to or finished after Finish already ran. This is a defect
	// in the caller's ownership discipline, so it fails loudly instead
	// of corrupting a published buffer.
	ErrBuilderConsumed = errors.New("builder used after Finish")
)

func badArgumentType(v any) error {
	return fmt.Errorf("%w: %T", ErrBadArgumentType, v)
}
