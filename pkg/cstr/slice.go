package cstr

import "fmt"

// SliceSpec describes a stepped slice. Nil Start or Stop means the
// bound is omitted and defaults by step direction, as in conventional
// slice semantics. A Step of zero is read as 1, so the zero value is
// the full copy.
type SliceSpec struct {
	Start *int
	Stop  *int
	Step  int
}

// Idx is a convenience for building SliceSpec bounds inline.
func Idx(i int) *int { return &i }

// At returns the byte at index i as a fresh one-byte value. Negative i
// wraps via i+len; an index still outside [0, len) fails with
// ErrIndexOutOfRange.
func (s *CString) At(i int) (*CString, error) {
	n := s.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return newFromBytes(s.buf[i : i+1]), nil
}

// adjustBound wraps a negative index and clamps it to the traversal
// range for the given step direction. lo is the clamp floor (-1 for
// negative steps, where "one before index 0" is a valid stop).
func adjustBound(i, n, step int) int {
	if i < 0 {
		i += n
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return i
	}
	if i >= n {
		if step < 0 {
			return n - 1
		}
		return n
	}
	return i
}

// Slice extracts the byte range described by spec, honoring negative
// indices and any nonzero step, including reverse traversal.
func (s *CString) Slice(spec SliceSpec) *CString {
	n := s.Len()
	step := spec.Step
	if step == 0 {
		step = 1
	}

	var start, stop int
	if spec.Start != nil {
		start = adjustBound(*spec.Start, n, step)
	} else if step < 0 {
		start = n - 1
	}
	if spec.Stop != nil {
		stop = adjustBound(*spec.Stop, n, step)
	} else if step < 0 {
		stop = -1
	} else {
		stop = n
	}

	var length int
	if step > 0 {
		if start >= stop {
			return Empty()
		}
		length = (stop-start-1)/step + 1
	} else {
		if stop >= start {
			return Empty()
		}
		length = (start-stop-1)/(-step) + 1
	}

	buf := make([]byte, length+1)
	src := start
	for i := 0; i < length; i++ {
		buf[i] = s.buf[src]
		src += step
	}
	return &CString{buf: buf}
}

// Subscript is the mapping-style access point: an int key behaves like
// At (including negative wrapping) and a SliceSpec key behaves like
// Slice. Any other key type fails with ErrBadArgumentType.
func (s *CString) Subscript(key any) (*CString, error) {
	switch k := key.(type) {
	case int:
		return s.At(k)
	case SliceSpec:
		return s.Slice(k), nil
	case *SliceSpec:
		return s.Slice(*k), nil
	default:
		return nil, fmt.Errorf("%w: subscript must be int or slice, not %T", ErrBadArgumentType, key)
	}
}
