package cstr

import (
	"bytes"
	"fmt"
	"math"
)

// End marks "to the end of the string" for search windows, the default
// upper bound of every windowed operation.
const End = math.MaxInt

// clampIndex wraps a negative index by the length and clamps the
// result to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// window normalizes a [start, end) request against s. The bounds may
// be negative; both are wrapped then clamped to [0, len]. A match must
// lie entirely inside the returned window.
func (s *CString) window(start, end int) (int, int) {
	n := s.Len()
	return clampIndex(start, n), clampIndex(end, n)
}

// Count returns the number of non-overlapping occurrences of sub in
// [start, end). The scan advances past each match by sub's length. An
// empty sub matches between every byte of the window.
func (s *CString) Count(sub *CString, start, end int) int {
	lo, hi := s.window(start, end)
	if lo > hi {
		return 0
	}
	n := sub.Len()
	if n == 0 {
		return hi - lo + 1
	}
	count := 0
	pos := lo
	for pos+n <= hi {
		i := bytes.Index(s.buf[pos:hi], sub.data())
		if i < 0 {
			break
		}
		count++
		pos += i + n
	}
	return count
}

// Find returns the index of the first occurrence of sub fully
// contained in [start, end), or -1 when absent.
func (s *CString) Find(sub *CString, start, end int) int {
	lo, hi := s.window(start, end)
	if lo > hi {
		return -1
	}
	n := sub.Len()
	if n == 0 {
		return lo
	}
	if lo+n > hi {
		return -1
	}
	i := bytes.Index(s.buf[lo:hi], sub.data())
	if i < 0 {
		return -1
	}
	return lo + i
}

// Index is Find with an error instead of a -1 sentinel: an absent
// substring fails with ErrNotFound.
func (s *CString) Index(sub *CString, start, end int) (int, error) {
	i := s.Find(sub, start, end)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, sub.Repr())
	}
	return i, nil
}

// RFind returns the index of the last occurrence of sub fully
// contained in [start, end), or -1 when absent. Candidate start
// positions are scanned backward from end-len(sub) down to start with
// a direct byte comparison at each.
func (s *CString) RFind(sub *CString, start, end int) int {
	lo, hi := s.window(start, end)
	if lo > hi {
		return -1
	}
	n := sub.Len()
	if n == 0 {
		return hi
	}
	for p := hi - n; p >= lo; p-- {
		if bytes.Equal(s.buf[p:p+n], sub.data()) {
			return p
		}
	}
	return -1
}

// RIndex is RFind with ErrNotFound for an absent substring.
func (s *CString) RIndex(sub *CString, start, end int) (int, error) {
	i := s.RFind(sub, start, end)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, sub.Repr())
	}
	return i, nil
}

// HasPrefix reports whether the window [start, end) begins with sub.
// A window shorter than sub never matches.
func (s *CString) HasPrefix(sub *CString, start, end int) bool {
	lo, hi := s.window(start, end)
	n := sub.Len()
	if hi-lo < n {
		return false
	}
	return bytes.Equal(s.buf[lo:lo+n], sub.data())
}

// HasSuffix reports whether the window [start, end) ends with sub.
func (s *CString) HasSuffix(sub *CString, start, end int) bool {
	lo, hi := s.window(start, end)
	n := sub.Len()
	if hi-lo < n {
		return false
	}
	return bytes.Equal(s.buf[hi-n:hi], sub.data())
}
