package cstr

import (
	"bytes"
	"fmt"
)

// Whitespace is the canonical separator set for whitespace splitting
// and stripping.
const Whitespace = " \t\n\v\f\r"

// Split tokenizes s. With a nil sep it splits on runs of canonical
// whitespace, collapsing consecutive separators into one boundary and
// suppressing leading and trailing empty tokens. With a nonempty sep it
// splits at each literal occurrence without collapsing, so adjacent
// separators yield empty tokens. maxsplit caps the number of splits
// performed (negative means unlimited); once the cap is reached the
// remainder is appended unsplit as the final token. An empty sep fails
// with ErrBadArgumentType.
func (s *CString) Split(sep *CString, maxsplit int) ([]*CString, error) {
	if sep == nil {
		return s.splitWhitespace(maxsplit), nil
	}
	if sep.Len() == 0 {
		return nil, fmt.Errorf("%w: empty separator", ErrBadArgumentType)
	}
	return s.splitSep(sep, maxsplit), nil
}

func (s *CString) splitWhitespace(maxsplit int) []*CString {
	data := s.data()
	out := []*CString{}
	i := 0
	for {
		for i < len(data) && isSpaceByte(data[i]) {
			i++
		}
		if i >= len(data) {
			break
		}
		if maxsplit >= 0 && len(out) == maxsplit {
			out = append(out, newFromBytes(data[i:]))
			break
		}
		j := i
		for j < len(data) && !isSpaceByte(data[j]) {
			j++
		}
		out = append(out, newFromBytes(data[i:j]))
		i = j
	}
	return out
}

func (s *CString) splitSep(sep *CString, maxsplit int) []*CString {
	data := s.data()
	sepb := sep.data()
	out := []*CString{}
	start := 0
	for maxsplit < 0 || len(out) < maxsplit {
		i := bytes.Index(data[start:], sepb)
		if i < 0 {
			break
		}
		out = append(out, newFromBytes(data[start:start+i]))
		start += i + len(sepb)
	}
	return append(out, newFromBytes(data[start:]))
}

// Parts is the ordered result of Partition and RPartition. It is built
// all-or-nothing: either every field is populated or the operation
// failed and no Parts value escapes.
type Parts struct {
	Before *CString
	Sep    *CString
	After  *CString
}

// Partition splits around the first occurrence of sep. When sep is
// absent the result is (copy-of-s, empty, empty).
func (s *CString) Partition(sep *CString) (Parts, error) {
	if sep.Len() == 0 {
		return Parts{}, fmt.Errorf("%w: empty separator", ErrBadArgumentType)
	}
	i := bytes.Index(s.data(), sep.data())
	if i < 0 {
		return Parts{Before: s.Copy(), Sep: Empty(), After: Empty()}, nil
	}
	return s.partsAt(sep, i), nil
}

// RPartition splits around the last occurrence of sep. When sep is
// absent the result is (empty, empty, copy-of-s).
func (s *CString) RPartition(sep *CString) (Parts, error) {
	if sep.Len() == 0 {
		return Parts{}, fmt.Errorf("%w: empty separator", ErrBadArgumentType)
	}
	i := s.RFind(sep, 0, End)
	if i < 0 {
		return Parts{Before: Empty(), Sep: Empty(), After: s.Copy()}, nil
	}
	return s.partsAt(sep, i), nil
}

func (s *CString) partsAt(sep *CString, i int) Parts {
	data := s.data()
	j := i + sep.Len()
	return Parts{
		Before: newFromBytes(data[:i]),
		Sep:    newFromBytes(data[i:j]),
		After:  newFromBytes(data[j:]),
	}
}
