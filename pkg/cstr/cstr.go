// Package cstr implements a compact null-terminated byte-string value
// type with the usual suite of text algorithms: substring search over a
// normalized window, tokenized splitting, case classification and
// transforms, stepped slicing, concatenation and repetition, and
// structural equality with a lazily cached hash.
//
// A CString owns its storage exclusively and is immutable once
// published. The only mutation path is the Builder, a move-only owned
// growable buffer that converts into an immutable CString on Finish.
package cstr

import (
	"bytes"
	"strconv"
	"sync"

	"cstr-go/pkg/pearson"
)

// CString is an immutable byte string of length N backed by a buffer of
// N+1 bytes whose last byte is the NUL terminator. The terminator never
// counts toward the length; embedded NUL bytes are legal data.
type CString struct {
	buf     []byte
	hash    uint64
	hashSet bool
}

// Singleton for the zero-length value. Lazily created under a one-time
// guard and intentionally never reclaimed.
var (
	emptyOnce sync.Once
	emptyStr  *CString
)

// Empty returns the process-wide zero-length CString.
func Empty() *CString {
	emptyOnce.Do(func() {
		emptyStr = &CString{buf: []byte{0}}
	})
	return emptyStr
}

// newFromBytes copies b and appends the terminator. A zero-length
// request yields the shared singleton instead of allocating.
func newFromBytes(b []byte) *CString {
	if len(b) == 0 {
		return Empty()
	}
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return &CString{buf: buf}
}

// New constructs a CString from v. Accepted kinds: string, []byte, and
// *CString (returned as-is with shared ownership, no copy). Anything
// else fails with ErrBadArgumentType naming the offending type. This is
// the single operand-validation point for foreign inputs.
func New(v any) (*CString, error) {
	switch x := v.(type) {
	case *CString:
		return x, nil
	case string:
		return FromString(x), nil
	case []byte:
		return FromBytes(x), nil
	default:
		return nil, badArgumentType(v)
	}
}

// FromString constructs a CString from UTF-8 text.
func FromString(s string) *CString {
	if len(s) == 0 {
		return Empty()
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &CString{buf: buf}
}

// FromBytes constructs a CString from a copy of b.
func FromBytes(b []byte) *CString {
	return newFromBytes(b)
}

// data returns the N data bytes, terminator excluded. The returned
// slice aliases the internal buffer and must not be modified.
func (s *CString) data() []byte {
	if s == nil || len(s.buf) == 0 {
		return nil
	}
	return s.buf[:len(s.buf)-1]
}

// Len returns the number of data bytes.
func (s *CString) Len() int {
	if s == nil || len(s.buf) == 0 {
		return 0
	}
	return len(s.buf) - 1
}

// Bytes returns a fresh copy of the data bytes.
func (s *CString) Bytes() []byte {
	d := s.data()
	out := make([]byte, len(d))
	copy(out, d)
	return out
}

// CBytes returns the backing buffer including the NUL terminator. The
// slice is shared with the value and must be treated as read-only.
func (s *CString) CBytes() []byte {
	if s == nil || len(s.buf) == 0 {
		return []byte{0}
	}
	return s.buf
}

// String returns the UTF-8 text view of the data bytes.
func (s *CString) String() string {
	return string(s.data())
}

// Repr returns a quoted debug representation.
func (s *CString) Repr() string {
	return strconv.Quote(s.String())
}

// Hash returns the 64-bit hash of the data bytes. It is computed
// lazily on first use and cached; the terminator is excluded.
func (s *CString) Hash() uint64 {
	if !s.hashSet {
		s.hash = pearson.Hash64(s.data())
		s.hashSet = true
	}
	return s.hash
}

// Copy returns a fresh value with the same content.
func (s *CString) Copy() *CString {
	return newFromBytes(s.data())
}

// Concat returns a new value holding s followed by other. Neither
// operand is mutated; the result is always freshly allocated.
func (s *CString) Concat(other *CString) *CString {
	n, m := s.Len(), other.Len()
	if n+m == 0 {
		return Empty()
	}
	buf := make([]byte, n+m+1)
	copy(buf, s.data())
	copy(buf[n:], other.data())
	return &CString{buf: buf}
}

// Repeat returns s tiled count times. A count of zero or less yields
// the empty singleton.
func (s *CString) Repeat(count int) *CString {
	n := s.Len()
	if count <= 0 || n == 0 {
		return Empty()
	}
	buf := make([]byte, n*count+1)
	for i := 0; i < n*count; i += n {
		copy(buf[i:], s.data())
	}
	return &CString{buf: buf}
}

// Contains reports whether sub occurs anywhere in s.
func (s *CString) Contains(sub *CString) bool {
	return bytes.Contains(s.data(), sub.data())
}
