package cstr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConstructRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello, world"),
		[]byte(""),
		[]byte("with\x00embedded\x00nuls"),
		[]byte("日本語"),
	}
	for _, in := range inputs {
		s := FromBytes(in)
		if s.Len() != len(in) {
			t.Errorf("Len(%q) = %d, want %d", in, s.Len(), len(in))
		}
		if !bytes.Equal(s.Bytes(), in) {
			t.Errorf("Bytes(%q) = %q, round trip failed", in, s.Bytes())
		}
	}
}

func TestTerminatorPresent(t *testing.T) {
	s := FromString("abc")
	raw := s.CBytes()
	if len(raw) != 4 {
		t.Fatalf("backing buffer is %d bytes, want 4", len(raw))
	}
	if raw[3] != 0 {
		t.Errorf("last byte is %d, want NUL", raw[3])
	}
}

func TestEmptySingleton(t *testing.T) {
	if FromString("") != Empty() {
		t.Error("zero-length construction did not return the singleton")
	}
	if FromBytes(nil) != Empty() {
		t.Error("nil construction did not return the singleton")
	}
	if Empty() != Empty() {
		t.Error("singleton is not stable")
	}
	if Empty().Len() != 0 {
		t.Errorf("singleton length = %d", Empty().Len())
	}
}

func TestNewAcceptedKinds(t *testing.T) {
	orig := FromString("x")
	s, err := New(orig)
	if err != nil {
		t.Fatalf("New(*CString) failed: %v", err)
	}
	if s != orig {
		t.Error("New(*CString) did not share the instance")
	}

	if _, err := New("text"); err != nil {
		t.Errorf("New(string) failed: %v", err)
	}
	if _, err := New([]byte("raw")); err != nil {
		t.Errorf("New([]byte) failed: %v", err)
	}
}

func TestNewRejectsForeignTypes(t *testing.T) {
	_, err := New(42)
	if err == nil {
		t.Fatal("New(int) succeeded, want type error")
	}
	if !errors.Is(err, ErrBadArgumentType) {
		t.Errorf("error = %v, want ErrBadArgumentType", err)
	}
	if want := "int"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not name the offending type %q", err, want)
	}
}

func TestConcatPure(t *testing.T) {
	a := FromString("foo")
	b := FromString("bar")
	c := a.Concat(b)
	if c.String() != "foobar" {
		t.Errorf("Concat = %q", c)
	}
	if c.Len() != a.Len()+b.Len() {
		t.Errorf("Concat length = %d", c.Len())
	}
	if a.String() != "foo" || b.String() != "bar" {
		t.Error("Concat mutated an operand")
	}
}

func TestRepeat(t *testing.T) {
	s := FromString("ab")
	if got := s.Repeat(3).String(); got != "ababab" {
		t.Errorf("Repeat(3) = %q", got)
	}
	if s.Repeat(0) != Empty() {
		t.Error("Repeat(0) is not the singleton")
	}
	if s.Repeat(-2) != Empty() {
		t.Error("Repeat(-2) is not the singleton")
	}
	if got := s.Repeat(4).Len(); got != 8 {
		t.Errorf("Repeat(4) length = %d, want 8", got)
	}
}

func TestHashEqualContent(t *testing.T) {
	a := FromString("identical content")
	b := FromString("identical content")
	if a.Hash() != b.Hash() {
		t.Error("equal values hashed differently")
	}
	if !a.Equal(b) {
		t.Error("equal values compared unequal")
	}
	if a.Hash() != a.Hash() {
		t.Error("hash is not cached consistently")
	}
}

func TestRepr(t *testing.T) {
	s := FromString("a\tb")
	if got := s.Repr(); got != `"a\tb"` {
		t.Errorf("Repr = %s", got)
	}
}

func TestBytesIsACopy(t *testing.T) {
	s := FromString("abc")
	out := s.Bytes()
	out[0] = 'X'
	if s.String() != "abc" {
		t.Error("mutating Bytes() output changed the value")
	}
}

func TestContains(t *testing.T) {
	s := FromString("hello, world")
	if !s.Contains(FromString("lo, w")) {
		t.Error("Contains missed a present substring")
	}
	if s.Contains(FromString("xyz")) {
		t.Error("Contains found an absent substring")
	}
	if !s.Contains(Empty()) {
		t.Error("Contains(empty) should be true")
	}
}
