package cstr

import (
	"errors"
	"testing"
)

func tokens(t *testing.T, s *CString, sep *CString, maxsplit int) []string {
	t.Helper()
	parts, err := s.Split(sep, maxsplit)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	return out
}

func equalTokens(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSplitWhitespace(t *testing.T) {
	got := tokens(t, FromString("  a  b "), nil, -1)
	if !equalTokens(got, "a", "b") {
		t.Errorf("split = %q, want [a b]", got)
	}
}

func TestSplitWhitespaceKinds(t *testing.T) {
	got := tokens(t, FromString("a\tb\nc\vd\fe\rf"), nil, -1)
	if !equalTokens(got, "a", "b", "c", "d", "e", "f") {
		t.Errorf("split = %q", got)
	}
}

func TestSplitWhitespaceAllSpace(t *testing.T) {
	if got := tokens(t, FromString(" \t\n "), nil, -1); len(got) != 0 {
		t.Errorf("split of all-whitespace = %q, want empty", got)
	}
	if got := tokens(t, Empty(), nil, -1); len(got) != 0 {
		t.Errorf("split of empty = %q, want empty", got)
	}
}

func TestSplitWhitespaceMaxsplit(t *testing.T) {
	got := tokens(t, FromString("a b  c d"), nil, 1)
	if !equalTokens(got, "a", "b  c d") {
		t.Errorf("split maxsplit=1 = %q", got)
	}
}

func TestSplitLiteral(t *testing.T) {
	got := tokens(t, FromString("a,,b"), FromString(","), -1)
	if !equalTokens(got, "a", "", "b") {
		t.Errorf("split = %q, want [a  b]", got)
	}
}

func TestSplitLiteralMaxsplit(t *testing.T) {
	got := tokens(t, FromString("a.b.c"), FromString("."), 1)
	if !equalTokens(got, "a", "b.c") {
		t.Errorf("split = %q, want [a b.c]", got)
	}
}

func TestSplitLiteralNoMatch(t *testing.T) {
	got := tokens(t, FromString("abc"), FromString(","), -1)
	if !equalTokens(got, "abc") {
		t.Errorf("split = %q, want [abc]", got)
	}
}

func TestSplitLiteralMultiByteSep(t *testing.T) {
	got := tokens(t, FromString("a<>b<>c"), FromString("<>"), -1)
	if !equalTokens(got, "a", "b", "c") {
		t.Errorf("split = %q", got)
	}
}

func TestSplitEmptySeparator(t *testing.T) {
	_, err := FromString("abc").Split(Empty(), -1)
	if !errors.Is(err, ErrBadArgumentType) {
		t.Errorf("Split(empty sep) error = %v, want ErrBadArgumentType", err)
	}
}

func TestSplitZeroMaxsplit(t *testing.T) {
	got := tokens(t, FromString("a.b"), FromString("."), 0)
	if !equalTokens(got, "a.b") {
		t.Errorf("split maxsplit=0 = %q", got)
	}
}

func TestPartition(t *testing.T) {
	parts, err := FromString("a=b=c").Partition(FromString("="))
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	if parts.Before.String() != "a" || parts.Sep.String() != "=" || parts.After.String() != "b=c" {
		t.Errorf("Partition = (%s, %s, %s)", parts.Before.Repr(), parts.Sep.Repr(), parts.After.Repr())
	}
}

func TestRPartition(t *testing.T) {
	parts, err := FromString("a=b=c").RPartition(FromString("="))
	if err != nil {
		t.Fatalf("RPartition failed: %v", err)
	}
	if parts.Before.String() != "a=b" || parts.Sep.String() != "=" || parts.After.String() != "c" {
		t.Errorf("RPartition = (%s, %s, %s)", parts.Before.Repr(), parts.Sep.Repr(), parts.After.Repr())
	}
}

func TestPartitionAbsent(t *testing.T) {
	s := FromString("abc")

	parts, err := s.Partition(FromString("="))
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	if parts.Before.String() != "abc" || parts.Sep != Empty() || parts.After != Empty() {
		t.Errorf("Partition absent = (%s, %s, %s)", parts.Before.Repr(), parts.Sep.Repr(), parts.After.Repr())
	}
	if parts.Before == s {
		t.Error("Partition absent should hand back a copy, not the original")
	}

	rparts, err := s.RPartition(FromString("="))
	if err != nil {
		t.Fatalf("RPartition failed: %v", err)
	}
	if rparts.Before != Empty() || rparts.Sep != Empty() || rparts.After.String() != "abc" {
		t.Errorf("RPartition absent = (%s, %s, %s)", rparts.Before.Repr(), rparts.Sep.Repr(), rparts.After.Repr())
	}
}

func TestPartitionEmptySeparator(t *testing.T) {
	if _, err := FromString("abc").Partition(Empty()); !errors.Is(err, ErrBadArgumentType) {
		t.Errorf("Partition(empty) error = %v, want ErrBadArgumentType", err)
	}
	if _, err := FromString("abc").RPartition(Empty()); !errors.Is(err, ErrBadArgumentType) {
		t.Errorf("RPartition(empty) error = %v, want ErrBadArgumentType", err)
	}
}
