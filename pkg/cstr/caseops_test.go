package cstr

import "testing"

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(*CString) bool
		in   string
		want bool
	}{
		{"alnum", (*CString).IsAlnum, "abc123", true},
		{"alnum", (*CString).IsAlnum, "abc 123", false},
		{"alnum", (*CString).IsAlnum, "", false},
		{"alpha", (*CString).IsAlpha, "abcXYZ", true},
		{"alpha", (*CString).IsAlpha, "abc1", false},
		{"alpha", (*CString).IsAlpha, "", false},
		{"digit", (*CString).IsDigit, "0123456789", true},
		{"digit", (*CString).IsDigit, "12a", false},
		{"digit", (*CString).IsDigit, "", false},
		{"printable", (*CString).IsPrintable, "hello, world!", true},
		{"printable", (*CString).IsPrintable, "tab\there", false},
		{"printable", (*CString).IsPrintable, "", false},
		{"space", (*CString).IsSpace, " \t\n\v\f\r", true},
		{"space", (*CString).IsSpace, " x ", false},
		{"space", (*CString).IsSpace, "", false},
	}
	for _, tt := range tests {
		if got := tt.pred(FromString(tt.in)); got != tt.want {
			t.Errorf("is%s(%q) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ABC", true},
		{"ABC1", true},
		{"1", false},
		{"aBC", false},
		{"", false},
		{"A B-C", true},
	}
	for _, tt := range tests {
		if got := FromString(tt.in).IsUpper(); got != tt.want {
			t.Errorf("IsUpper(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsLower(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"abc1", true},
		{"1", false},
		{"Abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := FromString(tt.in).IsLower(); got != tt.want {
			t.Errorf("IsLower(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTransforms(t *testing.T) {
	s := FromString("Hello, World! 123")

	if got := s.Lower().String(); got != "hello, world! 123" {
		t.Errorf("Lower = %q", got)
	}
	if got := s.Upper().String(); got != "HELLO, WORLD! 123" {
		t.Errorf("Upper = %q", got)
	}
	if got := s.SwapCase().String(); got != "hELLO, wORLD! 123" {
		t.Errorf("SwapCase = %q", got)
	}
	if s.String() != "Hello, World! 123" {
		t.Error("transform mutated its receiver")
	}
}

func TestTransformEmpty(t *testing.T) {
	if Empty().Lower() != Empty() {
		t.Error("Lower of empty is not the singleton")
	}
	if Empty().SwapCase() != Empty() {
		t.Error("SwapCase of empty is not the singleton")
	}
}

func TestTransformHighBytes(t *testing.T) {
	// Bytes above ASCII pass through unchanged.
	in := []byte{'a', 0xC3, 0xA9, 'B'}
	got := FromBytes(in).Upper().Bytes()
	want := []byte{'A', 0xC3, 0xA9, 'B'}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Upper(%v) = %v, want %v", in, got, want)
		}
	}
}
