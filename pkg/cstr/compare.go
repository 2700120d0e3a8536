package cstr

import "bytes"

// Compare performs a lexicographic byte comparison, short-circuiting at
// the first differing byte or end of the shorter string. The result is
// -1 when s sorts before other, 0 on equality, and 1 otherwise.
func (s *CString) Compare(other *CString) int {
	return bytes.Compare(s.data(), other.data())
}

// Equal reports byte-exact equality.
func (s *CString) Equal(other *CString) bool {
	return bytes.Equal(s.data(), other.data())
}

func (s *CString) Less(other *CString) bool {
	return s.Compare(other) < 0
}

func (s *CString) LessEqual(other *CString) bool {
	return s.Compare(other) <= 0
}

func (s *CString) Greater(other *CString) bool {
	return s.Compare(other) > 0
}

func (s *CString) GreaterEqual(other *CString) bool {
	return s.Compare(other) >= 0
}
