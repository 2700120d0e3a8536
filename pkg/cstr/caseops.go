package cstr

// Byte class table in the manner of the C ctype macros, restricted to
// ASCII. One entry per byte value; bytes above 0x7F carry no class.
const (
	classUpper = 1 << iota
	classLower
	classDigit
	classSpace
	classPrint
)

var ctype = func() (t [256]uint8) {
	for c := 'A'; c <= 'Z'; c++ {
		t[c] |= classUpper
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= classLower
	}
	for c := '0'; c <= '9'; c++ {
		t[c] |= classDigit
	}
	for _, c := range []byte(Whitespace) {
		t[c] |= classSpace
	}
	for c := 0x20; c <= 0x7E; c++ {
		t[c] |= classPrint
	}
	return
}()

func isAlphaByte(c byte) bool { return ctype[c]&(classUpper|classLower) != 0 }
func isSpaceByte(c byte) bool { return ctype[c]&classSpace != 0 }

// scan reports whether s is non-empty and every byte carries one of the
// given class bits.
func (s *CString) scan(mask uint8) bool {
	data := s.data()
	if len(data) == 0 {
		return false
	}
	for _, c := range data {
		if ctype[c]&mask == 0 {
			return false
		}
	}
	return true
}

// IsAlnum reports whether s is non-empty and every byte is an ASCII
// letter or digit.
func (s *CString) IsAlnum() bool {
	return s.scan(classUpper | classLower | classDigit)
}

// IsAlpha reports whether s is non-empty and every byte is an ASCII
// letter.
func (s *CString) IsAlpha() bool {
	return s.scan(classUpper | classLower)
}

// IsDigit reports whether s is non-empty and every byte is an ASCII
// digit.
func (s *CString) IsDigit() bool {
	return s.scan(classDigit)
}

// IsPrintable reports whether s is non-empty and every byte is a
// printable ASCII character, space included.
func (s *CString) IsPrintable() bool {
	return s.scan(classPrint)
}

// IsSpace reports whether s is non-empty and every byte is whitespace.
func (s *CString) IsSpace() bool {
	return s.scan(classSpace)
}

// caseOf reports whether at least one alphabetic byte exists and every
// alphabetic byte carries the wanted case bit. Non-alphabetic bytes are
// ignored; a string with no alphabetic byte has no case.
func (s *CString) caseOf(want uint8) bool {
	seen := false
	for _, c := range s.data() {
		if !isAlphaByte(c) {
			continue
		}
		if ctype[c]&want == 0 {
			return false
		}
		seen = true
	}
	return seen
}

// IsLower reports whether s has at least one letter and no uppercase
// letters.
func (s *CString) IsLower() bool {
	return s.caseOf(classLower)
}

// IsUpper reports whether s has at least one letter and no lowercase
// letters.
func (s *CString) IsUpper() bool {
	return s.caseOf(classUpper)
}

// Lower returns a copy with ASCII uppercase letters mapped to
// lowercase. Other bytes pass through unchanged.
func (s *CString) Lower() *CString {
	return s.mapBytes(func(c byte) byte {
		if ctype[c]&classUpper != 0 {
			return c + ('a' - 'A')
		}
		return c
	})
}

// Upper returns a copy with ASCII lowercase letters mapped to
// uppercase.
func (s *CString) Upper() *CString {
	return s.mapBytes(func(c byte) byte {
		if ctype[c]&classLower != 0 {
			return c - ('a' - 'A')
		}
		return c
	})
}

// SwapCase returns a copy with the case of every ASCII letter toggled.
func (s *CString) SwapCase() *CString {
	return s.mapBytes(func(c byte) byte {
		switch {
		case ctype[c]&classLower != 0:
			return c - ('a' - 'A')
		case ctype[c]&classUpper != 0:
			return c + ('a' - 'A')
		default:
			return c
		}
	})
}

func (s *CString) mapBytes(f func(byte) byte) *CString {
	data := s.data()
	if len(data) == 0 {
		return Empty()
	}
	buf := make([]byte, len(data)+1)
	for i, c := range data {
		buf[i] = f(c)
	}
	return &CString{buf: buf}
}
