package cstr

// byteSet is a membership table for strip cutsets.
type byteSet [256]bool

func makeByteSet(cutset *CString) byteSet {
	var set byteSet
	if cutset == nil {
		for _, c := range []byte(Whitespace) {
			set[c] = true
		}
		return set
	}
	for _, c := range cutset.data() {
		set[c] = true
	}
	return set
}

// Strip returns s with bytes in cutset removed from both ends. A nil
// cutset means the canonical whitespace set.
func (s *CString) Strip(cutset *CString) *CString {
	set := makeByteSet(cutset)
	data := s.data()
	lo, hi := 0, len(data)
	for lo < hi && set[data[lo]] {
		lo++
	}
	for hi > lo && set[data[hi-1]] {
		hi--
	}
	return newFromBytes(data[lo:hi])
}

// LStrip returns s with leading cutset bytes removed.
func (s *CString) LStrip(cutset *CString) *CString {
	set := makeByteSet(cutset)
	data := s.data()
	lo := 0
	for lo < len(data) && set[data[lo]] {
		lo++
	}
	return newFromBytes(data[lo:])
}

// RStrip returns s with trailing cutset bytes removed.
func (s *CString) RStrip(cutset *CString) *CString {
	set := makeByteSet(cutset)
	data := s.data()
	hi := len(data)
	for hi > 0 && set[data[hi-1]] {
		hi--
	}
	return newFromBytes(data[:hi])
}
