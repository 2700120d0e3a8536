package cstr

// Join concatenates elems with sep between consecutive elements. The
// accumulator starts from a private copy of the first element and grows
// in place through a Builder, which is never shared, so the in-place
// path is always safe. Each element must be a kind New accepts; the
// first foreign element fails the whole call with ErrBadArgumentType
// and the partially built accumulator is abandoned.
func Join(sep *CString, elems []any) (*CString, error) {
	if len(elems) == 0 {
		return Empty(), nil
	}
	b := NewBuilder(sep.Len() * (len(elems) - 1))
	for i, e := range elems {
		v, err := New(e)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			b.Append(sep)
		}
		b.Append(v)
	}
	return b.Finish(), nil
}

// JoinStrings is the typed fast path over a slice of values.
func JoinStrings(sep *CString, elems []*CString) *CString {
	if len(elems) == 0 {
		return Empty()
	}
	size := sep.Len() * (len(elems) - 1)
	for _, e := range elems {
		size += e.Len()
	}
	b := NewBuilder(size)
	for i, e := range elems {
		if i > 0 {
			b.Append(sep)
		}
		b.Append(e)
	}
	return b.Finish()
}
