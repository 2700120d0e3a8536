package cstr

// Builder is a move-only owned growable buffer, the only component that
// mutates string storage. It accumulates bytes in place and converts
// into an immutable CString via Finish, which transfers the buffer
// without copying. Uniqueness is a type-level fact: a Builder is never
// shared, so in-place growth is always safe until Finish runs.
//
// Using a Builder after Finish is a contract violation and panics with
// ErrBuilderConsumed.
type Builder struct {
	buf  []byte // data bytes plus trailing NUL
	done bool
}

// NewBuilder returns a Builder with room for about capacity data bytes.
func NewBuilder(capacity int) *Builder {
	if capacity < 0 {
		capacity = 0
	}
	buf := make([]byte, 1, capacity+1)
	return &Builder{buf: buf}
}

// Len returns the number of data bytes accumulated so far.
func (b *Builder) Len() int {
	return len(b.buf) - 1
}

// Append grows the buffer in place and copies s's bytes at the old
// length, rewriting the terminator.
func (b *Builder) Append(s *CString) {
	b.AppendBytes(s.data())
}

// AppendBytes appends raw bytes. The terminator is maintained after
// every growth so the buffer is always a valid C string.
func (b *Builder) AppendBytes(p []byte) {
	if b.done {
		panic(ErrBuilderConsumed)
	}
	if len(p) == 0 {
		return
	}
	n := len(b.buf) - 1
	b.buf = append(b.buf[:n], p...)
	b.buf = append(b.buf, 0)
}

// Finish converts the accumulated buffer into an immutable CString
// without copying and consumes the Builder. The cached hash of the
// result starts unset, so no stale hash from the growth phase is
// observable.
func (b *Builder) Finish() *CString {
	if b.done {
		panic(ErrBuilderConsumed)
	}
	b.done = true
	if len(b.buf) == 1 {
		return Empty()
	}
	s := &CString{buf: b.buf}
	b.buf = nil
	return s
}
