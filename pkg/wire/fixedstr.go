package wire

// FixedStr is an append-only text buffer with a capacity fixed at
// construction. The backing storage is allocated once and never regrown;
// an append that does not fit fails instead of reallocating.
//
// Content is always valid UTF-8: the only write path takes a Go string, and
// decode paths validate bytes before handing them over.
type FixedStr struct {
	buf []byte
}

// NewFixedStr returns an empty FixedStr that can hold up to capacity bytes.
func NewFixedStr(capacity int) FixedStr {
	return FixedStr{buf: make([]byte, 0, capacity)}
}

// Push appends s to the buffer. It fails with ErrBufferOverflow if s does
// not fit in the remaining room, leaving the buffer unchanged.
func (f *FixedStr) Push(s string) error {
	if len(s) > cap(f.buf)-len(f.buf) {
		return ErrBufferOverflow
	}
	f.buf = append(f.buf, s...)
	return nil
}

// String returns the current content as text.
func (f *FixedStr) String() string {
	return string(f.buf)
}

// Bytes returns the current content without copying. The slice is only
// valid until the next Push or Clear.
func (f *FixedStr) Bytes() []byte {
	return f.buf
}

// Clear empties the buffer, keeping its capacity.
func (f *FixedStr) Clear() {
	f.buf = f.buf[:0]
}

// Len returns the number of bytes currently stored.
func (f *FixedStr) Len() int {
	return len(f.buf)
}

// Cap returns the fixed capacity in bytes.
func (f *FixedStr) Cap() int {
	return cap(f.buf)
}
