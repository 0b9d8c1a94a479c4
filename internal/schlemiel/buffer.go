package schlemiel

// BufLen is the fixed capacity of a Buffer, terminating NUL included.
const BufLen = 1024

// Buffer is a fixed-capacity NUL-terminated byte sequence. The zero value is
// empty and ready to use; each variant resets and rebuilds it in place.
type Buffer struct {
	b [BufLen]byte
}

func (buf *Buffer) Reset() {
	buf.b[0] = 0
}

// Len locates the terminating NUL by scanning from the start. This scan is
// the whole point: it is what makes Strncat-style appends quadratic.
func (buf *Buffer) Len() int {
	for i, c := range buf.b {
		if c == 0 {
			return i
		}
	}
	return BufLen
}

// Strncat appends s at the end of the current content, re-locating the end
// from the buffer's start on every call. Once fewer than len(s)+1 bytes
// remain it truncates silently.
func (buf *Buffer) Strncat(s string) {
	end := buf.Len()
	n := copy(buf.b[end:BufLen-1], s)
	buf.b[end+n] = 0
}

// SetAt writes s at byte offset off and terminates the content there,
// truncating silently at capacity. The caller tracks off; nothing is
// rescanned.
func (buf *Buffer) SetAt(off int, s string) {
	n := copy(buf.b[off:BufLen-1], s)
	buf.b[off+n] = 0
}

func (buf *Buffer) String() string {
	return string(buf.b[:buf.Len()])
}
