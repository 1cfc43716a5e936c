package bufview

// Allocate returns a read-write view over n fresh zeroed bytes.
func Allocate(n int) (*ByteView, error) {
	s, err := NewStorage(n)
	if err != nil {
		return nil, err
	}
	return s.View(), nil
}

// Wrap returns a read-write view over b without copying. The caller keeps
// b's bytes shared with the view.
func Wrap(b []byte) *ByteView {
	return WrapStorage(b).View()
}

// WrapReadOnly returns a read-only view over b without copying.
func WrapReadOnly(b []byte) *ByteView {
	return WrapStorage(b).ReadOnlyView()
}

// Unwrap returns the whole region behind v, ignoring its cursor. For a
// writable view the slice aliases storage; a read-only view yields a copy.
func Unwrap(v *ByteView) []byte {
	if v.readOnly {
		c := make([]byte, len(v.buf))
		copy(c, v.buf)
		return c
	}
	return v.buf
}

// FromString returns a new view holding the UTF-8 bytes of s, positioned
// at 0 with capacity len(s). Every call allocates its own storage.
func FromString(s string) *ByteView {
	return Wrap([]byte(s))
}
