package bufview

import "fmt"

// Storage is a fixed-size contiguous block of bytes. Views over the same
// Storage share its bytes; it lives as long as any of them is reachable.
type Storage struct {
	data []byte
}

// NewStorage allocates n zeroed bytes.
func NewStorage(n int) (*Storage, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, n)
	}
	return &Storage{data: make([]byte, n)}, nil
}

// WrapStorage uses b as storage without copying it. Later writes to b are
// visible through every view of the storage, and the other way round.
func WrapStorage(b []byte) *Storage {
	return &Storage{data: b[:len(b):len(b)]}
}

// Len returns the fixed byte length.
func (s *Storage) Len() int { return len(s.data) }

// Bytes returns the raw bytes. The slice aliases the storage.
func (s *Storage) Bytes() []byte { return s.data }

// Subrange returns storage describing length bytes starting at offset.
// Nothing is copied.
func (s *Storage) Subrange(offset, length int) (*Storage, error) {
	if offset < 0 || length < 0 || length > len(s.data)-offset {
		return nil, fmt.Errorf("%w: subrange [%d, %d+%d) of %d bytes",
			ErrIndexOutOfRange, offset, offset, length, len(s.data))
	}
	end := offset + length
	return &Storage{data: s.data[offset:end:end]}, nil
}

// View returns a read-write ByteView over the whole storage.
func (s *Storage) View() *ByteView {
	return newByteView(s.data, BigEndian, false)
}

// ReadOnlyView returns a read-only ByteView over the whole storage.
func (s *Storage) ReadOnlyView() *ByteView {
	return newByteView(s.data, BigEndian, true)
}
