package bufview

import (
	"fmt"

	"github.com/rawbytedev/bufview/internal/common"
)

// WordView presents a byte region as fixed-width elements of type T, with
// the same cursor operations as ByteView counted in elements.
//
// A WordView is created from a ByteView window by DeriveReadWrite or
// DeriveReadOnly. Its cursor is independent of the source view. A
// read-only WordView never writes its bytes, even when another view of the
// same storage is writable.
type WordView[T Element] struct {
	cursor
	buf      []byte // len(buf) == capacity * width
	order    ByteOrder
	readOnly bool
	codec    *codec[T]
}

// Int16View is a view of 16-bit signed integers.
type Int16View = WordView[int16]

// Float32View is a view of 32-bit IEEE-754 floats.
type Float32View = WordView[float32]

// newWordView truncates buf to a whole number of elements.
func newWordView[T Element](buf []byte, order ByteOrder, readOnly bool) *WordView[T] {
	c := codecOf[T]()
	n := len(buf) / c.width
	end := n * c.width
	return &WordView[T]{
		cursor:   newCursor(n),
		buf:      buf[:end:end],
		order:    order,
		readOnly: readOnly,
		codec:    c,
	}
}

// IsReadOnly reports whether mutating calls are rejected.
func (w *WordView[T]) IsReadOnly() bool { return w.readOnly }

// Order returns the byte order captured from the source view.
func (w *WordView[T]) Order() ByteOrder { return w.order }

// ElementSize returns the width of one element in bytes.
func (w *WordView[T]) ElementSize() int { return w.codec.width }

// ElementType returns the GL type code of T.
func (w *WordView[T]) ElementType() int { return w.codec.glType }

func (w *WordView[T]) load(i int) T {
	off := i * w.codec.width
	return w.codec.load(w.order.binary(), w.buf[off:off+w.codec.width])
}

func (w *WordView[T]) store(i int, v T) {
	off := i * w.codec.width
	w.codec.store(w.order.binary(), w.buf[off:off+w.codec.width], v)
}

// Get reads the element at the position and advances it.
func (w *WordView[T]) Get() (T, error) {
	p, err := w.next(1)
	if err != nil {
		return 0, err
	}
	return w.load(p), nil
}

// Put writes v at the position and advances it.
func (w *WordView[T]) Put(v T) error {
	if w.readOnly {
		return ErrReadOnly
	}
	p, err := w.next(1)
	if err != nil {
		return err
	}
	w.store(p, v)
	return nil
}

// GetAt reads element i in [0, limit) without moving the position.
func (w *WordView[T]) GetAt(i int) (T, error) {
	if err := w.checkIndex(i, 1); err != nil {
		return 0, err
	}
	return w.load(i), nil
}

// PutAt writes v as element i in [0, limit) without moving the position.
func (w *WordView[T]) PutAt(i int, v T) error {
	if w.readOnly {
		return ErrReadOnly
	}
	if err := w.checkIndex(i, 1); err != nil {
		return err
	}
	w.store(i, v)
	return nil
}

// GetSlice fills dst from the position, all or nothing.
func (w *WordView[T]) GetSlice(dst []T) error {
	p, err := w.next(len(dst))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = w.load(p + i)
	}
	return nil
}

// PutSlice writes all of src at the position, or nothing.
func (w *WordView[T]) PutSlice(src []T) error {
	if w.readOnly {
		return ErrReadOnly
	}
	p, err := w.next(len(src))
	if err != nil {
		return err
	}
	for i, v := range src {
		w.store(p+i, v)
	}
	return nil
}

// Slice returns a view of elements [position, limit) sharing storage.
func (w *WordView[T]) Slice() *WordView[T] {
	width := w.codec.width
	return newWordView[T](w.buf[w.position*width:w.limit*width], w.order, w.readOnly)
}

// Duplicate returns a view of the same elements with the cursor copied.
func (w *WordView[T]) Duplicate() *WordView[T] {
	d := *w
	return &d
}

// AsReadOnly is Duplicate with the read-only flag forced on. Writes made
// through other views of the storage stay visible to it.
func (w *WordView[T]) AsReadOnly() *WordView[T] {
	d := *w
	d.readOnly = true
	return &d
}

// Compact moves elements [position, limit) to the front, one whole
// element at a time, and prepares the view for refilling.
func (w *WordView[T]) Compact() error {
	if w.readOnly {
		return ErrReadOnly
	}
	width := w.codec.width
	copy(w.buf, w.buf[w.position*width:w.limit*width])
	w.compacted()
	return nil
}

// Bytes returns the byte region behind the view. For a read-only view the
// result is a copy so it cannot be used to write.
func (w *WordView[T]) Bytes() []byte {
	if w.readOnly {
		c := make([]byte, len(w.buf))
		copy(c, w.buf)
		return c
	}
	return w.buf
}

// HasArray reports whether Array can alias the region as a []T: the view
// must be writable, in host byte order, and suitably aligned.
func (w *WordView[T]) HasArray() bool {
	return !w.readOnly && w.order == NativeOrder() && common.Aligned(w.buf, w.codec.width)
}

// Array returns the region as a native []T of length Capacity sharing
// storage. See HasArray for when this is possible.
func (w *WordView[T]) Array() ([]T, error) {
	switch {
	case w.readOnly:
		return nil, fmt.Errorf("%w: %w", ErrNoArray, ErrReadOnly)
	case w.order != NativeOrder():
		return nil, fmt.Errorf("%w: order %s is not the host order", ErrNoArray, w.order)
	case !common.Aligned(w.buf, w.codec.width):
		return nil, fmt.Errorf("%w: region not aligned to %d bytes", ErrNoArray, w.codec.width)
	}
	return common.AliasSlice[T](w.buf, w.capacity), nil
}

func (w *WordView[T]) String() string {
	return fmt.Sprintf("bufview.WordView[%s]%s", w.codec.name, w.cursor.String())
}
