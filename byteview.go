package bufview

import "fmt"

// ByteView is a cursor over a region of Storage with byte-granular access.
//
// Views returned by Slice, Duplicate, AsReadOnly and the word-view
// factories share the region: a write through one is visible through all.
// Views are not safe for concurrent use, and neither is a group of views
// sharing storage; callers serialize access themselves.
type ByteView struct {
	cursor
	buf      []byte // len(buf) == capacity
	order    ByteOrder
	readOnly bool
}

func newByteView(buf []byte, order ByteOrder, readOnly bool) *ByteView {
	return &ByteView{
		cursor:   newCursor(len(buf)),
		buf:      buf,
		order:    order,
		readOnly: readOnly,
	}
}

// IsReadOnly reports whether mutating calls are rejected.
func (b *ByteView) IsReadOnly() bool { return b.readOnly }

// Order returns the byte order used for multi-byte access and derived views.
func (b *ByteView) Order() ByteOrder { return b.order }

// SetOrder changes the byte order of this view only.
func (b *ByteView) SetOrder(o ByteOrder) *ByteView {
	b.order = o
	return b
}

// Get reads the byte at the position and advances it.
func (b *ByteView) Get() (byte, error) {
	p, err := b.next(1)
	if err != nil {
		return 0, err
	}
	return b.buf[p], nil
}

// Put writes v at the position and advances it.
func (b *ByteView) Put(v byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	p, err := b.next(1)
	if err != nil {
		return err
	}
	b.buf[p] = v
	return nil
}

// GetAt reads the byte at index i in [0, limit) without moving the position.
func (b *ByteView) GetAt(i int) (byte, error) {
	if err := b.checkIndex(i, 1); err != nil {
		return 0, err
	}
	return b.buf[i], nil
}

// PutAt writes v at index i in [0, limit) without moving the position.
func (b *ByteView) PutAt(i int, v byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if err := b.checkIndex(i, 1); err != nil {
		return err
	}
	b.buf[i] = v
	return nil
}

// GetBytes fills dst from the position. Either all of dst is read or,
// when fewer bytes remain, nothing is.
func (b *ByteView) GetBytes(dst []byte) error {
	p, err := b.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b.buf[p:])
	return nil
}

// PutBytes writes all of src at the position, or nothing.
// src may alias this view's storage.
func (b *ByteView) PutBytes(src []byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	p, err := b.next(len(src))
	if err != nil {
		return err
	}
	copy(b.buf[p:], src)
	return nil
}

// Slice returns a view of [position, limit) sharing storage, with its own
// cursor at position 0. The byte order and read-only flag carry over.
func (b *ByteView) Slice() *ByteView {
	return newByteView(b.buf[b.position:b.limit:b.limit], b.order, b.readOnly)
}

// Duplicate returns a view of the whole region sharing storage, with the
// cursor copied as it is now.
func (b *ByteView) Duplicate() *ByteView {
	d := *b
	return &d
}

// AsReadOnly is Duplicate with the read-only flag forced on.
func (b *ByteView) AsReadOnly() *ByteView {
	d := *b
	d.readOnly = true
	return &d
}

// Compact moves the bytes of [position, limit) to the front, then sets the
// position just past them and the limit to the capacity, ready to refill.
func (b *ByteView) Compact() error {
	if b.readOnly {
		return ErrReadOnly
	}
	copy(b.buf, b.buf[b.position:b.limit])
	b.compacted()
	return nil
}

// HasArray reports whether Array can hand out the backing bytes.
func (b *ByteView) HasArray() bool { return !b.readOnly }

// Array returns the whole backing region, aliasing storage. Read-only
// views have no accessible array.
func (b *ByteView) Array() ([]byte, error) {
	if b.readOnly {
		return nil, fmt.Errorf("%w: %w", ErrNoArray, ErrReadOnly)
	}
	return b.buf, nil
}

// GetInt16 reads a 16-bit value at the position in the view's byte order.
func (b *ByteView) GetInt16() (int16, error) { return getRelative[int16](b) }

// PutInt16 writes a 16-bit value at the position in the view's byte order.
func (b *ByteView) PutInt16(v int16) error { return putRelative(b, v) }

// GetInt16At reads a 16-bit value at byte index i.
func (b *ByteView) GetInt16At(i int) (int16, error) { return getAbsolute[int16](b, i) }

// PutInt16At writes a 16-bit value at byte index i.
func (b *ByteView) PutInt16At(i int, v int16) error { return putAbsolute(b, i, v) }

// GetFloat32 reads a 32-bit float at the position in the view's byte order.
func (b *ByteView) GetFloat32() (float32, error) { return getRelative[float32](b) }

// PutFloat32 writes a 32-bit float at the position in the view's byte order.
func (b *ByteView) PutFloat32(v float32) error { return putRelative(b, v) }

// GetFloat32At reads a 32-bit float at byte index i.
func (b *ByteView) GetFloat32At(i int) (float32, error) { return getAbsolute[float32](b, i) }

// PutFloat32At writes a 32-bit float at byte index i.
func (b *ByteView) PutFloat32At(i int, v float32) error { return putAbsolute(b, i, v) }

func (b *ByteView) String() string {
	return "bufview.ByteView" + b.cursor.String()
}

func getRelative[T Element](b *ByteView) (T, error) {
	c := codecOf[T]()
	p, err := b.next(c.width)
	if err != nil {
		return 0, err
	}
	return c.load(b.order.binary(), b.buf[p:p+c.width]), nil
}

func putRelative[T Element](b *ByteView, v T) error {
	if b.readOnly {
		return ErrReadOnly
	}
	c := codecOf[T]()
	p, err := b.next(c.width)
	if err != nil {
		return err
	}
	c.store(b.order.binary(), b.buf[p:p+c.width], v)
	return nil
}

func getAbsolute[T Element](b *ByteView, i int) (T, error) {
	c := codecOf[T]()
	if err := b.checkIndex(i, c.width); err != nil {
		return 0, err
	}
	return c.load(b.order.binary(), b.buf[i:i+c.width]), nil
}

func putAbsolute[T Element](b *ByteView, i int, v T) error {
	if b.readOnly {
		return ErrReadOnly
	}
	c := codecOf[T]()
	if err := b.checkIndex(i, c.width); err != nil {
		return err
	}
	c.store(b.order.binary(), b.buf[i:i+c.width], v)
	return nil
}
