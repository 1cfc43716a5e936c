package bufview

import "fmt"

// DeriveReadWrite returns a writable view of the source window
// [position, limit) as elements of T. Trailing bytes that do not fill a
// whole element are left out. The byte order is copied from b and b's
// cursor is not touched.
func DeriveReadWrite[T Element](b *ByteView) (*WordView[T], error) {
	if b.readOnly {
		return nil, fmt.Errorf("%w: cannot derive a writable %s view", ErrReadOnly, codecOf[T]().name)
	}
	return derive[T](b, false), nil
}

// DeriveReadOnly is DeriveReadWrite for a view that rejects every write.
// It works on read-only and writable sources alike.
func DeriveReadOnly[T Element](b *ByteView) *WordView[T] {
	return derive[T](b, true)
}

func derive[T Element](b *ByteView, readOnly bool) *WordView[T] {
	return newWordView[T](b.buf[b.position:b.limit], b.order, readOnly)
}

// AsInt16View derives an Int16View from the window, read-only exactly when
// b is.
func (b *ByteView) AsInt16View() *Int16View {
	return derive[int16](b, b.readOnly)
}

// AsFloat32View derives a Float32View from the window, read-only exactly
// when b is.
func (b *ByteView) AsFloat32View() *Float32View {
	return derive[float32](b, b.readOnly)
}
