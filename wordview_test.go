package bufview

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordWidthTruncation(t *testing.T) {
	v, err := Allocate(10)
	require.NoError(t, err)

	shorts := v.AsInt16View()
	require.Equal(t, 5, shorts.Capacity())
	require.Equal(t, 5, shorts.Limit())
	require.Len(t, shorts.Bytes(), 10)

	floats := v.AsFloat32View()
	require.Equal(t, 2, floats.Capacity())
	require.Len(t, floats.Bytes(), 8)
	_, err = floats.GetAt(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	// the trailing two bytes stay unreachable through the float view
	for i := 0; i < floats.Capacity(); i++ {
		require.NoError(t, floats.Put(-1))
	}
	require.ErrorIs(t, floats.Put(-1), ErrUnderflow)
	raw := Unwrap(v)
	require.Equal(t, []byte{0, 0}, raw[8:])
}

func TestWordViewByteOrder(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04}

	be := Wrap(raw).AsFloat32View()
	f, err := be.Get()
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), math.Float32bits(f))

	le := Wrap(raw).SetOrder(LittleEndian).AsFloat32View()
	require.Equal(t, LittleEndian, le.Order())
	f, err = le.Get()
	require.NoError(t, err)
	require.Equal(t, uint32(0x04030201), math.Float32bits(f))

	s := Wrap(raw).SetOrder(LittleEndian).AsInt16View()
	first, err := s.GetAt(0)
	require.NoError(t, err)
	require.Equal(t, int16(0x0201), first)
}

func TestInt16ViewValues(t *testing.T) {
	tests := []struct {
		name  string
		value int16
		be    []byte
	}{
		{name: "min", value: math.MinInt16, be: []byte{0x80, 0x00}},
		{name: "minus one", value: -1, be: []byte{0xff, 0xff}},
		{name: "minus two", value: -2, be: []byte{0xff, 0xfe}},
		{name: "zero", value: 0, be: []byte{0x00, 0x00}},
		{name: "max", value: math.MaxInt16, be: []byte{0x7f, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, 2)
			w, err := DeriveReadWrite[int16](Wrap(raw))
			require.NoError(t, err)
			require.NoError(t, w.PutAt(0, tt.value))
			require.Equal(t, tt.be, raw)

			got, err := w.GetAt(0)
			require.NoError(t, err)
			require.Equal(t, tt.value, got)
			rel, err := w.Get()
			require.NoError(t, err)
			require.Equal(t, tt.value, rel)
		})
	}
}

func TestFloat32ViewSpecialValues(t *testing.T) {
	values := []float32{
		0,
		float32(math.Copysign(0, -1)),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		math.Float32frombits(0x7fc00001), // quiet NaN with payload
	}
	v, err := Allocate(4 * len(values))
	require.NoError(t, err)
	w := v.AsFloat32View()
	require.NoError(t, w.PutSlice(values))
	w.Flip()

	got := make([]float32, len(values))
	require.NoError(t, w.GetSlice(got))
	for i := range values {
		assert.Equal(t, math.Float32bits(values[i]), math.Float32bits(got[i]), "index %d", i)
		abs, err := w.GetAt(i)
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(got[i]), math.Float32bits(abs), "index %d", i)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	v, err := Allocate(4)
	require.NoError(t, err)
	w := v.SetOrder(LittleEndian).AsFloat32View()
	condition := func(f float32) bool {
		if err := w.PutAt(0, f); err != nil {
			return false
		}
		got, err := w.GetAt(0)
		return err == nil && math.Float32bits(got) == math.Float32bits(f)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestWordViewReadOnlySharesBytes(t *testing.T) {
	v, err := Allocate(8)
	require.NoError(t, err)
	rw, err := DeriveReadWrite[int16](v)
	require.NoError(t, err)
	ro := rw.AsReadOnly()

	require.NoError(t, rw.PutAt(1, 7))
	got, err := ro.GetAt(1)
	require.NoError(t, err)
	require.Equal(t, int16(7), got)

	require.ErrorIs(t, ro.Put(1), ErrReadOnly)
	require.ErrorIs(t, ro.PutAt(0, 1), ErrReadOnly)
	require.ErrorIs(t, ro.PutSlice([]int16{1}), ErrReadOnly)
	require.ErrorIs(t, ro.Compact(), ErrReadOnly)
	require.ErrorIs(t, ro.Slice().Duplicate().Put(1), ErrReadOnly)
	require.Equal(t, 0, ro.Position())

	// Bytes from a read-only view is a private copy
	b := ro.Bytes()
	b[0] = 0x55
	first, err := rw.GetAt(0)
	require.NoError(t, err)
	require.Equal(t, int16(0), first)
}

func TestWordViewAsReadOnlyCopiesCursor(t *testing.T) {
	v, err := Allocate(12)
	require.NoError(t, err)
	w := v.AsFloat32View()
	require.NoError(t, w.SetPosition(1))
	w.Mark()
	require.NoError(t, w.SetPosition(2))

	ro := w.AsReadOnly()
	require.Equal(t, 2, ro.Position())
	require.Equal(t, 3, ro.Limit())
	require.NoError(t, ro.Reset())
	require.Equal(t, 1, ro.Position())
	require.Equal(t, 2, w.Position())
}

func TestWordViewSlice(t *testing.T) {
	v, err := Allocate(16)
	require.NoError(t, err)
	w := v.AsFloat32View()
	require.NoError(t, w.SetLimit(3))
	require.NoError(t, w.SetPosition(1))

	s := w.Slice()
	require.Equal(t, 2, s.Capacity())
	require.Equal(t, 0, s.Position())
	require.NoError(t, s.PutAt(0, 9.5))

	got, err := w.GetAt(1)
	require.NoError(t, err)
	require.Equal(t, float32(9.5), got)
	require.Equal(t, 1, w.Position())
}

func TestWordViewCompact(t *testing.T) {
	v, err := Allocate(8)
	require.NoError(t, err)
	w := v.AsInt16View()
	require.NoError(t, w.PutSlice([]int16{1, 2, 3, 4}))
	w.Flip()
	_, err = w.Get()
	require.NoError(t, err)

	require.NoError(t, w.Compact())
	require.Equal(t, 3, w.Position())
	require.Equal(t, 4, w.Limit())

	for i, want := range []int16{2, 3, 4} {
		got, err := w.GetAt(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, []byte{0, 2, 0, 3, 0, 4, 0, 4}, Unwrap(v))
}

func TestWordViewBulkAllOrNothing(t *testing.T) {
	v, err := Allocate(6)
	require.NoError(t, err)
	w := v.AsInt16View()
	require.ErrorIs(t, w.PutSlice([]int16{1, 2, 3, 4}), ErrUnderflow)
	require.Equal(t, 0, w.Position())
	require.Equal(t, make([]byte, 6), Unwrap(v))

	dst := make([]int16, 4)
	require.ErrorIs(t, w.GetSlice(dst), ErrUnderflow)
	require.Equal(t, 0, w.Position())
}

func TestWordViewArray(t *testing.T) {
	v, err := Allocate(16)
	require.NoError(t, err)
	w := v.SetOrder(NativeOrder()).AsFloat32View()
	require.True(t, w.HasArray())

	arr, err := w.Array()
	require.NoError(t, err)
	require.Len(t, arr, 4)
	arr[1] = 2.5
	got, err := w.GetAt(1)
	require.NoError(t, err)
	require.Equal(t, float32(2.5), got)

	require.NoError(t, w.PutAt(3, -8))
	require.Equal(t, float32(-8), arr[3])

	other := NativeOrder() ^ 1
	swapped := v.Duplicate().SetOrder(other).AsFloat32View()
	require.False(t, swapped.HasArray())
	_, err = swapped.Array()
	require.ErrorIs(t, err, ErrNoArray)

	_, err = w.AsReadOnly().Array()
	require.ErrorIs(t, err, ErrNoArray)
	require.ErrorIs(t, err, ErrReadOnly)
}

func TestWordViewElementInfo(t *testing.T) {
	v, err := Allocate(8)
	require.NoError(t, err)

	s := v.AsInt16View()
	assert.Equal(t, 2, s.ElementSize())
	assert.Equal(t, GLShort, s.ElementType())
	assert.Equal(t, "bufview.WordView[int16][pos=0 lim=4 cap=4]", s.String())

	f := v.AsFloat32View()
	assert.Equal(t, 4, f.ElementSize())
	assert.Equal(t, GLFloat, f.ElementType())
	assert.Equal(t, "bufview.WordView[float32][pos=0 lim=2 cap=2]", f.String())

	assert.Equal(t, 2, ElementWidth[int16]())
	assert.Equal(t, 4, ElementWidth[float32]())
}

func TestWordViewCursorOps(t *testing.T) {
	v, err := Allocate(10)
	require.NoError(t, err)
	w := v.AsInt16View()
	require.NoError(t, w.Put(1))
	require.NoError(t, w.Put(2))
	w.Flip()
	require.Equal(t, 2, w.Remaining())
	require.ErrorIs(t, w.Reset(), ErrNoMark)

	_, err = w.Get()
	require.NoError(t, err)
	w.Mark()
	_, err = w.Get()
	require.NoError(t, err)
	_, err = w.Get()
	require.ErrorIs(t, err, ErrUnderflow)
	require.Equal(t, 2, w.Position())
	require.NoError(t, w.Reset())
	require.Equal(t, 1, w.Position())

	w.Rewind()
	require.Equal(t, 0, w.Position())
	w.Clear()
	require.Equal(t, 5, w.Limit())
	requireCursor(t, &w.cursor)
}
