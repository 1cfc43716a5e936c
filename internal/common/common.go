package common

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Element widths in bytes.
const (
	Width16 = 2
	Width32 = 4
)

// LoadInt16 decodes a two's complement 16-bit value from the first two bytes of b.
func LoadInt16(order binary.ByteOrder, b []byte) int16 {
	return int16(order.Uint16(b))
}

// StoreInt16 encodes v into the first two bytes of b.
func StoreInt16(order binary.ByteOrder, b []byte, v int16) {
	order.PutUint16(b, uint16(v))
}

// LoadFloat32 decodes an IEEE-754 single from the first four bytes of b.
// The bit pattern is kept as is, NaN payloads included.
func LoadFloat32(order binary.ByteOrder, b []byte) float32 {
	return math.Float32frombits(order.Uint32(b))
}

// StoreFloat32 encodes v into the first four bytes of b.
func StoreFloat32(order binary.ByteOrder, b []byte, v float32) {
	order.PutUint32(b, math.Float32bits(v))
}

// NativeIsLittle reports whether the host stores multi-byte words least significant byte first.
func NativeIsLittle() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}

// Aligned reports whether the first byte of b sits on an alignment boundary.
// An empty slice is always aligned.
func Aligned(b []byte, alignment int) bool {
	if len(b) == 0 || alignment <= 1 {
		return true
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return addr%uintptr(alignment) == 0
}

// AliasSlice reinterprets the first n*sizeof(T) bytes of b as a []T sharing
// the same backing array. The caller checks length, alignment and byte order.
func AliasSlice[T any](b []byte, n int) []T {
	if n == 0 {
		return []T{}
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A zero byte count means b held no complete varint.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == binary.MaxVarintLen64 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
