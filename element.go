package bufview

import (
	"encoding/binary"

	"github.com/rawbytedev/bufview/internal/common"
)

// Element is the set of element types a WordView can present.
type Element interface {
	int16 | float32
}

// GL type codes reported by ElementType, for handing views to a renderer.
const (
	GLShort = 0x1402
	GLFloat = 0x1406
)

// codec converts between one element and its width-sized group of bytes.
type codec[T Element] struct {
	name   string
	width  int
	glType int
	load   func(binary.ByteOrder, []byte) T
	store  func(binary.ByteOrder, []byte, T)
}

var (
	int16Codec = &codec[int16]{
		name:   "int16",
		width:  common.Width16,
		glType: GLShort,
		load:   common.LoadInt16,
		store:  common.StoreInt16,
	}
	float32Codec = &codec[float32]{
		name:   "float32",
		width:  common.Width32,
		glType: GLFloat,
		load:   common.LoadFloat32,
		store:  common.StoreFloat32,
	}
)

func codecOf[T Element]() *codec[T] {
	var zero T
	switch any(zero).(type) {
	case int16:
		return any(int16Codec).(*codec[T])
	default:
		return any(float32Codec).(*codec[T])
	}
}

// ElementWidth returns the number of bytes one T occupies in storage.
func ElementWidth[T Element]() int {
	return codecOf[T]().width
}
