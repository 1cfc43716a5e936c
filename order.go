package bufview

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/rawbytedev/bufview/internal/common"
)

// ByteOrder selects how multi-byte elements are assembled from bytes.
// It never changes how bytes are laid out in storage.
type ByteOrder uint8

const (
	// BigEndian puts the most significant byte first. It is the default
	// order of every new ByteView.
	BigEndian ByteOrder = iota
	// LittleEndian puts the least significant byte first.
	LittleEndian
)

// NativeOrder returns the byte order of the host.
func NativeOrder() ByteOrder {
	if common.NativeIsLittle() {
		return LittleEndian
	}
	return BigEndian
}

// ParseByteOrder accepts "big", "little" or "native" (case-insensitive).
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "big-endian", "be":
		return BigEndian, nil
	case "little", "little-endian", "le":
		return LittleEndian, nil
	case "native":
		return NativeOrder(), nil
	default:
		return BigEndian, fmt.Errorf("unknown byte order %q", s)
	}
}

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LITTLE_ENDIAN"
	}
	return "BIG_ENDIAN"
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
