// Package packed compresses the remaining window of a ByteView with zstd.
//
// A packed frame is the uvarint length of the raw window followed by a
// single zstd frame:
//
//	[uvarint rawLen][zstd frame]
//
// Pack and Unpack consume the source window the way a bulk get does and
// return a fresh read-write view positioned at 0.
package packed

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/bufview"
	"github.com/rawbytedev/bufview/internal/common"
	"github.com/rawbytedev/bufview/internal/logging"
)

// ErrCorruptFrame is returned by Unpack when the window is not a valid frame.
var ErrCorruptFrame = errors.New("packed: corrupt frame")

// DefaultMaxSize bounds the raw length Unpack accepts.
const DefaultMaxSize = 64 << 20

type options struct {
	level   zstd.EncoderLevel
	maxSize uint64
}

// Option configures a Codec.
type Option func(*options)

// WithLevel sets the zstd encoder level.
func WithLevel(l zstd.EncoderLevel) Option {
	return func(o *options) { o.level = l }
}

// WithMaxSize caps the raw length accepted by Unpack.
func WithMaxSize(n uint64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// ParseLevel maps fastest, default, better or best to a zstd level.
func ParseLevel(s string) (zstd.EncoderLevel, error) {
	ok, l := zstd.EncoderLevelFromString(s)
	if !ok {
		return 0, fmt.Errorf("packed: unknown level %q", s)
	}
	return l, nil
}

// Codec packs and unpacks view windows. A Codec is not safe for concurrent
// use because the views it reads are not.
type Codec struct {
	enc  *zstd.Encoder
	dec  *zstd.Decoder
	opts options
}

// NewCodec builds a codec. The default level is zstd.SpeedBetterCompression.
func NewCodec(opts ...Option) (*Codec, error) {
	o := options{level: zstd.SpeedBetterCompression, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(o.level),
		zstd.WithEncoderConcurrency(1), zstd.WithZeroFrames(true))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(o.maxSize))
	if err != nil {
		enc.Close()
		return nil, err
	}
	return &Codec{enc: enc, dec: dec, opts: o}, nil
}

// Pack compresses v's [position, limit) window into a new view holding one
// frame. v's position moves to its limit.
func (c *Codec) Pack(v *bufview.ByteView) (*bufview.ByteView, error) {
	raw := window(v)
	out := common.WriteVarUint(make([]byte, 0, len(raw)/2+maxPrefix), uint64(len(raw)))
	out = c.enc.EncodeAll(raw, out)
	logging.WithView(v).Debugf("packed %d bytes into %d (%s)", len(raw), len(out), c.opts.level)
	if err := v.SetPosition(v.Limit()); err != nil {
		return nil, err
	}
	return bufview.Wrap(out), nil
}

// Unpack decodes the frame held in v's [position, limit) window. On error
// v is left untouched.
func (c *Codec) Unpack(v *bufview.ByteView) (*bufview.ByteView, error) {
	frame := window(v)
	n, k := common.ReadVarUint(frame)
	if k == 0 {
		return nil, fmt.Errorf("%w: missing length prefix", ErrCorruptFrame)
	}
	if n > c.opts.maxSize {
		return nil, fmt.Errorf("%w: raw length %d exceeds %d", ErrCorruptFrame, n, c.opts.maxSize)
	}
	raw, err := c.dec.DecodeAll(frame[k:], make([]byte, 0, n))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}
	if uint64(len(raw)) != n {
		return nil, fmt.Errorf("%w: decoded %d bytes, header says %d", ErrCorruptFrame, len(raw), n)
	}
	logging.WithView(v).Debugf("unpacked %d bytes from %d", len(raw), len(frame))
	if err := v.SetPosition(v.Limit()); err != nil {
		return nil, err
	}
	return bufview.Wrap(raw), nil
}

// Close releases the encoder and decoder.
func (c *Codec) Close() error {
	c.dec.Close()
	return c.enc.Close()
}

// maxPrefix is the longest uvarint length prefix.
const maxPrefix = 10

// window returns the bytes in [position, limit). Read-only views yield a copy.
func window(v *bufview.ByteView) []byte {
	return bufview.Unwrap(v.Slice())
}
