package bufview

import "errors"

var (
	// ErrUnderflow is returned by relative get/put when the window has fewer
	// units left than the access needs.
	ErrUnderflow = errors.New("buffer underflow")
	// ErrIndexOutOfRange is returned by absolute access outside [0, limit),
	// by cursor setters outside their bounds and by out-of-range sub-ranges.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrReadOnly is returned by every mutating call on a read-only view.
	ErrReadOnly = errors.New("read-only buffer")
	// ErrNoMark is returned by Reset when no mark is set.
	ErrNoMark = errors.New("mark not set")
	// ErrInvalidSize is returned when allocating a negative number of bytes.
	ErrInvalidSize = errors.New("invalid size")
	// ErrNoArray is returned by Array when the view cannot expose its bytes
	// as a native slice of its element type.
	ErrNoArray = errors.New("no accessible backing array")
)
