// Package bufview provides typed, cursor-based views over shared byte storage.
//
// A Storage is a fixed block of bytes. A ByteView walks a region of it with
// a position, a limit and an optional mark, and reads multi-byte values in
// a configurable byte order. WordView[T] presents the same bytes as int16 or
// float32 elements. Slice, Duplicate, AsReadOnly and the Derive functions
// all share storage with their source, so a write through one view is seen
// by every other view of those bytes.
//
//	v, _ := bufview.Allocate(8)
//	_ = v.PutFloat32(1.5)
//	_ = v.PutFloat32(-2)
//	v.Flip()
//	f := v.AsFloat32View() // 2 elements, big-endian
//
// Errors are sentinel values (ErrUnderflow, ErrIndexOutOfRange, ErrReadOnly,
// ErrNoMark, ErrInvalidSize, ErrNoArray) wrapped with context; test them
// with errors.Is. A failed call leaves the cursor and the bytes unchanged.
//
// Nothing in this package synchronizes. Views sharing storage must not be
// used from several goroutines without external locking.
package bufview
