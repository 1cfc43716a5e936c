package bufview

import "fmt"

const unsetMark = -1

// cursor is the position/limit/mark state machine shared by every view.
// All values are in units of the owning view's element size.
//
// Invariant: 0 <= mark <= position <= limit <= capacity, or mark == unsetMark.
type cursor struct {
	position int
	limit    int
	capacity int
	mark     int
}

func newCursor(capacity int) cursor {
	return cursor{limit: capacity, capacity: capacity, mark: unsetMark}
}

// Position returns the index of the next relative access.
func (c *cursor) Position() int { return c.position }

// Limit returns the first index not reachable by relative access.
func (c *cursor) Limit() int { return c.limit }

// Capacity returns the fixed number of addressable units.
func (c *cursor) Capacity() int { return c.capacity }

// Remaining returns limit - position.
func (c *cursor) Remaining() int { return c.limit - c.position }

// HasRemaining reports whether position < limit.
func (c *cursor) HasRemaining() bool { return c.position < c.limit }

// SetPosition moves the position to p in [0, limit]. A mark above p is discarded.
func (c *cursor) SetPosition(p int) error {
	if p < 0 || p > c.limit {
		return fmt.Errorf("%w: position %d outside [0, %d]", ErrIndexOutOfRange, p, c.limit)
	}
	c.position = p
	if c.mark > p {
		c.mark = unsetMark
	}
	return nil
}

// SetLimit moves the limit to l in [0, capacity]. The position is pulled
// back to l if it lies beyond it, and a mark above the position is discarded.
func (c *cursor) SetLimit(l int) error {
	if l < 0 || l > c.capacity {
		return fmt.Errorf("%w: limit %d outside [0, %d]", ErrIndexOutOfRange, l, c.capacity)
	}
	c.limit = l
	if c.position > l {
		c.position = l
	}
	if c.mark > c.position {
		c.mark = unsetMark
	}
	return nil
}

// Flip sets limit to the current position and rewinds, switching from
// writing to reading what was written.
func (c *cursor) Flip() {
	c.limit = c.position
	c.position = 0
	c.mark = unsetMark
}

// Rewind sets position to 0 and discards the mark.
func (c *cursor) Rewind() {
	c.position = 0
	c.mark = unsetMark
}

// Clear restores the initial state: position 0, limit at capacity, no mark.
// Contents are left as they are.
func (c *cursor) Clear() {
	c.position = 0
	c.limit = c.capacity
	c.mark = unsetMark
}

// Mark records the current position.
func (c *cursor) Mark() { c.mark = c.position }

// Reset moves the position back to the mark.
func (c *cursor) Reset() error {
	if c.mark == unsetMark {
		return ErrNoMark
	}
	c.position = c.mark
	return nil
}

// next reserves n units at the position for a relative access and advances
// past them. Nothing changes on failure.
func (c *cursor) next(n int) (int, error) {
	if c.limit-c.position < n {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrUnderflow, n, c.limit-c.position)
	}
	p := c.position
	c.position += n
	return p, nil
}

// checkIndex validates an absolute access of n units starting at i.
func (c *cursor) checkIndex(i, n int) error {
	if i < 0 || n > c.limit-i {
		return fmt.Errorf("%w: index %d (width %d) outside [0, %d)", ErrIndexOutOfRange, i, n, c.limit)
	}
	return nil
}

// compacted moves the cursor to where it lands after the unread window
// has been copied to the front.
func (c *cursor) compacted() {
	c.position = c.limit - c.position
	c.limit = c.capacity
	c.mark = unsetMark
}

func (c *cursor) String() string {
	return fmt.Sprintf("[pos=%d lim=%d cap=%d]", c.position, c.limit, c.capacity)
}
