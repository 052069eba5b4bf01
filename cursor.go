package cstring

// Cursor walks a private copy of a ByteString, consumed bytes are never seen
// again.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(s ByteString) *Cursor {
	return &Cursor{data: dup(s.data)}
}

func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

func (c *Cursor) Next() (byte, bool) {
	ch, ok := c.Peek()
	if ok {
		c.pos++
	}
	return ch, ok
}

func (c *Cursor) Done() bool {
	return c.pos >= len(c.data)
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Rest() ByteString {
	return ByteString{data: dup(c.data[c.pos:])}
}

// peekAt looks n bytes past the current position without moving.
func (c *Cursor) peekAt(n int) (byte, bool) {
	if c.pos+n >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos+n], true
}
