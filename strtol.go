package cstring

import "strconv"

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Strtol reads an optionally signed decimal integer at the cursor, no
// leading space is skipped. On success the cursor stops at the first
// non-digit. A rejected first byte (or a sign not followed by a digit) leaves
// the cursor untouched, an overflow keeps the digits consumed.
func Strtol(c *Cursor) (int32, bool) {
	ch, ok := c.Peek()
	if !ok {
		return 0, false
	}
	switch {
	case isDigit(ch):
	case ch == '+' || ch == '-':
		next, ok := c.peekAt(1)
		if !ok || !isDigit(next) {
			return 0, false
		}
	default:
		return 0, false
	}

	buf := []byte{ch}
	for {
		c.Next()
		ch, ok := c.Peek()
		if !ok || !isDigit(ch) {
			break
		}
		buf = append(buf, ch)
	}

	n, err := strconv.ParseInt(string(buf), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
