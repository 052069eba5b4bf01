package cstring

import (
	"fmt"
	"strings"
)

// Show renders s for logs, control bytes are escaped as \xNN.
func (s ByteString) Show() string {
	var sb strings.Builder
	for _, ch := range s.data {
		if ch >= ' ' && ch < maxASCII {
			sb.WriteByte(ch)
			continue
		}
		fmt.Fprintf(&sb, "\\x%02x", ch)
	}
	return sb.String()
}
