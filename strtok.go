package cstring

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/lwch/logging"
)

// Strtok splits text at every delim, the delimiter itself is dropped.
// Unlike strtok(3) empty pieces are kept, so n delimiters always give n+1
// pieces and an empty text gives one empty piece.
func Strtok(text ByteString, delim byte) []ByteString {
	var ret []ByteString
	var tmp []byte
	for _, ch := range text.data {
		if ch != delim {
			tmp = append(tmp, ch)
			continue
		}
		ret = append(ret, piece(tmp))
		tmp = nil
	}
	return append(ret, piece(tmp))
}

// StrtokReader splits everything read from r the same way Strtok does.
func StrtokReader(r io.Reader, delim byte) ([]ByteString, error) {
	rd := bufio.NewReader(r)
	var ret []ByteString
	var tmp []byte
	var readen uint64
	for {
		chunk, err := rd.ReadBytes(delim)
		for _, ch := range chunk {
			if ch > maxASCII {
				return nil, fmt.Errorf("%w: byte 0x%02x at %d", ErrNotASCII, ch, readen)
			}
			readen++
			if ch != delim {
				tmp = append(tmp, ch)
				continue
			}
			ret = append(ret, piece(tmp))
			tmp = nil
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read bytes: %w", err)
		}
	}
	ret = append(ret, piece(tmp))
	logging.Debug("%s readen, %d pieces split by %q", humanize.Bytes(readen), len(ret), delim)
	return ret, nil
}

// piece caps the buffer at its length so an append on one copy never lands
// in memory another copy can see.
func piece(data []byte) ByteString {
	return ByteString{data: data[:len(data):len(data)]}
}
