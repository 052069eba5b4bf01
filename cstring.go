package cstring

import (
	"errors"
	"fmt"
)

const maxASCII = 0x7f

var (
	ErrNotASCII   = errors.New("not an ascii")
	ErrOutOfRange = errors.New("index out of range")
)

// ByteString owns a buffer of ascii bytes, length is tracked by the slice
// so a zero byte is an ordinary character. Copies of a ByteString may share
// the buffer, every mutator writes to a fresh one.
type ByteString struct {
	data []byte
}

func New(str string) (ByteString, error) {
	if err := checkASCII(str); err != nil {
		return ByteString{}, err
	}
	return ByteString{data: []byte(str)}, nil
}

func MustNew(str string) ByteString {
	s, err := New(str)
	if err != nil {
		panic(err)
	}
	return s
}

func FromBytes(b []byte) (ByteString, error) {
	for i, ch := range b {
		if ch > maxASCII {
			return ByteString{}, fmt.Errorf("%w: byte 0x%02x at %d", ErrNotASCII, ch, i)
		}
	}
	return ByteString{data: dup(b)}, nil
}

func checkASCII(str string) error {
	for i := 0; i < len(str); i++ {
		if str[i] > maxASCII {
			return fmt.Errorf("%w: byte 0x%02x at %d", ErrNotASCII, str[i], i)
		}
	}
	return nil
}

func (s ByteString) Len() int {
	return len(s.data)
}

func (s ByteString) Clone() ByteString {
	return ByteString{data: dup(s.data)}
}

func (s ByteString) String() string {
	return string(s.data)
}

// Bytes returns a copy, the buffer itself is never handed out.
func (s ByteString) Bytes() []byte {
	return dup(s.data)
}

// AppendString appends nothing when str contains a non-ascii byte.
func (s *ByteString) AppendString(str string) error {
	if err := checkASCII(str); err != nil {
		return err
	}
	s.data = grow(s.data, []byte(str))
	return nil
}

func (s *ByteString) Append(other ByteString) {
	s.data = grow(s.data, other.data)
}

func (s ByteString) Concat(str string) (ByteString, error) {
	ret := s.Clone()
	if err := ret.AppendString(str); err != nil {
		return ByteString{}, err
	}
	return ret, nil
}

func (s ByteString) At(i int) (byte, error) {
	if i < 0 || i >= len(s.data) {
		return 0, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, len(s.data))
	}
	return s.data[i], nil
}

func (s *ByteString) Set(i int, ch byte) error {
	if i < 0 || i >= len(s.data) {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, len(s.data))
	}
	if ch > maxASCII {
		return fmt.Errorf("%w: byte 0x%02x", ErrNotASCII, ch)
	}
	data := dup(s.data)
	data[i] = ch
	s.data = data
	return nil
}

// Slice returns the bytes in [begin, end) as text.
func (s ByteString) Slice(begin, end int) (string, error) {
	if begin < 0 || end > len(s.data) || begin > end {
		return "", fmt.Errorf("%w: range [%d, %d), len %d", ErrOutOfRange, begin, end, len(s.data))
	}
	return string(s.data[begin:end]), nil
}

func dup(data []byte) []byte {
	ret := make([]byte, len(data))
	copy(ret, data)
	return ret
}

func grow(data, extra []byte) []byte {
	ret := make([]byte, len(data), len(data)+len(extra))
	copy(ret, data)
	return append(ret, extra...)
}
