package cstring

type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "unknown"
}

// Compare orders a and b byte by byte, when one is a prefix of the other the
// shorter one is less.
func Compare(a, b []byte) Ordering {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return Less
		} else if a[i] > b[i] {
			return Greater
		}
	}
	switch {
	case len(a) < len(b):
		return Less
	case len(a) > len(b):
		return Greater
	}
	return Equal
}

func (s ByteString) Compare(other ByteString) Ordering {
	return Compare(s.data, other.data)
}

func (s ByteString) Equal(other ByteString) bool {
	return s.Compare(other) == Equal
}

func (s ByteString) NotEqual(other ByteString) bool {
	return s.Compare(other) != Equal
}

func (s ByteString) Less(other ByteString) bool {
	return s.Compare(other) == Less
}

func (s ByteString) LessEqual(other ByteString) bool {
	return s.Compare(other) != Greater
}

func (s ByteString) Greater(other ByteString) bool {
	return s.Compare(other) == Greater
}

func (s ByteString) GreaterEqual(other ByteString) bool {
	return s.Compare(other) != Less
}
