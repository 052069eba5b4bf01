package cstring

import "testing"

func TestCursor(t *testing.T) {
	s := MustNew("ab")
	c := NewCursor(s)
	if err := s.Set(0, 'x'); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ch, ok := c.Peek(); !ok || ch != 'a' {
		t.Fatalf("Peek = %q, %v, want 'a'", ch, ok)
	}
	if ch, ok := c.Next(); !ok || ch != 'a' {
		t.Fatalf("Next = %q, %v, want 'a'", ch, ok)
	}
	if c.Pos() != 1 || c.Rest().String() != "b" {
		t.Fatalf("pos %d, rest %q", c.Pos(), c.Rest())
	}
	c.Next()
	if !c.Done() {
		t.Fatal("cursor not exhausted")
	}
	if _, ok := c.Next(); ok {
		t.Fatal("Next past the end")
	}
	if c.Pos() != 2 {
		t.Fatalf("pos = %d, want 2", c.Pos())
	}
}
