package screen

import (
	"bytes"
	"testing"
)

func TestFrame_AppendAndDrain(t *testing.T) {
	f := NewFrame(0)

	f.Append([]byte("A"))
	f.AppendString("BC")

	if f.Len() != 3 {
		t.Errorf("Frame.Len() = %d, want 3", f.Len())
	}

	got := f.Drain()
	if !bytes.Equal(got, []byte("ABC")) {
		t.Errorf("Frame.Drain() = %q, want %q", got, "ABC")
	}

	// An untouched buffer drains empty.
	if got := f.Drain(); len(got) != 0 {
		t.Errorf("second Drain() = %q, want empty", got)
	}
}

func TestFrame_ReuseAfterDrain(t *testing.T) {
	f := NewFrame(0)
	f.AppendString("first")
	f.Drain()

	f.AppendString("second")
	if got := f.Drain(); string(got) != "second" {
		t.Errorf("Drain() after reuse = %q, want %q", got, "second")
	}
}

func TestFrame_LimitDropsWholeAppend(t *testing.T) {
	f := NewFrame(4)

	f.AppendString("abc")
	f.AppendString("de") // would exceed the limit, dropped whole
	f.Append([]byte("f"))

	if f.Dropped() != 1 {
		t.Errorf("Frame.Dropped() = %d, want 1", f.Dropped())
	}
	if got := f.Drain(); string(got) != "abcf" {
		t.Errorf("Drain() = %q, want %q (prior content must survive a drop)", got, "abcf")
	}
}
