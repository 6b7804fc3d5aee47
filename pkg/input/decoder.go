package input

import (
	"errors"
	"fmt"
)

// ErrRead indicates a genuine read failure on the input device, as opposed
// to the expected zero-byte timeout outcome of a raw-mode read.
var ErrRead = errors.New("input read failure")

const (
	escByte = 0x1b
	delByte = 0x7f
)

// ByteSource delivers single bytes from the terminal. ok is false when no
// byte arrived within the raw-mode read timeout; that outcome is normal
// polling control flow, not an error.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder converts the raw byte stream into logical keys.
type Decoder struct {
	src ByteSource
}

// NewDecoder creates a decoder over the given byte source.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadKey blocks until one logical key resolves. Timeouts while waiting for
// the first byte are retried; timeouts after an escape introducer resolve
// the pending sequence instead.
//
// Decoding: a non-escape byte classifies directly as Printable or Control.
// An escape introducer is followed by up to two timeout-bounded reads; if
// either times out the key is a lone Escape. "ESC [ A/B/C/D" resolves to the
// corresponding arrow key; any other two-byte tail is deliberately downgraded
// to Escape rather than reported as an error. No sequence longer than three
// bytes is recognized.
func (d *Decoder) ReadKey() (Key, error) {
	var b byte
	for {
		var ok bool
		var err error
		b, ok, err = d.src.ReadByte()
		if err != nil {
			return Key{}, fmt.Errorf("%w: %v", ErrRead, err)
		}
		if ok {
			break
		}
	}

	if b != escByte {
		return classify(b), nil
	}

	// Escape introducer: the next two bytes, if they arrive in time,
	// distinguish an arrow-key report from a standalone Escape press.
	first, ok, err := d.src.ReadByte()
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if !ok {
		return Key{Kind: Escape}, nil
	}

	second, ok, err := d.src.ReadByte()
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if !ok {
		return Key{Kind: Escape}, nil
	}

	if first == '[' {
		switch second {
		case 'A':
			return Key{Kind: ArrowUp}, nil
		case 'B':
			return Key{Kind: ArrowDown}, nil
		case 'C':
			return Key{Kind: ArrowRight}, nil
		case 'D':
			return Key{Kind: ArrowLeft}, nil
		}
	}

	// Unrecognized sequence: downgrade silently to Escape.
	return Key{Kind: Escape}, nil
}

// classify maps a single non-escape byte to its key.
func classify(b byte) Key {
	if b < 0x20 || b == delByte {
		return Key{Kind: Control, Ch: b}
	}
	return Key{Kind: Printable, Ch: b}
}
