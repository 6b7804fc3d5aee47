// Package input decodes the raw terminal byte stream into logical keys,
// resolving the ambiguity between a lone Escape press and the start of a
// multi-byte escape sequence with the raw-mode read timeout.
package input

import "fmt"

// Kind classifies a decoded key.
type Kind int

const (
	Printable Kind = iota // a visible character byte
	Control               // a control byte (< 0x20 or DEL)
	Escape                // a lone Escape press or an unrecognized sequence
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Printable:
		return "printable"
	case Control:
		return "control"
	case Escape:
		return "escape"
	case ArrowUp:
		return "arrow-up"
	case ArrowDown:
		return "arrow-down"
	case ArrowLeft:
		return "arrow-left"
	case ArrowRight:
		return "arrow-right"
	default:
		return "unknown"
	}
}

// Key is one decoded logical key. It is an immutable value; Ch carries the
// original byte for Printable and Control kinds and is zero otherwise.
type Key struct {
	Kind Kind
	Ch   byte
}

// String formats the key for diagnostics.
func (k Key) String() string {
	switch k.Kind {
	case Printable:
		return fmt.Sprintf("%s(%q)", k.Kind, k.Ch)
	case Control:
		return fmt.Sprintf("%s(0x%02x)", k.Kind, k.Ch)
	default:
		return k.Kind.String()
	}
}
