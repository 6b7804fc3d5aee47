//go:build linux

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Default read timeout in tenths of a second (VTIME). One decisecond is long
// enough for the remaining bytes of an escape sequence to arrive, and short
// enough that a lone Escape press resolves promptly.
const DefaultEscapeWait = 1

// Session holds the controlling terminal in raw mode. It captures the
// original attributes when opened and must restore them exactly once before
// the process exits, on every exit path. Only this type mutates terminal
// driver state.
type Session struct {
	in   *os.File
	out  *os.File
	orig *unix.Termios
}

// Open captures the current terminal attributes of in, then installs raw
// attributes derived from that baseline: no echo, no canonical buffering, no
// signal keys, no flow control, no output post-processing, 8-bit characters,
// and a bounded read timeout (VMIN=0, VTIME=escapeWait deciseconds).
//
// The caller must arrange for Restore to run on every exit path, typically
// with defer immediately after a successful Open.
func Open(in, out *os.File, escapeWait int) (*Session, error) {
	if escapeWait < 1 || escapeWait > 10 {
		escapeWait = DefaultEscapeWait
	}

	orig, err := unix.IoctlGetTermios(int(in.Fd()), unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("%w: get attributes: %v", ErrTerminalControl, err)
	}

	raw := makeRaw(*orig, uint8(escapeWait))
	if err := unix.IoctlSetTermios(int(in.Fd()), unix.TCSETSF, &raw); err != nil {
		return nil, fmt.Errorf("%w: set raw attributes: %v", ErrTerminalControl, err)
	}

	return &Session{in: in, out: out, orig: orig}, nil
}

// makeRaw derives raw-mode attributes from the captured baseline. The
// baseline itself is never modified after capture.
func makeRaw(t unix.Termios, escapeWait uint8) unix.Termios {
	// Input: no break signal, no CR->LF translation, no parity checking,
	// no 8th-bit stripping, no software flow control.
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output: no post-processing ("\n" stays "\n").
	t.Oflag &^= unix.OPOST
	// Local: no echo, no line buffering, no signal keys, no extended input.
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// 8-bit character size.
	t.Cflag |= unix.CS8
	// read() returns after one byte, or after escapeWait deciseconds with
	// zero bytes. The zero-byte outcome is normal polling, not an error.
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = escapeWait
	return t
}

// Restore reinstalls the attributes captured by Open. It is idempotent:
// only the first call touches the terminal.
func (s *Session) Restore() error {
	if s.orig == nil {
		return nil
	}
	orig := s.orig
	s.orig = nil
	if err := unix.IoctlSetTermios(int(s.in.Fd()), unix.TCSETSF, orig); err != nil {
		return fmt.Errorf("%w: restore attributes: %v", ErrTerminalControl, err)
	}
	return nil
}

// ReadByte reads one byte from the terminal. ok is false when the read timed
// out with no data, which is the expected polling outcome in raw mode. A
// non-nil error is a genuine read failure.
func (s *Session) ReadByte() (b byte, ok bool, err error) {
	var buf [1]byte
	for {
		n, err := unix.Read(int(s.in.Fd()), buf[:])
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, false, err
		}
		if n == 0 {
			return 0, false, nil
		}
		return buf[0], true, nil
	}
}

// Write writes p to the terminal output device.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
