//go:build linux

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Escape sequences used by the fallback probe. The first clamps the cursor
// to the farthest reachable bottom-right cell, the second asks the terminal
// to report where the cursor ended up.
const (
	probeBottomRight   = "\x1b[999C\x1b[999B"
	probeCursorRequest = "\x1b[6n"
)

// reportBufSize bounds the cursor-report read; a well-formed report is at
// most "ESC [ nnn ; nnn R".
const reportBufSize = 32

// ProbeSize resolves the usable screen geometry. The primary method asks the
// terminal driver directly; when that is unavailable or reports zero columns,
// it falls back to positioning the cursor at the bottom-right corner and
// parsing the terminal's cursor-position report.
func (s *Session) ProbeSize() (Geometry, error) {
	ws, err := unix.IoctlGetWinsize(int(s.out.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 {
		g := Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}
		if err := g.Validate(); err != nil {
			return Geometry{}, err
		}
		return g, nil
	}
	return s.probeCursorPosition()
}

// probeCursorPosition is the escape-sequence fallback. It is the
// correctness-critical path on terminals without a working size ioctl.
func (s *Session) probeCursorPosition() (Geometry, error) {
	if _, err := s.Write([]byte(probeBottomRight)); err != nil {
		return Geometry{}, fmt.Errorf("%w: position cursor: %v", ErrGeometry, err)
	}
	if _, err := s.Write([]byte(probeCursorRequest)); err != nil {
		return Geometry{}, fmt.Errorf("%w: request cursor report: %v", ErrGeometry, err)
	}

	// Read the report one byte at a time into a bounded buffer, stopping at
	// the terminator. A timeout mid-report leaves a short buffer that the
	// parser will reject.
	buf := make([]byte, 0, reportBufSize)
	for len(buf) < reportBufSize {
		b, ok, err := s.ReadByte()
		if err != nil {
			return Geometry{}, fmt.Errorf("%w: read cursor report: %v", ErrGeometry, err)
		}
		if !ok {
			break
		}
		if b == 'R' {
			break
		}
		buf = append(buf, b)
	}

	return parseCursorReport(buf)
}
