package term

import (
	"fmt"
	"strconv"
	"strings"
)

// parseCursorReport parses a cursor-position report of the form
// "ESC [ <row> ; <col>" (the trailing 'R' terminator already consumed, but
// tolerated if present). Anything that does not start with the escape
// introducer pair or does not carry exactly two positive integers separated
// by a semicolon is rejected.
func parseCursorReport(buf []byte) (Geometry, error) {
	if len(buf) < 2 || buf[0] != 0x1b || buf[1] != '[' {
		return Geometry{}, fmt.Errorf("%w: cursor report missing escape introducer", ErrGeometry)
	}

	payload := string(buf[2:])
	payload = strings.TrimSuffix(payload, "R")

	row, col, ok := strings.Cut(payload, ";")
	if !ok {
		return Geometry{}, fmt.Errorf("%w: cursor report missing delimiter in %q", ErrGeometry, payload)
	}

	rows, err := strconv.Atoi(row)
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: cursor report row %q: %v", ErrGeometry, row, err)
	}
	cols, err := strconv.Atoi(col)
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: cursor report col %q: %v", ErrGeometry, col, err)
	}

	g := Geometry{Rows: rows, Cols: cols}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}
