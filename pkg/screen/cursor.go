package screen

import "tedit/pkg/term"

// Direction is one of the four cursor motions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor is the current position in 0-indexed screen cells. Positions are
// always within [0, rows-1] x [0, cols-1] for the geometry passed to Move;
// the wrap rules below make an out-of-bounds position unconstructible.
type Cursor struct {
	Row int
	Col int
}

// Move applies one bounded motion:
//
//   - Left at column 0 relocates to the last column of the previous row,
//     clamped at row 0 (no wrap past the top).
//   - Right at the last column relocates to column 0 of the next row,
//     clamped at the last row (no wrap past the bottom).
//   - Up at row 0 wraps to the last row, keeping the column.
//   - Down at the last row wraps to row 0, keeping the column.
//
// Horizontal wrap changes the row by at most one; vertical wrap never
// changes the column.
func (c *Cursor) Move(d Direction, g term.Geometry) {
	switch d {
	case Up:
		if c.Row == 0 {
			c.Row = g.Rows - 1
		} else {
			c.Row--
		}
	case Down:
		if c.Row == g.Rows-1 {
			c.Row = 0
		} else {
			c.Row++
		}
	case Left:
		if c.Col == 0 {
			c.Col = g.Cols - 1
			if c.Row > 0 {
				c.Row--
			}
		} else {
			c.Col--
		}
	case Right:
		if c.Col == g.Cols-1 {
			c.Col = 0
			if c.Row < g.Rows-1 {
				c.Row++
			}
		} else {
			c.Col++
		}
	}
}
