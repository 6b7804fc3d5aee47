package screen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"tedit/pkg/term"
)

// ErrWrite indicates a failed or short write of a composed frame to the
// terminal.
var ErrWrite = errors.New("frame write failure")

// Renderer composes one full screen update per cycle and hands it to the
// output in a single write.
type Renderer struct {
	out   io.Writer
	title string
	frame *Frame

	bytesWritten int64
	frames       int64
}

// NewRenderer creates a renderer writing to out. The title is shown centered
// on the first row, truncated when the terminal is narrower than the text.
func NewRenderer(out io.Writer, title string) *Renderer {
	return &Renderer{
		out:   out,
		title: title,
		frame: NewFrame(0),
	}
}

// RenderFrame composes and writes one frame for the given geometry and
// cursor position. Composition order is fixed: hide cursor, home, then every
// row as clear-to-end-of-line plus content with "\r\n" between rows, then
// cursor reposition to the 1-indexed cell, then show cursor. The frame is
// fully assembled before anything reaches the terminal.
func (r *Renderer) RenderFrame(g term.Geometry, cur Cursor) error {
	r.frame.AppendString(HideCursor)
	r.frame.AppendString(CursorHome)

	for row := 0; row < g.Rows; row++ {
		r.frame.AppendString(ClearLine)
		r.frame.AppendString(r.rowContent(row, g, cur))
		if row < g.Rows-1 {
			r.frame.AppendString("\r\n")
		}
	}

	r.frame.AppendString(fmt.Sprintf(MoveCursorFormat, cur.Row+1, cur.Col+1))
	r.frame.AppendString(ShowCursor)

	data := r.frame.Drain()
	n, err := r.out.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if n < len(data) {
		return fmt.Errorf("%w: short write, %d of %d bytes", ErrWrite, n, len(data))
	}

	r.bytesWritten += int64(n)
	r.frames++
	return nil
}

// rowContent yields the text for one row: the centered title on row 0, the
// geometry/cursor diagnostic on the last row, nothing elsewhere. On a
// one-row terminal the title and diagnostic share the row.
func (r *Renderer) rowContent(row int, g term.Geometry, cur Cursor) string {
	var content string
	if row == 0 {
		content = centerText(r.title, g.Cols)
	}
	if row == g.Rows-1 {
		content += runewidth.Truncate(diagnostic(g, cur), g.Cols-runewidth.StringWidth(content), "")
	}
	return content
}

// diagnostic describes the resolved geometry and the 1-indexed cursor cell.
func diagnostic(g term.Geometry, cur Cursor) string {
	return fmt.Sprintf("%s  %d,%d", g, cur.Row+1, cur.Col+1)
}

// centerText centers s within width columns, truncating when s is wider.
func centerText(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// Stats reports the number of frames rendered and bytes written so far.
func (r *Renderer) Stats() (frames, bytes int64) {
	return r.frames, r.bytesWritten
}

// Dropped reports how many frame appends were rejected by the buffer limit.
func (r *Renderer) Dropped() int {
	return r.frame.Dropped()
}
