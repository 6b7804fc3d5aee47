// Package screen composes full-screen frames for a VT100-compatible
// terminal. Each frame is assembled completely in an append buffer and
// written in a single atomic write, so the terminal never observes a torn
// update.
package screen

// VT100/ANSI escape sequences produced by the renderer.
const (
	ClearScreen = "\x1b[2J"   // erase entire screen
	ClearLine   = "\x1b[K"    // erase from cursor to end of line
	CursorHome  = "\x1b[H"    // move cursor to top-left (1,1)
	HideCursor  = "\x1b[?25l" // make cursor invisible
	ShowCursor  = "\x1b[?25h" // make cursor visible

	// MoveCursorFormat positions the cursor at 1-indexed row;col.
	MoveCursorFormat = "\x1b[%d;%dH"
)
