package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tedit/pkg/input"
	"tedit/pkg/screen"
	"tedit/pkg/term"
)

// scriptedKeys replays keys in order, then an error (or a quit, to keep the
// loop bounded).
type scriptedKeys struct {
	keys []input.Key
	err  error
	pos  int
}

func (s *scriptedKeys) ReadKey() (input.Key, error) {
	if s.pos >= len(s.keys) {
		if s.err != nil {
			return input.Key{}, s.err
		}
		return input.Key{Kind: input.Control, Ch: quitKey}, nil
	}
	k := s.keys[s.pos]
	s.pos++
	return k, nil
}

func newTestApp(keys *scriptedKeys, geo term.Geometry) (*Application, *bytes.Buffer) {
	var out bytes.Buffer
	renderer := screen.NewRenderer(&out, "test")
	return NewApplication(geo, renderer, keys, &out), &out
}

func TestApplication_QuitLeavesCleanScreen(t *testing.T) {
	a, out := newTestApp(&scriptedKeys{}, term.Geometry{Rows: 3, Cols: 10})

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil on quit", err)
	}

	if !strings.HasSuffix(out.String(), screen.ClearScreen+screen.CursorHome) {
		t.Errorf("Run() output does not end with clear-screen and home: %q", out.String())
	}
}

func TestApplication_RendersBeforeEachKey(t *testing.T) {
	keys := &scriptedKeys{keys: []input.Key{
		{Kind: input.ArrowRight},
		{Kind: input.ArrowDown},
	}}
	a, _ := newTestApp(keys, term.Geometry{Rows: 3, Cols: 10})

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Two arrows plus the quit key: one render per decoded key.
	gotKeys, frames, bytesWritten, _ := a.GetStats()
	if gotKeys != 3 {
		t.Errorf("GetStats() keys = %d, want 3", gotKeys)
	}
	if frames != 3 {
		t.Errorf("GetStats() frames = %d, want 3", frames)
	}
	if bytesWritten == 0 {
		t.Error("GetStats() bytes = 0, want > 0")
	}
}

func TestApplication_ArrowsMoveCursor(t *testing.T) {
	keys := &scriptedKeys{keys: []input.Key{
		{Kind: input.ArrowRight},
		{Kind: input.ArrowRight},
		{Kind: input.ArrowDown},
		{Kind: input.ArrowLeft},
	}}
	a, _ := newTestApp(keys, term.Geometry{Rows: 3, Cols: 10})

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := screen.Cursor{Row: 1, Col: 1}
	if got := a.Cursor(); got != want {
		t.Errorf("Cursor() after moves = %+v, want %+v", got, want)
	}
}

func TestApplication_UnboundKeysAreNoOps(t *testing.T) {
	keys := &scriptedKeys{keys: []input.Key{
		{Kind: input.Printable, Ch: 'x'},
		{Kind: input.Escape},
		{Kind: input.Control, Ch: 0x01},
	}}
	a, _ := newTestApp(keys, term.Geometry{Rows: 3, Cols: 10})

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := a.Cursor(); got != (screen.Cursor{}) {
		t.Errorf("Cursor() moved by unbound keys: %+v", got)
	}
}

func TestApplication_FatalReadErrorCleansScreen(t *testing.T) {
	readErr := errors.New("tty gone")
	a, out := newTestApp(&scriptedKeys{err: readErr}, term.Geometry{Rows: 3, Cols: 10})

	err := a.Run()
	if !errors.Is(err, readErr) {
		t.Fatalf("Run() error = %v, want %v", err, readErr)
	}

	if !strings.HasSuffix(out.String(), screen.ClearScreen+screen.CursorHome) {
		t.Errorf("Run() error path did not clear the screen: %q", out.String())
	}
}
