// Package app runs the synchronous event loop: render the current state,
// decode one key, dispatch it. There is exactly one input source and one
// output sink, so the loop is single-threaded with no locks; the only
// suspension point is the bounded raw-mode read inside the decoder.
package app

import (
	"io"
	"time"

	"tedit/pkg/input"
	"tedit/pkg/log"
	"tedit/pkg/screen"
	"tedit/pkg/term"
)

// quitKey is control-mapped 'q' (Ctrl-Q).
const quitKey = 'q' & 0x1f

// KeyReader yields one decoded key per call, blocking until one resolves.
type KeyReader interface {
	ReadKey() (input.Key, error)
}

// Application owns the editor state for one session: the resolved geometry,
// the cursor, and the render/input endpoints. It is passed explicitly to
// every operation instead of living in package globals.
type Application struct {
	geo      term.Geometry
	cursor   screen.Cursor
	renderer *screen.Renderer
	keys     KeyReader
	cleanup  io.Writer

	keysRead int64
	started  time.Time
}

// NewApplication wires an application. cleanup receives the clear-screen and
// home sequences on every way out of the loop so the terminal is left sane;
// it is normally the same writer the renderer uses.
func NewApplication(geo term.Geometry, renderer *screen.Renderer, keys KeyReader, cleanup io.Writer) *Application {
	return &Application{
		geo:      geo,
		renderer: renderer,
		keys:     keys,
		cleanup:  cleanup,
	}
}

// Run executes the event loop until the quit key or a fatal error. Exactly
// one key is decoded and dispatched per cycle, and a render always precedes
// the next key read. The returned error is nil only for a user-initiated
// quit.
func (a *Application) Run() error {
	a.started = time.Now()

	for {
		if err := a.renderer.RenderFrame(a.geo, a.cursor); err != nil {
			a.clearScreen()
			return err
		}

		key, err := a.keys.ReadKey()
		if err != nil {
			a.clearScreen()
			return err
		}
		a.keysRead++

		if a.dispatch(key) {
			a.clearScreen()
			return nil
		}
	}
}

// dispatch applies one key and reports whether the application should quit.
// Keys without a binding are reserved for future editing commands.
func (a *Application) dispatch(key input.Key) (quit bool) {
	switch key.Kind {
	case input.ArrowUp:
		a.cursor.Move(screen.Up, a.geo)
	case input.ArrowDown:
		a.cursor.Move(screen.Down, a.geo)
	case input.ArrowLeft:
		a.cursor.Move(screen.Left, a.geo)
	case input.ArrowRight:
		a.cursor.Move(screen.Right, a.geo)
	case input.Control:
		if key.Ch == quitKey {
			log.Infof("quit requested")
			return true
		}
		log.Debugf("unbound key %s", key)
	default:
		log.Debugf("unbound key %s", key)
	}
	return false
}

// clearScreen leaves the terminal blank with the cursor at home. Best
// effort: this runs on error paths where the write may fail too.
func (a *Application) clearScreen() {
	if a.cleanup == nil {
		return
	}
	_, _ = io.WriteString(a.cleanup, screen.ClearScreen+screen.CursorHome)
	if dropped := a.renderer.Dropped(); dropped > 0 {
		log.Warnf("%d frame appends were dropped by the buffer limit", dropped)
	}
}

// Cursor returns the current cursor position.
func (a *Application) Cursor() screen.Cursor {
	return a.cursor
}

// GetStats reports keys decoded, frames rendered, bytes written, and the
// session duration.
func (a *Application) GetStats() (keys, frames, bytes int64, duration time.Duration) {
	frames, bytes = a.renderer.Stats()
	return a.keysRead, frames, bytes, time.Since(a.started)
}
