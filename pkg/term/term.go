// Package term controls the terminal device: it owns the raw-mode session,
// restores the original attributes on shutdown, and probes the usable screen
// geometry. It is the only package allowed to mutate terminal driver state.
package term

import (
	"errors"
	"fmt"
)

// Error kinds for terminal control failures. Callers distinguish them with
// errors.Is; all of them are fatal to the application.
var (
	// ErrTerminalControl indicates a failure to get or set terminal attributes.
	ErrTerminalControl = errors.New("terminal control failure")

	// ErrGeometry indicates that no probing method yielded a valid screen size.
	ErrGeometry = errors.New("cannot determine screen geometry")
)

// Geometry is the terminal's visible size in character cells. It is resolved
// once at startup and treated as immutable afterwards; live resize is not
// handled.
type Geometry struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Validate checks that the geometry describes a usable screen.
func (g Geometry) Validate() error {
	if g.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrGeometry, g.Rows)
	}
	if g.Cols <= 0 {
		return fmt.Errorf("%w: cols must be positive, got %d", ErrGeometry, g.Cols)
	}
	return nil
}

// String returns the geometry as "RxC".
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}
