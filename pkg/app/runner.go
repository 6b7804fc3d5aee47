package app

import (
	"fmt"
	"os"
	"time"

	xterm "golang.org/x/term"

	"tedit/pkg/config"
	"tedit/pkg/input"
	"tedit/pkg/log"
	"tedit/pkg/screen"
	"tedit/pkg/term"
)

// Runner owns the terminal lifecycle around one Application run: raw-mode
// acquisition, geometry probing, guaranteed restoration, and the session
// summary.
type Runner struct {
	cfg config.Config
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run starts the editor and blocks until quit or a fatal error. Terminal
// attributes are restored on every way out, including error paths.
func (r *Runner) Run() error {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	sess, err := term.Open(os.Stdin, os.Stdout, r.cfg.EscapeWait)
	if err != nil {
		return err
	}
	// Restore is idempotent; the defer covers panics and early returns,
	// the explicit call below lets the summary print on a sane terminal.
	defer sess.Restore()

	geo, err := sess.ProbeSize()
	if err != nil {
		return err
	}
	log.Infof("session started, geometry %s", geo)

	application := NewApplication(
		geo,
		screen.NewRenderer(sess, r.cfg.Title),
		input.NewDecoder(sess),
		sess,
	)

	runErr := application.Run()
	if restoreErr := sess.Restore(); restoreErr != nil && runErr == nil {
		runErr = restoreErr
	}
	if runErr != nil {
		return runErr
	}

	r.printSummary(application)
	return nil
}

// printSummary reports session statistics after a normal quit.
func (r *Runner) printSummary(a *Application) {
	keys, frames, bytes, duration := a.GetStats()

	fmt.Printf("=== Session Summary ===\n")
	fmt.Printf("Duration: %v\n", duration.Round(time.Millisecond))
	fmt.Printf("Keys decoded: %d\n", keys)
	fmt.Printf("Frames rendered: %d\n", frames)
	fmt.Printf("Bytes written: %d\n", bytes)

	log.Infof("session ended after %v, %d keys, %d frames, %d bytes",
		duration, keys, frames, bytes)
}
