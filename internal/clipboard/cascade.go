// Package clipboard places text on the system clipboard through an ordered
// cascade of backends: the Wayland CLI when a Wayland session is detected,
// then the X11 CLIs (also tried under XWayland), then any OS-native tools,
// and as a last resort an in-process clipboard library. The first backend
// whose write succeeds, and whose read-back (where one exists) does not
// prove the clipboard empty, wins; nothing after it is touched. Individual
// backend failures are logged and skipped, never fatal; only exhausting the
// entire cascade surfaces an error to the caller.
package clipboard

import (
	"fmt"
	"log/slog"
	"os/exec"
)

// Cascade drives the ordered backend attempts for one transmission.
// The zero value is not usable; construct with New.
type Cascade struct {
	env        Environment
	candidates []Candidate
	run        runner
	lookPath   func(string) (string, error)
	fallback   func(text string) error
}

// New probes the display environment and returns a Cascade ready to
// transmit.
func New() *Cascade {
	return &Cascade{
		env:        Probe(),
		candidates: Candidates(),
		run:        execRunner{},
		lookPath:   exec.LookPath,
		fallback:   libraryWrite,
	}
}

// Env returns the display environment the cascade was built against.
func (c *Cascade) Env() Environment { return c.env }

// Transmit writes text to the system clipboard.
//
// Candidates are tried strictly in order, one at a time. A candidate that is
// inapplicable to the probed environment or whose binary is not on PATH is
// skipped silently; one whose write fails is logged and skipped. A write
// whose read-back proves the clipboard empty is not trusted and the cascade
// continues; an inconclusive read-back (reader missing or erroring) counts
// as success. When every candidate is exhausted the in-process library is
// attempted, and if that fails too the returned error carries the library's
// failure as the most recent one observed.
func (c *Cascade) Transmit(text string) error {
	for _, cand := range c.candidates {
		if !cand.Applies(c.env) {
			continue
		}
		if _, err := c.lookPath(cand.Tool); err != nil {
			continue
		}
		if err := c.run.run(cand.Tool, cand.WriteArgs, []byte(text)); err != nil {
			slog.Warn("clipboard write failed", "tool", cand.Tool, "err", err)
			continue
		}
		if c.verify(cand) == verifyEmpty {
			slog.Warn("clipboard write reported success but read back empty",
				"tool", cand.Tool)
			continue
		}
		return nil
	}

	if err := c.fallback(text); err != nil {
		return fmt.Errorf("all clipboard backends failed; last error: %w", err)
	}
	return nil
}
