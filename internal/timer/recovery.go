package timer

import (
	"time"
)

// DefaultStaleAfter is how old an open session may be before startup treats
// it as abandoned rather than interrupted.
const DefaultStaleAfter = 24 * time.Hour

// StaleSuffix is appended to the note of sessions closed as abandoned.
const StaleSuffix = " [Auto-closed: Stale]"

// RecoverOpen closes a session left open by a previous run. A session younger
// than staleAfter is closed now; an older one is closed at its own start and
// tagged with StaleSuffix. It reports whether anything was closed.
func (c *Controller) RecoverOpen(staleAfter time.Duration) (bool, error) {
	open, ok := c.log.OpenSession()
	if !ok {
		return false, nil
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}

	now := c.clock()
	if now.Sub(open.Start) > staleAfter {
		c.log.Stop(open.Start)
		if err := c.log.SetNote(open.ID, open.Note+StaleSuffix); err != nil {
			return true, err
		}
		c.logger.Warn("closed stale session", "session", open.ID, "start", open.Start)
	} else {
		c.log.Stop(now)
		c.logger.Info("closed interrupted session", "session", open.ID, "start", open.Start)
	}
	return true, c.persist("recover")
}
