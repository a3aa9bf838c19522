package timer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/faizmokh/masa/internal/logbook"
)

// Saver persists the whole log after each mutation.
type Saver interface {
	Save(ctx context.Context, log *logbook.Log) error
}

// Controller is the Idle/Working/Break state machine. Every mutation of the
// log is followed by a synchronous save; a failed save is reported but the
// in-memory log stays authoritative and the next mutation saves again.
type Controller struct {
	ctx    context.Context
	log    *logbook.Log
	saver  Saver
	clock  func() time.Time
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides time.Now.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New wires a controller around an already loaded log.
func New(ctx context.Context, log *logbook.Log, saver Saver, opts ...Option) *Controller {
	c := &Controller{
		ctx:    ctx,
		log:    log,
		saver:  saver,
		clock:  time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Log exposes the session log for read-only views.
func (c *Controller) Log() *logbook.Log {
	return c.log
}

// Now returns the controller's current time.
func (c *Controller) Now() time.Time {
	return c.clock()
}

// Mode returns the current state.
func (c *Controller) Mode() logbook.Mode {
	return c.log.CurrentMode()
}

// ActiveSession returns the open session or, when idle, the last active one.
func (c *Controller) ActiveSession() (logbook.Session, bool) {
	return c.log.LastActive()
}

// Toggle starts Working from Idle and otherwise switches between Working and
// Break. A switch closes the old session and opens the new one at the same
// instant.
func (c *Controller) Toggle() (logbook.Mode, error) {
	from := c.log.CurrentMode()
	to := from.Other()
	id := c.log.StartSession(to, c.clock())
	c.logger.Info("toggle", "from", from, "to", to, "session", id)
	return to, c.persist("toggle")
}

// Stop returns to Idle. Stopping while idle changes nothing and does not
// write.
func (c *Controller) Stop() error {
	from := c.log.CurrentMode()
	if !c.log.Stop(c.clock()) {
		return nil
	}
	c.logger.Info("stop", "from", from)
	return c.persist("stop")
}

// SetNote replaces the note of any session.
func (c *Controller) SetNote(id, text string) error {
	if err := c.log.SetNote(id, text); err != nil {
		c.logger.Warn("set note", "session", id, "err", err)
		return err
	}
	c.logger.Info("note", "session", id)
	return c.persist("note")
}

// SetActiveNote sets the note of the open session, or of the last active one
// when idle.
func (c *Controller) SetActiveNote(text string) error {
	active, ok := c.log.LastActive()
	if !ok {
		return fmt.Errorf("no session to annotate: %w", logbook.ErrSessionNotFound)
	}
	return c.SetNote(active.ID, text)
}

// Delete removes a session. Deleting the open session returns to Idle.
func (c *Controller) Delete(id string) (logbook.Session, error) {
	removed, err := c.log.Delete(id)
	if err != nil {
		c.logger.Warn("delete", "session", id, "err", err)
		return logbook.Session{}, err
	}
	c.logger.Info("delete", "session", id, "mode", removed.Mode, "open", removed.Open())
	return removed, c.persist("delete")
}

// Quit closes any open session and saves the log one last time.
func (c *Controller) Quit() error {
	c.log.Stop(c.clock())
	c.logger.Info("quit")
	return c.persist("quit")
}

func (c *Controller) persist(action string) error {
	if c.saver == nil {
		return nil
	}
	if err := c.saver.Save(c.ctx, c.log); err != nil {
		c.logger.Warn("persist failed", "action", action, "err", err)
		return err
	}
	return nil
}
