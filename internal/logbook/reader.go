package logbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/faizmokh/masa/internal/files"
)

// Reader loads the persisted log.
type Reader struct {
	manager *files.Manager
	logger  *slog.Logger
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{manager: manager, logger: logger}
}

// Load reads the whole log, grouping days in loc. A missing file is a first
// run and yields an empty log; undecodable content yields ErrCorruptStore.
func (r *Reader) Load(ctx context.Context, loc *time.Location) (*Log, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.manager.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("no session store yet", "path", r.manager.Path())
			return NewLog(loc), nil
		}
		return nil, fmt.Errorf("read %s: %w", r.manager.Path(), err)
	}

	sessions, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.manager.Path(), err)
	}

	log, err := FromSessions(sessions, loc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %v", r.manager.Path(), ErrCorruptStore, err)
	}
	r.logger.Debug("loaded sessions", "path", r.manager.Path(), "count", log.Len())
	return log, nil
}
