package logbook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/faizmokh/masa/internal/files"
)

// Writer persists the full log on every call.
type Writer struct {
	manager *files.Manager
	logger  *slog.Logger
}

// NewWriter wires the dependencies required to persist the log.
func NewWriter(manager *files.Manager, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Writer{manager: manager, logger: logger}
}

// Save overwrites the store with every session in log. Failures wrap
// ErrPersistenceWrite.
func (w *Writer) Save(ctx context.Context, log *Log) error {
	if w == nil || w.manager == nil {
		return fmt.Errorf("%w: writer not initialized with file manager", ErrPersistenceWrite)
	}
	if log == nil {
		return fmt.Errorf("%w: nil log", ErrPersistenceWrite)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Format(log.Sessions())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
	}
	if err := w.manager.WriteAtomic(data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	w.logger.Debug("saved sessions", "path", w.manager.Path(), "count", log.Len())
	return nil
}

// Format encodes sessions as the pretty-printed JSON array stored on disk.
func Format(sessions []Session) ([]byte, error) {
	records := make([]record, 0, len(sessions))
	for _, s := range sessions {
		if s.Mode == ModeIdle {
			return nil, errors.New("idle sessions cannot be persisted")
		}
		records = append(records, formatRecord(s))
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Store pairs a Reader and Writer over the same file.
type Store struct {
	*Reader
	*Writer
}

// NewStore returns a Store for the file managed by manager.
func NewStore(manager *files.Manager, logger *slog.Logger) *Store {
	return &Store{
		Reader: NewReader(manager, logger),
		Writer: NewWriter(manager, logger),
	}
}
