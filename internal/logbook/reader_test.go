package logbook

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faizmokh/masa/internal/files"
)

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	mgr, err := files.NewManager(filepath.Join(t.TempDir(), "work_log.json"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func TestReaderLoadMissingFileIsEmpty(t *testing.T) {
	mgr := newTempManager(t)

	log, err := NewReader(mgr, nil).Load(context.Background(), time.UTC)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if log.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", log.Len())
	}
	if _, err := os.Stat(mgr.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load created the store: %v", err)
	}
}

func TestReaderLoadCorruptFileKeepsIt(t *testing.T) {
	mgr := newTempManager(t)
	if err := os.WriteFile(mgr.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewReader(mgr, nil).Load(context.Background(), time.UTC); !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("Load error = %v, want ErrCorruptStore", err)
	}

	data, err := os.ReadFile(mgr.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "{not json" {
		t.Fatalf("corrupt store was modified: %q", data)
	}
}

func TestReaderLoadRejectsTwoOpenSessions(t *testing.T) {
	mgr := newTempManager(t)
	content := `[
  {"start_time": "2026-10-17T08:00:00Z", "end_time": null, "session_type": "Work"},
  {"start_time": "2026-10-17T09:00:00Z", "end_time": null, "session_type": "Break"}
]`
	if err := os.WriteFile(mgr.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewReader(mgr, nil).Load(context.Background(), time.UTC); !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("Load error = %v, want ErrCorruptStore", err)
	}
}

func TestReaderLoadObjectWithoutSessionsKeepsFile(t *testing.T) {
	mgr := newTempManager(t)
	content := `{"session_list":[{"start_time":"2026-10-17T08:00:00Z","end_time":null,"session_type":"Work","note":"keep me"}]}`
	if err := os.WriteFile(mgr.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewStore(mgr, nil).Load(context.Background(), time.UTC); !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("Load error = %v, want ErrCorruptStore", err)
	}

	data, err := os.ReadFile(mgr.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != content {
		t.Fatalf("store was modified: %q", data)
	}
}
