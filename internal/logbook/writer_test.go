package logbook

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/faizmokh/masa/internal/files"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	mgr := newTempManager(t)
	store := NewStore(mgr, nil)
	ctx := context.Background()

	start := time.Date(2026, time.October, 17, 8, 0, 0, 123456789, time.UTC)
	original := NewLog(time.UTC)
	first := original.StartSession(ModeWorking, start)
	original.StartSession(ModeBreak, start.Add(25*time.Minute))
	if err := original.SetNote(first, "design review"); err != nil {
		t.Fatalf("SetNote: %v", err)
	}

	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load(ctx, time.UTC)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Sessions(), original.Sessions()) {
		t.Fatalf("loaded = %#v, want %#v", loaded.Sessions(), original.Sessions())
	}
	if loaded.CurrentMode() != ModeBreak {
		t.Fatalf("loaded CurrentMode() = %v, want ModeBreak", loaded.CurrentMode())
	}

	before, err := os.ReadFile(mgr.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if err := store.Save(ctx, loaded); err != nil {
		t.Fatalf("Save loaded: %v", err)
	}
	after, err := os.ReadFile(mgr.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("save(load()) changed the store:\n%s\n---\n%s", before, after)
	}
}

func TestSaveFailureWrapsPersistenceWrite(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	mgr, err := files.NewManager(filepath.Join(blocker, "work_log.json"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	log := NewLog(time.UTC)
	log.StartSession(ModeWorking, time.Now())
	if err := NewWriter(mgr, nil).Save(context.Background(), log); !errors.Is(err, ErrPersistenceWrite) {
		t.Fatalf("Save error = %v, want ErrPersistenceWrite", err)
	}
}
