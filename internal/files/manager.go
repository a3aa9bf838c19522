package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager owns the location of the session data file and every write to it.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the data file at path. An empty path
// falls back to DefaultDataFile in the working directory.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		path = DefaultDataFile
	}
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, err
	}

	return &Manager{path: abs}, nil
}

// Path returns the absolute path of the data file.
func (m *Manager) Path() string {
	return m.path
}

// Read returns the raw data file. A missing file yields an error matching
// os.ErrNotExist.
func (m *Manager) Read() ([]byte, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}
	return os.ReadFile(m.path)
}

// WriteAtomic replaces the data file with data. The bytes land in a temp file
// beside the target which is synced and renamed over it, so readers see
// either the old or the new content.
func (m *Manager) WriteAtomic(data []byte) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".masa-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(m.path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), m.path)
}

// Quarantine moves an unreadable data file aside so a fresh log can be
// started without losing it. It returns the new location.
func (m *Manager) Quarantine(now time.Time) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}
	target := fmt.Sprintf("%s.corrupt-%s", m.path, now.Format("20060102T150405"))
	if err := os.Rename(m.path, target); err != nil {
		return "", fmt.Errorf("move corrupt store aside: %w", err)
	}
	return target, nil
}
