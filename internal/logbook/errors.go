package logbook

import "errors"

// ErrSessionNotFound is returned when a session reference no longer resolves.
var ErrSessionNotFound = errors.New("session not found")

// ErrCorruptStore indicates the persisted log exists but cannot be decoded.
var ErrCorruptStore = errors.New("session store is corrupt")

// ErrPersistenceWrite wraps failures to write the log to disk. The in-memory
// log stays authoritative when this is returned.
var ErrPersistenceWrite = errors.New("persist sessions")
