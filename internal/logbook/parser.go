package logbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	tagWork  = "Work"
	tagBreak = "Break"
	tagIdle  = "Idle"
)

// record is the on-disk shape of a session. Fields not listed here are
// ignored when decoding.
type record struct {
	ID          string     `json:"id,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	SessionType string     `json:"session_type"`
	Note        string     `json:"note"`
}

// document is the object form of the store, accepted alongside a bare array.
// A missing or null sessions key is corrupt, not empty.
type document struct {
	Sessions *[]record `json:"sessions"`
}

// Parse decodes persisted sessions. Blank input is an empty log. Records
// tagged Idle are skipped since idle time is never recorded.
func Parse(data []byte) ([]Session, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var records []record
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
		}
	case '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
		}
		if doc.Sessions == nil {
			return nil, fmt.Errorf("%w: object has no sessions list", ErrCorruptStore)
		}
		records = *doc.Sessions
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrCorruptStore)
	}

	sessions := make([]Session, 0, len(records))
	for i, rec := range records {
		session, keep, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: session %d: %v", ErrCorruptStore, i+1, err)
		}
		if keep {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func parseRecord(rec record) (Session, bool, error) {
	var mode Mode
	switch rec.SessionType {
	case tagWork:
		mode = ModeWorking
	case tagBreak:
		mode = ModeBreak
	case tagIdle:
		return Session{}, false, nil
	default:
		return Session{}, false, fmt.Errorf("unknown session_type %q", rec.SessionType)
	}

	if rec.StartTime.IsZero() {
		return Session{}, false, fmt.Errorf("missing start_time")
	}

	session := Session{
		ID:    rec.ID,
		Mode:  mode,
		Start: normalize(rec.StartTime),
		Note:  rec.Note,
	}
	if rec.EndTime != nil {
		end := normalize(*rec.EndTime)
		session.End = &end
	}
	return session, true, nil
}

func formatRecord(s Session) record {
	tag := tagWork
	if s.Mode == ModeBreak {
		tag = tagBreak
	}
	rec := record{
		ID:          s.ID,
		StartTime:   s.Start.UTC(),
		SessionType: tag,
		Note:        s.Note,
	}
	if s.End != nil {
		end := s.End.UTC()
		rec.EndTime = &end
	}
	return rec
}
