package logbook

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Log is the single source of truth for recorded sessions. It enforces that
// at most one session is open at any time.
type Log struct {
	sessions []Session
	openID   string
	loc      *time.Location
	newID    func() string
}

// NewLog returns an empty log grouping days in loc (time.Local when nil).
func NewLog(loc *time.Location) *Log {
	if loc == nil {
		loc = time.Local
	}
	return &Log{
		loc:   loc,
		newID: uuid.NewString,
	}
}

// FromSessions builds a log from previously persisted sessions, keeping their
// order. Sessions without an id are assigned one.
func FromSessions(sessions []Session, loc *time.Location) (*Log, error) {
	l := NewLog(loc)
	seen := make(map[string]struct{}, len(sessions))
	for i, s := range sessions {
		if s.ID == "" {
			s.ID = l.newID()
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("session %d: duplicate id %q", i+1, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.End != nil && s.End.Before(s.Start) {
			return nil, fmt.Errorf("session %d: end %s before start %s", i+1,
				s.End.Format(time.RFC3339), s.Start.Format(time.RFC3339))
		}
		if s.Open() {
			if l.openID != "" {
				return nil, fmt.Errorf("session %d: more than one open session", i+1)
			}
			l.openID = s.ID
		}
		s.End = clonePtr(s.End)
		l.sessions = append(l.sessions, s)
	}
	return l, nil
}

// Location returns the zone used to group sessions into days.
func (l *Log) Location() *time.Location {
	return l.loc
}

// Len returns the number of recorded sessions.
func (l *Log) Len() int {
	return len(l.sessions)
}

// StartSession closes the open session (if any) at now and opens a new one in
// mode starting at the same instant. It returns the new session's id.
// Starting ModeIdle is the same as Stop and returns an empty id.
func (l *Log) StartSession(mode Mode, now time.Time) string {
	l.Stop(now)
	if mode == ModeIdle {
		return ""
	}

	session := Session{
		ID:    l.newID(),
		Mode:  mode,
		Start: normalize(now),
	}
	l.sessions = append(l.sessions, session)
	l.openID = session.ID
	return session.ID
}

// Stop closes the open session at now. It reports whether anything changed.
func (l *Log) Stop(now time.Time) bool {
	idx := l.index(l.openID)
	l.openID = ""
	if idx < 0 {
		return false
	}

	end := normalize(now)
	if end.Before(l.sessions[idx].Start) {
		end = l.sessions[idx].Start
	}
	l.sessions[idx].End = &end
	return true
}

// SetNote replaces the note on any session, open or closed.
func (l *Log) SetNote(id, text string) error {
	idx := l.index(id)
	if idx < 0 {
		return fmt.Errorf("set note on %q: %w", id, ErrSessionNotFound)
	}
	l.sessions[idx].Note = text
	return nil
}

// Delete removes a session. Deleting the open session returns the log to Idle.
func (l *Log) Delete(id string) (Session, error) {
	idx := l.index(id)
	if idx < 0 {
		return Session{}, fmt.Errorf("delete %q: %w", id, ErrSessionNotFound)
	}
	removed := l.sessions[idx]
	l.sessions = slices.Delete(l.sessions, idx, idx+1)
	if l.openID == id {
		l.openID = ""
	}
	return removed, nil
}

// CurrentMode returns the open session's mode, or ModeIdle.
func (l *Log) CurrentMode() Mode {
	if s, ok := l.OpenSession(); ok {
		return s.Mode
	}
	return ModeIdle
}

// OpenSession returns a copy of the open session.
func (l *Log) OpenSession() (Session, bool) {
	return l.Find(l.openID)
}

// LastActive returns the open session, or otherwise the most recently started
// session still in the log.
func (l *Log) LastActive() (Session, bool) {
	if s, ok := l.OpenSession(); ok {
		return s, true
	}
	if len(l.sessions) == 0 {
		return Session{}, false
	}
	latest := 0
	for i := range l.sessions {
		if !l.sessions[i].Start.Before(l.sessions[latest].Start) {
			latest = i
		}
	}
	return copySession(l.sessions[latest]), true
}

// Find returns a copy of the session with id.
func (l *Log) Find(id string) (Session, bool) {
	idx := l.index(id)
	if idx < 0 {
		return Session{}, false
	}
	return copySession(l.sessions[idx]), true
}

// Sessions returns a copy of every session in log order.
func (l *Log) Sessions() []Session {
	out := make([]Session, len(l.sessions))
	for i, s := range l.sessions {
		out[i] = copySession(s)
	}
	return out
}

// SessionsForDay returns the sessions starting on date's calendar day, ordered
// by start time.
func (l *Log) SessionsForDay(date time.Time) []Session {
	var out []Session
	for _, s := range l.sessions {
		if sameDay(s.Start, date, l.loc) {
			out = append(out, copySession(s))
		}
	}
	slices.SortStableFunc(out, func(a, b Session) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// DailyTotals sums Working and Break time for sessions starting on date.
// Open sessions count up to now.
func (l *Log) DailyTotals(date, now time.Time) Totals {
	var totals Totals
	for _, s := range l.sessions {
		if !sameDay(s.Start, date, l.loc) {
			continue
		}
		switch s.Mode {
		case ModeWorking:
			totals.Work += s.Duration(now)
		case ModeBreak:
			totals.Break += s.Duration(now)
		}
	}
	return totals
}

// DailyRatio returns the Working share of tracked time on date. ok is false
// when the day has no tracked time.
func (l *Log) DailyRatio(date, now time.Time) (float64, bool) {
	return l.DailyTotals(date, now).Ratio()
}

func (l *Log) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(l.sessions, func(s Session) bool {
		return s.ID == id
	})
}

func copySession(s Session) Session {
	s.End = clonePtr(s.End)
	return s
}

// normalize drops the monotonic reading and stores instants in UTC so a log
// compares equal after a save/load round trip.
func normalize(t time.Time) time.Time {
	return t.Round(0).UTC()
}
