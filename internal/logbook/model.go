package logbook

import (
	"fmt"
	"time"
)

// Mode expresses what the user is doing. Only Working and Break are ever
// recorded; Idle is the absence of an open session.
type Mode uint8

const (
	// ModeIdle means no session is open.
	ModeIdle Mode = iota
	// ModeWorking marks focused work time.
	ModeWorking
	// ModeBreak marks time away from work.
	ModeBreak
)

// String returns the label shown in the dashboard.
func (m Mode) String() string {
	switch m {
	case ModeWorking:
		return "WORKING"
	case ModeBreak:
		return "ON BREAK"
	default:
		return "IDLE"
	}
}

// Other returns the active mode a toggle moves to. Idle toggles to Working.
func (m Mode) Other() Mode {
	if m == ModeWorking {
		return ModeBreak
	}
	return ModeWorking
}

// Session is one contiguous interval spent in a single mode.
type Session struct {
	ID    string
	Mode  Mode
	Start time.Time
	// End is nil while the session is still open.
	End  *time.Time
	Note string
}

// Open reports whether the session has not been closed yet.
func (s Session) Open() bool {
	return s.End == nil
}

// Duration returns the closed length of the session, or now-start for an
// open one.
func (s Session) Duration(now time.Time) time.Duration {
	end := now
	if s.End != nil {
		end = *s.End
	}
	if end.Before(s.Start) {
		return 0
	}
	return end.Sub(s.Start)
}

func (s Session) String() string {
	end := "open"
	if s.End != nil {
		end = s.End.Format(time.RFC3339)
	}
	return fmt.Sprintf("%s[%s,%s]", s.Mode, s.Start.Format(time.RFC3339), end)
}

// Totals accumulates tracked time for a single day.
type Totals struct {
	Work  time.Duration
	Break time.Duration
}

// Ratio returns Work/(Work+Break). ok is false when nothing was tracked.
func (t Totals) Ratio() (ratio float64, ok bool) {
	total := t.Work + t.Break
	if total <= 0 {
		return 0, false
	}
	return float64(t.Work) / float64(total), true
}

// Day truncates t to midnight in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	return Day(a, loc).Equal(Day(b, loc))
}

func clonePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
