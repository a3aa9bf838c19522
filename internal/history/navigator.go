package history

import (
	"slices"
	"time"

	"github.com/faizmokh/masa/internal/logbook"
)

// DaySource produces the ordered sessions for a calendar day.
type DaySource interface {
	SessionsForDay(date time.Time) []logbook.Session
}

// Navigator tracks which day is displayed and which entry is selected. It is a
// view over a DaySource and never mutates it.
type Navigator struct {
	source DaySource
	clock  func() time.Time
	loc    *time.Location

	offset     int
	selected   int
	selectedID string
}

// NewNavigator starts on today with nothing selected.
func NewNavigator(source DaySource, clock func() time.Time, loc *time.Location) *Navigator {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Navigator{
		source:   source,
		clock:    clock,
		loc:      loc,
		selected: -1,
	}
}

// Offset returns the displayed day relative to today (0 today, negative past).
func (n *Navigator) Offset() int {
	return n.offset
}

// Day returns midnight of the displayed day.
func (n *Navigator) Day() time.Time {
	return logbook.Day(n.clock(), n.loc).AddDate(0, 0, n.offset)
}

// Sessions returns the displayed day's sessions ordered by start.
func (n *Navigator) Sessions() []logbook.Session {
	return n.source.SessionsForDay(n.Day())
}

// ChangeDay moves the displayed day by delta, never past today, and clears
// the selection.
func (n *Navigator) ChangeDay(delta int) {
	n.offset += delta
	if n.offset > 0 {
		n.offset = 0
	}
	n.ClearSelection()
}

// Today jumps back to the current day.
func (n *Navigator) Today() {
	n.offset = 0
	n.ClearSelection()
}

// SelectNext moves the selection down, stopping at the last entry. With no
// selection it picks the first entry.
func (n *Navigator) SelectNext() {
	sessions := n.Sessions()
	if len(sessions) == 0 {
		n.ClearSelection()
		return
	}
	next := 0
	if idx, ok := n.resolve(sessions); ok {
		next = min(idx+1, len(sessions)-1)
	}
	n.selectAt(sessions, next)
}

// SelectPrev moves the selection up, stopping at the first entry. With no
// selection it picks the last entry.
func (n *Navigator) SelectPrev() {
	sessions := n.Sessions()
	if len(sessions) == 0 {
		n.ClearSelection()
		return
	}
	prev := len(sessions) - 1
	if idx, ok := n.resolve(sessions); ok {
		prev = max(idx-1, 0)
	}
	n.selectAt(sessions, prev)
}

// ClearSelection drops the selection.
func (n *Navigator) ClearSelection() {
	n.selected = -1
	n.selectedID = ""
}

// Selected returns the selected index into Sessions().
func (n *Navigator) Selected() (int, bool) {
	return n.resolve(n.Sessions())
}

// SelectedSessionRef resolves the selection to a session id.
func (n *Navigator) SelectedSessionRef() (string, bool) {
	if _, ok := n.resolve(n.Sessions()); !ok {
		return "", false
	}
	return n.selectedID, true
}

// Revalidate re-resolves the selection after the log changed: it follows the
// selected session if it moved and clears the selection if it is gone.
func (n *Navigator) Revalidate() {
	n.resolve(n.Sessions())
}

func (n *Navigator) resolve(sessions []logbook.Session) (int, bool) {
	if n.selectedID == "" {
		n.selected = -1
		return -1, false
	}
	if n.selected >= 0 && n.selected < len(sessions) && sessions[n.selected].ID == n.selectedID {
		return n.selected, true
	}
	idx := slices.IndexFunc(sessions, func(s logbook.Session) bool {
		return s.ID == n.selectedID
	})
	if idx < 0 {
		n.ClearSelection()
		return -1, false
	}
	n.selected = idx
	return idx, true
}

func (n *Navigator) selectAt(sessions []logbook.Session, idx int) {
	n.selected = idx
	n.selectedID = sessions[idx].ID
}
