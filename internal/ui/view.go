package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/masa/internal/logbook"
)

const (
	minWidth       = 60
	minHeight      = 20
	companionWidth = 20
)

// View renders the frame.
func (m Model) View() string {
	if m.width > 0 && (m.width < minWidth || m.height < minHeight) {
		return paneStyle.Render("Terminal too small.\nPlease resize.")
	}

	now := m.ctrl.Now()
	mode := m.ctrl.Mode()
	active, hasActive := m.ctrl.ActiveSession()

	var b strings.Builder
	b.WriteString(titleStyle.Render("masa"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.companionView(mode, active, hasActive, now),
		m.dashboardView(mode, active, hasActive, now),
	))
	b.WriteString("\n")
	b.WriteString(m.noteView(mode, active, hasActive))
	b.WriteString("\n")
	b.WriteString(m.historyView(now))
	b.WriteString("\n")

	if m.errorLine != "" {
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteString("\n")
	} else if m.statusLine != "" {
		b.WriteString(mutedStyle.Render(m.statusLine))
		b.WriteString("\n")
	}

	if m.mode == modeEditNote {
		b.WriteString(inputStyle.Render(m.editingLabel + "\n" + m.input.View()))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("enter save • esc cancel"))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) companionView(mode logbook.Mode, active logbook.Session, hasActive bool, now time.Time) string {
	frame := Companion(mode, m.elapsed(mode, active, hasActive, now))
	art := lipgloss.NewStyle().Foreground(frame.Color).Render(strings.Join(frame.Lines, "\n"))
	caption := mutedStyle.Render(frame.Caption)
	return paneStyle.Width(companionWidth).Render(art + "\n" + caption)
}

func (m Model) dashboardView(mode logbook.Mode, active logbook.Session, hasActive bool, now time.Time) string {
	style := modeStyle(mode)
	day := m.nav.Day()
	totals := m.ctrl.Log().DailyTotals(day, now)

	label := "Today's work ratio"
	if m.nav.Offset() != 0 {
		label = fmt.Sprintf("Work ratio %s", day.Format("2006-01-02"))
	}

	var gauge string
	if ratio, ok := totals.Ratio(); ok {
		gauge = fmt.Sprintf("%s %3.0f%% work", m.gauge.ViewAs(ratio), ratio*100)
	} else {
		gauge = mutedStyle.Render("No data")
	}

	lines := []string{
		style.Render(mode.String()),
		style.Render(formatDuration(m.elapsed(mode, active, hasActive, now))),
		"",
		label,
		gauge,
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) noteView(mode logbook.Mode, active logbook.Session, hasActive bool) string {
	text := "(No note for current session)"
	if mode == logbook.ModeIdle {
		text = "(Idle)"
	}
	if hasActive && active.Note != "" {
		prefix := "NOTE"
		if mode == logbook.ModeIdle {
			prefix = "LAST NOTE"
		}
		text = fmt.Sprintf("%s: %s", prefix, active.Note)
	}
	return noteStyle.Render(" " + text)
}

func (m Model) historyView(now time.Time) string {
	day := m.nav.Day()
	sessions := m.nav.Sessions()
	selected, hasSelection := m.nav.Selected()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Log: %s", day.Format("Monday, 02 January 2006"))))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-6s %-9s %-9s %-9s %s", "Start", "End", "Type", "Time", "Note")))
	b.WriteString("\n")

	if len(sessions) == 0 {
		b.WriteString(mutedStyle.Render("  (no entries)"))
		b.WriteString("\n")
	}
	for i, s := range sessions {
		cursor := " "
		if hasSelection && i == selected {
			cursor = ">"
		}
		row := fmt.Sprintf("%s %s", cursor, m.formatRow(s, now))
		if hasSelection && i == selected {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	totals := m.ctrl.Log().DailyTotals(day, now)
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Daily total | Work: %s | Break: %s",
		formatDuration(totals.Work), formatDuration(totals.Break))))
	return b.String()
}

func (m Model) formatRow(s logbook.Session, now time.Time) string {
	loc := m.ctrl.Log().Location()
	end := "Active"
	if s.End != nil {
		end = s.End.In(loc).Format("15:04:05")
	}
	kind := modeStyle(s.Mode).Render(fmt.Sprintf("%-9s", shortLabel(s.Mode)))
	return fmt.Sprintf("%-6s %-9s %s %-9s %s",
		s.Start.In(loc).Format("15:04"),
		end,
		kind,
		formatDuration(s.Duration(now)),
		s.Note,
	)
}

// elapsed is the running time of the open session, or time since the last
// session ended while idle.
func (m Model) elapsed(mode logbook.Mode, active logbook.Session, hasActive bool, now time.Time) time.Duration {
	if !hasActive {
		return 0
	}
	if mode != logbook.ModeIdle {
		return active.Duration(now)
	}
	if active.End == nil || now.Before(*active.End) {
		return 0
	}
	return now.Sub(*active.End)
}

func shortLabel(mode logbook.Mode) string {
	switch mode {
	case logbook.ModeWorking:
		return "Work"
	case logbook.ModeBreak:
		return "Break"
	default:
		return "Idle"
	}
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
