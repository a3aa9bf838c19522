package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/faizmokh/masa/internal/logbook"
)

func TestJumpCommandShowsDate(t *testing.T) {
	s := newTempSettings(t)
	seed(t, s, func(l *logbook.Log) {
		l.StartSession(logbook.ModeWorking, at(5, 8, 0))
		l.Stop(at(5, 9, 0))
		l.StartSession(logbook.ModeWorking, at(6, 8, 0))
		l.Stop(at(6, 8, 45))
	})

	out := executeCommand(t, newJumpCommand(context.Background(), s), "2025-11-06")
	assertContains(t, out, "2025-11-06")
	assertContains(t, out, "[work] 08:00-08:45 00:45:00")
	assertNotContains(t, out, "2025-11-05")
}

func TestListCommandSkipsEmptyDays(t *testing.T) {
	s := newTempSettings(t)
	seed(t, s, func(l *logbook.Log) {
		l.StartSession(logbook.ModeWorking, at(3, 9, 0))
		l.Stop(at(3, 10, 0))
		l.StartSession(logbook.ModeBreak, at(5, 12, 0))
		l.Stop(at(5, 12, 20))
	})

	out := executeCommand(t, newListCommand(context.Background(), s), "--date", "2025-11-05", "--days", "3")
	assertContains(t, out, "2025-11-03")
	assertContains(t, out, "2025-11-05")
	assertNotContains(t, out, "2025-11-04")
	assertContains(t, out, "Ratio 100%")
	assertContains(t, out, "Ratio 0%")
}

func TestListCommandWeekWithoutSessions(t *testing.T) {
	s := newTempSettings(t)

	out := executeCommand(t, newListCommand(context.Background(), s), "--date", "2025-11-14", "--week")
	assertContains(t, out, "No sessions between 2025-11-08 and 2025-11-14")
}

func TestPrevAndNextCommandsShowNeighbouringDays(t *testing.T) {
	s := newTempSettings(t)
	seed(t, s, func(l *logbook.Log) {
		l.StartSession(logbook.ModeWorking, at(9, 8, 0))
		l.Stop(at(9, 9, 0))
		l.StartSession(logbook.ModeBreak, at(11, 12, 0))
		l.Stop(at(11, 12, 15))
	})

	out := executeCommand(t, newPrevCommand(context.Background(), s), "--date", "2025-11-10")
	assertContains(t, out, "2025-11-09")
	assertContains(t, out, "[work] 08:00-09:00 01:00:00")
	assertNotContains(t, out, "[break]")

	out = executeCommand(t, newNextCommand(context.Background(), s), "--date", "2025-11-10")
	assertContains(t, out, "2025-11-11")
	assertContains(t, out, "[break] 12:00-12:15 00:15:00")
	assertNotContains(t, out, "[work]")
}

func TestNextCommandWithoutSessions(t *testing.T) {
	s := newTempSettings(t)

	out := executeCommand(t, newNextCommand(context.Background(), s), "--date", "2025-11-10")
	assertContains(t, out, "No sessions for 2025-11-11")
}

func seedNotes(t *testing.T, s *settings) {
	t.Helper()
	seed(t, s, func(l *logbook.Log) {
		first := l.StartSession(logbook.ModeWorking, at(4, 9, 0))
		second := l.StartSession(logbook.ModeWorking, at(4, 10, 0))
		l.Stop(at(4, 11, 0))
		third := l.StartSession(logbook.ModeBreak, at(7, 13, 0))
		l.Stop(at(7, 13, 30))
		for id, note := range map[string]string{
			first:  "Review PR 42",
			second: "write docs",
			third:  "coffee after review",
		} {
			if err := l.SetNote(id, note); err != nil {
				t.Fatalf("SetNote: %v", err)
			}
		}
	})
}

func TestSearchCommandMatchesNotes(t *testing.T) {
	s := newTempSettings(t)
	seedNotes(t, s)

	out := executeCommand(t, newSearchCommand(context.Background(), s), "review", "--date", "2025-11-20")
	assertContains(t, out, `Results for "review" in 2025-11`)
	assertContains(t, out, "2025-11-04 #1 [work] 09:00-10:00 01:00:00 Review PR 42")
	assertContains(t, out, "2025-11-07 #1 [break] 13:00-13:30 00:30:00 coffee after review")
	assertNotContains(t, out, "write docs")
}

func TestSearchCommandCaseSensitive(t *testing.T) {
	s := newTempSettings(t)
	seedNotes(t, s)

	out := executeCommand(t, newSearchCommand(context.Background(), s), "Review", "--case-sensitive", "--date", "2025-11-20")
	assertContains(t, out, "Review PR 42")
	assertNotContains(t, out, "coffee after review")
}

func TestSearchCommandOutsideMonth(t *testing.T) {
	s := newTempSettings(t)
	seedNotes(t, s)

	out := executeCommand(t, newSearchCommand(context.Background(), s), "review", "--date", "2025-12-01")
	assertContains(t, out, "(no matches)")
}

func TestSearchCommandJSON(t *testing.T) {
	s := newTempSettings(t)
	seedNotes(t, s)

	out := executeCommand(t, newSearchCommand(context.Background(), s), "docs", "--json", "--date", "2025-11-20")

	var results []struct {
		Date     string `json:"date"`
		Index    int    `json:"index"`
		Type     string `json:"session_type"`
		Duration string `json:"duration"`
		Note     string `json:"note"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, out)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	got := results[0]
	if got.Date != "2025-11-04" || got.Index != 2 || got.Type != "Work" || got.Duration != "01:00:00" || got.Note != "write docs" {
		t.Fatalf("result = %+v", got)
	}
}
