package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/masa/internal/logbook"
)

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		return logbook.Day(time.Now(), time.Local), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func formatSession(session logbook.Session, now time.Time) string {
	end := "active"
	if session.End != nil {
		end = session.End.In(time.Local).Format("15:04")
	}

	var builder strings.Builder
	builder.Grow(48 + len(session.Note))
	fmt.Fprintf(&builder, "[%s] %s-%s %s",
		strings.ToLower(modeTag(session.Mode)),
		session.Start.In(time.Local).Format("15:04"),
		end,
		formatDuration(session.Duration(now)),
	)
	if session.Note != "" {
		builder.WriteByte(' ')
		builder.WriteString(session.Note)
	}
	return builder.String()
}

func formatTotals(totals logbook.Totals) string {
	ratio := "n/a"
	if r, ok := totals.Ratio(); ok {
		ratio = fmt.Sprintf("%.0f%%", r*100)
	}
	return fmt.Sprintf("Work %s | Break %s | Ratio %s",
		formatDuration(totals.Work), formatDuration(totals.Break), ratio)
}

func modeTag(mode logbook.Mode) string {
	if mode == logbook.ModeBreak {
		return "Break"
	}
	return "Work"
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func printMissingDay(cmd *cobra.Command, date time.Time) {
	fmt.Fprintf(cmd.OutOrStdout(), "No sessions for %s\n", date.Format("2006-01-02"))
}

func printDay(cmd *cobra.Command, log *logbook.Log, date, now time.Time) {
	out := cmd.OutOrStdout()
	sessions := log.SessionsForDay(date)
	fmt.Fprintf(out, "%s\n", date.Format("2006-01-02"))
	if len(sessions) == 0 {
		fmt.Fprintln(out, "(no sessions)")
		return
	}

	for i, session := range sessions {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatSession(session, now))
	}
	fmt.Fprintln(out, formatTotals(log.DailyTotals(date, now)))
}
