package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/masa/internal/logbook"
)

func newPrevCommand(ctx context.Context, s *settings) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "prev",
		Short: "Show the previous day's sessions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			return displayDay(ctx, cmd, s, date.AddDate(0, 0, -1))
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date in YYYY-MM-DD (default: today)")

	return cmd
}

func newNextCommand(ctx context.Context, s *settings) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next day's sessions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			return displayDay(ctx, cmd, s, date.AddDate(0, 0, 1))
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date in YYYY-MM-DD (default: today)")

	return cmd
}

func newJumpCommand(ctx context.Context, s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jump <date>",
		Short: "Show sessions for the specified date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("parse date: %w", err)
			}
			return displayDay(ctx, cmd, s, target)
		},
	}

	return cmd
}

func newListCommand(ctx context.Context, s *settings) *cobra.Command {
	var (
		dateFlag string
		daysFlag int
		weekFlag bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions across a range of days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			days := daysFlag
			if weekFlag {
				days = 7
			}
			if days <= 0 {
				days = 1
			}

			env, err := s.open()
			if err != nil {
				return err
			}
			defer env.Close()

			log, err := env.store.Load(ctx, time.Local)
			if err != nil {
				return err
			}

			start := date.AddDate(0, 0, -(days - 1))
			now := time.Now()
			printed := 0
			for current := start; !current.After(date); current = current.AddDate(0, 0, 1) {
				if len(log.SessionsForDay(current)) == 0 {
					continue
				}
				if printed > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printDay(cmd, log, current, now)
				printed++
			}

			if printed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No sessions between %s and %s\n",
					start.Format("2006-01-02"), date.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "End date in YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&daysFlag, "days", 0, "Number of days to include ending on target date")
	cmd.Flags().BoolVar(&weekFlag, "week", false, "Shortcut for --days=7")

	return cmd
}

func newSearchCommand(ctx context.Context, s *settings) *cobra.Command {
	var (
		dateFlag      string
		caseSensitive bool
		outputJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search session notes within the month.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.TrimSpace(args[0])
			if term == "" {
				return fmt.Errorf("term is required")
			}
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			env, err := s.open()
			if err != nil {
				return err
			}
			defer env.Close()

			log, err := env.store.Load(ctx, time.Local)
			if err != nil {
				return err
			}

			startOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
			endOfMonth := startOfMonth.AddDate(0, 1, -1)

			results := searchSessions(log, startOfMonth, endOfMonth, term, caseSensitive)
			if outputJSON {
				return printSearchResultsJSON(cmd, results, time.Now())
			}
			return printSearchResultsText(cmd, term, startOfMonth, results, time.Now())
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date in YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match term with case sensitivity")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit results as JSON objects")

	return cmd
}

type searchResult struct {
	date    time.Time
	index   int
	session logbook.Session
}

// searchSessions matches notes day by day so each result keeps its position
// within the day.
func searchSessions(log *logbook.Log, start, end time.Time, term string, caseSensitive bool) []searchResult {
	needle := term
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}

	var results []searchResult
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for idx, session := range log.SessionsForDay(day) {
			note := session.Note
			if !caseSensitive {
				note = strings.ToLower(note)
			}
			if strings.Contains(note, needle) {
				results = append(results, searchResult{date: day, index: idx, session: session})
			}
		}
	}
	return results
}

func printSearchResultsText(cmd *cobra.Command, term string, start time.Time, results []searchResult, now time.Time) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Results for %q in %s\n", term, start.Format("2006-01"))
	if len(results) == 0 {
		fmt.Fprintln(out, "(no matches)")
		return nil
	}

	for _, res := range results {
		fmt.Fprintf(out, "%s #%d %s\n",
			res.date.Format("2006-01-02"),
			res.index+1,
			formatSession(res.session, now),
		)
	}
	return nil
}

func printSearchResultsJSON(cmd *cobra.Command, results []searchResult, now time.Time) error {
	type dto struct {
		Date     string     `json:"date"`
		Index    int        `json:"index"`
		ID       string     `json:"id"`
		Type     string     `json:"session_type"`
		Start    time.Time  `json:"start_time"`
		End      *time.Time `json:"end_time"`
		Duration string     `json:"duration"`
		Note     string     `json:"note"`
	}

	list := make([]dto, 0, len(results))
	for _, res := range results {
		list = append(list, dto{
			Date:     res.date.Format("2006-01-02"),
			Index:    res.index + 1,
			ID:       res.session.ID,
			Type:     modeTag(res.session.Mode),
			Start:    res.session.Start,
			End:      res.session.End,
			Duration: formatDuration(res.session.Duration(now)),
			Note:     res.session.Note,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
