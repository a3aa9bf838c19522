package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func newTodayCommand(ctx context.Context, s *settings) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show sessions and the work ratio for today or a specific date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDate, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			return displayDay(ctx, cmd, s, targetDate)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func displayDay(ctx context.Context, cmd *cobra.Command, s *settings, date time.Time) error {
	env, err := s.open()
	if err != nil {
		return err
	}
	defer env.Close()

	log, err := env.store.Load(ctx, time.Local)
	if err != nil {
		return err
	}
	if len(log.SessionsForDay(date)) == 0 {
		printMissingDay(cmd, date)
		return nil
	}
	printDay(cmd, log, date, time.Now())
	return nil
}
