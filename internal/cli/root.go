package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/masa/internal/history"
	"github.com/faizmokh/masa/internal/logbook"
	"github.com/faizmokh/masa/internal/timer"
	"github.com/faizmokh/masa/internal/ui"
)

// NewRootCommand creates the top-level Cobra command that launches the TUI and
// hosts the reporting subcommands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	s := &settings{}

	cmd := &cobra.Command{
		Use:   "masa",
		Short: "Track work and break sessions from your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx, cmd, s)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "Config file (default: <user config dir>/masa/config.yaml)")
	flags.StringVar(&s.dataFile, "file", "", "Session data file (default: work_log.json)")
	flags.StringVar(&s.logFile, "log-file", "", "Write debug logs to this file")
	cmd.Flags().BoolVar(&s.resetCorrupt, "reset-corrupt", false, "Move an unreadable data file aside and start with an empty log")

	cmd.AddCommand(
		newTodayCommand(ctx, s),
		newPrevCommand(ctx, s),
		newNextCommand(ctx, s),
		newJumpCommand(ctx, s),
		newListCommand(ctx, s),
		newSearchCommand(ctx, s),
		newVersionCommand(),
	)

	return cmd
}

func runTUI(ctx context.Context, cmd *cobra.Command, s *settings) error {
	env, err := s.open()
	if err != nil {
		return err
	}
	defer env.Close()

	log, err := env.store.Load(ctx, time.Local)
	if err != nil {
		if !errors.Is(err, logbook.ErrCorruptStore) {
			return err
		}
		if !s.resetCorrupt {
			return fmt.Errorf("%w\nthe file was left untouched; rerun with --reset-corrupt to move it aside and start fresh", err)
		}
		moved, qerr := env.manager.Quarantine(time.Now())
		if qerr != nil {
			return qerr
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Moved unreadable data file to %s\n", moved)
		env.logger.Warn("quarantined corrupt store", "from", env.manager.Path(), "to", moved)
		log = logbook.NewLog(time.Local)
	}

	ctrl := timer.New(ctx, log, env.store, timer.WithLogger(env.logger))
	if _, err := ctrl.RecoverOpen(env.cfg.StaleAfter); err != nil {
		// The next mutation saves again, so startup carries on.
		env.logger.Warn("save recovered log", "err", err)
	}
	nav := history.NewNavigator(log, ctrl.Now, time.Local)

	final, err := tea.NewProgram(
		ui.NewModel(ctrl, nav, env.cfg.Tick),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/masa/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
