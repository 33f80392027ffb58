package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/graft/internal/adapter"
	"github.com/mouse-blink/graft/internal/controller"
	"github.com/mouse-blink/graft/internal/domain"
	m "github.com/mouse-blink/graft/internal/model"
)

var watchIntervalFlag time.Duration
var watchTUIFlag bool
var watchHistoryFlag string
var watchNoHistoryFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [roots...]",
		Short: "Reload units continuously as their sources change",
		Long: `Load every unit under the roots and reload changed units on a timer and
on file system events. Each pass is shown and appended to the history file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("interval") {
				cfg.Interval = watchIntervalFlag
			}

			if watchHistoryFlag != "" {
				cfg.History = watchHistoryFlag
			}

			if watchNoHistoryFlag {
				cfg.History = ""
			}

			useTUI := watchTUIFlag && controller.IsTTY(cmd.OutOrStdout())

			s, err := newSession(cmd, cfg, sessionOptions{importAll: true, quiet: useTUI})
			if err != nil {
				return err
			}

			return runWatch(cmd, s, newUI(cmd, useTUI))
		},
	}
	cmd.Flags().DurationVar(&watchIntervalFlag, "interval", domain.DefaultInterval, "polling interval (0 disables polling)")
	cmd.Flags().BoolVar(&watchTUIFlag, "tui", false, "show the interactive dashboard")
	cmd.Flags().StringVar(&watchHistoryFlag, "history", "", "history file (defaults to the configured one)")
	cmd.Flags().BoolVar(&watchNoHistoryFlag, "no-history", false, "do not record passes")

	return cmd
}

func runWatch(cmd *cobra.Command, s *session, ui controller.UI) error {
	if !s.cfg.Settings.Enabled {
		s.logger.Warn("autoreload is off; watch passes run only when forced")
	}

	if err := ui.Start(controller.WithWatchMode()); err != nil {
		return err
	}
	defer ui.Close()

	if err := ui.DisplayUnits(s.reloader.Status()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		ui.Wait()
		cancel()
	}()

	opts := []domain.WatcherOption{
		domain.WithInterval(s.cfg.Interval),
		domain.WithPassLimit(s.cfg.Debounce),
		domain.WithWatchLogger(s.logger),
		domain.OnPass(func(report m.PassReport) {
			ui.DisplayPass(report)

			if s.cfg.History == "" {
				return
			}

			if err := reportStore.SaveReports(m.Path(s.cfg.History), []m.PassReport{report}); err != nil {
				s.logger.Warn("failed to record pass", "pass", report.ID, "error", err)
			}
		}),
	}

	files, err := adapter.NewFSNotifyWatcher(s.cfg.Extensions)
	if err != nil {
		s.logger.Warn("file events unavailable, polling only", "error", err)
	} else {
		defer func() { _ = files.Close() }()

		opts = append(opts, domain.WithFileWatcher(files))
	}

	return domain.NewWatcher(s.reloader, opts...).Run(ctx)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
