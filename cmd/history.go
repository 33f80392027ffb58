package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/graft/internal/controller"
	m "github.com/mouse-blink/graft/internal/model"
)

var historyFileFlag string

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded watch passes",
		Long:  "Show the reload passes recorded by graft watch, oldest first.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(nil)
			if err != nil {
				return err
			}

			path := cfg.History
			if historyFileFlag != "" {
				path = historyFileFlag
			}

			reports, err := reportStore.LoadReports(m.Path(path))
			if err != nil {
				return err
			}

			ui := newUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
			if err := ui.Start(controller.WithListMode()); err != nil {
				return err
			}
			defer ui.Close()

			return ui.DisplayHistory(reports)
		},
	}
	cmd.Flags().StringVar(&historyFileFlag, "history", "", "history file (defaults to the configured one)")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
