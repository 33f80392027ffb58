package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/graft/internal/controller"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [roots...]",
		Short: "List units and their reload state",
		Long:  "Load every unit under the roots and show its path, state and modification time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}

			s, err := newSession(cmd, cfg, sessionOptions{importAll: true})
			if err != nil {
				return err
			}

			ui := newUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
			if err := ui.Start(controller.WithListMode()); err != nil {
				return err
			}
			defer ui.Close()

			return ui.DisplayUnits(s.reloader.Status())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
