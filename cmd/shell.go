package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/graft/internal/shell"
)

var shellHistoryFlag string

// shellCmd represents the shell command.
var shellCmd = newShellCmd()

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell [roots...]",
		Short: "Start an interactive session with automatic reload",
		Long: `Start an interactive session. Before every line the session checks the
loaded units and reloads the ones whose source changed, patching live
objects in place.

Use %autoreload and %aimport to control which units are reloaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}

			s, err := newSession(cmd, cfg, sessionOptions{})
			if err != nil {
				return err
			}

			sh, err := shell.New(&shell.Config{
				Loader:      s.loader,
				Reloader:    s.reloader,
				Scope:       s.scope,
				Out:         cmd.OutOrStdout(),
				Err:         cmd.ErrOrStderr(),
				Logger:      s.logger,
				HistoryFile: shellHistoryFlag,
			})
			if err != nil {
				return err
			}

			return sh.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&shellHistoryFlag, "line-history", "", "file for the readline history")

	return cmd
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
