// Package cmd provides the root command and CLI setup for graft.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/graft/internal/adapter"
	"github.com/mouse-blink/graft/internal/config"
	"github.com/mouse-blink/graft/internal/controller"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var newUI = controller.NewUI

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

var configFlag string
var rootFlags []string
var printFlag bool
var logFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graft",
		Short: "Live code patching for running sessions",
		Long: `Graft re-executes changed units and patches the objects a running
session already holds, so existing instances, stored functions and bound
methods pick up the new code without a restart.

Units are YAML statement files found under the configured roots:
  - graft shell          interactive session with automatic reload
  - graft watch          reload continuously as files change
  - graft list           show every unit and its reload state
  - graft history        show recorded watch passes`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", config.DefaultFile, "configuration file")
	flags.StringSliceVar(&rootFlags, "root", nil, "unit search roots (overrides the configuration file)")
	flags.BoolVarP(&printFlag, "print", "p", false, "print a line for every reloaded unit")
	flags.BoolVarP(&logFlag, "log", "l", false, "log every reloaded unit at INFO")

	return cmd
}

// loadConfig reads the configuration file and applies command-line
// overrides. Positional roots win over --root, which wins over the file.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	switch {
	case len(args) > 0:
		cfg.Roots = args
	case len(rootFlags) > 0:
		cfg.Roots = rootFlags
	}

	cfg.Print = cfg.Print || printFlag
	cfg.Log = cfg.Log || logFlag

	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
