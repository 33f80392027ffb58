package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/graft/internal/domain"
)

func (s *Shell) autoreloadCommand(ctx context.Context) *cobra.Command {
	var toPrint, toLog bool

	cmd := &cobra.Command{
		Use:           "%autoreload [mode]",
		Short:         "Reload units automatically before executing a line",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.reloader.SetReporter(domain.Reporter(s.printReport, s.logger.With("logger", "autoreload"), toPrint, toLog))

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			mode, err := domain.ParseMode(arg)
			if err != nil {
				return err
			}

			if mode.Now {
				s.reloader.Check(cmd.Context(), true)
				return nil
			}

			s.reloader.SetSettings(mode.Settings)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&toPrint, "print", "p", false, "print a line for every reloaded unit")
	cmd.Flags().BoolVarP(&toLog, "log", "l", false, "log every reloaded unit")
	cmd.SetOut(s.out)
	cmd.SetErr(s.errOut)
	cmd.SetContext(ctx)

	return cmd
}

func (s *Shell) autoreload(ctx context.Context, rest string) error {
	cmd := s.autoreloadCommand(ctx)
	cmd.SetArgs(append([]string{}, strings.Fields(rest)...))

	return cmd.ExecuteContext(ctx)
}

// aimport lists the reload and skip sets, or marks each comma separated
// name reloadable (and imports it) or, with a leading '-', skipped.
func (s *Shell) aimport(ctx context.Context, rest string) error {
	if rest == "" {
		s.printImports()
		return nil
	}

	for _, name := range strings.Split(rest, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if skipped, ok := strings.CutPrefix(name, "-"); ok {
			s.reloader.MarkSkipped(skipped)
			continue
		}

		s.reloader.MarkReloadable(name)

		unit, err := s.loader.Import(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", name, err)
		}

		s.scope.Set(bindingName(name), unit)
	}

	return nil
}

func (s *Shell) printImports() {
	if s.reloader.Settings().CheckAll {
		fmt.Fprint(s.out, "Modules to reload:\nall-except-skipped\n")
	} else {
		fmt.Fprintf(s.out, "Modules to reload:\n%s\n", strings.Join(s.reloader.Reloadable(), " "))
	}

	fmt.Fprintf(s.out, "\nModules to skip:\n%s\n", strings.Join(s.reloader.Skipped(), " "))
}
