// Package shell is the interactive host of the reloader: a readline loop
// evaluating expression-language lines in a user scope, with the
// %autoreload and %aimport magics and reload checks before every line.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mouse-blink/graft/internal/adapter"
	"github.com/mouse-blink/graft/internal/domain"
	"github.com/mouse-blink/graft/internal/lang"
	m "github.com/mouse-blink/graft/internal/model"
)

// ErrExit is returned by Execute for the exit and quit commands.
var ErrExit = errors.New("exit requested")

// Config holds Shell configuration.
type Config struct {
	Loader   adapter.UnitLoader
	Reloader domain.Reloader
	// Scope is the user namespace. It should also be the reloader's
	// injection target.
	Scope       *m.Namespace
	Out         io.Writer
	Err         io.Writer
	Logger      *slog.Logger
	HistoryFile string
}

// Shell is an interactive session.
type Shell struct {
	loader   adapter.UnitLoader
	reloader domain.Reloader
	scope    *m.Namespace
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	history  string
	known    map[string]struct{}
}

// New creates a shell. Units already loaded count as seen.
func New(cfg *Config) (*Shell, error) {
	if cfg.Loader == nil {
		return nil, fmt.Errorf("loader is required")
	}

	if cfg.Reloader == nil {
		return nil, fmt.Errorf("reloader is required")
	}

	s := &Shell{
		loader:   cfg.Loader,
		reloader: cfg.Reloader,
		scope:    cfg.Scope,
		out:      cfg.Out,
		errOut:   cfg.Err,
		logger:   cfg.Logger,
		history:  cfg.HistoryFile,
		known:    make(map[string]struct{}),
	}

	if s.scope == nil {
		s.scope = m.NewNamespace()
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	if s.errOut == nil {
		s.errOut = os.Stderr
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, name := range s.loader.Units().Names() {
		s.known[name] = struct{}{}
	}

	return s, nil
}

// Scope returns the user namespace.
func (s *Shell) Scope() *m.Namespace { return s.scope }

func completer() *readline.PrefixCompleter {
	modes := []readline.PrefixCompleterInterface{}
	for _, mode := range []string{"now", "off", "explicit", "all", "complete", "-p", "-l"} {
		modes = append(modes, readline.PcItem(mode))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("%autoreload", modes...),
		readline.PcItem("%aimport"),
		readline.PcItem("import"),
		readline.PcItem("from"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// Run starts the read-eval-print loop and returns on EOF or exit.
func (s *Shell) Run(ctx context.Context) error {
	cyan := color.New(color.FgCyan).SprintFunc()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cyan("graft> "),
		HistoryFile:       s.history,
		AutoComplete:      completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            s.out,
		Stderr:            s.errOut,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.printWelcome()

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}

			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if err := s.Execute(ctx, line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}

			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(s.errOut, "%s %v\n", red("Error:"), err)
		}
	}
}

// Execute runs one input line. Magics act on the reloader directly; any
// other line is preceded by a reload check when autoreload is enabled.
// Units loaded by the line are baselined afterwards.
func (s *Shell) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	defer s.baselineNew()

	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch word {
	case "%autoreload":
		return s.autoreload(ctx, rest)
	case "%aimport":
		return s.aimport(ctx, rest)
	case "help", "?":
		s.printHelp()
		return nil
	case "exit", "quit":
		return ErrExit
	}

	s.preRun(ctx)

	switch word {
	case "import":
		return s.importLine(ctx, rest)
	case "from":
		return s.fromLine(ctx, rest)
	}

	v, err := lang.Eval(line, s.scope)
	if err != nil {
		return err
	}

	if v != nil {
		fmt.Fprintln(s.out, m.Repr(v))
	}

	return nil
}

func (s *Shell) preRun(ctx context.Context) {
	if !s.reloader.Settings().Enabled {
		return
	}

	s.reloader.Check(ctx, false)
}

// baselineNew records modification times for units first seen after the
// previous line.
func (s *Shell) baselineNew() {
	var fresh []string

	for _, name := range s.loader.Units().Names() {
		if _, ok := s.known[name]; ok {
			continue
		}

		s.known[name] = struct{}{}
		fresh = append(fresh, name)
	}

	if len(fresh) > 0 {
		s.reloader.Baseline(fresh...)
		s.logger.Debug("baselined units", "logger", "autoreload", "units", fresh)
	}
}

func (s *Shell) printReport(msg string) {
	color.New(color.FgCyan).Fprintln(s.out, msg)
}

func (s *Shell) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(s.out, "\n%s\n", cyan("graft interactive shell"))
	fmt.Fprintf(s.out, "autoreload is %s; type 'help' for commands, 'exit' to quit\n\n", s.reloader.Settings())
}

func (s *Shell) printHelp() {
	green := color.New(color.FgGreen).SprintFunc()

	commands := []struct {
		name string
		desc string
	}{
		{"%autoreload [mode] [-p] [-l]", "set the mode (now, off, explicit, all, complete) or check now"},
		{"%aimport", "list units to reload and to skip"},
		{"%aimport a, -b", "mark a reloadable and import it, skip b"},
		{"import a.b [as x]", "import a unit into the session"},
		{"from a import x, y", "bind names of a unit, or * for all public names"},
		{"exit, quit", "leave the shell"},
	}

	fmt.Fprintln(s.out)

	for _, c := range commands {
		fmt.Fprintf(s.out, "  %s  %s\n", green(c.name), c.desc)
	}

	fmt.Fprintln(s.out)
}
