package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/graft/internal/adapter"
	"github.com/mouse-blink/graft/internal/config"
	"github.com/mouse-blink/graft/internal/domain"
	m "github.com/mouse-blink/graft/internal/model"
)

// session is a loader and reloader wired from the configuration.
type session struct {
	cfg      *config.Config
	loader   adapter.UnitLoader
	reloader domain.Reloader
	scope    *m.Namespace
	logger   *slog.Logger
}

type sessionOptions struct {
	// importAll loads every discovered unit before the reloader primes.
	importAll bool
	// quiet drops reports and failure diagnostics, for full-screen output.
	quiet bool
}

func newSession(cmd *cobra.Command, cfg *config.Config, opts sessionOptions) (*session, error) {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	roots := make([]m.Path, 0, len(cfg.Roots))
	for _, r := range cfg.Roots {
		roots = append(roots, m.Path(r))
	}

	loader := adapter.NewUnitLoader(fsAdapter, roots, adapter.WithExtensions(cfg.Extensions...))

	if opts.importAll {
		names, err := loader.Discover()
		if err != nil {
			return nil, fmt.Errorf("failed to discover units: %w", err)
		}

		for _, name := range names {
			if _, err := loader.Import(cmd.Context(), name); err != nil {
				logger.Warn("failed to import unit", "unit", name, "error", err)
			}
		}
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	green := color.New(color.FgGreen)

	report := domain.Reporter(func(msg string) { _, _ = green.Fprintln(out, msg) }, logger, cfg.Print, cfg.Log)

	if opts.quiet {
		report = nil
		errOut = io.Discard
	}

	scope := m.NewNamespace()
	reloader := domain.NewReloader(loader.Units(), loader, fsAdapter,
		domain.WithSettings(cfg.Settings),
		domain.WithReporter(report),
		domain.WithErrorOutput(errOut),
		domain.WithLogger(logger),
		domain.WithInjectTarget(scope),
		domain.WithSourceExtensions(cfg.Extensions...),
	)
	cfg.Apply(reloader)

	return &session{
		cfg:      cfg,
		loader:   loader,
		reloader: reloader,
		scope:    scope,
		logger:   logger,
	}, nil
}
