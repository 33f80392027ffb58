package domain

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	m "github.com/mouse-blink/graft/internal/model"
)

// Option configures a Reloader.
type Option func(*reloader)

// WithReporter sets the sink notified once per successfully reloaded unit.
func WithReporter(fn func(string)) Option {
	return func(r *reloader) { r.report = fn }
}

// WithErrorOutput sets where reload failures are written. Defaults to
// os.Stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(r *reloader) { r.errOut = w }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *reloader) { r.logger = logger.With("logger", "autoreload") }
}

// WithInjectTarget sets the namespace that receives new identifiers in
// complete mode.
func WithInjectTarget(ns *m.Namespace) Option {
	return func(r *reloader) { r.inject = ns }
}

// WithSettings sets the initial settings.
func WithSettings(s Settings) Option {
	return func(r *reloader) { r.settings = s }
}

// WithSourceExtensions restricts which unit files are considered source.
func WithSourceExtensions(exts ...string) Option {
	return func(r *reloader) { r.exts = exts }
}

// WithPassIDs overrides how pass identifiers are generated.
func WithPassIDs(fn func() string) Option {
	return func(r *reloader) { r.newID = fn }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultPassID() string {
	return uuid.NewString()
}

var defaultErrorOutput io.Writer = os.Stderr
