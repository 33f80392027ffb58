package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mouse-blink/graft/internal/adapter"
	m "github.com/mouse-blink/graft/internal/model"
)

// DefaultInterval is the polling period of a Watcher.
const DefaultInterval = time.Second

// DefaultDebounce is the minimum spacing between two passes.
const DefaultDebounce = 100 * time.Millisecond

// Watcher drives a Reloader outside an interactive loop, on a fixed
// interval and on file change notifications.
type Watcher struct {
	reloader Reloader
	files    adapter.FileWatcher
	interval time.Duration
	limiter  *rate.Limiter
	onPass   func(m.PassReport)
	logger   *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the polling period. Zero disables polling.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.interval = d }
}

// WithFileWatcher adds change notifications as a trigger.
func WithFileWatcher(fw adapter.FileWatcher) WatcherOption {
	return func(w *Watcher) { w.files = fw }
}

// WithPassLimit caps how often passes may run.
func WithPassLimit(every time.Duration) WatcherOption {
	return func(w *Watcher) { w.limiter = rate.NewLimiter(rate.Every(every), 1) }
}

// OnPass registers a callback for every pass that reloaded or failed
// something.
func OnPass(fn func(m.PassReport)) WatcherOption {
	return func(w *Watcher) { w.onPass = fn }
}

// WithWatchLogger sets the structured logger.
func WithWatchLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = logger.With("logger", "autoreload") }
}

// NewWatcher creates a watcher over r.
func NewWatcher(r Reloader, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		reloader: r,
		interval: DefaultInterval,
		limiter:  rate.NewLimiter(rate.Every(DefaultDebounce), 1),
		logger:   discardLogger(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run blocks until ctx is done. Triggers that arrive while a pass is
// pending are coalesced into it.
func (w *Watcher) Run(ctx context.Context) error {
	if w.files != nil {
		for _, st := range w.reloader.Status() {
			if st.State == m.StateUnresolvable || st.Path == "" {
				continue
			}

			if err := w.files.Add(st.Path); err != nil {
				w.logger.Warn("cannot watch unit", "unit", st.Name, "error", err)
			}
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	triggers := make(chan struct{}, 1)

	trigger := func() {
		select {
		case triggers <- struct{}{}:
		default:
		}
	}

	if w.interval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(w.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
					trigger()
				}
			}
		})
	}

	if w.files != nil {
		g.Go(func() error {
			errs := w.files.Errors()

			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case path, ok := <-w.files.Events():
					if !ok {
						return nil
					}

					w.logger.Debug("source changed", "path", path)
					trigger()
				case err, ok := <-errs:
					if !ok {
						errs = nil
						continue
					}

					w.logger.Warn("watch error", "error", err)
				}
			}
		})
	}

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-triggers:
			}

			// Wait only fails once ctx is ending.
			if err := w.limiter.Wait(ctx); err != nil {
				<-ctx.Done()
				return ctx.Err()
			}

			report := w.reloader.Check(ctx, false)
			if !report.Empty() && w.onPass != nil {
				w.onPass(report)
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	return err
}
