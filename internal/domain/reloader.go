package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/mouse-blink/graft/internal/adapter"
	m "github.com/mouse-blink/graft/internal/model"
)

// Reloader detects changed unit sources and re-executes them, patching
// every previously handed out object in place so existing references see
// the new behavior.
type Reloader interface {
	// Check runs one pass. Without forceAll the pass is a no-op unless the
	// reloader is enabled, and only the allow-list is checked unless
	// CheckAll is set.
	Check(ctx context.Context, forceAll bool) m.PassReport
	// Prime records the current modification time of every loaded unit
	// without reloading anything.
	Prime()
	// Baseline records the current modification time of the given units.
	Baseline(names ...string)

	Reloaded() []string
	Failed() []string
	Pass() m.PassReport
	Status() []m.UnitStatus

	MarkSkipped(name string)
	MarkReloadable(name string)
	Reloadable() []string
	Skipped() []string

	Settings() Settings
	SetSettings(s Settings)
	SetReporter(fn func(string))
}

type reloader struct {
	pass sync.Mutex // held for a whole pass
	mu   sync.RWMutex

	units    *m.Units
	exec     adapter.UnitExecutor
	fs       adapter.SourceFSAdapter
	tracker  *Tracker
	patcher  Patcher
	registry *Registry

	settings Settings
	report   func(string)
	errOut   io.Writer
	logger   *slog.Logger
	inject   *m.Namespace
	exts     []string
	newID    func() string

	last m.PassReport
}

// NewReloader builds a reloader over units, re-executing them with exec.
// Every unit already loaded is primed so that only later edits trigger a
// reload.
func NewReloader(units *m.Units, exec adapter.UnitExecutor, fs adapter.SourceFSAdapter, opts ...Option) Reloader {
	r := &reloader{
		units:   units,
		exec:    exec,
		fs:      fs,
		tracker: NewTracker(),
		errOut:  defaultErrorOutput,
		logger:  discardLogger(),
		exts:    adapter.DefaultExtensions,
		newID:   defaultPassID,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.registry == nil {
		r.registry = NewRegistry()
	}

	r.patcher = NewPatcher(r.logger)
	r.Prime()

	return r
}

func (r *reloader) Settings() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings
}

func (r *reloader) SetSettings(s Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = s
}

func (r *reloader) SetReporter(fn func(string)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.report = fn
}

func (r *reloader) MarkSkipped(name string)    { r.registry.MarkSkipped(name) }
func (r *reloader) MarkReloadable(name string) { r.registry.MarkReloadable(name) }
func (r *reloader) Reloadable() []string       { return r.registry.Reloadable() }
func (r *reloader) Skipped() []string          { return r.registry.Skipped() }

func (r *reloader) Pass() m.PassReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.last
}

func (r *reloader) Reloaded() []string {
	return append([]string(nil), r.Pass().Reloaded...)
}

func (r *reloader) Failed() []string {
	return r.Pass().FailedNames()
}

// source resolves the backing file of a unit. Units without a file, with
// a foreign extension or whose file cannot be stat'ed are unresolvable.
func (r *reloader) source(unit *m.Unit) (m.SourceInfo, bool) {
	if unit.File == "" {
		return m.SourceInfo{}, false
	}

	path := m.Path(unit.File)
	if !adapter.HasExtension(path, r.exts) {
		return m.SourceInfo{}, false
	}

	info, err := r.fs.FileInfo(path)
	if err != nil {
		return m.SourceInfo{}, false
	}

	return m.SourceInfo{Path: path, ModTime: info.ModTime()}, true
}

func (r *reloader) Prime() {
	r.pass.Lock()
	defer r.pass.Unlock()

	r.scan(context.Background(), r.units.Names(), nil)
}

func (r *reloader) Baseline(names ...string) {
	for _, name := range names {
		unit, ok := r.units.Get(name)
		if !ok {
			continue
		}

		if src, ok := r.source(unit); ok {
			r.registry.SetModTime(name, src.ModTime)
		}
	}
}

func (r *reloader) Check(ctx context.Context, forceAll bool) m.PassReport {
	r.pass.Lock()
	defer r.pass.Unlock()

	settings := r.Settings()
	if !settings.Enabled && !forceAll {
		return m.PassReport{}
	}

	names := r.registry.Reloadable()
	if forceAll || settings.CheckAll {
		names = r.units.Names()
	}

	report := m.PassReport{
		ID:      r.newID(),
		Started: time.Now(),
		Forced:  forceAll,
	}

	logger := r.logger.With("pass", report.ID)

	r.scan(ctx, names, func(unit *m.Unit, src m.SourceInfo) {
		patched, err := r.reload(ctx, unit, settings)
		if err != nil {
			r.registry.SetFailed(unit.Name, src.ModTime)
			report.Failed = append(report.Failed, m.UnitFailure{Name: unit.Name, Error: err.Error()})

			color.New(color.FgRed).Fprint(r.errOut, diagnostic(unit.Name, err))
			logger.Warn("reload failed", "unit", unit.Name, "path", src.Path, "error", err)

			return
		}

		r.registry.ClearFailed(unit.Name)
		report.Reloaded = append(report.Reloaded, unit.Name)
		report.Patched += patched

		r.emit(fmt.Sprintf("Reloading '%s'.", unit.Name))
		logger.Info("reloaded unit", "unit", unit.Name, "patched", patched)
	})

	report.Duration = time.Since(report.Started)

	if len(report.Reloaded)+len(report.Failed) > 0 {
		logger.Debug("pass finished",
			"reloaded", len(report.Reloaded),
			"failed", len(report.Failed),
			"tracked", r.tracker.Len(),
			"duration", report.Duration)
	}

	r.mu.Lock()
	r.last = report
	r.mu.Unlock()

	return report
}

// scan walks names and calls reload for every unit whose source changed
// since it was last seen. The new modification time is recorded before
// reload runs, so a failing version is attempted once. A nil reload only
// records modification times.
func (r *reloader) scan(ctx context.Context, names []string, reload func(*m.Unit, m.SourceInfo)) {
	for _, name := range names {
		if ctx.Err() != nil {
			return
		}

		unit, ok := r.units.Get(name)
		if !ok || r.registry.IsSkipped(name) {
			continue
		}

		src, ok := r.source(unit)
		if !ok {
			continue
		}

		cached, seen := r.registry.ModTime(name)
		if !seen {
			r.registry.SetModTime(name, src.ModTime)
			continue
		}

		if !src.ModTime.After(cached) {
			continue
		}

		if failedAt, failed := r.registry.FailedAt(name); failed && failedAt.Equal(src.ModTime) {
			continue
		}

		r.registry.SetModTime(name, src.ModTime)

		if reload != nil {
			reload(unit, src)
		}
	}
}

func (r *reloader) emit(msg string) {
	r.mu.RLock()
	fn := r.report
	r.mu.RUnlock()

	if fn != nil {
		fn(msg)
	}
}

// reload re-executes one unit. On failure the live namespace is restored
// to its previous contents. On success the namespace takes the new
// bindings and every tracked old object is patched toward its new
// counterpart.
func (r *reloader) reload(ctx context.Context, unit *m.Unit, settings Settings) (int, error) {
	live := unit.Namespace
	before := live.Snapshot()

	for _, b := range before {
		r.tracker.Record(unit.Name, b.Name, b.Value)
	}

	fresh, err := r.execute(ctx, unit)
	if err != nil {
		live.Restore(before)
		return 0, err
	}

	live.Replace(fresh)
	fresh.Forward(live)

	prior := make(map[string]struct{}, len(before))
	for _, b := range before {
		prior[b.Name] = struct{}{}
	}

	updated := make(map[m.WeakRef]struct{})
	patched := 0

	for _, b := range live.Snapshot() {
		for _, old := range r.tracker.Entries(unit.Name, b.Name) {
			if m.Same(old, b.Value) {
				continue
			}

			ref, _ := m.MakeWeak(old)
			if _, done := updated[ref]; done {
				continue
			}

			updated[ref] = struct{}{}

			if r.patcher.Patch(old, b.Value) {
				patched++
			}
		}

		if settings.AutoloadNew {
			r.injectNew(unit.Name, b, prior)
		}
	}

	return patched, nil
}

// injectNew binds an identifier that no earlier version of the unit
// defined into the interactive namespace.
func (r *reloader) injectNew(unit string, b m.Binding, prior map[string]struct{}) {
	if r.inject == nil || strings.HasPrefix(b.Name, "_") {
		return
	}

	if _, ok := prior[b.Name]; ok || r.tracker.Has(unit, b.Name) {
		return
	}

	if m.IsIdentitySensitive(b.Value) {
		return
	}

	r.inject.Set(b.Name, b.Value)
	r.logger.Debug("injected new name", "unit", unit, "name", b.Name)
}

func (r *reloader) execute(ctx context.Context, unit *m.Unit) (ns *m.Namespace, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v\n%s", p, debug.Stack())
		}
	}()

	return r.exec.Execute(ctx, unit)
}

func (r *reloader) Status() []m.UnitStatus {
	names := r.units.Names()
	out := make([]m.UnitStatus, 0, len(names))

	for _, name := range names {
		unit, _ := r.units.Get(name)
		if unit == nil {
			continue
		}

		st := m.UnitStatus{Name: name, Path: m.Path(unit.File)}
		st.ModTime, _ = r.registry.ModTime(name)

		src, resolvable := r.source(unit)

		switch {
		case r.registry.IsSkipped(name):
			st.State = m.StateSkipped
		case !resolvable:
			st.State = m.StateUnresolvable
		default:
			st.State = m.StateClean

			if failedAt, failed := r.registry.FailedAt(name); failed && failedAt.Equal(src.ModTime) {
				st.State = m.StateFailed
				st.FailedAt = failedAt
			} else if !st.ModTime.IsZero() && src.ModTime.After(st.ModTime) {
				st.State = m.StateDue
			}
		}

		if resolvable {
			if hash, err := r.fs.HashFile(src.Path); err == nil {
				st.Hash = hash
			}
		}

		out = append(out, st)
	}

	return out
}

// diagnostic renders a failed reload with the chain of wrapped causes,
// outermost first.
func diagnostic(unit string, err error) string {
	trace := errorTrace(err)
	if len(trace) < 2 {
		return fmt.Sprintf("[autoreload of %s failed: %v]\n", unit, err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "[autoreload of %s failed: %v\nTraceback (outermost first):\n", unit, err)

	for _, line := range trace {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	b.WriteString("]\n")

	return b.String()
}

// errorTrace splits a wrapped error into one entry per layer. A layer
// whose text does not end with its cause's text ends the chain.
func errorTrace(err error) []string {
	var lines []string

	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)

		if next == nil || !strings.HasSuffix(msg, next.Error()) {
			lines = append(lines, msg)
			break
		}

		if own := strings.TrimSuffix(strings.TrimSuffix(msg, next.Error()), ": "); own != "" {
			lines = append(lines, own)
		}

		err = next
	}

	return lines
}
