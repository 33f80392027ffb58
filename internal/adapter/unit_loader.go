package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/graft/internal/lang"
	m "github.com/mouse-blink/graft/internal/model"
)

// UnitExecutor re-executes a unit's current source into a fresh namespace.
// It must not touch the unit's live namespace.
type UnitExecutor interface {
	Execute(ctx context.Context, unit *m.Unit) (*m.Namespace, error)
}

// UnitLoader imports units from YAML sources and re-executes them on demand.
type UnitLoader interface {
	UnitExecutor

	// Import loads name (and whatever it imports) unless already loaded.
	Import(ctx context.Context, name string) (*m.Unit, error)

	// Discover lists the unit names found under the search roots.
	Discover() ([]string, error)

	Units() *m.Units
	Heap() *m.Heap
	Roots() []m.Path
}

// ErrImportCycle is returned when a unit transitively imports itself.
var ErrImportCycle = errors.New("import cycle detected")

type unitLoader struct {
	fs    SourceFSAdapter
	roots []m.Path
	exts  []string
	units *m.Units
	heap  *m.Heap
	mu    sync.Mutex
}

// LoaderOption configures NewUnitLoader.
type LoaderOption func(*unitLoader)

// WithExtensions overrides the recognised source extensions.
func WithExtensions(exts ...string) LoaderOption {
	return func(l *unitLoader) {
		if len(exts) > 0 {
			l.exts = exts
		}
	}
}

// WithUnits shares an existing unit table.
func WithUnits(units *m.Units) LoaderOption {
	return func(l *unitLoader) { l.units = units }
}

// NewUnitLoader creates a loader searching roots in order. The native
// builtins unit is registered immediately.
func NewUnitLoader(fs SourceFSAdapter, roots []m.Path, opts ...LoaderOption) UnitLoader {
	l := &unitLoader{
		fs:    fs,
		roots: roots,
		exts:  DefaultExtensions,
		units: m.NewUnits(),
		heap:  m.NewHeap(),
	}

	for _, opt := range opts {
		opt(l)
	}

	if _, ok := l.units.Get(lang.BuiltinsUnit); !ok {
		builtins := m.NewUnit(lang.BuiltinsUnit, "")
		builtins.Namespace.Replace(lang.Builtins())
		l.units.Add(builtins)
	}

	return l
}

func (l *unitLoader) Units() *m.Units  { return l.units }
func (l *unitLoader) Heap() *m.Heap    { return l.heap }
func (l *unitLoader) Roots() []m.Path  { return l.roots }

type importChainKey struct{}

func importChain(ctx context.Context) []string {
	chain, _ := ctx.Value(importChainKey{}).([]string)
	return chain
}

func withImport(ctx context.Context, name string) (context.Context, error) {
	chain := importChain(ctx)

	for i, n := range chain {
		if n == name {
			cycle := append(append([]string(nil), chain[i:]...), name)
			return ctx, fmt.Errorf("%w: %s", ErrImportCycle, strings.Join(cycle, " -> "))
		}
	}

	next := append(append([]string(nil), chain...), name)

	return context.WithValue(ctx, importChainKey{}, next), nil
}

func (l *unitLoader) Import(ctx context.Context, name string) (*m.Unit, error) {
	if u, ok := l.units.Get(name); ok {
		return u, nil
	}

	ctx, err := withImport(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.fs.FindUnit(l.roots, name, l.exts)
	if err != nil {
		return nil, err
	}

	ns, err := l.executeFile(ctx, name, path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// A concurrent import may have won the race.
	if u, ok := l.units.Get(name); ok {
		return u, nil
	}

	unit := m.NewUnit(name, string(path))
	unit.Namespace.Replace(ns)
	ns.Forward(unit.Namespace)
	l.units.Add(unit)

	return unit, nil
}

func (l *unitLoader) Execute(ctx context.Context, unit *m.Unit) (*m.Namespace, error) {
	if unit.File == "" {
		return nil, fmt.Errorf("unit %s has no source file", unit.Name)
	}

	ctx, err := withImport(ctx, unit.Name)
	if err != nil {
		return nil, err
	}

	return l.executeFile(ctx, unit.Name, m.Path(unit.File))
}

func (l *unitLoader) Discover() ([]string, error) {
	seen := make(map[string]m.Path)

	for _, root := range l.roots {
		files, err := l.fs.UnitFiles(root, l.exts)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}

		for name, path := range files {
			if _, ok := seen[name]; !ok {
				seen[name] = path
			}
		}
	}

	return SortedNames(seen), nil
}

func (l *unitLoader) executeFile(ctx context.Context, name string, path m.Path) (*m.Namespace, error) {
	src, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unit %s: failed to read %s: %w", name, path, err)
	}

	stmts, err := decodeStatements(src)
	if err != nil {
		return nil, fmt.Errorf("unit %s: failed to parse %s: %w", name, path, err)
	}

	ns := m.NewNamespace()
	ex := &executor{loader: l, ctx: ctx, unit: name, globals: ns}

	for i, st := range stmts {
		if err := ex.run(st, ex.bindGlobal); err != nil {
			return nil, fmt.Errorf("unit %s: statement %d (%s): %w", name, i+1, st.describe(), err)
		}
	}

	return ns, nil
}

func decodeStatements(src []byte) ([]statement, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, err
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}

	return decodeStatementList(root)
}

func decodeStatementList(n *yaml.Node) ([]statement, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of statements", n.Line)
	}

	out := make([]statement, 0, len(n.Content))

	for _, item := range n.Content {
		var st statement
		if err := item.Decode(&st); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}

		st.line = item.Line

		if _, _, err := st.kind(); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}

		out = append(out, st)
	}

	return out, nil
}
