package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/graft/internal/adapter"
	"github.com/mouse-blink/graft/internal/domain"
	m "github.com/mouse-blink/graft/internal/model"
)

var baseTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type session struct {
	t        *testing.T
	root     string
	shell    *Shell
	reloader domain.Reloader
	out      bytes.Buffer
	errs     bytes.Buffer
	tick     int
}

func newSession(t *testing.T, files map[string]string, settings domain.Settings) *session {
	t.Helper()

	s := &session{t: t, root: t.TempDir()}
	for name, src := range files {
		s.writeAt(name, src, baseTime)
	}

	fs := adapter.NewLocalSourceFSAdapter()
	loader := adapter.NewUnitLoader(fs, []m.Path{m.Path(s.root)})
	scope := m.NewNamespace()

	s.reloader = domain.NewReloader(loader.Units(), loader, fs,
		domain.WithSettings(settings),
		domain.WithInjectTarget(scope),
		domain.WithErrorOutput(&s.errs),
	)

	sh, err := New(&Config{Loader: loader, Reloader: s.reloader, Scope: scope, Out: &s.out, Err: &s.errs})
	require.NoError(t, err)

	s.shell = sh

	return s
}

func (s *session) writeAt(name, src string, at time.Time) {
	s.t.Helper()

	path := filepath.Join(s.root, name+".yaml")
	require.NoError(s.t, os.WriteFile(path, []byte(src), 0o600))
	require.NoError(s.t, os.Chtimes(path, at, at))
}

func (s *session) edit(name, src string) {
	s.t.Helper()

	s.tick++
	s.writeAt(name, src, baseTime.Add(time.Duration(s.tick)*time.Second))
}

// run executes line and returns what it printed.
func (s *session) run(line string) string {
	s.t.Helper()

	s.out.Reset()
	require.NoError(s.t, s.shell.Execute(context.Background(), line), line)

	return s.out.String()
}

const geometry = "- def: square\n  params: [x]\n  body: x * x\n- def: _helper\n  body: '0'\n"

func TestShell_Execute_Expressions(t *testing.T) {
	s := newSession(t, nil, domain.Settings{})

	assert.Equal(t, "3\n", s.run("1 + 2"))
	assert.Equal(t, "", s.run("x = 4"))
	assert.Equal(t, "\"a\"\n", s.run(`"a"`))
	assert.Equal(t, "8\n", s.run("x * 2"))
	assert.Equal(t, "", s.run("   "))

	err := s.shell.Execute(context.Background(), "undefined_name")
	require.Error(t, err)

	require.ErrorIs(t, s.shell.Execute(context.Background(), "exit"), ErrExit)
}

func TestShell_Execute_Imports(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry}, domain.Settings{})

	tests := []struct {
		line string
		eval string
		want string
	}{
		{line: "import geometry", eval: "geometry.square(3)", want: "9\n"},
		{line: "import geometry as g", eval: "g.square(2)", want: "4\n"},
		{line: "from geometry import square", eval: "square(5)", want: "25\n"},
		{line: "from geometry import square as sq", eval: "sq(6)", want: "36\n"},
		{line: "from geometry import *", eval: "hasattr(geometry, \"square\")", want: "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s.run(tt.line)
			assert.Equal(t, tt.want, s.run(tt.eval))
		})
	}

	assert.False(t, s.shell.Scope().Has("_helper"), "star imports skip private names")
}

func TestShell_Execute_ImportErrors(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry}, domain.Settings{})

	tests := []struct {
		line string
		want string
	}{
		{line: "import", want: "import: missing unit name"},
		{line: "import missing", want: "failed to import missing"},
		{line: "import a b", want: `invalid import clause "a b"`},
		{line: "from geometry", want: "from: expected"},
		{line: "from geometry import cube", want: `cannot import name "cube" from "geometry"`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			err := s.shell.Execute(context.Background(), tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestShell_Autoreload_Modes(t *testing.T) {
	s := newSession(t, nil, domain.Settings{})

	tests := []struct {
		line string
		want domain.Settings
	}{
		{line: "%autoreload 1", want: domain.Settings{Enabled: true}},
		{line: "%autoreload all", want: domain.Settings{Enabled: true, CheckAll: true}},
		{line: "%autoreload 3 -p", want: domain.Settings{Enabled: true, CheckAll: true, AutoloadNew: true}},
		{line: "%autoreload OFF", want: domain.Settings{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s.run(tt.line)
			assert.Equal(t, tt.want, s.reloader.Settings())
		})
	}

	err := s.shell.Execute(context.Background(), "%autoreload sometimes")
	require.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestShell_Autoreload_ReloadsBeforeLine(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry}, domain.Settings{})

	s.run("%autoreload 2 --print")
	s.run("from geometry import square")
	assert.Equal(t, "9\n", s.run("square(3)"))

	s.edit("geometry", "- def: square\n  params: [x]\n  body: x * x * x\n")
	assert.Equal(t, "Reloading 'geometry'.\n27\n", s.run("square(3)"))

	assert.Equal(t, "27\n", s.run("square(3)"), "no reload without a new edit")
}

func TestShell_Autoreload_FailureDoesNotSurface(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry}, domain.Settings{})

	s.run("%autoreload 2")
	s.run("import geometry")

	s.edit("geometry", "- def: square\n  params: [x\n")
	assert.Equal(t, "1\n", s.run("1"))
	assert.Contains(t, s.errs.String(), "[autoreload of geometry failed: ")
	assert.Equal(t, "16\n", s.run("geometry.square(4)"))
}

func TestShell_Autoreload_NowForcesCheck(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry}, domain.Settings{})

	s.run("from geometry import square")
	s.edit("geometry", "- def: square\n  params: [x]\n  body: x + x\n")

	assert.Equal(t, "9\n", s.run("square(3)"), "disabled autoreload leaves code alone")

	s.run("%autoreload")
	assert.Equal(t, "6\n", s.run("square(3)"))
	assert.Equal(t, []string{"geometry"}, s.reloader.Reloaded())
}

func TestShell_Autoreload_CompleteInjectsNewNames(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry}, domain.Settings{})

	s.run("%autoreload complete")
	s.run("import geometry")

	s.edit("geometry", geometry+"- def: cube\n  params: [x]\n  body: x * x * x\n")
	assert.Equal(t, "8\n", s.run("cube(2)"))
}

func TestShell_Aimport(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry, "shapes": "- let: n\n  value: 1\n"}, domain.Settings{})

	s.run("%autoreload 1")
	s.run("%aimport geometry, -shapes")

	assert.Equal(t, "Modules to reload:\ngeometry\n\nModules to skip:\n__main__ __mp_main__ builtins shapes\n", s.run("%aimport"))
	assert.Equal(t, "4\n", s.run("geometry.square(2)"))

	s.run("%autoreload 2")
	assert.Contains(t, s.run("%aimport"), "Modules to reload:\nall-except-skipped\n")

	err := s.shell.Execute(context.Background(), "%aimport nothere")
	require.Error(t, err)
}

func TestShell_Execute_BaselinesNewUnits(t *testing.T) {
	s := newSession(t, map[string]string{"geometry": geometry}, domain.Settings{Enabled: true, CheckAll: true})

	s.run("import geometry")

	s.edit("geometry", "- def: square\n  params: [x]\n  body: '0'\n")
	assert.Equal(t, "0\n", s.run("geometry.square(3)"), "units imported from the shell are tracked from their load time")
}
