package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/graft/internal/config"
	"github.com/mouse-blink/graft/internal/lang"
	m "github.com/mouse-blink/graft/internal/model"
	"github.com/mouse-blink/graft/internal/shell"
)

func TestNewShellCmd(t *testing.T) {
	cmd := newShellCmd()

	assert.Equal(t, "shell", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("line-history"))
}

func TestNewSession_ShellSeesReload(t *testing.T) {
	root := writeUnits(t, map[string]string{"geometry": squareUnit})

	cfg := config.DefaultConfig()
	cfg.Roots = []string{root}
	cfg.Print = true

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())

	s, err := newSession(cmd, cfg, sessionOptions{})
	require.NoError(t, err)
	assert.NotContains(t, s.loader.Units().Names(), "geometry")

	sh, err := shell.New(&shell.Config{Loader: s.loader, Reloader: s.reloader, Scope: s.scope, Out: &out})
	require.NoError(t, err)

	require.NoError(t, sh.Execute(context.Background(), "from geometry import square"))

	v, err := lang.Eval("square(3)", s.scope)
	require.NoError(t, err)
	assert.Equal(t, "9", m.Repr(v))
}

func TestNewSession_ImportAllAppliesLists(t *testing.T) {
	root := writeUnits(t, map[string]string{"geometry": squareUnit, "extra": squareUnit})

	cfg := config.DefaultConfig()
	cfg.Roots = []string{root}
	cfg.Skip = []string{"extra"}

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())

	s, err := newSession(cmd, cfg, sessionOptions{importAll: true})
	require.NoError(t, err)

	assert.Subset(t, s.loader.Units().Names(), []string{"extra", "geometry"})
	assert.Contains(t, s.reloader.Skipped(), "extra")

	states := map[string]m.UnitState{}
	for _, st := range s.reloader.Status() {
		states[st.Name] = st.State
	}

	assert.Equal(t, m.StateSkipped, states["extra"])
	assert.Equal(t, m.StateClean, states["geometry"])
}
