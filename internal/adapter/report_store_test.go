package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/graft/internal/model"
)

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "state", "history.yaml"))
	rs := NewReportStore()

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := m.PassReport{
		ID:       "p1",
		Started:  started,
		Duration: 1500 * time.Millisecond,
		Reloaded: []string{"m"},
		Patched:  3,
	}
	second := m.PassReport{
		ID:      "p2",
		Started: started.Add(time.Minute),
		Forced:  true,
		Failed:  []m.UnitFailure{{Name: "broken", Error: "syntax error at 1:4"}},
	}

	require.NoError(t, rs.SaveReports(path, []m.PassReport{first}))
	require.NoError(t, rs.SaveReports(path, []m.PassReport{second}))

	got, err := rs.LoadReports(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, first.ID, got[0].ID)
	assert.True(t, first.Started.Equal(got[0].Started))
	assert.Equal(t, first.Duration, got[0].Duration)
	assert.Equal(t, []string{"m"}, got[0].Reloaded)
	assert.Equal(t, 3, got[0].Patched)

	assert.True(t, got[1].Forced)
	assert.Equal(t, []string{"broken"}, got[1].FailedNames())
	assert.Equal(t, "syntax error at 1:4", got[1].Failed[0].Error)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "---\n"))
}

func TestLocalReportStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	got, err := NewReportStore().LoadReports(m.Path(filepath.Join(t.TempDir(), "none.yaml")))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalReportStore_LoadRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.yaml")
	writeTestFile(t, path, "---\nid: x\nduration: forever\n")

	_, err := NewReportStore().LoadReports(m.Path(path))
	require.ErrorContains(t, err, "invalid duration")
}

func TestLocalReportStore_SaveNothing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.yaml")
	require.NoError(t, NewReportStore().SaveReports(m.Path(path), nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
