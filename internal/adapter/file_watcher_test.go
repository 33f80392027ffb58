package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/graft/internal/model"
)

func TestFSNotifyWatcher_ReportsUnitWrites(t *testing.T) {
	root := t.TempDir()
	unit := filepath.Join(root, "m.yaml")
	other := filepath.Join(root, "notes.txt")
	writeTestFile(t, unit, "[]\n")

	fw, err := NewFSNotifyWatcher(nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = fw.Close() })

	require.NoError(t, fw.Add(m.Path(unit)))
	require.NoError(t, fw.Add(m.Path(unit)), "adding the same directory twice is a no-op")

	writeTestFile(t, other, "ignored")
	require.NoError(t, os.WriteFile(unit, []byte("- let: x\n  value: 1\n"), 0o644))

	select {
	case got := <-fw.Events():
		assert.Equal(t, m.Path(unit), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the unit file")
	}
}

func TestFSNotifyWatcher_CloseEndsEvents(t *testing.T) {
	fw, err := NewFSNotifyWatcher(DefaultExtensions)
	require.NoError(t, err)

	require.NoError(t, fw.Close())
	require.NoError(t, fw.Close())

	select {
	case _, ok := <-fw.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed")
	}
}
