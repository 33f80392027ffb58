package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/graft/internal/adapter"
	"github.com/mouse-blink/graft/internal/config"
	controllermocks "github.com/mouse-blink/graft/internal/controller/mocks"
	m "github.com/mouse-blink/graft/internal/model"
)

func TestWatchCmd_StopsWhenUIExits(t *testing.T) {
	root := writeUnits(t, map[string]string{"geometry": squareUnit})

	mockUI := controllermocks.NewMockUI(t)
	useUI(t, mockUI)

	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayUnits(mock.Anything).Return(nil)
	mockUI.EXPECT().Wait().Return()
	mockUI.EXPECT().Close().Return()
	mockUI.EXPECT().DisplayPass(mock.Anything).Return().Maybe()

	cmd, _ := newTestRoot(t, newWatchCmd())
	cmd.SetArgs([]string{"watch", "--config", filepath.Join(root, "none.yaml"), "--interval", "0", "--no-history", root})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, cmd.ExecuteContext(ctx))
}

func TestRunWatch_RecordsPass(t *testing.T) {
	// A --no-history left behind by an earlier command must not suppress
	// recording when the resolved config names a history file.
	watchNoHistoryFlag = true
	t.Cleanup(func() { watchNoHistoryFlag = false })

	root := writeUnits(t, map[string]string{"geometry": squareUnit})
	unitPath := filepath.Join(root, "geometry.yaml")
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(unitPath, past, past))

	cfg := config.DefaultConfig()
	cfg.Roots = []string{root}
	cfg.Interval = 10 * time.Millisecond
	cfg.History = filepath.Join(t.TempDir(), "history.yaml")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd.SetContext(ctx)

	s, err := newSession(cmd, cfg, sessionOptions{importAll: true})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(unitPath, []byte("- def: square\n  params: [x]\n  body: x * x * x\n"), 0o600))

	passed := make(chan struct{})

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayUnits(mock.Anything).Return(nil)
	mockUI.EXPECT().Close().Return()
	mockUI.EXPECT().DisplayPass(mock.Anything).Run(func(report m.PassReport) {
		if len(report.Reloaded) == 1 {
			close(passed)
		}
	}).Return().Once()
	mockUI.EXPECT().Wait().Run(func() { <-passed }).Return()

	require.NoError(t, runWatch(cmd, s, mockUI))

	reports, err := adapter.NewReportStore().LoadReports(m.Path(cfg.History))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"geometry"}, reports[0].Reloaded)

	status, ok := findStatus(s.reloader.Status(), "geometry")
	require.True(t, ok)
	assert.Equal(t, m.StateClean, status.State)
}
