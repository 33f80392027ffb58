package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/graft/internal/adapter"
	adaptermocks "github.com/mouse-blink/graft/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/graft/internal/controller/mocks"
	m "github.com/mouse-blink/graft/internal/model"
)

func useReportStore(t *testing.T, store adapter.ReportStore) {
	t.Helper()

	original := reportStore
	reportStore = store

	t.Cleanup(func() { reportStore = original })
}

func TestHistoryCmd_DisplaysRecordedPasses(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	useReportStore(t, store)

	mockUI := controllermocks.NewMockUI(t)
	useUI(t, mockUI)

	reports := []m.PassReport{{ID: "p1", Reloaded: []string{"geometry"}}}
	path := filepath.Join(t.TempDir(), "passes.yaml")

	store.EXPECT().LoadReports(m.Path(path)).Return(reports, nil)
	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().Close().Return()
	mockUI.EXPECT().DisplayHistory(reports).Return(nil)

	cmd, _ := newTestRoot(t, newHistoryCmd())
	cmd.SetArgs([]string{"history", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--history", path})

	require.NoError(t, cmd.Execute())
}

func TestHistoryCmd_LoadError(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	useReportStore(t, store)

	store.EXPECT().LoadReports(mock.Anything).Return(nil, errors.New("corrupt"))

	cmd, _ := newTestRoot(t, newHistoryCmd())
	cmd.SetArgs([]string{"history", "--config", filepath.Join(t.TempDir(), "none.yaml")})

	err := cmd.Execute()
	require.ErrorContains(t, err, "corrupt")
}
