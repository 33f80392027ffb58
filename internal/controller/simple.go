package controller

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/graft/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd       *cobra.Command
	done      chan struct{}
	closeOnce sync.Once
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, done: make(chan struct{})}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI and releases Wait.
func (s *SimpleUI) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Wait blocks until Close is called.
func (s *SimpleUI) Wait() {
	<-s.done
}

// DisplayUnits prints one row per unit.
func (s *SimpleUI) DisplayUnits(units []m.UnitStatus) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Unit", "State", "Path", "Modified"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, u := range units {
		path := string(u.Path)
		if path == "" {
			path = "-"
		}

		table.Append([]string{u.Name, string(u.State), path, formatTime(u.ModTime)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Units %d", len(units)), "", "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayPass prints a one-line summary of a pass.
func (s *SimpleUI) DisplayPass(report m.PassReport) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	line := fmt.Sprintf("[%s] pass %s: reloaded %s", formatTime(report.Started), shortID(report.ID), green(joinOrDash(report.Reloaded)))
	if len(report.Failed) > 0 {
		line += "; failed " + red(formatFailures(report.Failed))
	}

	s.printf("%s\n", line)
}

// DisplayHistory prints recorded passes, oldest first.
func (s *SimpleUI) DisplayHistory(reports []m.PassReport) error {
	if len(reports) == 0 {
		s.printf("no recorded passes\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Pass", "Started", "Duration", "Reloaded", "Failed", "Patched"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	patched := 0

	for _, r := range reports {
		table.Append([]string{
			shortID(r.ID),
			r.Started.Local().Format("2006-01-02 " + timeLayout),
			formatDuration(r.Duration),
			joinOrDash(r.Reloaded),
			joinOrDash(r.FailedNames()),
			fmt.Sprintf("%d", r.Patched),
		})

		patched += r.Patched
	}

	table.SetFooter([]string{fmt.Sprintf("Total Passes %d", len(reports)), "", "", "", "", fmt.Sprintf("%d", patched)})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
