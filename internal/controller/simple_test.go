package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/graft/internal/model"
)

func newTestSimpleUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayUnits_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI(t)

	units := []m.UnitStatus{
		{Name: "geometry", Path: "src/geometry.gr", State: m.StateClean},
		{Name: "shapes", Path: "src/shapes.gr", State: m.StateDue},
		{Name: "builtins", State: m.StateSkipped},
	}

	if err := ui.DisplayUnits(units); err != nil {
		t.Fatalf("DisplayUnits() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"geometry",
		"src/shapes.gr",
		string(m.StateDue),
		string(m.StateSkipped),
		"TOTAL UNITS 3",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayPass_Summary(t *testing.T) {
	ui, buf := newTestSimpleUI(t)

	ui.DisplayPass(m.PassReport{
		ID:       "0123456789abcdef",
		Reloaded: []string{"geometry", "shapes"},
		Failed:   []m.UnitFailure{{Name: "broken", Error: "syntax error\nat line 3"}},
	})

	output := buf.String()

	for _, want := range []string{
		"pass 01234567",
		"reloaded geometry, shapes",
		"failed broken (syntax error)",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Contains(output, "at line 3") {
		t.Fatalf("output should only carry the first error line\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayHistory_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI(t)

	if err := ui.DisplayHistory(nil); err != nil {
		t.Fatalf("DisplayHistory() error = %v", err)
	}

	if got := buf.String(); got != "no recorded passes\n" {
		t.Fatalf("DisplayHistory() output = %q", got)
	}
}

func TestSimpleUI_DisplayHistory_Table(t *testing.T) {
	ui, buf := newTestSimpleUI(t)

	reports := []m.PassReport{
		{ID: "aaaaaaaa-1", Started: time.Now(), Reloaded: []string{"geometry"}, Patched: 3},
		{ID: "bbbbbbbb-2", Started: time.Now(), Failed: []m.UnitFailure{{Name: "broken", Error: "boom"}}, Patched: 1},
	}

	if err := ui.DisplayHistory(reports); err != nil {
		t.Fatalf("DisplayHistory() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"aaaaaaaa", "bbbbbbbb", "geometry", "broken", "TOTAL PASSES 2", "4"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_CloseReleasesWait(t *testing.T) {
	ui, _ := newTestSimpleUI(t)

	if err := ui.Start(WithWatchMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	done := make(chan struct{})

	go func() {
		ui.Wait()
		close(done)
	}()

	ui.Close()
	ui.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() did not return after Close()")
	}
}
