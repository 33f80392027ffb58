package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/graft/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	tui.send(passMsg{report: m.PassReport{ID: "p1"}})

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_WaitWithoutStart(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	tui.Wait()
	tui.Close()
}

func TestTUI_StartListMode_NoProgram(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	if err := tui.Start(WithListMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if tui.running() {
		t.Fatal("list mode should not start a program")
	}
}

func TestTUI_DisplayUnits_StaticTable(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.DisplayUnits([]m.UnitStatus{
		{Name: "geometry", Path: "geometry.gr", State: m.StateClean},
	})
	if err != nil {
		t.Fatalf("DisplayUnits() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Unit", "geometry", string(m.StateClean)} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayHistory_RendersPasses(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.DisplayHistory([]m.PassReport{
		{ID: "abcdef0123", Reloaded: []string{"geometry"}},
	})
	if err != nil {
		t.Fatalf("DisplayHistory() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"graft watch", "abcdef01"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestWatchModel_Update_PassesNewestFirst(t *testing.T) {
	model := newWatchModel()

	next, _ := model.Update(passMsg{report: m.PassReport{ID: "first"}})
	next, _ = next.Update(passMsg{report: m.PassReport{ID: "second", Failed: []m.UnitFailure{{Name: "x", Error: "boom"}}}})

	w := next.(watchModel)
	if len(w.passes) != 2 {
		t.Fatalf("passes = %d, want 2", len(w.passes))
	}

	if w.passes[0].ID != "second" {
		t.Fatalf("newest pass = %q, want second", w.passes[0].ID)
	}

	if w.failed != 1 {
		t.Fatalf("failed = %d, want 1", w.failed)
	}

	if !strings.Contains(w.View(), "x: boom") {
		t.Fatalf("view should show the selected failure\n%s", w.View())
	}
}

func TestWatchModel_Update_CapsRows(t *testing.T) {
	model := newWatchModel()
	for range maxPassRows + 5 {
		model = model.addPass(m.PassReport{ID: "p"})
	}

	if len(model.passes) != maxPassRows {
		t.Fatalf("passes = %d, want %d", len(model.passes), maxPassRows)
	}
}

func TestWatchModel_Update_Quit(t *testing.T) {
	model := newWatchModel()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestWatchModel_Update_WindowSize(t *testing.T) {
	model := newWatchModel()

	next, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	w := next.(watchModel)

	if w.width != 120 || w.height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", w.width, w.height)
	}
}

func TestWatchModel_Update_Units(t *testing.T) {
	model := newWatchModel()

	next, _ := model.Update(unitsMsg{units: []m.UnitStatus{{Name: "a"}, {Name: "b"}}})
	if !strings.Contains(next.View(), "Units: ") {
		t.Fatalf("view missing units summary")
	}

	if got := len(next.(watchModel).units); got != 2 {
		t.Fatalf("units = %d, want 2", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "abc", width: 5, want: "abc"},
		{name: "truncated", text: "abcdef", width: 4, want: "abc…"},
		{name: "zero width", text: "abc", width: 0, want: ""},
		{name: "only ellipsis", text: "abc", width: 1, want: "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateToWidth(tt.text, tt.width); got != tt.want {
				t.Fatalf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
