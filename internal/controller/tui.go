package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/graft/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	started bool
	done    chan struct{}
	mu      sync.Mutex
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the watch dashboard. List mode renders statically and
// starts nothing.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{mode: ModeWatch}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.mode == ModeList {
		return nil
	}

	return t.startWithModel(newWatchModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// Wait blocks until the user leaves the dashboard.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayUnits updates the dashboard, or prints a table when no dashboard
// is running.
func (t *TUI) DisplayUnits(units []m.UnitStatus) error {
	if t.running() {
		t.send(unitsMsg{units: units})
		return nil
	}

	_, err := fmt.Fprintln(t.output, unitTable(units))

	return err
}

// DisplayPass adds a pass row to the dashboard.
func (t *TUI) DisplayPass(report m.PassReport) {
	if t.running() {
		t.send(passMsg{report: report})
		return
	}

	_, _ = fmt.Fprintln(t.output, passRow(report)[4])
}

// DisplayHistory renders recorded passes through the watch model view.
func (t *TUI) DisplayHistory(reports []m.PassReport) error {
	model := newWatchModel()
	for _, r := range reports {
		model = model.addPass(r)
	}

	_, err := fmt.Fprintln(t.output, model.View())

	return err
}

func (t *TUI) running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program != nil
}
