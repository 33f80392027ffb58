package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/graft/internal/model"
)

const maxPassRows = 200

var (
	accentColor = lipgloss.Color("6")
	failColor   = lipgloss.Color("9")
	mutedColor  = lipgloss.Color("8")
)

// watchModel shows the unit table and the passes seen so far.
type watchModel struct {
	width  int
	height int
	units  []m.UnitStatus
	passes []m.PassReport
	table  table.Model
	failed int
}

func passColumns(width int) []table.Column {
	unitsWidth := width - 8 - 10 - 12 - 8 - 10
	if unitsWidth < 20 {
		unitsWidth = 20
	}

	return []table.Column{
		{Title: "Time", Width: 8},
		{Title: "Pass", Width: 10},
		{Title: "Duration", Width: 12},
		{Title: "Patched", Width: 8},
		{Title: "Units", Width: unitsWidth},
	}
}

func newWatchModel() watchModel {
	t := table.New(
		table.WithColumns(passColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(mutedColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(accentColor).
		Bold(true)
	t.SetStyles(styles)

	return watchModel{table: t, width: 80, height: 24}
}

func (w watchModel) Init() tea.Cmd {
	return nil
}

func (w watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.table.SetColumns(passColumns(w.width))
		w.table.SetHeight(w.tableHeight())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return w, tea.Quit
		}

		w.table, cmd = w.table.Update(msg)

	case unitsMsg:
		w.units = msg.units

	case passMsg:
		w = w.addPass(msg.report)
	}

	return w, cmd
}

func (w watchModel) tableHeight() int {
	h := w.height - 10
	if h < 3 {
		h = 3
	}

	return h
}

func (w watchModel) addPass(report m.PassReport) watchModel {
	w.passes = append([]m.PassReport{report}, w.passes...)
	if len(w.passes) > maxPassRows {
		w.passes = w.passes[:maxPassRows]
	}

	if len(report.Failed) > 0 {
		w.failed++
	}

	rows := make([]table.Row, 0, len(w.passes))
	for _, p := range w.passes {
		rows = append(rows, passRow(p))
	}

	w.table.SetRows(rows)

	return w
}

func passRow(p m.PassReport) table.Row {
	units := "reloaded " + joinOrDash(p.Reloaded)
	if len(p.Failed) > 0 {
		units += "; failed " + joinOrDash(p.FailedNames())
	}

	return table.Row{
		formatTime(p.Started),
		shortID(p.ID),
		formatDuration(p.Duration),
		fmt.Sprintf("%d", p.Patched),
		units,
	}
}

// selected returns the pass under the cursor.
func (w watchModel) selected() (m.PassReport, bool) {
	i := w.table.Cursor()
	if i < 0 || i >= len(w.passes) {
		return m.PassReport{}, false
	}

	return w.passes[i], true
}

func (w watchModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accent := lipgloss.NewStyle().Foreground(accentColor)
	fail := lipgloss.NewStyle().Foreground(failColor)

	title := titleStyle.Render("graft watch")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Units: %s   Passes: %s   Failed passes: %s",
		accent.Render(fmt.Sprintf("%d", len(w.units))),
		accent.Render(fmt.Sprintf("%d", len(w.passes))),
		fail.Render(fmt.Sprintf("%d", w.failed)),
	))

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1)

	body := w.table.View()
	if len(w.passes) == 0 {
		body = lipgloss.NewStyle().Foreground(mutedColor).Render("waiting for changes…")
	}

	sections := []string{title, summary, container.Render(body)}

	if p, ok := w.selected(); ok && len(p.Failed) > 0 {
		detail := lipgloss.NewStyle().Foreground(failColor).Padding(0, 2)
		for _, f := range p.Failed {
			sections = append(sections, detail.Render(truncateToWidth(f.Name+": "+firstLine(f.Error), w.width-4)))
		}
	}

	footer := lipgloss.NewStyle().
		Foreground(mutedColor).
		Align(lipgloss.Center).
		Width(w.width).
		Render("↑/k up • ↓/j down • q quit")

	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// unitTable renders a static table of units.
func unitTable(units []m.UnitStatus) string {
	rows := make([]table.Row, 0, len(units))
	for _, u := range units {
		path := string(u.Path)
		if path == "" {
			path = "-"
		}

		rows = append(rows, table.Row{u.Name, string(u.State), path, formatTime(u.ModTime)})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Unit", Width: 20},
			{Title: "State", Width: 12},
			{Title: "Path", Width: 40},
			{Title: "Modified", Width: 8},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(accentColor)
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Render(t.View())
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
