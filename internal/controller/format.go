package controller

import (
	"fmt"
	"strings"
	"time"

	m "github.com/mouse-blink/graft/internal/model"
)

const timeLayout = "15:04:05"

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format(timeLayout)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}

	return strings.Join(names, ", ")
}

func formatFailures(failures []m.UnitFailure) string {
	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Name, firstLine(f.Error)))
	}

	return strings.Join(parts, ", ")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
