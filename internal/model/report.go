package model

import "time"

// UnitFailure records one unit that failed to re-execute during a pass.
type UnitFailure struct {
	Name  string
	Error string
}

// PassReport is the outcome of one change-detection and reload pass.
type PassReport struct {
	ID       string
	Started  time.Time
	Duration time.Duration
	Forced   bool
	Reloaded []string
	Failed   []UnitFailure
	Patched  int // objects patched in place
}

// FailedNames lists the names of the failed units.
func (r PassReport) FailedNames() []string {
	names := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		names = append(names, f.Name)
	}

	return names
}

// Empty reports whether the pass neither reloaded nor failed anything.
func (r PassReport) Empty() bool {
	return len(r.Reloaded) == 0 && len(r.Failed) == 0
}
