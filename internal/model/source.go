package model

import "time"

// Path represents a file system path.
type Path string

// UnitState is the change-detection state of a unit.
type UnitState string

const (
	// StateClean means the recorded mtime matches the source.
	StateClean UnitState = "clean"
	// StateDue means the source changed since the last successful reload.
	StateDue UnitState = "due"
	// StateReloading is only observable from inside a pass.
	StateReloading UnitState = "reloading"
	// StateFailed means the last reload failed and the source has not
	// changed since.
	StateFailed UnitState = "failed"
	// StateSkipped means the unit or one of its parents is on the skip list.
	StateSkipped UnitState = "skipped"
	// StateUnresolvable means no usable source file backs the unit.
	StateUnresolvable UnitState = "unresolvable"
)

// UnitStatus describes one unit for listings.
type UnitStatus struct {
	Name     string
	Path     Path
	Hash     string // content fingerprint, empty when unreadable
	State    UnitState
	ModTime  time.Time // last recorded modification time
	FailedAt time.Time // zero unless State is StateFailed
}

// SourceInfo is the filesystem metadata of a unit's backing file.
type SourceInfo struct {
	Path    Path
	ModTime time.Time
}
