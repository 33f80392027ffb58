package controller

import m "github.com/mouse-blink/graft/internal/model"

// Message types.
type unitsMsg struct {
	units []m.UnitStatus
}

type passMsg struct {
	report m.PassReport
}
