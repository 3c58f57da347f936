// Package views holds presentation state for the list and calendar views.
// Views never mutate bills; every change goes through the bill service.
package views

import (
	"bills/internal/core"
	"bills/internal/log"
)

// BillSource is the read side of the bill service.
type BillSource interface {
	Bills() []core.Bill
	Version() uint64
}

// Mode is the active view.
type Mode string

const (
	ModeList     Mode = "list"
	ModeCalendar Mode = "calendar"
)

// ParseMode maps a command name to a view mode, defaulting to the list.
func ParseMode(s string) Mode {
	if Mode(s) == ModeCalendar {
		return ModeCalendar
	}
	return ModeList
}

func viewLogger(logger *log.Logger) *log.Logger {
	if logger == nil {
		logger = log.Discard()
	}
	return logger.WithComponent(log.ComponentView)
}
