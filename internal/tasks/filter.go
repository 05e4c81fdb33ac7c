package tasks

import (
	"fmt"
	"strings"
)

// Mode selects which tasks are visible.
type Mode string

const (
	ModeAll       Mode = "all"
	ModeActive    Mode = "active"
	ModeCompleted Mode = "completed"
)

// Modes returns the legal modes in display order.
func Modes() []Mode {
	return []Mode{ModeAll, ModeActive, ModeCompleted}
}

// ParseMode accepts a mode name in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAll:
		return ModeAll, nil
	case ModeActive:
		return ModeActive, nil
	case ModeCompleted:
		return ModeCompleted, nil
	}
	return ModeAll, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

func (m Mode) String() string { return string(m) }

// Label is the user-facing name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeActive:
		return "Active"
	case ModeCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Visible returns the tasks selected by mode, keeping their relative
// order. Unknown modes behave like ModeAll.
func Visible(list []Task, mode Mode) []Task {
	out := make([]Task, 0, len(list))
	for _, t := range list {
		switch mode {
		case ModeActive:
			if t.Completed {
				continue
			}
		case ModeCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
