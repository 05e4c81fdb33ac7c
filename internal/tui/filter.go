package tui

import (
	"slices"

	"github.com/jask/jasktodo/internal/tasks"
)

// FilterControl holds the selected filter mode.
type FilterControl struct {
	mode tasks.Mode
}

func NewFilterControl(initial tasks.Mode) *FilterControl {
	if initial == "" {
		initial = tasks.ModeAll
	}
	return &FilterControl{mode: initial}
}

func (f *FilterControl) Mode() tasks.Mode { return f.mode }

func (f *FilterControl) SetMode(m tasks.Mode) { f.mode = m }

// Next selects the following mode, wrapping around.
func (f *FilterControl) Next() { f.step(1) }

// Prev selects the preceding mode, wrapping around.
func (f *FilterControl) Prev() { f.step(-1) }

func (f *FilterControl) step(delta int) {
	modes := tasks.Modes()
	i := slices.Index(modes, f.mode)
	if i < 0 {
		i = 0
	}
	f.mode = modes[(i+delta+len(modes))%len(modes)]
}
