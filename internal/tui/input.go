package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktodo/internal/tasks"
)

// Input owns the draft text of the entry field and turns a submission into
// a new task.
type Input struct {
	field textinput.Model
	store *tasks.Store
}

func NewInput(store *tasks.Store, placeholder string, charLimit int) *Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Prompt = "> "
	return &Input{field: ti, store: store}
}

// SetDraft replaces the draft text.
func (in *Input) SetDraft(text string) { in.field.SetValue(text) }

func (in *Input) Draft() string { return in.field.Value() }

// Submit adds the draft to the store and clears the draft, whether or not
// the store accepted it.
func (in *Input) Submit() (tasks.Task, bool) {
	t, ok := in.store.Add(in.field.Value())
	in.field.Reset()
	return t, ok
}

func (in *Input) Focus() tea.Cmd { return in.field.Focus() }

func (in *Input) Blur() { in.field.Blur() }

func (in *Input) Focused() bool { return in.field.Focused() }

func (in *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	in.field, cmd = in.field.Update(msg)
	return cmd
}

func (in *Input) View() string { return in.field.View() }
