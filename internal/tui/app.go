package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktodo/internal/config"
	"github.com/jask/jasktodo/internal/tasks"
)

// App ties together the task store, the entry field and the filter tabs.
type App struct {
	store  *tasks.Store
	input  *Input
	filter *FilterControl
	find   textinput.Model
	keys   keyMap
	help   help.Model
	styles Styles
	title  string
	focus  focusArea
	cursor int
	status string
}

type focusArea string

const (
	focusInput focusArea = "input"
	focusList  focusArea = "list"
	focusFind  focusArea = "find"
)

func New(cfg config.Config, store *tasks.Store) *App {
	if store == nil {
		store = tasks.NewStore()
	}
	find := textinput.New()
	find.Prompt = "/"
	find.Placeholder = "find task"

	a := &App{
		store:  store,
		input:  NewInput(store, cfg.UI.Placeholder, cfg.UI.CharLimit),
		filter: NewFilterControl(cfg.Filter()),
		find:   find,
		keys:   newKeyMap(),
		help:   help.New(),
		styles: NewStyles(cfg.Theme),
		title:  cfg.UI.Title,
		focus:  focusInput,
	}
	a.input.Focus()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		switch a.focus {
		case focusInput:
			return a.handleInputKey(m)
		case focusFind:
			return a.handleFindKey(m)
		default:
			return a.handleListKey(m)
		}
	}
	return a, a.updateFocused(msg)
}

func (a *App) handleInputKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Submit):
		if t, ok := a.input.Submit(); ok {
			log.Printf("add %s %q", t.ID, t.Name)
			a.status = "added " + t.Name
		}
		a.clampCursor()
		return a, nil
	case key.Matches(m, a.keys.Leave):
		a.focusOn(focusList)
		return a, nil
	}
	return a, a.input.Update(m)
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.visible())-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Toggle):
		if t, ok := a.selected(); ok {
			a.store.Toggle(t.ID)
			log.Printf("toggle %s completed=%t", t.ID, !t.Completed)
			if t.Completed {
				a.status = "reopened " + t.Name
			} else {
				a.status = "completed " + t.Name
			}
			a.clampCursor()
		}
	case key.Matches(m, a.keys.Delete):
		if t, ok := a.selected(); ok {
			a.store.Delete(t.ID)
			log.Printf("delete %s", t.ID)
			a.status = "deleted " + t.Name
			a.clampCursor()
		}
	case key.Matches(m, a.keys.FilterAll):
		a.setFilter(tasks.ModeAll)
	case key.Matches(m, a.keys.FilterActive):
		a.setFilter(tasks.ModeActive)
	case key.Matches(m, a.keys.FilterComplete):
		a.setFilter(tasks.ModeCompleted)
	case key.Matches(m, a.keys.NextFilter):
		a.filter.Next()
		a.filterChanged()
	case key.Matches(m, a.keys.PrevFilter):
		a.filter.Prev()
		a.filterChanged()
	case key.Matches(m, a.keys.Find):
		a.find.Reset()
		return a, a.focusOn(focusFind)
	case key.Matches(m, a.keys.FocusInput):
		return a, a.focusOn(focusInput)
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) handleFindKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEnter:
		query := a.find.Value()
		visible := a.visible()
		if i, ok := tasks.Closest(visible, query); ok {
			a.cursor = i
			a.status = "found " + visible[i].Name
		} else {
			a.status = fmt.Sprintf("no match for %q", query)
		}
		a.focusOn(focusList)
		return a, nil
	case tea.KeyEsc:
		a.focusOn(focusList)
		return a, nil
	}
	var cmd tea.Cmd
	a.find, cmd = a.find.Update(m)
	return a, cmd
}

func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	switch a.focus {
	case focusInput:
		return a.input.Update(msg)
	case focusFind:
		var cmd tea.Cmd
		a.find, cmd = a.find.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) focusOn(f focusArea) tea.Cmd {
	a.focus = f
	a.input.Blur()
	a.find.Blur()
	switch f {
	case focusInput:
		return a.input.Focus()
	case focusFind:
		return a.find.Focus()
	}
	return nil
}

func (a *App) setFilter(m tasks.Mode) {
	a.filter.SetMode(m)
	a.filterChanged()
}

func (a *App) filterChanged() {
	log.Printf("filter %s", a.filter.Mode())
	a.status = "filter: " + a.filter.Mode().Label()
	a.clampCursor()
}

func (a *App) visible() []tasks.Task {
	return tasks.Visible(a.store.List(), a.filter.Mode())
}

func (a *App) selected() (tasks.Task, bool) {
	v := a.visible()
	if a.cursor < 0 || a.cursor >= len(v) {
		return tasks.Task{}, false
	}
	return v[a.cursor], true
}

func (a *App) clampCursor() {
	n := len(a.visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) View() string {
	var helpView string
	if a.focus == focusInput {
		helpView = a.help.View(inputKeys{a.keys})
	} else {
		helpView = a.help.View(listKeys{a.keys})
	}
	s := screen{
		title:       a.title,
		input:       a.input.View(),
		mode:        a.filter.Mode(),
		rows:        a.visible(),
		cursor:      a.cursor,
		listFocused: a.focus == focusList,
		remaining:   a.store.Remaining(),
		status:      a.status,
		help:        helpView,
	}
	if a.focus == focusFind {
		s.find = a.find.View()
	}
	return compose(s, a.styles)
}
