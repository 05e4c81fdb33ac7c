package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktodo/internal/config"
	"github.com/jask/jasktodo/internal/tasks"
)

func newTestApp(t *testing.T) (*App, *tasks.Store) {
	t.Helper()
	store := tasks.NewStore()
	return New(config.Default(), store), store
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

func typeText(a *App, s string) {
	for _, r := range s {
		send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func addTask(a *App, name string) {
	typeText(a, name)
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestAddTaskFromInput(t *testing.T) {
	a, store := newTestApp(t)

	addTask(a, "Buy milk")

	list := store.List()
	if len(list) != 1 {
		t.Fatalf("store len = %d, want 1", len(list))
	}
	if list[0].Name != "Buy milk" || list[0].Completed {
		t.Fatalf("unexpected task %+v", list[0])
	}
	if a.input.Draft() != "" {
		t.Fatalf("draft = %q, want empty", a.input.Draft())
	}
	view := a.View()
	if !strings.Contains(view, "[ ] Buy milk") {
		t.Fatalf("expected unchecked row in view:\n%s", view)
	}
	if !strings.Contains(view, "[All]") {
		t.Fatalf("expected All filter to be marked active:\n%s", view)
	}

	send(a, tabKey, keyMsg("2"))
	if !strings.Contains(a.View(), "Buy milk") {
		t.Fatal("expected task under active filter")
	}
	send(a, keyMsg("3"))
	if strings.Contains(a.View(), "Buy milk") {
		t.Fatal("did not expect task under completed filter")
	}
}

func TestWhitespaceSubmitIsSilent(t *testing.T) {
	a, store := newTestApp(t)

	addTask(a, "   ")
	send(a, enterKey)

	if store.Len() != 0 {
		t.Fatalf("store len = %d, want 0", store.Len())
	}
	if a.input.Draft() != "" {
		t.Fatalf("draft = %q, want empty", a.input.Draft())
	}
	if a.status != "" {
		t.Fatalf("status = %q, want none", a.status)
	}
}

func TestToggleMovesTaskBetweenFilters(t *testing.T) {
	a, store := newTestApp(t)
	addTask(a, "Buy milk")

	send(a, tabKey, spaceKey)
	if got := store.List()[0]; !got.Completed {
		t.Fatal("expected task to be completed")
	}

	send(a, keyMsg("3"))
	view := a.View()
	if !strings.Contains(view, "[x] Buy milk") {
		t.Fatalf("expected checked row under completed filter:\n%s", view)
	}
	if !strings.Contains(view, "[Completed]") {
		t.Fatalf("expected Completed filter marked:\n%s", view)
	}

	send(a, keyMsg("2"))
	view = a.View()
	if strings.Contains(view, "Buy milk") || !strings.Contains(view, "No tasks") {
		t.Fatalf("expected empty active view:\n%s", view)
	}
	if !strings.Contains(view, "0 items left") {
		t.Fatalf("expected counter:\n%s", view)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	a, store := newTestApp(t)
	addTask(a, "A")

	send(a, tabKey, keyMsg("x"), keyMsg("x"))
	if store.List()[0].Completed {
		t.Fatal("expected task to be active again")
	}
}

func TestDeleteSelectedTask(t *testing.T) {
	a, store := newTestApp(t)
	addTask(a, "A")
	addTask(a, "B")

	send(a, tabKey, keyMsg("d"))

	list := store.List()
	if len(list) != 1 || list[0].Name != "B" {
		t.Fatalf("store = %+v, want [B]", list)
	}
	send(a, keyMsg("d"), keyMsg("d"))
	if store.Len() != 0 {
		t.Fatalf("store len = %d, want 0", store.Len())
	}
	if a.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.cursor)
	}
}

func TestCursorClampsAfterDeletingLastRow(t *testing.T) {
	a, store := newTestApp(t)
	addTask(a, "A")
	addTask(a, "B")
	addTask(a, "C")

	send(a, tabKey, keyMsg("j"), keyMsg("j"), keyMsg("j"))
	if a.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", a.cursor)
	}
	send(a, keyMsg("d"))
	if a.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", a.cursor)
	}
	sel, ok := a.selected()
	if !ok || sel.Name != "B" {
		t.Fatalf("selected = %+v", sel)
	}
	if store.Len() != 2 {
		t.Fatalf("store len = %d", store.Len())
	}
}

func TestToggleUnderActiveFilterHidesRow(t *testing.T) {
	a, _ := newTestApp(t)
	addTask(a, "A")
	addTask(a, "B")

	send(a, tabKey, keyMsg("2"), keyMsg("j"), spaceKey)
	rows := a.visible()
	if len(rows) != 1 || rows[0].Name != "A" {
		t.Fatalf("visible = %+v", rows)
	}
	if a.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.cursor)
	}
}

func TestFilterCycleKeys(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, escKey)

	send(a, keyMsg("l"))
	if a.filter.Mode() != tasks.ModeActive {
		t.Fatalf("mode = %s", a.filter.Mode())
	}
	if !strings.Contains(a.View(), "[Active]") {
		t.Fatal("expected Active tab marked")
	}
	send(a, keyMsg("h"), keyMsg("h"))
	if a.filter.Mode() != tasks.ModeCompleted {
		t.Fatalf("mode = %s", a.filter.Mode())
	}
	if a.status != "filter: Completed" {
		t.Fatalf("status = %q", a.status)
	}
}

func TestFilterKeysTypeWhileInputFocused(t *testing.T) {
	a, _ := newTestApp(t)
	typeText(a, "123q")

	if a.filter.Mode() != tasks.ModeAll {
		t.Fatalf("mode = %s, want all", a.filter.Mode())
	}
	if a.input.Draft() != "123q" {
		t.Fatalf("draft = %q", a.input.Draft())
	}
}

func TestFocusSwitching(t *testing.T) {
	a, _ := newTestApp(t)
	if a.focus != focusInput || !a.input.Focused() {
		t.Fatal("expected input focus on start")
	}
	send(a, tabKey)
	if a.focus != focusList || a.input.Focused() {
		t.Fatal("expected list focus after tab")
	}
	send(a, keyMsg("a"))
	if a.focus != focusInput {
		t.Fatal("expected input focus after a")
	}
	if a.input.Draft() != "" {
		t.Fatalf("draft = %q, focusing must not type", a.input.Draft())
	}
}

func TestFindMovesCursor(t *testing.T) {
	a, _ := newTestApp(t)
	addTask(a, "Buy milk")
	addTask(a, "Walk the dog")
	addTask(a, "Call mom")

	send(a, tabKey, keyMsg("/"))
	if a.focus != focusFind {
		t.Fatalf("focus = %s, want find", a.focus)
	}
	typeText(a, "dog")
	send(a, enterKey)

	if a.focus != focusList {
		t.Fatalf("focus = %s, want list", a.focus)
	}
	if a.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", a.cursor)
	}
	if a.status != "found Walk the dog" {
		t.Fatalf("status = %q", a.status)
	}

	send(a, keyMsg("/"))
	typeText(a, "qqqqqqqqqq")
	send(a, enterKey)
	if a.cursor != 1 {
		t.Fatalf("cursor moved on miss: %d", a.cursor)
	}
	if !strings.HasPrefix(a.status, "no match") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)

	send(a, keyMsg("q"))
	if a.input.Draft() != "q" {
		t.Fatalf("draft = %q, q must be typed while the input has focus", a.input.Draft())
	}

	cmd := send(a, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}

	send(a, escKey)
	cmd = send(a, keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command from list")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestInitialFilterFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.UI.DefaultFilter = "completed"
	a := New(cfg, nil)
	if a.filter.Mode() != tasks.ModeCompleted {
		t.Fatalf("mode = %s", a.filter.Mode())
	}
}

func TestHelpToggle(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, tabKey, keyMsg("?"))
	if !a.help.ShowAll {
		t.Fatal("expected full help")
	}
	if !strings.Contains(a.View(), "prev filter") {
		t.Fatalf("expected full help in view:\n%s", a.View())
	}
}
