package tui

import (
	"fmt"
	"strings"

	"github.com/jask/jasktodo/internal/tasks"
)

// screen is everything compose needs to draw one frame.
type screen struct {
	title       string
	input       string
	mode        tasks.Mode
	rows        []tasks.Task
	cursor      int
	listFocused bool
	remaining   int
	find        string
	status      string
	help        string
}

func compose(s screen, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(s.title))
	b.WriteString("\n\n")
	b.WriteString(s.input + "  " + st.Button.Render("Add Task"))
	b.WriteString("\n\n")
	b.WriteString(renderFilters(s.mode, st))
	b.WriteString("\n\n")
	b.WriteString(renderRows(s, st))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(itemsLeft(s.remaining)))
	if s.find != "" {
		b.WriteString("\n" + s.find)
	}
	if s.status != "" {
		b.WriteString("\n" + st.Status.Render(s.status))
	}
	if s.help != "" {
		b.WriteString("\n\n" + s.help)
	}
	return b.String()
}

func renderFilters(current tasks.Mode, st Styles) string {
	parts := make([]string, 0, len(tasks.Modes()))
	for _, m := range tasks.Modes() {
		if m == current {
			parts = append(parts, st.TabActive.Render("["+m.Label()+"]"))
		} else {
			parts = append(parts, st.TabInactive.Render(" "+m.Label()+" "))
		}
	}
	return strings.Join(parts, " ")
}

func renderRows(s screen, st Styles) string {
	if len(s.rows) == 0 {
		return st.Muted.Render("  No tasks") + "\n"
	}
	var b strings.Builder
	for i, t := range s.rows {
		selected := s.listFocused && i == s.cursor
		marker := "  "
		if selected {
			marker = st.Cursor.Render("▶ ")
		}
		box, name := "[ ]", t.Name
		if t.Completed {
			box = "[x]"
			name = st.Done.Render(t.Name)
		}
		del := st.Muted.Render("✕")
		if selected {
			del = st.Delete.Render("✕ delete")
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", marker, box, name, del)
	}
	return b.String()
}

func itemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
