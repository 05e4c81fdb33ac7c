package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jasktodo/internal/config"
)

// Styles is the rendered look of the screen.
type Styles struct {
	Title       lipgloss.Style
	Button      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Cursor      lipgloss.Style
	Done        lipgloss.Style
	Delete      lipgloss.Style
	Muted       lipgloss.Style
	Status      lipgloss.Style
}

func NewStyles(theme config.ThemeConfig) Styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)
	danger := lipgloss.Color(theme.Danger)
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Underline(true),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent),
		TabInactive: lipgloss.NewStyle().Foreground(muted),
		Cursor:      lipgloss.NewStyle().Foreground(accent),
		Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
		Delete:      lipgloss.NewStyle().Foreground(danger),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
