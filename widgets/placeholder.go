package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Placeholder fills the content area when there is nothing real to show:
// before the first load, while loading, after an empty load, or on error.
type Placeholder struct {
	Title   string
	Message string
	IsError bool
}

func (p Placeholder) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	title := p.Title
	if title == "" {
		title = "Nothing here"
	}
	style := lipgloss.NewStyle().Bold(true)
	if p.IsError {
		style = style.Foreground(lipgloss.Color("#f38ba8"))
	}
	lines := []string{style.Render(title)}
	if p.Message != "" {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(p.Message))
	}
	block := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
