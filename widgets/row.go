package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row draws one item line, optionally selected.
type Row struct {
	Text     string
	Indent   int
	Selected bool
	Accent   string
}

func (r Row) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	marker := "  "
	if r.Selected {
		marker = "> "
	}
	text := strings.Repeat(" ", r.Indent) + marker + r.Text
	if runes := []rune(text); len(runes) > width {
		text = string(runes[:width])
	}
	if !r.Selected {
		return text
	}
	style := lipgloss.NewStyle().Bold(true)
	if r.Accent != "" {
		style = style.Foreground(lipgloss.Color(r.Accent))
	}
	return style.Render(text)
}
