package widgets

import "github.com/charmbracelet/lipgloss"

// StateBadge renders a short status label for the footer bar.
type StateBadge struct {
	Label string
	Color string
}

func (b StateBadge) Render(width, height int) string {
	if width <= 0 || height <= 0 || b.Label == "" {
		return ""
	}
	label := b.Label
	if runes := []rune(label); len(runes) > width {
		label = string(runes[:width])
	}
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if b.Color != "" {
		style = style.Foreground(lipgloss.Color(b.Color))
	}
	return style.Render(label)
}
