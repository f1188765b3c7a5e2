package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader draws a titled divider above a section's rows.
type SectionHeader struct {
	Title   string
	Count   int
	Accent  string
	Divider string
}

func (h SectionHeader) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	title := h.Title
	if title == "" {
		title = "Untitled"
	}
	label := fmt.Sprintf("%s (%d)", title, h.Count)
	if len(label) > width {
		label = label[:width]
	}
	style := lipgloss.NewStyle().Bold(true)
	if h.Accent != "" {
		style = style.Foreground(lipgloss.Color(h.Accent))
	}
	out := style.Render(label)
	if height > 1 {
		divider := h.Divider
		if divider == "" {
			divider = "─"
		}
		line := strings.Repeat(divider, width)
		if runes := []rune(line); len(runes) > width {
			line = string(runes[:width])
		}
		out += "\n" + lipgloss.NewStyle().Faint(true).Render(line)
	}
	return out
}
