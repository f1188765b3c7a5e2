package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/gridsource/datasource"
	"github.com/jask/gridsource/internal/config"
	"github.com/jask/gridsource/widgets"
)

// screenView is the View handle passed into data source queries. Children of
// the composite never see it directly; they get a translated local wrapper.
type screenView struct {
	composite *datasource.Composed
	width     int
	height    int
}

func (v screenView) SectionCount() int { return v.composite.SectionCount() }

func (v screenView) ItemCount(section int) int { return v.composite.ItemCount(section) }

func (v screenView) Size() (width, height int) { return v.width, v.height }

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	bodyHeight := a.height - 1 // reserve the footer line
	var body string
	if a.composite.ShouldDisplayPlaceholder() {
		body = a.renderPlaceholder(bodyHeight)
	} else {
		body = a.renderSections(bodyHeight)
	}
	if a.mode == modeJump {
		body = widgets.RenderPopup(body, a.renderJumpCard(), a.width, bodyHeight)
	}
	return body + "\n" + a.renderFooter()
}

func (a *App) renderPlaceholder(height int) string {
	state := a.composite.LoadingState()
	p := widgets.Placeholder{}
	switch state.Phase {
	case datasource.PhaseInitial, datasource.PhaseLoading:
		p.Title, p.Message = "Loading", "fetching content..."
	case datasource.PhaseNoContent:
		p.Title, p.Message = "No content", "press a to add a source, r to refresh"
	case datasource.PhaseError:
		p.Title, p.IsError = "Load failed", true
		if state.Err != nil {
			p.Message = state.Err.Error()
		}
	}
	return p.Render(a.width, height)
}

// renderSections lays every section out top to bottom and slices a window of
// lines that keeps the cursor visible.
func (a *App) renderSections(height int) string {
	view := screenView{composite: a.composite, width: a.width, height: a.height}
	var lines []string
	cursorLine := 0

	for section := 0; section < a.composite.SectionCount(); section++ {
		metrics := a.composite.Metrics(section)
		count := a.composite.ItemCount(section)

		header := widgets.SectionHeader{
			Title:   a.composite.SectionTitle(section),
			Count:   count,
			Accent:  metrics.Accent,
			Divider: metrics.Divider,
		}
		headerHeight := 2
		if hs := a.composite.HeaderSize(view, section); hs.Height > 0 {
			headerHeight = hs.Height
		}
		lines = append(lines, strings.Split(header.Render(a.width, headerHeight), "\n")...)

		rowHeight := metrics.RowHeight
		if rowHeight <= 0 {
			rowHeight = 1
		}
		for item := 0; item < count; item++ {
			path := datasource.IndexPath{Section: section, Item: item}
			selected := path == a.cursor
			if selected {
				cursorLine = len(lines)
			}
			cell := a.composite.Item(view, path)
			row := widgets.Row{
				Text:     cell.Render(a.width-metrics.Indent-2, rowHeight),
				Indent:   metrics.Indent,
				Selected: selected,
				Accent:   metrics.Accent,
			}
			lines = append(lines, strings.Split(row.Render(a.width, rowHeight), "\n")...)
		}
		lines = append(lines, "")
	}

	a.scroll = scrollTo(a.scroll, cursorLine, len(lines), height)
	end := min(a.scroll+height, len(lines))
	visible := lines[a.scroll:end]
	out := strings.Join(visible, "\n")
	if pad := height - len(visible); pad > 0 {
		out += strings.Repeat("\n", pad)
	}
	return out
}

// scrollTo nudges the window start so line stays inside [start, start+height).
func scrollTo(start, line, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if line < start {
		start = line
	}
	if line >= start+height {
		start = line - height + 1
	}
	if start > total-height {
		start = total - height
	}
	if start < 0 {
		start = 0
	}
	return start
}

func (a *App) renderJumpCard() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Jump to section"))
	b.WriteString("\n> " + a.jump.query + "\n")
	if len(a.jump.filtered) == 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render("no matches"))
	}
	for i, t := range a.jump.filtered {
		marker := "  "
		if i == a.jump.cursor {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("\n%s%s", marker, t.Title))
	}
	return b.String()
}

func (a *App) renderFooter() string {
	state := a.composite.LoadingState()
	badge := widgets.StateBadge{Label: phaseLabel(state.Phase), Color: phaseColor(state.Phase, a.cfg.UI)}
	left := badge.Render(a.width, 1)
	pos := fmt.Sprintf("%s  [%s]", a.status, a.cursor)
	return left + " " + lipgloss.NewStyle().Faint(true).Render(pos)
}

func phaseLabel(p datasource.LoadingPhase) string {
	if p == datasource.PhaseInitial {
		return "initial"
	}
	return string(p)
}

func phaseColor(p datasource.LoadingPhase, ui config.UIConfig) string {
	switch p {
	case datasource.PhaseError:
		return "#f38ba8"
	case datasource.PhaseLoaded:
		return "#a6e3a1"
	default:
		return ui.Accent
	}
}
