package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gridsource/datasource"
	"github.com/jask/gridsource/internal/config"
)

// App drives the demo browser. It owns the composite and renders its
// sections; as the composite's container it keeps the cursor pointing at the
// same content while translated mutation events renumber the global space.
type App struct {
	cfg       config.Config
	composite *datasource.Composed

	cursor datasource.IndexPath
	width  int
	height int
	scroll int
	status string

	mode    appMode
	jump    *jumpPicker
	scratch int // counter naming ad-hoc scratch sections
}

type appMode string

const (
	modeBrowse appMode = ""
	modeJump   appMode = "jump"
)

type tickMsg time.Time

func New(cfg config.Config, composite *datasource.Composed) *App {
	a := &App{
		cfg:       cfg,
		composite: composite,
		status:    "Ready",
	}
	composite.SetContainer(a)
	return a
}

func (a *App) Init() tea.Cmd {
	a.composite.LoadContent()
	return a.tickCmd()
}

func (a *App) tickCmd() tea.Cmd {
	secs := a.cfg.UI.RefreshSeconds
	if secs <= 0 {
		return nil
	}
	return tea.Tick(time.Duration(secs)*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tickMsg:
		a.composite.LoadContent()
		return a, a.tickCmd()
	case tea.KeyMsg:
		if a.mode == modeJump {
			return a.handleJumpKey(m)
		}
		return a.handleBrowseKey(m)
	}
	return a, nil
}

func (a *App) handleBrowseKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		a.moveCursor(-1)
	case "down", "j":
		a.moveCursor(+1)
	case "r":
		a.status = "refreshing..."
		a.composite.LoadContent()
	case "R":
		a.composite.ResetContent()
		a.cursor = datasource.IndexPath{}
		a.scroll = 0
		a.status = "reset"
	case "a":
		a.addScratchSource()
	case "x":
		a.removeSourceUnderCursor()
	case "g":
		a.openJumpPicker()
	}
	return a, nil
}

func (a *App) handleJumpKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.mode = modeBrowse
		a.jump = nil
		a.status = "Ready"
	case "enter":
		if section, ok := a.jump.current(); ok {
			a.cursor = datasource.IndexPath{Section: section}
			a.status = "Jumped to " + a.composite.SectionTitle(section)
		}
		a.mode = modeBrowse
		a.jump = nil
	case "up", "ctrl+k":
		a.jump.cursorUp()
	case "down", "ctrl+j":
		a.jump.cursorDown()
	case "backspace":
		a.jump.backspace()
	default:
		if r := []rune(m.String()); len(r) == 1 {
			a.jump.typeRune(r[0])
		}
	}
	return a, nil
}

func (a *App) openJumpPicker() {
	n := a.composite.SectionCount()
	if n == 0 {
		a.status = "No sections to jump to"
		return
	}
	targets := make([]jumpTarget, n)
	for i := 0; i < n; i++ {
		targets[i] = jumpTarget{Section: i, Title: a.composite.SectionTitle(i)}
	}
	a.jump = newJumpPicker(targets)
	a.mode = modeJump
	a.status = "Jump: type to filter, enter to go"
}

// addScratchSource registers a fresh single-section static source at the end
// of the composite.
func (a *App) addScratchSource() {
	a.scratch++
	src := datasource.NewStaticSource(datasource.StaticSection{
		Title: fmt.Sprintf("Scratch %d", a.scratch),
		Items: []string{"new scratch item"},
	})
	a.composite.Add(src)
	id := a.composite.ChildID(src)
	a.status = fmt.Sprintf("Added scratch source %s", shortID(id.String()))
}

// removeSourceUnderCursor unregisters whichever child owns the cursor's
// section. The SectionsRemoved event that follows pulls the cursor back into
// range.
func (a *App) removeSourceUnderCursor() {
	if a.composite.SectionCount() == 0 {
		a.status = "Nothing to remove"
		return
	}
	child := a.composite.SourceAt(a.cursor.Section)
	a.composite.Remove(child)
	a.status = "Removed source under cursor"
}

func (a *App) moveCursor(delta int) {
	sections := a.composite.SectionCount()
	if sections == 0 {
		a.cursor = datasource.IndexPath{}
		return
	}
	c := a.cursor
	c.Item += delta
	for c.Item < 0 {
		if c.Section == 0 {
			c.Item = 0
			break
		}
		c.Section--
		c.Item += max(a.composite.ItemCount(c.Section), 1)
	}
	for c.Item >= max(a.composite.ItemCount(c.Section), 1) {
		if c.Section == sections-1 {
			c.Item = max(a.composite.ItemCount(c.Section)-1, 0)
			break
		}
		c.Item -= max(a.composite.ItemCount(c.Section), 1)
		c.Section++
	}
	a.cursor = c
}

// Notify implements datasource.Container. Events arrive already translated
// into global indices; the app's only job is to keep the cursor on the same
// content and surface lifecycle changes in the status line.
func (a *App) Notify(src datasource.DataSource, ev datasource.Event) {
	switch ev := ev.(type) {
	case datasource.SectionsInserted:
		shift := 0
		for _, s := range ev.Sections {
			if s <= a.cursor.Section {
				shift++
			}
		}
		a.cursor.Section += shift
	case datasource.SectionsRemoved:
		before, hit := 0, false
		for _, s := range ev.Sections {
			switch {
			case s < a.cursor.Section:
				before++
			case s == a.cursor.Section:
				hit = true
			}
		}
		a.cursor.Section -= before
		if hit {
			a.cursor.Item = 0
		}
	case datasource.SectionMoved:
		a.cursor.Section = sectionAfterMove(a.cursor.Section, ev.From, ev.To)
	case datasource.ItemsInserted:
		for _, p := range ev.Paths {
			if p.Section == a.cursor.Section && p.Item <= a.cursor.Item {
				a.cursor.Item++
			}
		}
	case datasource.ItemsRemoved:
		for _, p := range ev.Paths {
			if p.Section == a.cursor.Section && p.Item < a.cursor.Item {
				a.cursor.Item--
			}
		}
	case datasource.ItemMoved:
		if ev.From == a.cursor {
			a.cursor = ev.To
		}
	case datasource.WillLoadContent:
		a.status = "loading..."
	case datasource.DidLoadContent:
		if ev.Err != nil {
			a.status = "load failed: " + ev.Err.Error()
		} else {
			a.status = "loaded"
		}
	case datasource.BatchUpdate:
		ev.Updates()
	}
	a.clampCursor()
}

// sectionAfterMove renumbers a cursor section for a single-section move.
func sectionAfterMove(cur, from, to int) int {
	switch {
	case cur == from:
		return to
	case from < cur && cur <= to:
		return cur - 1
	case to <= cur && cur < from:
		return cur + 1
	default:
		return cur
	}
}

func (a *App) clampCursor() {
	sections := a.composite.SectionCount()
	if sections == 0 {
		a.cursor = datasource.IndexPath{}
		return
	}
	if a.cursor.Section < 0 {
		a.cursor.Section = 0
	}
	if a.cursor.Section >= sections {
		a.cursor.Section = sections - 1
	}
	items := a.composite.ItemCount(a.cursor.Section)
	if a.cursor.Item < 0 {
		a.cursor.Item = 0
	}
	if items > 0 && a.cursor.Item >= items {
		a.cursor.Item = items - 1
	}
	if items == 0 {
		a.cursor.Item = 0
	}
}

func shortID(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
