package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/gridsource/datasource"
	"github.com/jask/gridsource/internal/config"
)

func staticSections(titles ...string) *datasource.StaticSource {
	sections := make([]datasource.StaticSection, len(titles))
	for i, title := range titles {
		sections[i] = datasource.StaticSection{Title: title, Items: []string{"one", "two"}}
	}
	return datasource.NewStaticSource(sections...)
}

func newTestApp(t *testing.T, children ...datasource.DataSource) (*App, *datasource.Composed) {
	t.Helper()
	c := datasource.NewComposed()
	a := New(config.Config{}, c)
	for _, child := range children {
		c.Add(child)
	}
	a.width, a.height = 60, 20
	return a, c
}

func TestCursorShiftsWhenSectionsInsertAbove(t *testing.T) {
	first := staticSections("alpha", "beta")
	a, c := newTestApp(t, first)
	a.cursor = datasource.IndexPath{Section: 1, Item: 1}

	// Inserting at local 0 lands at global 0, above the cursor.
	first.InsertSection(0, datasource.StaticSection{Title: "pre", Items: []string{"x"}}, datasource.DirectionNone)

	require.Equal(t, datasource.IndexPath{Section: 2, Item: 1}, a.cursor)
	require.Equal(t, 3, c.SectionCount())
}

func TestCursorStaysWhenSectionsInsertBelow(t *testing.T) {
	first := staticSections("alpha", "beta")
	a, _ := newTestApp(t, first)
	a.cursor = datasource.IndexPath{Section: 0, Item: 1}

	first.InsertSection(2, datasource.StaticSection{Title: "post", Items: []string{"x"}}, datasource.DirectionNone)

	require.Equal(t, datasource.IndexPath{Section: 0, Item: 1}, a.cursor)
}

func TestCursorPullsBackWhenSectionRemovedAbove(t *testing.T) {
	first := staticSections("alpha", "beta", "gamma")
	a, _ := newTestApp(t, first)
	a.cursor = datasource.IndexPath{Section: 2, Item: 1}

	first.RemoveSection(0, datasource.DirectionNone)

	require.Equal(t, datasource.IndexPath{Section: 1, Item: 1}, a.cursor)
}

func TestCursorResetsItemWhenOwnSectionRemoved(t *testing.T) {
	first := staticSections("alpha", "beta")
	a, _ := newTestApp(t, first)
	a.cursor = datasource.IndexPath{Section: 1, Item: 1}

	first.RemoveSection(1, datasource.DirectionNone)

	// Item resets for the vanished section; the clamp then pulls the section
	// index back into the one-section layout.
	require.Equal(t, datasource.IndexPath{Section: 0, Item: 0}, a.cursor)
}

func TestCursorFollowsSectionMove(t *testing.T) {
	first := staticSections("alpha", "beta", "gamma")
	a, _ := newTestApp(t, first)
	a.cursor = datasource.IndexPath{Section: 0, Item: 1}

	first.MoveSection(0, 2, datasource.DirectionNone)

	require.Equal(t, datasource.IndexPath{Section: 2, Item: 1}, a.cursor)
}

func TestSectionAfterMoveRenumbersBystanders(t *testing.T) {
	// Moving 0 -> 2 slides sections 1 and 2 up by one.
	require.Equal(t, 0, sectionAfterMove(1, 0, 2))
	require.Equal(t, 1, sectionAfterMove(2, 0, 2))
	// Moving 2 -> 0 slides sections 0 and 1 down by one.
	require.Equal(t, 1, sectionAfterMove(0, 2, 0))
	require.Equal(t, 2, sectionAfterMove(1, 2, 0))
	require.Equal(t, 3, sectionAfterMove(3, 0, 2))
}

func TestCursorTracksItemInsertAndRemove(t *testing.T) {
	first := staticSections("alpha")
	a, _ := newTestApp(t, first)
	a.cursor = datasource.IndexPath{Section: 0, Item: 1}

	first.InsertItem(datasource.IndexPath{Section: 0, Item: 0}, "zero")
	require.Equal(t, datasource.IndexPath{Section: 0, Item: 2}, a.cursor)

	first.RemoveItem(datasource.IndexPath{Section: 0, Item: 0})
	require.Equal(t, datasource.IndexPath{Section: 0, Item: 1}, a.cursor)
}

func TestMoveCursorCrossesSectionBoundaries(t *testing.T) {
	a, _ := newTestApp(t, staticSections("alpha", "beta"))
	a.cursor = datasource.IndexPath{Section: 0, Item: 1}

	a.moveCursor(+1)
	require.Equal(t, datasource.IndexPath{Section: 1, Item: 0}, a.cursor)

	a.moveCursor(-1)
	require.Equal(t, datasource.IndexPath{Section: 0, Item: 1}, a.cursor)

	// Clamps at both ends.
	a.cursor = datasource.IndexPath{Section: 0, Item: 0}
	a.moveCursor(-1)
	require.Equal(t, datasource.IndexPath{Section: 0, Item: 0}, a.cursor)

	a.cursor = datasource.IndexPath{Section: 1, Item: 1}
	a.moveCursor(+1)
	require.Equal(t, datasource.IndexPath{Section: 1, Item: 1}, a.cursor)
}

func TestRemoveSourceUnderCursorKeepsCursorInRange(t *testing.T) {
	first := staticSections("alpha")
	second := staticSections("beta")
	a, c := newTestApp(t, first, second)
	a.cursor = datasource.IndexPath{Section: 1, Item: 1}

	a.removeSourceUnderCursor()

	require.Equal(t, 1, c.SectionCount())
	require.Equal(t, []datasource.DataSource{first}, c.Children())
	require.Equal(t, datasource.IndexPath{Section: 0, Item: 0}, a.cursor)
}

func TestAddScratchSourceRegistersChild(t *testing.T) {
	a, c := newTestApp(t, staticSections("alpha"))

	a.addScratchSource()
	a.addScratchSource()

	require.Len(t, c.Children(), 3)
	require.Equal(t, "Scratch 2", c.SectionTitle(2))
}

func TestViewShowsPlaceholderBeforeContent(t *testing.T) {
	c := datasource.NewComposed()
	a := New(config.Config{}, c)
	a.width, a.height = 40, 10

	out := a.View()
	require.Contains(t, out, "Loading")
}

func TestBrowseKeysQuit(t *testing.T) {
	a, _ := newTestApp(t, staticSections("alpha"))
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}
