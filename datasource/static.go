package datasource

// TextCell renders a single line of text, clipped to the given width.
type TextCell string

func (t TextCell) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := string(t)
	if len(s) > width {
		s = s[:width]
	}
	return s
}

// StaticSection is one titled group of items held by a StaticSource.
type StaticSection struct {
	Title   string
	Metrics SectionMetrics
	Items   []string
}

// StaticSource is an in-memory data source. Its content is present at
// construction, so it reports PhaseLoaded immediately. Mutators emit the
// matching local events, which makes it the reference child for tests and
// the demo.
type StaticSource struct {
	Base
	sections []StaticSection
}

func NewStaticSource(sections ...StaticSection) *StaticSource {
	s := &StaticSource{sections: sections}
	s.Bind(s)
	s.SetLoadingState(LoadingState{Phase: PhaseLoaded})
	return s
}

func (s *StaticSource) SectionCount() int { return len(s.sections) }

func (s *StaticSource) ItemCount(section int) int { return len(s.sections[section].Items) }

func (s *StaticSource) Item(view View, path IndexPath) Cell {
	return TextCell(s.sections[path.Section].Items[path.Item])
}

func (s *StaticSource) Metrics(section int) SectionMetrics {
	return s.sections[section].Metrics
}

func (s *StaticSource) SectionTitle(section int) string { return s.sections[section].Title }

// InsertSection places sec at index and announces the insertion.
func (s *StaticSource) InsertSection(index int, sec StaticSection, dir Direction) {
	s.sections = append(s.sections, StaticSection{})
	copy(s.sections[index+1:], s.sections[index:])
	s.sections[index] = sec
	s.NotifySectionsInserted([]int{index}, dir)
}

// RemoveSection drops the section at index and announces the removal.
func (s *StaticSource) RemoveSection(index int, dir Direction) {
	s.sections = append(s.sections[:index], s.sections[index+1:]...)
	s.NotifySectionsRemoved([]int{index}, dir)
}

// ReloadSection replaces the section at index in place.
func (s *StaticSource) ReloadSection(index int, sec StaticSection) {
	s.sections[index] = sec
	s.NotifySectionsReloaded([]int{index})
}

// MoveSection relocates the section at from to to.
func (s *StaticSource) MoveSection(from, to int, dir Direction) {
	sec := s.sections[from]
	s.sections = append(s.sections[:from], s.sections[from+1:]...)
	s.sections = append(s.sections, StaticSection{})
	copy(s.sections[to+1:], s.sections[to:])
	s.sections[to] = sec
	s.NotifySectionMoved(from, to, dir)
}

// InsertItem places item at path and announces the insertion.
func (s *StaticSource) InsertItem(path IndexPath, item string) {
	items := s.sections[path.Section].Items
	items = append(items, "")
	copy(items[path.Item+1:], items[path.Item:])
	items[path.Item] = item
	s.sections[path.Section].Items = items
	s.NotifyItemsInserted([]IndexPath{path})
}

// RemoveItem drops the item at path and announces the removal.
func (s *StaticSource) RemoveItem(path IndexPath) {
	items := s.sections[path.Section].Items
	s.sections[path.Section].Items = append(items[:path.Item], items[path.Item+1:]...)
	s.NotifyItemsRemoved([]IndexPath{path})
}

// ReloadItem replaces the item at path in place.
func (s *StaticSource) ReloadItem(path IndexPath, item string) {
	s.sections[path.Section].Items[path.Item] = item
	s.NotifyItemsReloaded([]IndexPath{path})
}

// MoveItem relocates an item between paths, possibly across sections.
func (s *StaticSource) MoveItem(from, to IndexPath) {
	item := s.sections[from.Section].Items[from.Item]
	src := s.sections[from.Section].Items
	s.sections[from.Section].Items = append(src[:from.Item], src[from.Item+1:]...)
	dst := s.sections[to.Section].Items
	dst = append(dst, "")
	copy(dst[to.Item+1:], dst[to.Item:])
	dst[to.Item] = item
	s.sections[to.Section].Items = dst
	s.NotifyItemMoved(from, to)
}
