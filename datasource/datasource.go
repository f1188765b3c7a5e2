package datasource

// View is the narrow handle the rendering layer hands to data sources.
// Section indices passed to it are in the caller's own space: a child queried
// through a Composed container receives a pre-translated local view, so it
// never sees global numbering.
type View interface {
	SectionCount() int
	ItemCount(section int) int
	Size() (width, height int)
}

// Cell is renderable item content.
type Cell interface {
	Render(width, height int) string
}

// DataSource supplies sections of items to a grid or list view.
type DataSource interface {
	SectionCount() int
	ItemCount(section int) int
	Item(view View, path IndexPath) Cell
	Metrics(section int) SectionMetrics

	LoadContent()
	ResetContent()
	LoadingState() LoadingState

	Container() Container
	SetContainer(Container)
}

// Container receives events from a registered data source. A source belongs
// to at most one container at a time; the back-reference is set and cleared
// only through the container's Add and Remove.
type Container interface {
	Notify(src DataSource, ev Event)
}

// Titler is implemented by sources that name their sections.
type Titler interface {
	SectionTitle(section int) string
}

// Sizer is implemented by sources that answer size-fitting queries for items
// and section headers.
type Sizer interface {
	ItemSize(view View, path IndexPath) Size
	HeaderSize(view View, section int) Size
}

// SectionMetrics configures how a section is presented. Zero-valued fields
// inherit the containing source's defaults.
type SectionMetrics struct {
	RowHeight int    // terminal rows per item
	Indent    int    // left indent applied to item rows
	Accent    string // lipgloss color used for the section header
	Divider   string // rune(s) drawn under the section header
}

// merged fills zero fields of m from defaults. Fields set on m win.
func (m SectionMetrics) merged(defaults SectionMetrics) SectionMetrics {
	if m.RowHeight == 0 {
		m.RowHeight = defaults.RowHeight
	}
	if m.Indent == 0 {
		m.Indent = defaults.Indent
	}
	if m.Accent == "" {
		m.Accent = defaults.Accent
	}
	if m.Divider == "" {
		m.Divider = defaults.Divider
	}
	return m
}

// Base carries the bookkeeping every data source shares: the owning
// container, the source's own loading state, source-wide default metrics,
// and a queue of updates deferred while a placeholder covers the view.
// Concrete sources embed Base and register themselves with Bind.
type Base struct {
	self      DataSource
	container Container
	state     LoadingState
	defaults  SectionMetrics
	pending   []func()
}

// Bind records the outer data source so notifications identify it correctly.
// Call it in the source's constructor, before the source joins a container.
func (b *Base) Bind(self DataSource) { b.self = self }

func (b *Base) Container() Container     { return b.container }
func (b *Base) SetContainer(c Container) { b.container = c }

func (b *Base) LoadingState() LoadingState     { return b.state }
func (b *Base) SetLoadingState(s LoadingState) { b.state = s }

func (b *Base) DefaultMetrics() SectionMetrics     { return b.defaults }
func (b *Base) SetDefaultMetrics(m SectionMetrics) { b.defaults = m }

// Metrics satisfies DataSource with the source-wide defaults. Sources with
// per-section overrides shadow it.
func (b *Base) Metrics(section int) SectionMetrics { return b.defaults }

// LoadContent is a no-op for sources whose content is present at
// construction. Loading sources shadow it.
func (b *Base) LoadContent() {}

// ResetContent drops bookkeeping back to the initial state. It does not
// cancel any load a shadowing source may have in flight.
func (b *Base) ResetContent() {
	b.state = LoadingState{}
	b.pending = nil
}

// ShouldDisplayPlaceholder reports whether the source is in a visual state
// with nothing real to show. It consults the outer source's LoadingState, so
// a Composed container answers from its aggregate.
func (b *Base) ShouldDisplayPlaceholder() bool {
	return b.currentState().Placeholder()
}

func (b *Base) currentState() LoadingState {
	if b.self != nil {
		return b.self.LoadingState()
	}
	return b.state
}

// EnqueueUpdate runs fn now, unless a placeholder covers the view, in which
// case fn is deferred until the next batched refresh.
func (b *Base) EnqueueUpdate(fn func()) {
	if b.ShouldDisplayPlaceholder() {
		b.pending = append(b.pending, fn)
		return
	}
	fn()
}

func (b *Base) executePendingUpdates() {
	pending := b.pending
	b.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// NotifyEvent forwards ev to the owning container, if any.
func (b *Base) NotifyEvent(ev Event) {
	if b.container == nil {
		return
	}
	if b.self == nil {
		panic("datasource: source not bound; call Bind before notifying")
	}
	b.container.Notify(b.self, ev)
}

func (b *Base) NotifySectionsInserted(sections []int, dir Direction) {
	b.NotifyEvent(SectionsInserted{Sections: sections, Direction: dir})
}

func (b *Base) NotifySectionsRemoved(sections []int, dir Direction) {
	b.NotifyEvent(SectionsRemoved{Sections: sections, Direction: dir})
}

func (b *Base) NotifySectionsReloaded(sections []int) {
	b.NotifyEvent(SectionsReloaded{Sections: sections})
}

func (b *Base) NotifySectionMoved(from, to int, dir Direction) {
	b.NotifyEvent(SectionMoved{From: from, To: to, Direction: dir})
}

func (b *Base) NotifyItemsInserted(paths []IndexPath) {
	b.NotifyEvent(ItemsInserted{Paths: paths})
}

func (b *Base) NotifyItemsRemoved(paths []IndexPath) {
	b.NotifyEvent(ItemsRemoved{Paths: paths})
}

func (b *Base) NotifyItemsReloaded(paths []IndexPath) {
	b.NotifyEvent(ItemsReloaded{Paths: paths})
}

func (b *Base) NotifyItemMoved(from, to IndexPath) {
	b.NotifyEvent(ItemMoved{From: from, To: to})
}

func (b *Base) NotifyWillLoad() { b.NotifyEvent(WillLoadContent{}) }

func (b *Base) NotifyDidLoad(err error) { b.NotifyEvent(DidLoadContent{Err: err}) }
