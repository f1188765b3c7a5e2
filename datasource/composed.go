package datasource

import (
	"fmt"

	"github.com/google/uuid"
)

// childEntry pairs a registered child with its mapping and a registration
// token. Entries keep registration order; that order tiles the global
// section space.
type childEntry struct {
	id    uuid.UUID
	child DataSource
	m     *mapping
}

// Composed flattens multiple data sources into one contiguous global section
// space. It is itself a DataSource, so composites nest.
//
// All methods must run on the single goroutine that owns the view (the
// bubbletea update loop in the demo). Children change their section counts
// on their own schedule, so every query that reads the derived
// section-to-child cache rebuilds it first.
type Composed struct {
	Base

	entries       []*childEntry
	globalToChild []*childEntry
	sectionCount  int

	agg      LoadingState
	aggValid bool
}

func NewComposed() *Composed {
	c := &Composed{}
	c.Bind(c)
	return c
}

// Add registers child at the end of the composite and announces the global
// range its sections now occupy. Registering a child twice, or a child owned
// by another container, is a programmer error.
func (c *Composed) Add(child DataSource) {
	if e, _ := c.entryFor(child); e != nil {
		panic("datasource: child already registered with this composite")
	}
	if child.Container() != nil {
		panic("datasource: child already owned by another container")
	}
	child.SetContainer(c)
	e := &childEntry{id: uuid.New(), child: child, m: &mapping{}}
	c.entries = append(c.entries, e)
	c.invalidateLoadingState()
	c.rebuild()
	c.NotifyEvent(SectionsInserted{
		Sections:  spanSections(e.m.globalStart, e.m.length()),
		Direction: DirectionNone,
	})
}

// Remove unregisters child and announces the global range it occupied before
// the mapping was rebuilt. Removing an unregistered child is a programmer
// error.
func (c *Composed) Remove(child DataSource) {
	e, idx := c.entryFor(child)
	if e == nil {
		panic("datasource: child not registered with this composite")
	}
	removed := spanSections(e.m.globalStart, e.m.length())
	c.entries = append(c.entries[:idx], c.entries[idx+1:]...)
	if child.Container() == Container(c) {
		child.SetContainer(nil)
	}
	c.invalidateLoadingState()
	c.rebuild()
	c.NotifyEvent(SectionsRemoved{Sections: removed, Direction: DirectionNone})
}

// RemoveAll drops every child without emitting per-range removal events;
// callers treat it as a full reset and redraw the view wholesale. A child
// that was silently re-parented keeps its new container.
func (c *Composed) RemoveAll() {
	for _, e := range c.entries {
		if e.child.Container() == Container(c) {
			e.child.SetContainer(nil)
		}
	}
	c.entries = nil
	c.globalToChild = nil
	c.sectionCount = 0
	c.invalidateLoadingState()
}

// Children returns the registered children in registration order.
func (c *Composed) Children() []DataSource {
	out := make([]DataSource, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.child
	}
	return out
}

// ChildID returns the registration token assigned to child, or uuid.Nil for
// an unregistered source. Tokens are stable for the lifetime of the
// registration and are meant for status lines and debugging.
func (c *Composed) ChildID(child DataSource) uuid.UUID {
	if e, _ := c.entryFor(child); e != nil {
		return e.id
	}
	return uuid.Nil
}

// SourceAt returns the child owning the given global section.
func (c *Composed) SourceAt(section int) DataSource {
	c.rebuild()
	return c.entryAt(section).child
}

func (c *Composed) SectionCount() int {
	c.rebuild()
	return c.sectionCount
}

func (c *Composed) ItemCount(section int) int {
	c.rebuild()
	e := c.entryAt(section)
	return e.child.ItemCount(e.m.localSection(section))
}

func (c *Composed) Item(view View, path IndexPath) Cell {
	c.rebuild()
	e := c.entryAt(path.Section)
	return e.child.Item(localView{view: view, m: e.m}, e.m.localIndexPath(path))
}

// Metrics merges the composite's defaults with the owning child's metrics
// for the section; the child wins field by field.
func (c *Composed) Metrics(section int) SectionMetrics {
	c.rebuild()
	e := c.entryAt(section)
	return e.child.Metrics(e.m.localSection(section)).merged(c.DefaultMetrics())
}

// SectionTitle delegates to the owning child when it names its sections.
func (c *Composed) SectionTitle(section int) string {
	c.rebuild()
	e := c.entryAt(section)
	if t, ok := e.child.(Titler); ok {
		return t.SectionTitle(e.m.localSection(section))
	}
	return ""
}

// ItemSize delegates the size-fitting query when the child can answer it.
func (c *Composed) ItemSize(view View, path IndexPath) Size {
	c.rebuild()
	e := c.entryAt(path.Section)
	if s, ok := e.child.(Sizer); ok {
		return s.ItemSize(localView{view: view, m: e.m}, e.m.localIndexPath(path))
	}
	return Size{}
}

// HeaderSize delegates the header size-fitting query when the child can
// answer it.
func (c *Composed) HeaderSize(view View, section int) Size {
	c.rebuild()
	e := c.entryAt(section)
	if s, ok := e.child.(Sizer); ok {
		return s.HeaderSize(localView{view: view, m: e.m}, e.m.localSection(section))
	}
	return Size{}
}

// LoadContent forwards to every child and does not wait on any of them.
func (c *Composed) LoadContent() {
	for _, e := range c.entries {
		e.child.LoadContent()
	}
}

// ResetContent resets the composite's own bookkeeping and forwards the reset
// to every child. In-flight loads are not cancelled.
func (c *Composed) ResetContent() {
	c.invalidateLoadingState()
	c.Base.ResetContent()
	for _, e := range c.entries {
		e.child.ResetContent()
	}
}

// LoadingState aggregates every child's state with the composite's own
// directly-set state. The result is cached until a child reports a lifecycle
// event, a child is added or removed, the own state is set, or content is
// reset.
func (c *Composed) LoadingState() LoadingState {
	if !c.aggValid {
		states := make([]LoadingState, 0, len(c.entries)+1)
		for _, e := range c.entries {
			states = append(states, e.child.LoadingState())
		}
		states = append(states, c.Base.LoadingState())
		c.agg = aggregateLoadingState(states)
		c.aggValid = true
	}
	return c.agg
}

func (c *Composed) SetLoadingState(s LoadingState) {
	c.invalidateLoadingState()
	c.Base.SetLoadingState(s)
}

func (c *Composed) invalidateLoadingState() { c.aggValid = false }

// Notify implements Container. Local indices from the child are translated
// into the composite's global space and the event is re-emitted unchanged in
// kind. Translation order follows what the indices refer to: insert indices
// only exist in the post-insert layout, so the mapping is rebuilt first;
// remove, reload, and move indices refer to the pre-change layout, so they
// are translated against the stale mapping before any rebuild.
func (c *Composed) Notify(child DataSource, ev Event) {
	e, _ := c.entryFor(child)
	if e == nil {
		panic("datasource: event from a child that is not registered")
	}
	switch ev := ev.(type) {
	case SectionsInserted:
		c.rebuild()
		c.NotifyEvent(SectionsInserted{Sections: e.m.globalSections(ev.Sections), Direction: ev.Direction})
	case SectionsRemoved:
		globals := e.m.globalSections(ev.Sections)
		c.rebuild()
		c.NotifyEvent(SectionsRemoved{Sections: globals, Direction: ev.Direction})
	case SectionsReloaded:
		c.NotifyEvent(SectionsReloaded{Sections: e.m.globalSections(ev.Sections)})
		c.rebuild()
	case SectionMoved:
		from, to := e.m.globalSection(ev.From), e.m.globalSection(ev.To)
		c.rebuild()
		c.NotifyEvent(SectionMoved{From: from, To: to, Direction: ev.Direction})
	case ItemsInserted:
		c.NotifyEvent(ItemsInserted{Paths: e.m.globalIndexPaths(ev.Paths)})
	case ItemsRemoved:
		c.NotifyEvent(ItemsRemoved{Paths: e.m.globalIndexPaths(ev.Paths)})
	case ItemsReloaded:
		c.NotifyEvent(ItemsReloaded{Paths: e.m.globalIndexPaths(ev.Paths)})
	case ItemMoved:
		c.NotifyEvent(ItemMoved{From: e.m.globalIndexPath(ev.From), To: e.m.globalIndexPath(ev.To)})
	case WillLoadContent:
		c.invalidateLoadingState()
		c.NotifyEvent(ev)
	case DidLoadContent:
		c.childDidLoad(ev.Err)
	default:
		c.NotifyEvent(ev)
	}
}

// childDidLoad re-aggregates and, when a placeholder was showing and still
// is, flushes any deferred structural updates inside one batched
// notification so the placeholder refreshes atomically.
func (c *Composed) childDidLoad(err error) {
	showing := c.ShouldDisplayPlaceholder()
	c.invalidateLoadingState()
	if showing && c.ShouldDisplayPlaceholder() {
		c.NotifyEvent(BatchUpdate{Updates: c.executePendingUpdates})
	}
	c.NotifyEvent(DidLoadContent{Err: err})
}

// rebuild retiles the global section space in registration order, querying
// each child's current section count. O(total sections); data sources are
// few and small enough that no incremental update is attempted.
func (c *Composed) rebuild() {
	offset := 0
	c.globalToChild = c.globalToChild[:0]
	for _, e := range c.entries {
		count := e.child.SectionCount()
		offset = e.m.updateMappings(offset, count)
		for i := 0; i < count; i++ {
			c.globalToChild = append(c.globalToChild, e)
		}
	}
	c.sectionCount = offset
}

func (c *Composed) entryFor(child DataSource) (*childEntry, int) {
	for i, e := range c.entries {
		if e.child == child {
			return e, i
		}
	}
	return nil, -1
}

func (c *Composed) entryAt(global int) *childEntry {
	if global < 0 || global >= len(c.globalToChild) {
		panic(fmt.Sprintf("datasource: global section %d out of range (have %d sections)",
			global, len(c.globalToChild)))
	}
	return c.globalToChild[global]
}

func spanSections(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}
