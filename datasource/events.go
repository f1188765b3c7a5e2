package datasource

// Event is a structural or lifecycle notification emitted by a data source.
// Indices inside an event are local to the emitting source; a Composed
// container re-emits the event with indices translated into its own global
// space. Events reach listeners in the order they were emitted.
type Event interface {
	event()
}

// SectionsInserted announces sections that now exist at the given indices.
type SectionsInserted struct {
	Sections  []int
	Direction Direction
}

// SectionsRemoved announces sections removed from the given indices. The
// indices refer to the layout as it was before the removal.
type SectionsRemoved struct {
	Sections  []int
	Direction Direction
}

// SectionsReloaded announces sections whose content changed in place.
type SectionsReloaded struct {
	Sections []int
}

// SectionMoved announces a section relocated from From to To.
type SectionMoved struct {
	From      int
	To        int
	Direction Direction
}

// ItemsInserted announces items that now exist at the given paths.
type ItemsInserted struct {
	Paths []IndexPath
}

// ItemsRemoved announces items removed from the given paths.
type ItemsRemoved struct {
	Paths []IndexPath
}

// ItemsReloaded announces items whose content changed in place.
type ItemsReloaded struct {
	Paths []IndexPath
}

// ItemMoved announces an item relocated from From to To.
type ItemMoved struct {
	From IndexPath
	To   IndexPath
}

// WillLoadContent announces that a source is about to load content.
type WillLoadContent struct{}

// DidLoadContent announces that a load finished. Err is nil on success.
type DidLoadContent struct {
	Err error
}

// BatchUpdate asks the listener to run Updates inside a single visual pass,
// so a stack of deferred structural changes lands atomically.
type BatchUpdate struct {
	Updates func()
}

func (SectionsInserted) event() {}
func (SectionsRemoved) event()  {}
func (SectionsReloaded) event() {}
func (SectionMoved) event()     {}
func (ItemsInserted) event()    {}
func (ItemsRemoved) event()     {}
func (ItemsReloaded) event()    {}
func (ItemMoved) event()        {}
func (WillLoadContent) event()  {}
func (DidLoadContent) event()   {}
func (BatchUpdate) event()      {}
