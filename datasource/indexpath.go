package datasource

import "fmt"

// IndexPath addresses one item inside one section.
type IndexPath struct {
	Section int
	Item    int
}

func (p IndexPath) String() string { return fmt.Sprintf("%d/%d", p.Section, p.Item) }

// Direction hints how a structural change should be presented by the view.
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Size is measured in terminal cells.
type Size struct {
	Width  int
	Height int
}
