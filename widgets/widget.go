package widgets

// Widget renders into a box of the given size.
type Widget interface {
	Render(width, height int) string
}
