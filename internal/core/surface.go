package core

// Surface is the rendering collaborator a game draws its frame on.
// Coordinates are playfield pixels; implementations decide how a pixel maps
// to their medium (terminal cells, an image, a recorder in tests).
type Surface interface {
	// Clear fills the whole surface with a color.
	Clear(c Color)

	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)

	// StrokeRect outlines a rectangle.
	StrokeRect(r Rect, c Color)

	// SetTitle sets the window title text, e.g. "Score: 3".
	SetTitle(title string)

	// Present finishes the frame.
	Present() error
}
