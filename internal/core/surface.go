package core

// Surface is the presentation target for one frame.
// A frame is a Clear, any number of FillRect calls, then Present.
type Surface interface {
	// Clear fills the whole surface with the background color.
	Clear(c Color)

	// FillRect draws a solid axis-aligned rectangle in pixel coordinates.
	FillRect(r Rect, c Color)

	// Present publishes the frame built since the last Clear.
	Present()
}
