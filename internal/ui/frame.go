package ui

import "sportui/internal/render"

// Frame is the paint target handed to Draw. Components only touch the part
// of the frame inside the area they were given.
type Frame interface {
	Size() render.Rect
	Render(area render.Rect, content string)
	Clear(area render.Rect)
}

var _ Frame = (*render.Canvas)(nil)
