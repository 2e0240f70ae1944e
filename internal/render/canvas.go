package render

import "strings"

// Canvas is a width x height grid of terminal lines. Content painted into a
// region replaces whatever was underneath it, so painting back to front
// yields the usual overlay behaviour.
type Canvas struct {
	width, height int
	lines         []string
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize discards the content and reallocates the grid.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
	blank := strings.Repeat(" ", width)
	c.lines = make([]string, height)
	for i := range c.lines {
		c.lines[i] = blank
	}
}

// Size returns the full drawable region.
func (c *Canvas) Size() Rect {
	return Rect{W: c.width, H: c.height}
}

// Clear blanks the cells of area.
func (c *Canvas) Clear(area Rect) {
	area = c.clip(area)
	if area.Empty() {
		return
	}
	blank := strings.Repeat(" ", area.W)
	for y := area.Y; y < area.Y+area.H; y++ {
		c.put(y, area.X, area.W, blank)
	}
}

// Render paints content into area. Lines are cut to the area width and
// padded with spaces; lines past the area height are dropped. Cells of the
// area not covered by content are blanked.
func (c *Canvas) Render(area Rect, content string) {
	clipped := c.clip(area)
	if clipped.Empty() {
		return
	}
	lines := strings.Split(content, "\n")
	// rows/cols of area that fell off the top/left edge are skipped
	skipY, skipX := clipped.Y-area.Y, clipped.X-area.X
	for row := 0; row < clipped.H; row++ {
		src := ""
		if i := row + skipY; i < len(lines) {
			src = lines[i]
		}
		if skipX > 0 {
			src = cutFrom(src, skipX)
		}
		c.put(clipped.Y+row, clipped.X, clipped.W, PadRight(src, clipped.W))
	}
}

// String returns the canvas as newline separated lines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// Line returns row y, or "" when out of range.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= len(c.lines) {
		return ""
	}
	return c.lines[y]
}

func (c *Canvas) put(y, x, w int, seg string) {
	line := c.lines[y]
	left := cutRange(line, 0, x)
	right := cutRange(line, x+w, c.width)
	c.lines[y] = left + seg + resetIfStyled(seg) + right
}

func (c *Canvas) clip(area Rect) Rect {
	x0, y0 := max(area.X, 0), max(area.Y, 0)
	x1, y1 := min(area.X+area.W, c.width), min(area.Y+area.H, c.height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
