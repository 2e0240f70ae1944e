package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// renderBox draws content inside style's border, sized to fill area.
func renderBox(f ui.Frame, area render.Rect, style lipgloss.Style, content string) {
	if area.Empty() {
		return
	}
	w := area.W - style.GetHorizontalBorderSize()
	h := area.H - style.GetVerticalBorderSize()
	if w <= 0 || h <= 0 {
		return
	}
	f.Render(area, style.Width(w).Height(h).MaxWidth(area.W).MaxHeight(area.H).Render(content))
}

// innerWidth is the content width left inside style's border and padding.
func innerWidth(style lipgloss.Style, area render.Rect) int {
	w := area.W - style.GetHorizontalFrameSize()
	if w < 0 {
		return 0
	}
	return w
}
