package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// Label draws a single line of text in the top row of its area.
type Label struct {
	ui.Base
	Text  string
	Style lipgloss.Style
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{Text: text, Style: lipgloss.NewStyle()}
}

// Draw implements ui.Drawable.
func (l *Label) Draw(f ui.Frame, area render.Rect) {
	if area.Empty() {
		return
	}
	row := render.Rect{X: area.X, Y: area.Y, W: area.W, H: 1}
	f.Render(row, l.Style.Render(render.Truncate(l.Text, area.W)))
}

var _ ui.Component = (*Label)(nil)
