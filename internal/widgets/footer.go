package widgets

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// Footer is the help bar listing the key hints of the current page.
type Footer struct {
	ui.Base
	hints []ui.Hint
	theme ui.FooterTheme
	help  help.Model
}

// NewFooter creates an empty footer.
func NewFooter() *Footer {
	f := &Footer{help: help.New()}
	f.ApplyTheme(ui.DefaultTheme())
	return f
}

// SetHints replaces the hints shown.
func (f *Footer) SetHints(hints ...ui.Hint) {
	f.hints = append([]ui.Hint(nil), hints...)
}

// Hints returns a copy of the hints shown.
func (f *Footer) Hints() []ui.Hint {
	out := make([]ui.Hint, len(f.hints))
	copy(out, f.hints)
	return out
}

// View renders the hint line without the border.
func (f *Footer) View() string {
	bindings := make([]key.Binding, 0, len(f.hints))
	for _, h := range f.hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h.Key),
			key.WithHelp(h.Key, h.Desc),
		))
	}
	return f.help.ShortHelpView(bindings)
}

// ApplyTheme implements ui.Themeable.
func (f *Footer) ApplyTheme(th *ui.Theme) {
	f.theme = th.Footer
	f.help.Styles.ShortKey = th.Footer.Key
	f.help.Styles.ShortDesc = th.Footer.Desc
	f.help.Styles.ShortSeparator = th.Footer.Desc
}

// Draw implements ui.Drawable.
func (f *Footer) Draw(fr ui.Frame, area render.Rect) {
	f.help.Width = innerWidth(f.theme.Box, area)
	renderBox(fr, area, f.theme.Box, f.View())
}

var _ ui.Component = (*Footer)(nil)
