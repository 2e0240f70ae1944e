package sport

import (
	"sportui/internal/render"
	"sportui/internal/ui"
	"sportui/internal/widgets"
)

// MenuSource identifies the main menu in selection events.
const MenuSource = "menu"

// MainLayer is the bottom layer of the app: menu tabs on top, the current
// page below and a footer with the page's commands. Digits 1..n switch
// pages.
type MainLayer struct {
	ui.BaseLayer
	ctrl   *Controller
	menu   *widgets.Tabs
	pages  []Page
	footer *widgets.Footer
}

// NewMainLayer builds the menu with the exercises and account pages.
func NewMainLayer(ctrl *Controller, sender ui.Sender) *MainLayer {
	pages := []Page{
		NewExercisesPage(ctrl, sender),
		NewAccountPage(ctrl),
	}
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = p.Title()
	}
	m := &MainLayer{
		ctrl:   ctrl,
		menu:   widgets.NewTabs(MenuSource, names...),
		pages:  pages,
		footer: widgets.NewFooter(),
	}
	m.menu.SetSender(sender)
	m.Keys().BindChar(m.switchByDigit)
	m.show(0)
	return m
}

// Menu returns the tab bar.
func (m *MainLayer) Menu() *widgets.Tabs { return m.menu }

// Footer returns the help bar.
func (m *MainLayer) Footer() *widgets.Footer { return m.footer }

// Page returns page i.
func (m *MainLayer) Page(i int) Page { return m.pages[i] }

// Current returns the page on screen.
func (m *MainLayer) Current() Page { return m.pages[m.menu.Current()] }

// Switch makes page i current. It reports false for an unknown page.
func (m *MainLayer) Switch(i int) bool {
	if !m.menu.SetCurrent(i) {
		return false
	}
	m.show(i)
	return true
}

func (m *MainLayer) switchByDigit(r rune) bool {
	if r < '1' || r > '9' {
		return false
	}
	i := int(r - '1')
	if i >= len(m.pages) {
		return false
	}
	return m.Switch(i)
}

// show hides every page but i and hands it the layer's focus.
func (m *MainLayer) show(i int) {
	for j, p := range m.pages {
		p.SetVisible(j == i)
		p.SetFocus(j == i && m.Focused())
	}
	m.refreshFooter()
}

func (m *MainLayer) refreshFooter() {
	if !m.Focused() {
		m.footer.SetHints()
		return
	}
	hints := m.Current().Hints()
	hints = append(hints, ui.Hint{Key: m.ctrl.KeyMap().Quit, Desc: "quit"})
	m.footer.SetHints(hints...)
}

// SetFocus implements ui.FocusTarget. Focus goes to the current page only.
func (m *MainLayer) SetFocus(focused bool) {
	m.BaseLayer.SetFocus(focused)
	m.menu.SetFocus(focused)
	m.show(m.menu.Current())
}

// HandleInput implements ui.EventComponent. Digits are handled by the layer;
// everything else goes to the current page.
func (m *MainLayer) HandleInput(ev ui.Event) bool {
	if !ui.Admitted(m) {
		return false
	}
	if m.Keys().Dispatch(ev) {
		return true
	}
	if p := m.Current(); ui.Admitted(p) {
		return p.HandleInput(ev)
	}
	return false
}

// ApplyTheme implements ui.Themeable.
func (m *MainLayer) ApplyTheme(th *ui.Theme) {
	m.menu.ApplyTheme(th)
	m.footer.ApplyTheme(th)
	for _, p := range m.pages {
		ui.ApplyTheme(p, th)
	}
}

// Draw implements ui.Drawable.
func (m *MainLayer) Draw(f ui.Frame, area render.Rect) {
	rows := area.Inset(1).SplitRows(3, 0, 3)
	m.menu.Draw(f, rows[0])
	if p := m.Current(); p.Visible() {
		p.Draw(f, rows[1])
	}
	m.footer.Draw(f, rows[2])
}

var _ ui.Layer = (*MainLayer)(nil)
