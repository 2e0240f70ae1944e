package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sportui/internal/render"
)

// recorder collects the names of layers in the order they were called.
type recorder struct {
	input []string
	draw  []string
}

// stubLayer is a layer whose handler answers a fixed value and can run a
// hook, e.g. to enqueue a bus event or request removal.
type stubLayer struct {
	BaseLayer
	name    string
	consume bool
	rec     *recorder
	hook    func(l *stubLayer, ev Event)
}

func newStub(name string, rec *recorder, consume bool) *stubLayer {
	return &stubLayer{name: name, rec: rec, consume: consume}
}

func (l *stubLayer) HandleInput(ev Event) bool {
	l.rec.input = append(l.rec.input, l.name)
	if l.hook != nil {
		l.hook(l, ev)
	}
	return l.consume
}

func (l *stubLayer) Draw(f Frame, area render.Rect) {
	l.rec.draw = append(l.rec.draw, l.name)
	f.Render(render.Rect{X: area.X, Y: area.Y, W: area.W, H: 1}, l.name)
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
