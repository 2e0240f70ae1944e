package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// MessageKind selects the severity of a message box.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageWarn
	MessageError
)

func (k MessageKind) String() string {
	switch k {
	case MessageWarn:
		return "Warning"
	case MessageError:
		return "Error"
	default:
		return "Info"
	}
}

// messageKeys are the bindings shown in the box's help line.
var messageKeys = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
	key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
}

// MessageBox is a modal layer showing a message. Esc or q closes it; Enter
// runs the accept callback once and closes it. It swallows every other
// character so nothing leaks to the layers below.
type MessageBox struct {
	ui.BaseLayer
	Kind     MessageKind
	Title    string
	Text     string
	onAccept func()
	theme    ui.MessageBoxTheme
	help     help.Model
}

// NewMessageBox creates a focused, visible, modal message box.
func NewMessageBox(kind MessageKind, title, text string) *MessageBox {
	m := &MessageBox{
		Kind:  kind,
		Title: title,
		Text:  text,
		theme: ui.DefaultTheme().MessageBox,
		help:  help.New(),
	}
	m.SetModal(true)
	m.SetFocus(true)

	keys := m.Keys()
	keys.BindWithDesc(ui.KeyEsc, func() bool {
		m.RequestRemove()
		return true
	}, "close")
	keys.BindWithDesc(ui.KeyEnter, func() bool {
		m.accept()
		m.RequestRemove()
		return true
	}, "accept")
	keys.BindChar(func(r rune) bool {
		if r == 'q' {
			m.RequestRemove()
		}
		return true
	})
	return m
}

// Info creates an informational box.
func Info(title, text string) *MessageBox { return NewMessageBox(MessageInfo, title, text) }

// Warn creates a warning box.
func Warn(title, text string) *MessageBox { return NewMessageBox(MessageWarn, title, text) }

// Error creates an error box.
func Error(title, text string) *MessageBox { return NewMessageBox(MessageError, title, text) }

// OnAccept sets the callback Enter runs before closing.
func (m *MessageBox) OnAccept(fn func()) *MessageBox {
	m.onAccept = fn
	return m
}

func (m *MessageBox) accept() {
	if fn := m.onAccept; fn != nil {
		m.onAccept = nil
		fn()
	}
}

// ApplyTheme implements ui.Themeable.
func (m *MessageBox) ApplyTheme(th *ui.Theme) {
	m.theme = th.MessageBox
	m.help.Styles.ShortKey = th.Footer.Key
	m.help.Styles.ShortDesc = th.Footer.Desc
}

func (m *MessageBox) boxStyle() lipgloss.Style {
	switch m.Kind {
	case MessageWarn:
		return m.theme.Warn
	case MessageError:
		return m.theme.Error
	default:
		return m.theme.Info
	}
}

// Draw implements ui.Drawable. The box covers the middle of area.
func (m *MessageBox) Draw(f ui.Frame, area render.Rect) {
	area = area.Centered(50, 50)
	if area.Empty() {
		return
	}
	box := m.boxStyle()
	w := innerWidth(box, area)

	content := m.theme.Title.Render(render.Truncate(fmt.Sprintf("%s: %s", m.Kind, m.Title), w)) + "\n\n"
	content += m.theme.Text.Width(w).Render(m.Text) + "\n\n"
	content += m.theme.Help.Render(m.help.ShortHelpView(messageKeys))

	f.Clear(area)
	renderBox(f, area, box, content)
}

var _ ui.Layer = (*MessageBox)(nil)
