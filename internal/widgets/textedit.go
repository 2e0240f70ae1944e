package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// TextEdit is a single-line field with a title and a validator. Typing
// appends, backspace deletes the last rune, a paste replaces the whole text,
// Esc and Enter give up focus. A failing validation is shown in the title.
type TextEdit struct {
	ui.EventBase
	Title     string
	text      []rune
	validator Validator
	theme     ui.TextEditTheme
	input     textinput.Model
}

// NewTextEdit creates a field. A nil validator accepts everything.
func NewTextEdit(title, text string, v Validator) *TextEdit {
	if v == nil {
		v = NopValidator{}
	}
	ti := textinput.New()
	ti.Prompt = ""
	t := &TextEdit{
		Title:     title,
		text:      []rune(text),
		validator: v,
		theme:     ui.DefaultTheme().TextEdit,
		input:     ti,
	}

	keys := t.Keys()
	keys.BindChar(func(r rune) bool {
		t.text = append(t.text, r)
		return true
	})
	keys.BindPaste(func(s string) bool {
		t.text = []rune(s)
		return true
	})
	keys.Bind(ui.KeyBackspace, func() bool {
		if len(t.text) > 0 {
			t.text = t.text[:len(t.text)-1]
		}
		return true
	})
	blur := func() bool {
		t.SetFocus(false)
		return true
	}
	keys.Bind(ui.KeyEsc, blur)
	keys.Bind(ui.KeyEnter, blur)
	return t
}

// Text returns the current value.
func (t *TextEdit) Text() string { return string(t.text) }

// SetText replaces the value.
func (t *TextEdit) SetText(s string) { t.text = []rune(s) }

// Validate runs the validator over the current value.
func (t *TextEdit) Validate() error { return t.validator.Validate(t.Text()) }

// Valid reports whether the current value passes validation.
func (t *TextEdit) Valid() bool { return t.Validate() == nil }

// ApplyTheme implements ui.Themeable.
func (t *TextEdit) ApplyTheme(th *ui.Theme) { t.theme = th.TextEdit }

// Draw implements ui.Drawable.
func (t *TextEdit) Draw(f ui.Frame, area render.Rect) {
	box := t.theme.Box
	if t.Focused() {
		box = t.theme.BoxFocused
	}
	title := t.theme.Title.Render(t.Title)
	if err := t.Validate(); err != nil {
		title = t.theme.TitleError.Render(fmt.Sprintf("%s   Validation error: %v", t.Title, err))
	}

	t.input.Width = innerWidth(box, area) - 1
	t.input.TextStyle = t.theme.Text
	t.input.SetValue(t.Text())
	t.input.CursorEnd()
	if t.Focused() {
		t.input.Focus()
	} else {
		t.input.Blur()
	}
	renderBox(f, area, box, title+"\n"+t.input.View())
}

var _ ui.EventComponent = (*TextEdit)(nil)
