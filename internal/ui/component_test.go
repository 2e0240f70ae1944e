package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sportui/internal/render"
)

// field is a minimal focusable leaf used by container tests.
type field struct {
	EventBase
	name   string
	typed  []rune
	themed *Theme
	rec    *recorder
}

func newField(name string, rec *recorder) *field {
	f := &field{name: name, rec: rec}
	f.Keys().BindChar(func(r rune) bool {
		f.typed = append(f.typed, r)
		if rec != nil {
			rec.input = append(rec.input, name)
		}
		return true
	})
	return f
}

func (f *field) ApplyTheme(t *Theme) { f.themed = t }

func (f *field) Draw(fr Frame, area render.Rect) {
	if f.rec != nil {
		f.rec.draw = append(f.rec.draw, f.name)
	}
	fr.Render(area, string(f.typed))
}

func TestEventBase_GatesOnFocusAndVisibility(t *testing.T) {
	f := newField("f", nil)

	assert.False(t, f.HandleInput(Char('a')), "unfocused components ignore input")

	f.SetFocus(true)
	assert.True(t, f.HandleInput(Char('a')))

	f.SetVisible(false)
	assert.False(t, f.HandleInput(Char('b')), "hidden components ignore input")
	assert.Equal(t, []rune{'a'}, f.typed)
}

func TestEventBase_DefaultsVisible(t *testing.T) {
	var b EventBase
	assert.True(t, b.Visible())
	assert.False(t, b.Focused())
	assert.False(t, b.HandleInput(Char('a')))
}

func TestGroup_ForwardsFocusVisibilityTheme(t *testing.T) {
	a, b := newField("a", nil), newField("b", nil)
	g := NewGroup(a, b)

	g.SetFocus(true)
	assert.True(t, a.Focused())
	assert.True(t, b.Focused())

	g.SetVisible(false)
	assert.False(t, a.Visible())
	assert.False(t, b.Visible())

	th := DefaultTheme()
	g.ApplyTheme(th)
	assert.Same(t, th, a.themed)
	assert.Same(t, th, b.themed)

	c := newField("c", nil)
	g.SetVisible(true)
	g.Add(c)
	assert.True(t, c.Focused(), "added child inherits group focus")
	assert.Equal(t, 3, g.Len())
}

func TestGroup_FirstConsumerWins(t *testing.T) {
	rec := &recorder{}
	a, b := newField("a", rec), newField("b", rec)
	g := NewGroup(a, b)
	g.SetFocus(true)

	assert.True(t, g.HandleInput(Char('x')))
	assert.Equal(t, []string{"a"}, rec.input)

	a.SetFocus(false)
	assert.True(t, g.HandleInput(Char('y')))
	assert.Equal(t, []string{"a", "b"}, rec.input)
}

func TestGroup_OwnBindingsFirst(t *testing.T) {
	a := newField("a", nil)
	g := NewGroup(a)
	var own int
	g.Keys().BindRune('x', func() bool { own++; return true }, "")
	g.SetFocus(true)

	assert.True(t, g.HandleInput(Char('x')))
	assert.Equal(t, 1, own)
	assert.Empty(t, a.typed)

	g.SetFocus(false)
	assert.False(t, g.HandleInput(Char('x')), "unfocused group delivers nothing")
}

func TestGroup_DrawsVisibleChildren(t *testing.T) {
	rec := &recorder{}
	a, b := newField("a", rec), newField("b", rec)
	b.SetVisible(false)
	g := NewGroup(a, b)

	g.Draw(render.NewCanvas(4, 1), render.Rect{W: 4, H: 1})
	assert.Equal(t, []string{"a"}, rec.draw)
}
