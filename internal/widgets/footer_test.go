package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sportui/internal/render"
	"sportui/internal/ui"
)

func TestFooter(t *testing.T) {
	f := NewFooter()
	f.SetHints(ui.Hint{Key: "a", Desc: "add"}, ui.Hint{Key: "q", Desc: "quit"})
	assert.Len(t, f.Hints(), 2)
	assert.Contains(t, f.View(), "a add")
	assert.Contains(t, f.View(), "q quit")

	canvas := render.NewCanvas(40, 3)
	f.Draw(canvas, canvas.Size())
	assert.Contains(t, canvas.Line(1), "a add")
}

func TestFooter_HintsAreNotShared(t *testing.T) {
	f := NewFooter()
	f.SetHints(ui.Hint{Key: "a", Desc: "add"}, ui.Hint{Key: "d", Desc: "delete"})
	before := f.Hints()

	f.SetHints(ui.Hint{Key: "q", Desc: "quit"})
	assert.Equal(t, []ui.Hint{{Key: "a", Desc: "add"}, {Key: "d", Desc: "delete"}}, before)

	got := f.Hints()
	got[0].Desc = "changed"
	assert.Equal(t, []ui.Hint{{Key: "q", Desc: "quit"}}, f.Hints())
}

func TestLabel(t *testing.T) {
	l := NewLabel("hello world")
	canvas := render.NewCanvas(5, 2)
	l.Draw(canvas, canvas.Size())
	assert.Equal(t, "hell…", canvas.Line(0))
	assert.Equal(t, "     ", canvas.Line(1))
}
