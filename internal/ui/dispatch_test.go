package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_CharReceivesRune(t *testing.T) {
	d := NewDispatcher()
	var got []rune
	d.BindChar(func(r rune) bool {
		got = append(got, r)
		return true
	})

	assert.True(t, d.Dispatch(Char('a')))
	assert.True(t, d.Dispatch(Char('ж')))
	assert.Equal(t, []rune{'a', 'ж'}, got)
}

func TestDispatcher_RuneShortcutWinsOverChar(t *testing.T) {
	d := NewDispatcher()
	var chars, shortcut int
	d.BindChar(func(rune) bool { chars++; return true })
	d.BindRune('q', func() bool { shortcut++; return false }, "Quit")

	assert.False(t, d.Dispatch(Char('q')), "shortcut result is final")
	assert.Equal(t, 1, shortcut)
	assert.Equal(t, 0, chars)

	assert.True(t, d.Dispatch(Char('x')))
	assert.Equal(t, 1, chars)
}

func TestDispatcher_UnboundCasesAreNotConsumed(t *testing.T) {
	d := NewDispatcher()
	events := []Event{
		Char('a'),
		Key(KeyEnter),
		Key(KeyEsc),
		PasteEvent{Text: "x"},
		ResizeEvent{Width: 10, Height: 5},
		FocusEvent{Gained: true},
		MouseEvent{X: 1, Y: 1, Button: 1},
	}
	for _, ev := range events {
		assert.False(t, d.Dispatch(ev), "%#v", ev)
	}
}

func TestDispatcher_NilIsInert(t *testing.T) {
	var d *Dispatcher
	assert.False(t, d.Dispatch(Key(KeyEnter)))
	assert.False(t, d.Bound(KeyEnter))
	assert.Nil(t, d.Hints())
}

func TestDispatcher_EveryKeyCode(t *testing.T) {
	d := NewDispatcher()
	called := map[KeyCode]int{}
	for code := KeyBackspace; code <= KeyModifier; code++ {
		code := code
		d.Bind(code, func() bool {
			called[code]++
			return true
		})
	}

	for code := KeyBackspace; code <= KeyModifier; code++ {
		consumed := d.Dispatch(KeyEvent{Code: code, Fn: 1})
		switch code.Class() {
		case ClassFunction, ClassMedia, ClassModifier:
			assert.False(t, consumed, "%s is not routed", code)
			assert.Zero(t, called[code], "%s callback must not run", code)
		default:
			assert.True(t, consumed, "%s", code)
			assert.Equal(t, 1, called[code], "%s callback runs once", code)
		}
	}
}

func TestDispatcher_NonKeyCallbacks(t *testing.T) {
	d := NewDispatcher()
	var pasted string
	var size [2]int
	var gained *bool
	d.BindPaste(func(text string) bool { pasted = text; return true })
	d.BindResize(func(w, h int) bool { size = [2]int{w, h}; return false })
	d.BindFocus(func(g bool) bool { gained = &g; return true })

	assert.True(t, d.Dispatch(PasteEvent{Text: "hello"}))
	assert.Equal(t, "hello", pasted)
	assert.False(t, d.Dispatch(ResizeEvent{Width: 80, Height: 24}))
	assert.Equal(t, [2]int{80, 24}, size)
	assert.True(t, d.Dispatch(FocusEvent{Gained: false}))
	require.NotNil(t, gained)
	assert.False(t, *gained)
}

func TestDispatcher_Chords(t *testing.T) {
	d := NewDispatcher()
	var saved, typed int
	d.BindChar(func(rune) bool { typed++; return true })
	d.BindChord("ctrl+s", func() bool { saved++; return true }, "Save")

	assert.True(t, d.Dispatch(KeyEvent{Code: KeyChar, Rune: 's', Mod: ModCtrl}))
	assert.False(t, d.Dispatch(KeyEvent{Code: KeyChar, Rune: 'x', Mod: ModCtrl}), "unbound chord")
	assert.False(t, d.Dispatch(KeyEvent{Code: KeyChar, Rune: 's', Mod: ModAlt}))
	assert.Equal(t, 1, saved)
	assert.Zero(t, typed, "chords never reach the char callback")
}

func TestDispatcher_Hints(t *testing.T) {
	d := NewDispatcher()
	d.BindRune('a', func() bool { return true }, "Add")
	d.BindWithDesc(KeyEsc, func() bool { return true }, "Close")
	d.BindRune('d', func() bool { return true }, "Delete")
	d.BindRune('a', func() bool { return true }, "Append")
	d.Bind(KeyEsc, func() bool { return true })

	assert.Equal(t, []Hint{{Key: "a", Desc: "Append"}, {Key: "d", Desc: "Delete"}}, d.Hints())
	assert.True(t, d.Bound(KeyEsc))
	assert.False(t, d.Bound(KeyEnter))
}

func TestKeyEvent_String(t *testing.T) {
	tests := []struct {
		ev   KeyEvent
		want string
	}{
		{Char('a'), "a"},
		{Char(' '), "space"},
		{KeyEvent{Code: KeyChar, Rune: 'c', Mod: ModCtrl}, "ctrl+c"},
		{Key(KeyEsc), "esc"},
		{KeyEvent{Code: KeyBackTab, Mod: ModShift}, "shift+tab"},
		{KeyEvent{Code: KeyFunction, Fn: 5}, "f5"},
		{KeyEvent{Code: KeyUp, Mod: ModShift}, "shift+up"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ev.String())
	}
}

func TestParseKey_RoundTripsDispatchedKeys(t *testing.T) {
	for _, ev := range []KeyEvent{Char(' '), Char('q'), Key(KeyEnter), Key(KeyBackTab), Key(KeyPageDown)} {
		code, r, ok := ParseKey(ev.String())
		require.True(t, ok, ev.String())
		assert.Equal(t, ev.Code, code)
		assert.Equal(t, ev.Rune, r)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		wantCode KeyCode
		wantRune rune
		wantOK   bool
	}{
		{"q", KeyChar, 'q', true},
		{"enter", KeyEnter, 0, true},
		{"esc", KeyEsc, 0, true},
		{"shift+tab", KeyBackTab, 0, true},
		{"space", KeyChar, ' ', true},
		{"capslock", KeyCapsLock, 0, true},
		{"char", 0, 0, false},
		{"fn", 0, 0, false},
		{"media", 0, 0, false},
		{"modifier", 0, 0, false},
		{"nope", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, r, ok := ParseKey(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantRune, r)
		})
	}
}
