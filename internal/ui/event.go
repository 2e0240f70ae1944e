package ui

import "fmt"

// Event is one classified input event. The variants are the types in this
// file and nothing else implements Event.
type Event interface {
	isEvent()
}

// KeyEvent is a key press. Rune is set only for KeyChar; Fn carries the
// number of a function key (F1 = 1).
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Fn   int
	Mod  Modifier
}

// PasteEvent carries bracketed-paste text.
type PasteEvent struct {
	Text string
}

// ResizeEvent reports the new terminal size.
type ResizeEvent struct {
	Width, Height int
}

// FocusEvent reports the terminal window gaining or losing focus.
type FocusEvent struct {
	Gained bool
}

// MouseAction is what the pointer did.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// MouseEvent is a pointer event. Button follows the terminal's numbering
// (0 none, 1 left, 2 middle, 3 right, 4/5 wheel).
type MouseEvent struct {
	X, Y   int
	Button int
	Action MouseAction
	Mod    Modifier
}

func (KeyEvent) isEvent()    {}
func (PasteEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (FocusEvent) isEvent()  {}
func (MouseEvent) isEvent()  {}

// Char builds a KeyEvent for a printable character.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Rune: r}
}

// Key builds a KeyEvent for a non-character key.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

func (k KeyEvent) String() string {
	var prefix string
	if k.Mod.Has(ModCtrl) {
		prefix += "ctrl+"
	}
	if k.Mod.Has(ModAlt) {
		prefix += "alt+"
	}
	if k.Mod.Has(ModShift) && k.Code != KeyBackTab {
		prefix += "shift+"
	}
	switch k.Code {
	case KeyChar:
		if k.Rune == ' ' {
			return prefix + "space"
		}
		return prefix + string(k.Rune)
	case KeyFunction:
		return fmt.Sprintf("%sf%d", prefix, k.Fn)
	}
	return prefix + k.Code.String()
}
