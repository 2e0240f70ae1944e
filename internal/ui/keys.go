package ui

import "fmt"

// KeyCode identifies a physical key. The set is closed: Dispatch switches over
// every value.
type KeyCode int

const (
	KeyChar KeyCode = iota
	KeyBackspace
	KeyEnter
	KeyTab
	KeyBackTab
	KeyEsc
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyNull
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu
	KeyKeypadBegin
	KeyFunction
	KeyMedia
	KeyModifier
)

// KeyClass groups key codes by what they do.
type KeyClass int

const (
	ClassCharacter KeyClass = iota
	ClassNavigation
	ClassEditing
	ClassLock
	ClassSystem
	ClassFunction
	ClassMedia
	ClassModifier
)

var keyNames = map[KeyCode]string{
	KeyChar:        "char",
	KeyBackspace:   "backspace",
	KeyEnter:       "enter",
	KeyTab:         "tab",
	KeyBackTab:     "shift+tab",
	KeyEsc:         "esc",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyPageUp:      "pgup",
	KeyPageDown:    "pgdown",
	KeyDelete:      "delete",
	KeyInsert:      "insert",
	KeyNull:        "null",
	KeyCapsLock:    "capslock",
	KeyScrollLock:  "scrolllock",
	KeyNumLock:     "numlock",
	KeyPrintScreen: "printscreen",
	KeyPause:       "pause",
	KeyMenu:        "menu",
	KeyKeypadBegin: "begin",
	KeyFunction:    "fn",
	KeyMedia:       "media",
	KeyModifier:    "modifier",
}

func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey resolves a key name as printed by KeyEvent.String, e.g. from a
// config file. A single character or "space" resolves to KeyChar and that
// rune. Function, media and modifier keys are never dispatched and do not
// resolve.
func ParseKey(name string) (KeyCode, rune, bool) {
	if name == "space" {
		return KeyChar, ' ', true
	}
	if r := []rune(name); len(r) == 1 {
		return KeyChar, r[0], true
	}
	for code, n := range keyNames {
		if n != name {
			continue
		}
		switch code.Class() {
		case ClassCharacter, ClassFunction, ClassMedia, ClassModifier:
			return 0, 0, false
		}
		return code, 0, true
	}
	return 0, 0, false
}

// Class returns the group k belongs to.
func (k KeyCode) Class() KeyClass {
	switch k {
	case KeyChar:
		return ClassCharacter
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyTab, KeyBackTab:
		return ClassNavigation
	case KeyBackspace, KeyEnter, KeyEsc, KeyDelete, KeyInsert:
		return ClassEditing
	case KeyCapsLock, KeyScrollLock, KeyNumLock:
		return ClassLock
	case KeyFunction:
		return ClassFunction
	case KeyMedia:
		return ClassMedia
	case KeyModifier:
		return ClassModifier
	default:
		return ClassSystem
	}
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all bits of m2 are set.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}
