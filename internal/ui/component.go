package ui

import "sportui/internal/render"

// Drawable paints itself into an area of a frame. Draw must not change any
// state observable by input handling.
type Drawable interface {
	Draw(f Frame, area render.Rect)
}

// Themeable components restyle themselves from a theme snapshot. Components
// that do not implement it are left as they are.
type Themeable interface {
	ApplyTheme(t *Theme)
}

// FocusTarget is anything that can hold input focus. Containers forward
// SetFocus to their children.
type FocusTarget interface {
	SetFocus(focused bool)
	Focused() bool
}

// Component is the base unit of the tree. A component has exactly one
// owner: the layer, group or page holding it.
type Component interface {
	Drawable
	Visible() bool
	SetVisible(visible bool)
}

// EventComponent is a component that reacts to input while admitted.
type EventComponent interface {
	Component
	FocusTarget
	HandleInput(ev Event) bool
}

// Admitted reports whether c may receive input: it must be both focused and
// visible. The rule is the same for layers on the stack and for children
// inside a container.
func Admitted(c EventComponent) bool {
	return c.Focused() && c.Visible()
}

// ApplyTheme passes t to c if c is themeable.
func ApplyTheme(c any, t *Theme) {
	if th, ok := c.(Themeable); ok {
		th.ApplyTheme(t)
	}
}

// Base carries the visibility flag. Components start visible.
type Base struct {
	hidden bool
}

// Visible implements Component.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible implements Component.
func (b *Base) SetVisible(visible bool) { b.hidden = !visible }

// EventBase carries the focus and visibility flags plus the dispatcher the
// embedding component registers its bindings on.
type EventBase struct {
	Base
	focused bool
	keys    *Dispatcher
}

// Keys returns the component's dispatcher, creating it on first use.
func (b *EventBase) Keys() *Dispatcher {
	if b.keys == nil {
		b.keys = NewDispatcher()
	}
	return b.keys
}

// Focused implements FocusTarget.
func (b *EventBase) Focused() bool { return b.focused }

// SetFocus implements FocusTarget.
func (b *EventBase) SetFocus(focused bool) { b.focused = focused }

// HandleInput returns false unless the component is focused and visible,
// and otherwise dispatches ev to the registered bindings.
func (b *EventBase) HandleInput(ev Event) bool {
	if !b.focused || b.hidden {
		return false
	}
	return b.keys.Dispatch(ev)
}
