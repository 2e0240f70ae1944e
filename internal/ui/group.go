package ui

import "sportui/internal/render"

// Group is a container of child components sharing one area. It forwards
// focus, visibility and theme to every child. Input goes to the group's own
// bindings first, then to the admitted children in order until one consumes.
type Group struct {
	EventBase
	children []EventComponent
}

// NewGroup creates a group owning children.
func NewGroup(children ...EventComponent) *Group {
	return &Group{children: children}
}

// Add appends a child. The group becomes its owner.
func (g *Group) Add(c EventComponent) {
	c.SetFocus(g.Focused())
	g.children = append(g.children, c)
}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// Children returns the children in order.
func (g *Group) Children() []EventComponent {
	out := make([]EventComponent, len(g.children))
	copy(out, g.children)
	return out
}

// SetFocus implements FocusTarget.
func (g *Group) SetFocus(focused bool) {
	g.EventBase.SetFocus(focused)
	for _, c := range g.children {
		c.SetFocus(focused)
	}
}

// SetVisible implements Component.
func (g *Group) SetVisible(visible bool) {
	g.EventBase.SetVisible(visible)
	for _, c := range g.children {
		c.SetVisible(visible)
	}
}

// ApplyTheme implements Themeable.
func (g *Group) ApplyTheme(t *Theme) {
	for _, c := range g.children {
		ApplyTheme(c, t)
	}
}

// HandleInput implements EventComponent.
func (g *Group) HandleInput(ev Event) bool {
	if !Admitted(g) {
		return false
	}
	if g.keys.Dispatch(ev) {
		return true
	}
	for _, c := range g.children {
		if Admitted(c) && c.HandleInput(ev) {
			return true
		}
	}
	return false
}

// Draw implements Drawable.
func (g *Group) Draw(f Frame, area render.Rect) {
	for _, c := range g.children {
		if c.Visible() {
			c.Draw(f, area)
		}
	}
}
