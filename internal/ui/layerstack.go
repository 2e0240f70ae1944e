package ui

import "sportui/internal/render"

// LayerStack owns the layers of a UI session. Insertion order is z-order:
// the last layer is drawn last and offered input first.
//
// Handlers must never reach the stack; they schedule changes on the Bus and
// the Driver applies them between input passes.
type LayerStack struct {
	layers []Layer
}

// Push adds a layer on top, focused and visible.
func (s *LayerStack) Push(l Layer) {
	l.SetFocus(true)
	l.SetVisible(true)
	s.layers = append(s.layers, l)
}

// Pop removes and returns the top layer.
// Returns nil if the stack is empty.
func (s *LayerStack) Pop() Layer {
	if len(s.layers) == 0 {
		return nil
	}
	top := s.layers[len(s.layers)-1]
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]
	return top
}

// Peek returns the top layer without removing it.
func (s *LayerStack) Peek() Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// Len returns the number of layers in the stack.
func (s *LayerStack) Len() int {
	return len(s.layers)
}

// Layers returns the layers bottom to top.
func (s *LayerStack) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// DeliverInput offers ev to the layers from the top down, skipping layers
// that are not both focused and visible. The first admitted modal layer
// takes the event exclusively and its answer is final. A non-modal layer
// stops propagation only by consuming.
func (s *LayerStack) DeliverInput(ev Event) bool {
	for i := len(s.layers) - 1; i >= 0; i-- {
		l := s.layers[i]
		if !Admitted(l) {
			continue
		}
		consumed := l.HandleInput(ev)
		if l.Modal() || consumed {
			return consumed
		}
	}
	return false
}

// BroadcastFocus sets focus on every layer; layers pass it on to their
// children.
func (s *LayerStack) BroadcastFocus(focused bool) {
	for _, l := range s.layers {
		l.SetFocus(focused)
	}
}

// ApplyTheme passes t to every themeable layer.
func (s *LayerStack) ApplyTheme(t *Theme) {
	for _, l := range s.layers {
		ApplyTheme(l, t)
	}
}

// Sweep drops the layers that requested removal, keeping the order of the
// rest. It returns how many were dropped.
func (s *LayerStack) Sweep() int {
	kept := s.layers[:0]
	for _, l := range s.layers {
		if !l.RemoveRequested() {
			kept = append(kept, l)
		}
	}
	removed := len(s.layers) - len(kept)
	for i := len(kept); i < len(s.layers); i++ {
		s.layers[i] = nil
	}
	s.layers = kept
	return removed
}

// Draw paints the visible layers bottom to top into area.
func (s *LayerStack) Draw(f Frame, area render.Rect) {
	for _, l := range s.layers {
		if l.Visible() {
			l.Draw(f, area)
		}
	}
}
