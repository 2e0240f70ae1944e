package ui

// Layer is a top-level surface on the LayerStack: a page, popup or dialog.
//
// A layer reporting RemoveRequested is dropped by the next Sweep and gets no
// more input once it has been swept.
type Layer interface {
	EventComponent
	Modal() bool
	RemoveRequested() bool
}

// BaseLayer adds the modal and removal flags to EventBase. Embed it and
// register bindings through Keys().
type BaseLayer struct {
	EventBase
	modal   bool
	removed bool
}

// Modal implements Layer.
func (l *BaseLayer) Modal() bool { return l.modal }

// SetModal marks the layer as exclusively owning input while it is topmost.
func (l *BaseLayer) SetModal(modal bool) { l.modal = modal }

// RemoveRequested implements Layer.
func (l *BaseLayer) RemoveRequested() bool { return l.removed }

// RequestRemove asks the stack owner to drop the layer at the next sweep.
func (l *BaseLayer) RequestRemove() { l.removed = true }

// GroupLayer is a layer whose content is a Group of components.
type GroupLayer struct {
	Group
	modal   bool
	removed bool
}

// NewGroupLayer creates a non-modal layer owning children.
func NewGroupLayer(children ...EventComponent) *GroupLayer {
	return &GroupLayer{Group: Group{children: children}}
}

// Modal implements Layer.
func (l *GroupLayer) Modal() bool { return l.modal }

// SetModal marks the layer as modal.
func (l *GroupLayer) SetModal(modal bool) { l.modal = modal }

// RemoveRequested implements Layer.
func (l *GroupLayer) RemoveRequested() bool { return l.removed }

// RequestRemove asks the stack owner to drop the layer at the next sweep.
func (l *GroupLayer) RequestRemove() { l.removed = true }

var _ Layer = (*GroupLayer)(nil)
