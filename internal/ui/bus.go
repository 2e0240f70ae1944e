package ui

// UIEvent is a deferred, stack-level request raised from inside a handler.
// The set is closed to this package; kinds are only ever added.
type UIEvent interface {
	isUIEvent()
}

// PushLayerEvent asks the driver to put Layer on top of the stack. The
// event carries ownership of the layer.
type PushLayerEvent struct {
	Layer Layer
}

// SelectionChangedEvent tells subscribers that Source now selects Index.
type SelectionChangedEvent struct {
	Source string
	Index  int
}

// RelayEvent hands a raw input event to subscribers after primary dispatch.
type RelayEvent struct {
	Event Event
}

func (PushLayerEvent) isUIEvent()        {}
func (SelectionChangedEvent) isUIEvent() {}
func (RelayEvent) isUIEvent()            {}

// Sender is the only view of the bus a component gets. Enqueue never blocks
// and never touches the stack.
type Sender interface {
	Enqueue(e UIEvent)
}

// Bus is the per-session FIFO of deferred UI events.
type Bus struct {
	q Queue[UIEvent]
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Enqueue appends e.
func (b *Bus) Enqueue(e UIEvent) {
	b.q.Add(e)
}

// DrainAll returns everything enqueued since the last drain, oldest first,
// and leaves the bus empty.
func (b *Bus) DrainAll() []UIEvent {
	return b.q.DrainAll()
}

// Len returns the number of pending events.
func (b *Bus) Len() int {
	return b.q.Len()
}

// PushLayer schedules l to be pushed on the stack after the input pass.
func PushLayer(s Sender, l Layer) {
	if s == nil || l == nil {
		return
	}
	s.Enqueue(PushLayerEvent{Layer: l})
}

// NotifySelection schedules a selection change notification.
func NotifySelection(s Sender, source string, index int) {
	if s == nil {
		return
	}
	s.Enqueue(SelectionChangedEvent{Source: source, Index: index})
}

// Relay schedules ev for subscribers that want the raw event.
func Relay(s Sender, ev Event) {
	if s == nil {
		return
	}
	s.Enqueue(RelayEvent{Event: ev})
}

var _ Sender = (*Bus)(nil)
