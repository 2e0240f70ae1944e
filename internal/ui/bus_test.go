package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_FIFO(t *testing.T) {
	b := NewBus()
	rec := &recorder{}
	a := newStub("a", rec, false)
	NotifySelection(b, "menu", 2)
	PushLayer(b, a)
	Relay(b, Char('x'))

	assert.Equal(t, 3, b.Len())
	got := b.DrainAll()
	assert.Equal(t, []UIEvent{
		SelectionChangedEvent{Source: "menu", Index: 2},
		PushLayerEvent{Layer: a},
		RelayEvent{Event: Char('x')},
	}, got)
	assert.Zero(t, b.Len())
	assert.Empty(t, b.DrainAll())
}

func TestBus_EnqueueDuringDrainGoesToNextDrain(t *testing.T) {
	b := NewBus()
	NotifySelection(b, "first", 0)

	for range b.DrainAll() {
		NotifySelection(b, "second", 1)
	}
	assert.Equal(t, []UIEvent{SelectionChangedEvent{Source: "second", Index: 1}}, b.DrainAll())
}

func TestBus_HelpersIgnoreNil(t *testing.T) {
	assert.NotPanics(t, func() {
		PushLayer(nil, newStub("a", &recorder{}, false))
		NotifySelection(nil, "x", 0)
		Relay(nil, Char('a'))
	})

	b := NewBus()
	PushLayer(b, nil)
	assert.Zero(t, b.Len(), "nil layers are not queued")
}

func TestQueue(t *testing.T) {
	var q Queue[int]
	_, ok := q.Next()
	assert.False(t, ok)

	q.Add(1)
	q.Add(2)
	q.Add(3)
	v, ok := q.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, q.Len())

	q.Clear()
	assert.Zero(t, q.Len())
}
