package ui

// Queue is a FIFO of pending items. It is not safe for concurrent use; the UI
// session owns it from a single goroutine.
type Queue[T any] struct {
	items []T
}

// Add appends an item at the back.
func (q *Queue[T]) Add(item T) {
	q.items = append(q.items, item)
}

// Next removes and returns the front item.
func (q *Queue[T]) Next() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Clear drops every queued item.
func (q *Queue[T]) Clear() {
	q.items = nil
}

// DrainAll empties the queue and returns its items in insertion order.
// Items added while the caller walks the result land in the now empty queue
// and are returned by the next drain.
func (q *Queue[T]) DrainAll() []T {
	out := q.items
	q.items = nil
	return out
}
