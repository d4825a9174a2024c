package pqueue

import (
	"container/heap"
	"errors"
)

// ErrUnderflow indicates ExtractMin or Peek was called on an empty queue.
var ErrUnderflow = errors.New("pqueue: queue is empty")

// Queue is a min-priority queue of T values.
type Queue[T any] struct {
	items entries[T]
	seq   uint64 // insertion counter for FIFO tie-breaks
}

// New returns an empty queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make(entries[T], 0, capacity)}
}

// Insert adds v with the given priority.
// Complexity: O(log n).
func (q *Queue[T]) Insert(v T, priority float64) {
	heap.Push(&q.items, entry[T]{value: v, priority: priority, seq: q.seq})
	q.seq++
}

// ExtractMin removes and returns the value with the smallest priority.
// Returns ErrUnderflow if the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) ExtractMin() (T, float64, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, 0, ErrUnderflow
	}
	e := heap.Pop(&q.items).(entry[T])
	return e.value, e.priority, nil
}

// Peek returns the minimum without removing it.
func (q *Queue[T]) Peek() (T, float64, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, 0, ErrUnderflow
	}
	return q.items[0].value, q.items[0].priority, nil
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return len(q.items) }

// Cap returns the capacity of the backing array.
func (q *Queue[T]) Cap() int { return cap(q.items) }

// Clear drops every entry and resets the tie-break counter.
// The backing array is kept for reuse.
// Complexity: O(n) to release references held by T.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.seq = 0
}

// entry pairs a value with its priority and insertion sequence number.
type entry[T any] struct {
	value    T
	priority float64
	seq      uint64
}

// entries implements heap.Interface ordered by (priority, seq) ascending.
type entries[T any] []entry[T]

// Len returns the number of items in the heap.
func (h entries[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion order.
func (h entries[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and returns the last element.
func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return item
}
