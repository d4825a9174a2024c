// Package pqueue provides a reusable binary min-heap keyed by float64 priority.
//
// Overview:
//
//   - Insert and ExtractMin run in O(log n); Peek and Len in O(1).
//   - Equal priorities are served in insertion order (FIFO), so searches that
//     drive the queue are reproducible run to run.
//   - Clear empties the queue but keeps its backing array, so one Queue can
//     serve many consecutive searches without reallocating.
//
// Stale entries:
//
//	The queue has no decrease-key. Callers that lower a key re-insert the
//	value with its new priority and discard outdated entries when they are
//	extracted ("lazy deletion"). Packages astar and dijkstra both do this.
//
// Errors:
//
//   - ErrUnderflow: ExtractMin or Peek on an empty queue.
//
// A Queue is not safe for concurrent use.
package pqueue
