// Package dijkstra runs Dijkstra's single-source shortest-path algorithm over
// a gridgraph.NavGraph.
//
// Overview:
//
//   - Computes the minimum accumulated movement cost from one source cell to
//     every passable cell in O((V + E) log V).
//   - Uses the shared pqueue min-heap with lazy decrease-key: an improved
//     distance is pushed again and stale entries are skipped when popped.
//   - Needs no heuristic, so it serves as the exact reference for A* and as
//     the engine behind distance fields (flow maps, influence maps).
//
// Options:
//
//   - Source(c):          required starting cell.
//   - WithReturnPath():   also return the predecessor map for PathTo.
//   - WithMaxDistance(d): stop once the frontier exceeds d.
//
// Errors (sentinel):
//
//   - ErrNoSource        Source was not given.
//   - ErrNilGraph        graph pointer is nil.
//   - ErrVertexNotFound  source is out of bounds or impassable.
//   - ErrBadMaxDistance  WithMaxDistance(d) with d < 0 (panics).
//   - ErrUnreachable     PathTo found no route to the destination.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source(gridgraph.C(0, 0)),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    return err
//	}
//	path, err := dijkstra.PathTo(prev, gridgraph.C(0, 0), gridgraph.C(7, 3))
package dijkstra
