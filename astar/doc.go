// Package astar answers single-pair shortest-path queries over a
// gridgraph.NavGraph with an informed best-first (A*) search.
//
// Overview:
//
//   - Each query walks a per-search arena of records, one per discovered
//     cell, holding the best known cost g, open/closed flags and the arena
//     index of its predecessor.
//   - The frontier is a pqueue.Queue keyed by f = g + h. Only the key carries
//     the heuristic; stored costs are true accumulated movement costs.
//   - A lowered cost re-inserts the record with its new key; entries for
//     records already closed are skipped on extraction (lazy deletion).
//   - On success the arena chain is copied into an immutable Breadcrumb list
//     running goal → … → start; Result.Path returns it start → goal.
//
// Searcher:
//
//	A Searcher owns the queue and the arena and reuses both across queries.
//	It is the unit of reuse: give each goroutine its own Searcher (package
//	navengine pools them). FindPathContext swaps in a per-query context.
//	The package-level FindPath is a convenience that uses a fresh Searcher.
//
// Heuristics:
//
//   - Manhattan:  admissible for 4-directional movement.
//   - Euclidean:  straight-line distance; admissible for any movement.
//   - Octile:     exact on open 8-directional grids with √2 diagonals (default).
//   - Chebyshev:  never above Octile; exact when diagonals cost one step.
//   - Zero:       turns the search into uniform-cost (Dijkstra) search.
//
// All heuristics are expressed in units of one orthogonal step; wrap them
// with Scaled when the graph uses other step costs.
//
// Errors:
//
//   - ErrNilGraph:        graph pointer is nil.
//   - ErrNoGraphNode:     start or goal is an impassable cell.
//   - gridgraph.ErrOutOfBounds (wrapped): start or goal outside the grid.
//   - ErrBudgetExceeded:  WithMaxExpansions limit reached.
//   - ErrUnknownHeuristic: HeuristicByName got an unknown name.
//
// A goal that cannot be reached is not an error: Result.Found is false.
package astar
