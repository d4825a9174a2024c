// Package bfs runs breadth-first traversals over a gridgraph.NavGraph.
//
// A traversal follows the graph's edges, so connectivity and corner rules
// apply while edge costs are ignored. It answers hop-count questions:
// movement range (WithMaxDepth), range around occupied cells (WithAvoid) and
// fewest moves between two cells (WithTarget plus Result.PathTo).
//
// Edges are generated in N, NE, E, SE, S, SW, W, NW order and neighbours are
// discovered in that order, so Order is reproducible.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation (negative
// depth), and the context's error on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
