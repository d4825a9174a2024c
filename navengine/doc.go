// Package navengine wires a tile world, its navigation graph and pooled A*
// searchers into one concurrency-safe pathfinding service.
//
// What:
//
//   - New builds the graph for a gridgraph.World from a Config (loadable
//     from YAML) and keeps an R-tree of passable cells.
//   - FindPath answers start → goal queries; any number may run at once,
//     each on its own pooled astar.Searcher.
//   - RebuildAround / OnCellChanged patch the graph and the R-tree after a
//     cell changes. They take the write lock, so they wait for in-flight
//     queries and block new ones until the patch is applied.
//   - NearestPassable snaps an arbitrary cell to the closest passable one.
//   - DistanceField exposes Dijkstra over the same graph; WithinSteps,
//     WithinStepsAvoiding and FewestSteps expose BFS.
//
// Config (YAML):
//
//	connectivity: 8          # 4 or 8
//	orthogonal_cost: 1
//	diagonal_cost: 1.41421356
//	terrain_cost: false      # multiply step cost by the destination's cost
//	                         # (the heuristic is scaled by the cheapest cell)
//	corner_rule: strict      # strict or loose
//	heuristic: octile        # manhattan, euclidean, octile, chebyshev, zero
//	max_expansions: 0        # 0 = unlimited
//	early_exit: false
//
// Zero values are replaced by defaults in Validate.
//
// Errors:
//
//	ErrInvalidConfig for bad configuration; everything else is passed
//	through from gridgraph, astar, dijkstra and bfs.
package navengine
