// Package tilepath is a grid pathfinding toolkit for tile-organised worlds:
// build a navigation graph from a walkability map, keep it in sync while the
// map changes, and answer shortest-path queries over it.
//
// What is inside?
//
//	gridgraph/  Coord, GridNode, NavGraph: graph construction, corner-clipping
//	            rules, incremental RebuildAround, connected regions
//	pqueue/     reusable generic min-priority queue with FIFO tie-breaks
//	astar/      A* search with a reusable Searcher, breadcrumb paths and
//	            Manhattan / Euclidean / Octile / Chebyshev heuristics
//	dijkstra/   exhaustive single-source costs (distance fields, A* oracle)
//	bfs/        hop-count traversal (movement range, reachability)
//	gridmap/    in-memory tile world, ASCII and YAML loaders, change events
//	navengine/  concurrency-safe facade: YAML config, pooled searchers,
//	            R-tree nearest-passable lookups
//
// Quick ASCII example:
//
//	. . # . .     '.' passable (cost 1)
//	. . # . .     '#' impassable
//	. . . . .     '1'..'9' passable with that cost
//
// A unit at (0,0) heading for (4,0) must detour through (2,2); with the
// default strict corner rule it may not cut diagonally past (2,1).
//
//	m := gridmap.MustParse("..#..", "..#..", ".....")
//	e, _ := navengine.New(m, navengine.DefaultConfig())
//	m.Subscribe(e.OnCellChanged)
//	path, res, err := e.FindPath(gridgraph.C(0, 0), gridgraph.C(4, 0))
//
//	go get github.com/katalvlaran/tilepath
package tilepath
