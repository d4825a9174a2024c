// Package gridgraph turns a tile world into a sparse navigation graph and keeps
// it current as individual cells change walkability.
//
// What:
//
//   - NavGraph holds one GridNode per passable cell (movement cost > 0).
//   - Each GridNode carries its outgoing edges to passable neighbours, with
//     per-edge traversal cost.
//   - Diagonal moves that would cut through a blocked corner are never emitted
//     (CornerStrict: either shoulder blocked; CornerLoose: both blocked).
//   - RebuildAround patches the graph after a single-cell change in O(1).
//
// Why:
//
//   - Game maps: agents walk between tiles; walls and furniture come and go.
//   - Path search (package astar) reads the graph without touching the world.
//
// Complexity:
//
//   - Build:          O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8 neighbours).
//   - RebuildAround:  O(d²) per changed cell.
//   - Components:     O(V + E).
//
// Options:
//
//   - WithConnectivity: Conn8 (default) or Conn4.
//   - WithOrthogonalCost / WithDiagonalCost: unit step costs (1 and √2 by default).
//   - WithCostModel: CostUniform (default) or CostTerrain (step × destination cost).
//   - WithCornerRule: CornerStrict (default) or CornerLoose.
//   - WithLogger: *slog.Logger for build/rebuild diagnostics.
//
// Errors:
//
//   - ErrNilWorld:     Build called without a world.
//   - ErrEmptyGrid:    world reports a non-positive width or height.
//   - ErrOutOfBounds:  coordinate lies outside the grid.
//   - ErrNodeNotFound: GenerateEdges called for an impassable cell.
//
// A NavGraph is not safe for concurrent mutation; see package navengine for a
// read/write-locked facade.
package gridgraph
