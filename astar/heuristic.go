package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Heuristic estimates the remaining cost from one cell to the goal.
// It must never overestimate the true cost for the search to return optimal paths.
type Heuristic func(from, to gridgraph.Coord) float64

// Manhattan returns |dx| + |dy|, the exact distance on an open 4-directional grid.
func Manhattan(from, to gridgraph.Coord) float64 {
	return float64(absInt(from.X-to.X) + absInt(from.Y-to.Y))
}

// Euclidean returns the straight-line distance between cell centres.
func Euclidean(from, to gridgraph.Coord) float64 {
	return planar.Distance(point(from), point(to))
}

// Octile returns the exact distance on an open 8-directional grid with √2 diagonals.
func Octile(from, to gridgraph.Coord) float64 {
	dx, dy := absInt(from.X-to.X), absInt(from.Y-to.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return float64(lo)*math.Sqrt2 + float64(hi-lo)
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(from, to gridgraph.Coord) float64 {
	return float64(max(absInt(from.X-to.X), absInt(from.Y-to.Y)))
}

// Zero always returns 0.
func Zero(_, _ gridgraph.Coord) float64 { return 0 }

// Scaled multiplies h by k, e.g. to match a graph built with
// gridgraph.WithOrthogonalCost(k).
func Scaled(h Heuristic, k float64) Heuristic {
	return func(from, to gridgraph.Coord) float64 { return k * h(from, to) }
}

// HeuristicByName resolves "manhattan", "euclidean", "octile", "chebyshev"
// or "zero" (case-insensitive).
func HeuristicByName(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	case "octile", "":
		return Octile, nil
	case "chebyshev":
		return Chebyshev, nil
	case "zero", "none", "dijkstra":
		return Zero, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// PathLength returns the geometric length of the polyline through the cell
// centres of path. It equals the search cost for uniform unit/√2 graphs.
func PathLength(path []gridgraph.Coord) float64 {
	if len(path) < 2 {
		return 0
	}
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = point(c)
	}
	return planar.Length(ls)
}

func point(c gridgraph.Coord) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
