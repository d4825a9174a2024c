package gridgraph

import (
	"fmt"
	"log/slog"
	"slices"
)

// offsets8 lists neighbour offsets in N, NE, E, SE, S, SW, W, NW order.
var offsets8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Build constructs a NavGraph from w. Every cell is queried once: a GridNode is
// created iff its movement cost is > 0, then each node's edge list is generated.
// A fully blocked world yields an empty graph.
// Returns ErrNilWorld or ErrEmptyGrid for invalid input.
// Complexity: O(W×H×d) time and memory.
func Build(w World, opts ...Option) (*NavGraph, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	width, height := w.Width(), w.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &NavGraph{
		Width:  width,
		Height: height,
		world:  w,
		opts:   cfg,
		nodes:  make(map[Coord]*GridNode, width*height),
		costs:  make(map[float64]int),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			if cost := w.MovementCost(c); cost > 0 {
				g.nodes[c] = &GridNode{At: c, Cost: cost}
				g.countCost(cost)
			}
		}
	}
	for _, c := range g.Coords() {
		if err := g.GenerateEdges(c); err != nil {
			return nil, err
		}
	}

	cfg.Logger.Debug("navigation graph built",
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("nodes", len(g.nodes)), slog.Int("edges", g.edges),
		slog.String("conn", cfg.Conn.String()))

	return g, nil
}

// Options returns the options the graph was built with.
func (g *NavGraph) Options() Options { return g.opts }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *NavGraph) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Validate returns an error wrapping ErrOutOfBounds if c lies outside the grid.
func (g *NavGraph) Validate(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%s) not in %dx%d", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return nil
}

// Node returns the GridNode at c, if the cell is passable.
func (g *NavGraph) Node(c Coord) (*GridNode, bool) {
	n, ok := g.nodes[c]
	return n, ok
}

// HasNode reports whether c is a passable cell of the graph.
func (g *NavGraph) HasNode(c Coord) bool {
	_, ok := g.nodes[c]
	return ok
}

// NodeCount returns the number of GridNodes.
func (g *NavGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
func (g *NavGraph) EdgeCount() int { return g.edges }

// MinNodeCost returns the smallest movement cost of any node, or 0 for an
// empty graph. Under CostTerrain every edge costs at least its step cost
// times this value.
func (g *NavGraph) MinNodeCost() float64 { return g.minCost }

// countCost records one more node with the given movement cost.
func (g *NavGraph) countCost(cost float64) {
	g.costs[cost]++
	if len(g.costs) == 1 || cost < g.minCost {
		g.minCost = cost
	}
}

// uncountCost forgets one node with the given movement cost.
func (g *NavGraph) uncountCost(cost float64) {
	if g.costs[cost]--; g.costs[cost] > 0 {
		return
	}
	delete(g.costs, cost)
	if cost != g.minCost {
		return
	}
	g.minCost = 0
	for k := range g.costs {
		if g.minCost == 0 || k < g.minCost {
			g.minCost = k
		}
	}
}

// Coords returns every node coordinate in row-major order.
func (g *NavGraph) Coords() []Coord {
	out := make([]Coord, 0, len(g.nodes))
	for c := range g.nodes {
		out = append(out, c)
	}
	slices.SortFunc(out, compareRowMajor)
	return out
}

// Equal reports whether g and other have the same extent, the same node set
// and, per node, the same set of edges with identical costs.
func (g *NavGraph) Equal(other *NavGraph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Width != other.Width || g.Height != other.Height || len(g.nodes) != len(other.nodes) {
		return false
	}
	for c, a := range g.nodes {
		b, ok := other.nodes[c]
		if !ok || a.Cost != b.Cost || len(a.Edges) != len(b.Edges) {
			return false
		}
		ea, eb := sortedEdges(a.Edges), sortedEdges(b.Edges)
		if !slices.Equal(ea, eb) {
			return false
		}
	}
	return true
}

// Neighbors8 enumerates the in-bounds geometric neighbours of c on a
// width×height grid in N, NE, E, SE, S, SW, W, NW order.
// World implementations can use it directly.
func Neighbors8(width, height int, c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range offsets8 {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if n.X < 0 || n.Y < 0 || n.X >= width || n.Y >= height {
			continue
		}
		out = append(out, n)
	}
	return out
}

// IsDiagonal reports whether a and b differ by exactly one in both axes.
func IsDiagonal(a, b Coord) bool {
	return abs(a.X-b.X) == 1 && abs(a.Y-b.Y) == 1
}

func compareRowMajor(a, b Coord) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

func sortedEdges(edges []Edge) []Edge {
	out := slices.Clone(edges)
	slices.SortFunc(out, func(a, b Edge) int { return compareRowMajor(a.To, b.To) })
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
