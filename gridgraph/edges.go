package gridgraph

import (
	"fmt"
	"log/slog"
)

// GenerateEdges recomputes the edge list of the node at c.
//
// Behavior:
//  1. Enumerate the world's neighbours of c.
//  2. Skip neighbours without a node (impassable or out of bounds).
//  3. Under Conn4 skip diagonal neighbours; under Conn8 skip diagonal
//     neighbours that clip a blocked corner (see CornerRule).
//  4. Append an edge whose cost follows the configured CostModel.
//
// Returns ErrOutOfBounds or ErrNodeNotFound.
// Complexity: O(d).
func (g *NavGraph) GenerateEdges(c Coord) error {
	if err := g.Validate(c); err != nil {
		return err
	}
	n, ok := g.nodes[c]
	if !ok {
		return fmt.Errorf("%w: (%s)", ErrNodeNotFound, c)
	}

	g.edges -= len(n.Edges)
	edges := n.Edges[:0]
	for _, nc := range g.world.Neighbors8(c) {
		if !isAdjacent(c, nc) {
			continue
		}
		dest, ok := g.nodes[nc]
		if !ok {
			continue
		}
		diagonal := IsDiagonal(c, nc)
		if diagonal && (g.opts.Conn == Conn4 || g.isClippingCorner(c, nc)) {
			continue
		}
		edges = append(edges, Edge{To: nc, Cost: g.stepCost(dest, diagonal)})
	}
	n.Edges = edges
	g.edges += len(edges)

	return nil
}

// RebuildAround brings the graph up to date after the cell at c changed.
// The cell's movement cost is re-queried; its node is added, updated or
// removed, and then the edges of c and of every passable 8-neighbour are
// regenerated. Any diagonal whose shoulder is c has both endpoints inside that
// neighbourhood, so no other node is affected.
// Returns ErrOutOfBounds if c lies outside the grid.
// Complexity: O(d²).
func (g *NavGraph) RebuildAround(c Coord) error {
	if err := g.Validate(c); err != nil {
		return err
	}

	cost := g.world.MovementCost(c)
	n, had := g.nodes[c]
	switch {
	case cost > 0 && !had:
		g.nodes[c] = &GridNode{At: c, Cost: cost}
		g.countCost(cost)
		g.opts.Logger.Debug("cell became passable", slog.String("cell", c.String()), slog.Float64("cost", cost))
	case cost > 0:
		if n.Cost != cost {
			g.uncountCost(n.Cost)
			g.countCost(cost)
			n.Cost = cost
		}
	case had:
		g.edges -= len(n.Edges)
		g.uncountCost(n.Cost)
		delete(g.nodes, c)
		g.opts.Logger.Debug("cell became impassable", slog.String("cell", c.String()))
	}

	if cost > 0 {
		if err := g.GenerateEdges(c); err != nil {
			return err
		}
	}
	for _, nc := range Neighbors8(g.Width, g.Height, c) {
		if !g.HasNode(nc) {
			continue
		}
		if err := g.GenerateEdges(nc); err != nil {
			return err
		}
	}

	return nil
}

// isClippingCorner reports whether the step cur→next is diagonal and cuts
// through an impassable orthogonal shoulder. Orthogonal steps never clip.
func (g *NavGraph) isClippingCorner(cur, next Coord) bool {
	if !IsDiagonal(cur, next) {
		return false
	}
	// Shoulders share cur's row with next's column, and cur's column with next's row.
	a := g.HasNode(Coord{X: next.X, Y: cur.Y})
	b := g.HasNode(Coord{X: cur.X, Y: next.Y})
	if g.opts.Corners == CornerLoose {
		return !a && !b
	}
	return !a || !b
}

func (g *NavGraph) stepCost(dest *GridNode, diagonal bool) float64 {
	step := g.opts.OrthogonalCost
	if diagonal {
		step = g.opts.DiagonalCost
	}
	if g.opts.Model == CostTerrain {
		step *= dest.Cost
	}
	return step
}

func isAdjacent(a, b Coord) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return dx <= 1 && dy <= 1 && dx+dy > 0
}
