package gridgraph_test

import (
	"github.com/katalvlaran/tilepath/gridgraph"
)

// gridWorld is a minimal mutable World backed by a cost slice.
type gridWorld struct {
	w, h  int
	costs []float64
}

// parseWorld builds a gridWorld from ASCII rows: '#' is blocked, '.' costs 1,
// digits '1'..'9' cost their value.
func parseWorld(rows ...string) *gridWorld {
	gw := &gridWorld{w: len(rows[0]), h: len(rows)}
	gw.costs = make([]float64, gw.w*gw.h)
	for y, row := range rows {
		for x, r := range row {
			switch {
			case r == '#':
				gw.costs[y*gw.w+x] = 0
			case r >= '1' && r <= '9':
				gw.costs[y*gw.w+x] = float64(r - '0')
			default:
				gw.costs[y*gw.w+x] = 1
			}
		}
	}
	return gw
}

// openWorld returns a fully passable w×h world.
func openWorld(w, h int) *gridWorld {
	gw := &gridWorld{w: w, h: h, costs: make([]float64, w*h)}
	for i := range gw.costs {
		gw.costs[i] = 1
	}
	return gw
}

func (gw *gridWorld) Width() int  { return gw.w }
func (gw *gridWorld) Height() int { return gw.h }
func (gw *gridWorld) MovementCost(c gridgraph.Coord) float64 {
	if c.X < 0 || c.Y < 0 || c.X >= gw.w || c.Y >= gw.h {
		return 0
	}
	return gw.costs[c.Y*gw.w+c.X]
}
func (gw *gridWorld) Neighbors8(c gridgraph.Coord) []gridgraph.Coord {
	return gridgraph.Neighbors8(gw.w, gw.h, c)
}
func (gw *gridWorld) set(c gridgraph.Coord, cost float64) { gw.costs[c.Y*gw.w+c.X] = cost }

// edgeTo returns the edge from → to, if present.
func edgeTo(g *gridgraph.NavGraph, from, to gridgraph.Coord) (gridgraph.Edge, bool) {
	n, ok := g.Node(from)
	if !ok {
		return gridgraph.Edge{}, false
	}
	for _, e := range n.Edges {
		if e.To == to {
			return e, true
		}
	}
	return gridgraph.Edge{}, false
}
