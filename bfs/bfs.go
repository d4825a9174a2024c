package bfs

import (
	"fmt"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// walker holds the state of one traversal. The queue is consumed by advancing
// head, so its backing array is never shifted.
type walker struct {
	graph *gridgraph.NavGraph
	opts  Options
	queue []gridgraph.Coord
	head  int
	res   *Result
}

// BFS explores g from start in non-decreasing hop count.
//
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input. On cancellation the partial result is returned with the
// context's error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *gridgraph.NavGraph, start gridgraph.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: (%s)", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]gridgraph.Coord, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]gridgraph.Coord, 0, n),
			Depth:  make(map[gridgraph.Coord]int, n),
			Parent: make(map[gridgraph.Coord]gridgraph.Coord, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.run()
}

func (w *walker) run() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		cur := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, cur)

		if w.opts.HasTarget && cur == w.opts.Target {
			return nil
		}
		w.expand(cur)
	}
	return nil
}

// expand discovers the unseen, enterable neighbours of cur within MaxDepth.
func (w *walker) expand(cur gridgraph.Coord) {
	next := w.res.Depth[cur] + 1
	if w.opts.MaxDepth != NoDepthLimit && next > w.opts.MaxDepth {
		return
	}
	node, _ := w.graph.Node(cur)
	for _, e := range node.Edges {
		if _, seen := w.res.Depth[e.To]; seen || w.opts.Avoid(e.To) {
			continue
		}
		w.res.Depth[e.To] = next
		w.res.Parent[e.To] = cur
		w.queue = append(w.queue, e.To)
	}
}
