package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/pqueue"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: cell → minimum accumulated cost; +Inf if unreachable or beyond MaxDistance.
//   - prev: predecessor map if WithReturnPath() was given, nil otherwise.
//     prev[v] == u means the shortest path to v arrives from u. The source
//     and unreached cells have no entry.
//   - err:  ErrNoSource, ErrNilGraph or ErrVertexNotFound (wrapped).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *gridgraph.NavGraph, opts ...Option) (map[gridgraph.Coord]float64, map[gridgraph.Coord]gridgraph.Coord, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: (%s)", ErrVertexNotFound, cfg.Source)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[gridgraph.Coord]float64, n),
		visited: make(map[gridgraph.Coord]bool, n),
		pq:      pqueue.New[gridgraph.Coord](n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.Coord]gridgraph.Coord, n)
	}

	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.NavGraph
	options Options
	dist    map[gridgraph.Coord]float64
	prev    map[gridgraph.Coord]gridgraph.Coord
	visited map[gridgraph.Coord]bool
	pq      *pqueue.Queue[gridgraph.Coord]
}

// init sets every distance to +Inf and queues the source at 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for _, c := range r.g.Coords() {
		r.dist[c] = inf
	}
	r.dist[r.options.Source] = 0
	r.pq.Insert(r.options.Source, 0)
}

// process settles cells in order of distance until the queue is empty or the
// frontier passes MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		u, d, err := r.pq.ExtractMin()
		if err != nil {
			panic(fmt.Sprintf("dijkstra: %v", err))
		}
		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
	r.pq.Clear()
}

// relax tries to improve the distance of every neighbour of the settled cell u.
func (r *runner) relax(u gridgraph.Coord) {
	node, _ := r.g.Node(u)
	du := r.dist[u]
	for _, e := range node.Edges {
		if r.visited[e.To] {
			continue
		}
		nd := du + e.Cost
		if nd > r.options.MaxDistance || nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.pq.Insert(e.To, nd)
	}
}

// PathTo walks prev back from dest and returns the cells source → dest.
// Returns ErrUnreachable if the chain does not lead to source.
func PathTo(prev map[gridgraph.Coord]gridgraph.Coord, source, dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	path := []gridgraph.Coord{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: (%s) from (%s)", ErrUnreachable, dest, source)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
