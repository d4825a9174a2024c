package astar

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/pqueue"
)

// ctxCheckInterval is how many expansions pass between context checks.
// The context is also checked on the first expansion.
const ctxCheckInterval = 256

// noPrev marks a record without predecessor (the start).
const noPrev int32 = -1

// record is the per-search state of one discovered cell.
type record struct {
	at       gridgraph.Coord
	cost     float64 // best known accumulated cost g
	prev     int32   // arena index of predecessor, noPrev for the start
	onOpen   bool
	onClosed bool
}

// Searcher owns a frontier queue and a record arena that are reused across
// queries. A Searcher must not be used by two goroutines at once.
type Searcher struct {
	opts    Options
	queue   *pqueue.Queue[int32]
	records []record
	index   map[gridgraph.Coord]int32
}

// NewSearcher returns a Searcher configured by opts.
func NewSearcher(opts ...Option) *Searcher {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Searcher{
		opts:    cfg,
		queue:   pqueue.New[int32](64),
		records: make([]record, 0, 64),
		index:   make(map[gridgraph.Coord]int32, 64),
	}
}

// FindPath runs a one-off search with a fresh Searcher.
func FindPath(g *gridgraph.NavGraph, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	return NewSearcher(opts...).FindPath(g, start, goal)
}

// Pending returns the number of entries left in the frontier queue.
// It is zero between queries.
func (s *Searcher) Pending() int { return s.queue.Len() }

// FindPath searches g for a cheapest path from start to goal.
//
// Under gridgraph.CostTerrain the heuristic is multiplied by the graph's
// MinNodeCost, so heuristics stay in step units.
//
// Validation (in order): ErrNilGraph, out-of-bounds start/goal
// (gridgraph.ErrOutOfBounds), impassable start/goal (ErrNoGraphNode).
// An unreachable goal yields Result{Found: false} and a nil error.
//
// Complexity: O((V + E) log V) time, O(V + E) memory in the worst case.
func (s *Searcher) FindPath(g *gridgraph.NavGraph, start, goal gridgraph.Coord) (*Result, error) {
	return s.search(s.opts.Ctx, g, start, goal)
}

// FindPathContext is FindPath with ctx replacing the Searcher's context for
// this query only.
func (s *Searcher) FindPathContext(ctx context.Context, g *gridgraph.NavGraph, start, goal gridgraph.Coord) (*Result, error) {
	if ctx == nil {
		ctx = s.opts.Ctx
	}
	return s.search(ctx, g, start, goal)
}

func (s *Searcher) search(ctx context.Context, g *gridgraph.NavGraph, start, goal gridgraph.Coord) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, c := range [2]gridgraph.Coord{start, goal} {
		if err := g.Validate(c); err != nil {
			return nil, fmt.Errorf("astar: %w", err)
		}
		if !g.HasNode(c) {
			return nil, fmt.Errorf("%w: (%s)", ErrNoGraphNode, c)
		}
	}

	s.reset()
	defer s.queue.Clear()

	h := s.opts.Heuristic
	if k := terrainFloor(g); k != 1 {
		h = Scaled(h, k)
	}
	startIdx := s.recordFor(start)
	s.records[startIdx].cost = 0
	s.records[startIdx].onOpen = true
	s.queue.Insert(startIdx, h(start, goal))

	expanded := 0
	for s.queue.Len() > 0 {
		idx, _, err := s.queue.ExtractMin()
		if err != nil {
			// Len() > 0 was just checked; the queue is corrupted.
			panic(fmt.Sprintf("astar: %v", err))
		}
		cur := &s.records[idx]
		if cur.onClosed {
			continue // stale duplicate
		}
		cur.onClosed = true
		cur.onOpen = false
		expanded++

		if cur.at == goal {
			return s.result(idx, expanded), nil
		}
		if err := s.guard(ctx, expanded); err != nil {
			return &Result{Expanded: expanded}, err
		}

		node, ok := g.Node(cur.at)
		if !ok {
			panic(fmt.Sprintf("astar: open record (%s) has no graph node; graph mutated during search", cur.at))
		}
		curCost := cur.cost
		for _, e := range node.Edges {
			// recordFor may grow the arena; address records by index only.
			nIdx := s.recordFor(e.To)
			n := &s.records[nIdx]
			if n.onClosed {
				continue
			}
			tentative := curCost + e.Cost
			if n.onOpen && tentative >= n.cost {
				continue
			}
			n.cost = tentative
			n.prev = idx
			n.onOpen = true
			s.queue.Insert(nIdx, tentative+h(e.To, goal))

			if s.opts.EarlyExit && e.To == goal {
				return s.result(nIdx, expanded), nil
			}
		}
	}

	return &Result{Expanded: expanded}, nil
}

// guard enforces the expansion budget and context cancellation.
func (s *Searcher) guard(ctx context.Context, expanded int) error {
	if s.opts.MaxExpansions > 0 && expanded >= s.opts.MaxExpansions {
		s.opts.Logger.Warn("search budget exhausted", slog.Int("expanded", expanded))
		return fmt.Errorf("%w: %d nodes", ErrBudgetExceeded, expanded)
	}
	if expanded == 1 || expanded%ctxCheckInterval == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// terrainFloor is the factor that keeps step-unit heuristics admissible on g.
// Under gridgraph.CostTerrain an edge costs its step cost times the
// destination's movement cost, so no path is cheaper than its step distance
// times the cheapest node.
func terrainFloor(g *gridgraph.NavGraph) float64 {
	if g.Options().Model != gridgraph.CostTerrain {
		return 1
	}
	k := g.MinNodeCost()
	if k <= 0 || math.IsInf(k, 1) {
		return 1
	}
	return k
}

// reset empties the arena and the queue, keeping their capacity.
func (s *Searcher) reset() {
	s.queue.Clear()
	s.records = s.records[:0]
	clear(s.index)
}

// recordFor returns the arena index for c, creating an unseen record lazily.
func (s *Searcher) recordFor(c gridgraph.Coord) int32 {
	if idx, ok := s.index[c]; ok {
		return idx
	}
	if len(s.records) >= math.MaxInt32 {
		panic("astar: record arena overflow")
	}
	idx := int32(len(s.records))
	s.records = append(s.records, record{at: c, cost: math.Inf(1), prev: noPrev})
	s.index[c] = idx
	return idx
}

// result copies the arena chain ending at idx into an immutable Breadcrumb list.
func (s *Searcher) result(idx int32, expanded int) *Result {
	var head, tail *Breadcrumb
	steps := 0
	for i := idx; i != noPrev; i = s.records[i].prev {
		if steps > len(s.records) {
			panic("astar: predecessor chain has a cycle")
		}
		steps++
		crumb := &Breadcrumb{At: s.records[i].at, Cost: s.records[i].cost}
		if head == nil {
			head = crumb
		} else {
			tail.Prev = crumb
		}
		tail = crumb
	}
	return &Result{Found: true, Cost: s.records[idx].cost, Expanded: expanded, Goal: head}
}
