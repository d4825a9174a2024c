package navengine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine, graph and search diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine answers path queries over a world while it changes.
//
// Queries hold the read lock for their whole duration; graph patches hold the
// write lock. The world itself is owned by the caller: after mutating it, call
// RebuildAround (or wire OnCellChanged as the world's change callback).
type Engine struct {
	mu    sync.RWMutex
	world gridgraph.World
	graph *gridgraph.NavGraph
	index *cellIndex

	cfg        Config
	searchOpts []astar.Option
	searchers  sync.Pool
	logger     *slog.Logger
}

// Stats is a snapshot of the engine's graph.
type Stats struct {
	Width, Height int
	Nodes         int
	Edges         int
	Indexed       int
}

// New validates cfg, builds the navigation graph for world and indexes its
// passable cells.
func New(world gridgraph.World, cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		world:  world,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(slog.String("component", "navengine"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e.cfg = cfg
	if !cfg.Admissible() {
		e.logger.Warn("heuristic may overestimate; paths are not guaranteed optimal",
			slog.String("heuristic", cfg.Heuristic), slog.Int("connectivity", cfg.Connectivity))
	}

	searchOpts, err := cfg.SearchOptions()
	if err != nil {
		return nil, err
	}
	e.searchOpts = append(searchOpts, astar.WithLogger(e.logger))
	e.searchers.New = func() any { return astar.NewSearcher(e.searchOpts...) }

	g, err := gridgraph.Build(world, append(cfg.GraphOptions(), gridgraph.WithLogger(e.logger))...)
	if err != nil {
		return nil, fmt.Errorf("navengine: build graph: %w", err)
	}
	e.graph = g
	e.index = newCellIndex(g)

	e.logger.Info("engine ready",
		slog.Int("width", g.Width), slog.Int("height", g.Height),
		slog.Int("nodes", g.NodeCount()), slog.Int("edges", g.EdgeCount()),
		slog.String("heuristic", cfg.Heuristic))
	return e, nil
}

// Config returns the validated configuration.
func (e *Engine) Config() Config { return e.cfg }

// FindPath returns the cheapest path start → goal together with the search
// result. When no path exists the path is nil, res.Found is false and err is
// nil.
func (e *Engine) FindPath(start, goal gridgraph.Coord) ([]gridgraph.Coord, *astar.Result, error) {
	return e.FindPathContext(context.Background(), start, goal)
}

// FindPathContext is FindPath with cancellation.
func (e *Engine) FindPathContext(ctx context.Context, start, goal gridgraph.Coord) ([]gridgraph.Coord, *astar.Result, error) {
	s := e.searchers.Get().(*astar.Searcher)
	defer e.searchers.Put(s)

	e.mu.RLock()
	res, err := s.FindPathContext(ctx, e.graph, start, goal)
	e.mu.RUnlock()

	if err != nil {
		return nil, res, err
	}
	if !res.Found {
		e.logger.Debug("no path", slog.String("start", start.String()), slog.String("goal", goal.String()),
			slog.Int("expanded", res.Expanded))
		return nil, res, nil
	}
	return res.Path(), res, nil
}

// RebuildAround re-reads the cell at c from the world and patches the graph
// and the passable-cell index.
func (e *Engine) RebuildAround(c gridgraph.Coord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.graph.RebuildAround(c); err != nil {
		return fmt.Errorf("navengine: rebuild around (%s): %w", c, err)
	}
	e.index.sync(c, e.graph.HasNode(c))
	return nil
}

// OnCellChanged is RebuildAround shaped as a world change callback. Errors
// are logged, not returned.
func (e *Engine) OnCellChanged(c gridgraph.Coord) {
	if err := e.RebuildAround(c); err != nil {
		e.logger.Error("rebuild failed", slog.String("cell", c.String()), slog.Any("err", err))
	}
}

// NearestPassable returns the passable cell closest to c (c itself if it is
// passable). c may lie outside the grid. Reports false on a fully blocked grid.
func (e *Engine) NearestPassable(c gridgraph.Coord) (gridgraph.Coord, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.nearest(c)
}

// PassableWithin returns the passable cells at Chebyshev distance <= r from
// c in row-major order, regardless of reachability.
func (e *Engine) PassableWithin(c gridgraph.Coord, r int) []gridgraph.Coord {
	if r < 0 {
		return nil
	}
	e.mu.RLock()
	out := e.index.within(c, r)
	e.mu.RUnlock()

	slices.SortFunc(out, func(a, b gridgraph.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// DistanceField returns the cheapest cost from source to every passable
// cell (+Inf where unreachable).
func (e *Engine) DistanceField(source gridgraph.Coord) (map[gridgraph.Coord]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	dist, _, err := dijkstra.Dijkstra(e.graph, dijkstra.Source(source))
	if err != nil {
		return nil, err
	}
	return dist, nil
}

// WithinSteps returns the cells reachable from c in at most n moves, in
// breadth-first order, with their move counts.
func (e *Engine) WithinSteps(c gridgraph.Coord, n int) ([]gridgraph.Coord, map[gridgraph.Coord]int, error) {
	return e.WithinStepsAvoiding(c, n, nil)
}

// WithinStepsAvoiding is WithinSteps that never enters cells for which
// occupied returns true, such as cells held by other units. c itself may be
// occupied.
func (e *Engine) WithinStepsAvoiding(c gridgraph.Coord, n int, occupied func(gridgraph.Coord) bool) ([]gridgraph.Coord, map[gridgraph.Coord]int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	res, err := bfs.BFS(e.graph, c, bfs.WithMaxDepth(n), bfs.WithAvoid(occupied))
	if err != nil {
		return nil, nil, err
	}
	return res.Order, res.Depth, nil
}

// FewestSteps returns a path start → goal with the fewest moves, ignoring
// movement costs. The path is nil when goal is unreachable.
func (e *Engine) FewestSteps(ctx context.Context, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if err := e.graph.Validate(goal); err != nil {
		return nil, fmt.Errorf("navengine: %w", err)
	}
	res, err := bfs.BFS(e.graph, start, bfs.WithTarget(goal), bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if !res.Reached(goal) {
		return nil, nil
	}
	return res.PathTo(goal)
}

// Regions returns the connected regions of the graph, largest first.
func (e *Engine) Regions() [][]gridgraph.Coord {
	e.mu.RLock()
	comps := e.graph.Components()
	e.mu.RUnlock()

	slices.SortStableFunc(comps, func(a, b []gridgraph.Coord) int { return len(b) - len(a) })
	return comps
}

// Stats returns graph and index sizes.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Stats{
		Width:   e.graph.Width,
		Height:  e.graph.Height,
		Nodes:   e.graph.NodeCount(),
		Edges:   e.graph.EdgeCount(),
		Indexed: e.index.size(),
	}
}
