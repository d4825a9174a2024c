package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates a nil *gridgraph.NavGraph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNoGraphNode indicates start or goal has no GridNode (impassable terrain).
	ErrNoGraphNode = errors.New("astar: no graph node at coordinate")

	// ErrBudgetExceeded indicates the search expanded more nodes than allowed.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrUnknownHeuristic indicates HeuristicByName was given an unknown name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// Options configures a Searcher.
type Options struct {
	Heuristic     Heuristic       // estimate used to order the frontier
	MaxExpansions int             // 0 means unlimited
	EarlyExit     bool            // stop when the goal is first relaxed
	Ctx           context.Context // checked on the first and every ctxCheckInterval expansions
	Logger        *slog.Logger
}

// Option represents a functional option for configuring a Searcher.
type Option func(*Options)

// DefaultOptions returns Octile heuristic, no budget, exit on goal
// extraction, background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Heuristic: Octile,
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithHeuristic selects the frontier estimate. A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions caps the number of closed nodes per query.
// Zero disables the cap; a negative value panics.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(fmt.Sprintf("astar: MaxExpansions must be non-negative, got %d", n))
		}
		o.MaxExpansions = n
	}
}

// WithEarlyExit stops the search as soon as the goal is reached by a
// relaxation instead of waiting for it to be extracted. The returned path is
// valid but its cost is not guaranteed minimal.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// WithContext aborts long searches when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Breadcrumb is one step of a found path. Prev points one step closer to the
// start and is nil on the start crumb. Cost is the accumulated movement cost
// from the start.
type Breadcrumb struct {
	At   gridgraph.Coord
	Cost float64
	Prev *Breadcrumb
}

// Len returns the number of crumbs from b back to the start, inclusive.
func (b *Breadcrumb) Len() int {
	n := 0
	for c := b; c != nil; c = c.Prev {
		n++
	}
	return n
}

// Result is the outcome of one query.
//
// Found is false when the goal is unreachable; Goal is then nil.
// Expanded counts closed nodes.
type Result struct {
	Found    bool
	Cost     float64
	Expanded int
	Goal     *Breadcrumb
}

// Reversed returns the path goal → start.
func (r *Result) Reversed() []gridgraph.Coord {
	if r == nil || r.Goal == nil {
		return nil
	}
	out := make([]gridgraph.Coord, 0, r.Goal.Len())
	for c := r.Goal; c != nil; c = c.Prev {
		out = append(out, c.At)
	}
	return out
}

// Path returns the path start → goal, or nil if none was found.
func (r *Result) Path() []gridgraph.Coord {
	path := r.Reversed()
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Steps returns the number of edges on the path (0 when start == goal or not found).
func (r *Result) Steps() int {
	if r == nil || r.Goal == nil {
		return 0
	}
	return r.Goal.Len() - 1
}
