package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/gridgraph"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start cell has no node.
	ErrStartVertexNotFound = errors.New("bfs: start cell not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// NoDepthLimit lets a traversal run until every reachable cell is seen.
const NoDepthLimit = -1

// Options controls one traversal.
type Options struct {
	// Ctx is checked before every dequeue.
	Ctx context.Context

	// MaxDepth bounds the hop count of discovered cells.
	// NoDepthLimit disables the bound; 0 reaches the start only.
	MaxDepth int

	// Avoid reports cells that must not be entered. The start is exempt.
	Avoid func(c gridgraph.Coord) bool

	// Target, when set, stops the traversal once that cell is dequeued.
	Target    gridgraph.Coord
	HasTarget bool

	err error
}

// Option configures a traversal. Invalid arguments are recorded and
// reported as ErrOptionViolation by BFS.
type Option func(*Options)

// DefaultOptions returns a background context, no depth limit, nothing
// avoided and no target.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: NoDepthLimit,
		Avoid:    func(gridgraph.Coord) bool { return false },
	}
}

// WithContext aborts the traversal when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal to cells at most d hops from the start.
// A negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithAvoid keeps the traversal out of cells for which fn returns true,
// e.g. cells occupied by other units.
func WithAvoid(fn func(c gridgraph.Coord) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Avoid = fn
		}
	}
}

// WithTarget stops the traversal as soon as c is dequeued.
func WithTarget(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Target = c
		o.HasTarget = true
	}
}

// Result is the outcome of a traversal.
//
// Order lists dequeued cells in visit sequence. Depth and Parent cover every
// discovered cell; Parent has no entry for the start.
type Result struct {
	Start  gridgraph.Coord
	Order  []gridgraph.Coord
	Depth  map[gridgraph.Coord]int
	Parent map[gridgraph.Coord]gridgraph.Coord
}

// Reached reports whether c was discovered.
func (r *Result) Reached(c gridgraph.Coord) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo returns a fewest-hops path start → dest, or an error if dest was not
// discovered.
func (r *Result) PathTo(dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to (%s)", dest)
	}
	path := make([]gridgraph.Coord, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
