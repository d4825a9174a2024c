package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGraph indicates that a nil *gridgraph.NavGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source cell has no node in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source cell not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that PathTo could not walk from dest back to source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell; must be set and passable.
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – cells whose distance would exceed this are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      gridgraph.Coord
	ReturnPath  bool
	MaxDistance float64

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. It must be supplied.
func Source(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the explored distance. Cells farther than max keep a
// distance of +Inf. Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns options with no source, no predecessor map and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
