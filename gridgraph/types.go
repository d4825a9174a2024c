package gridgraph

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// CostModel selects how edge costs are derived.
type CostModel int

const (
	// CostUniform charges OrthogonalCost or DiagonalCost per step.
	CostUniform CostModel = iota
	// CostTerrain multiplies the step cost by the destination cell's movement cost.
	CostTerrain
)

// CornerRule decides when a diagonal step counts as clipping a corner.
type CornerRule int

const (
	// CornerStrict rejects a diagonal step when either orthogonal shoulder is impassable.
	CornerStrict CornerRule = iota
	// CornerLoose rejects a diagonal step only when both shoulders are impassable.
	CornerLoose
)

// Coord identifies one grid cell. Two coordinates are equal iff X and Y match.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Equal reports whether c and o name the same cell.
func (c Coord) Equal(o Coord) bool { return c.X == o.X && c.Y == o.Y }

// String renders the coordinate as "x,y".
func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Edge is a directed adjacency entry with a positive traversal cost.
type Edge struct {
	To   Coord
	Cost float64
}

// GridNode represents one passable cell and its outgoing edges.
// Cost caches the cell's movement cost as reported by the World.
type GridNode struct {
	At    Coord
	Cost  float64
	Edges []Edge
}

// World is the tile model the graph is built from.
//
// MovementCost returns 0 for impassable cells and the traversal cost otherwise.
// Neighbors8 returns the up-to-8 geometric neighbours of c; out-of-bounds
// cells may be omitted or included (they are filtered either way).
type World interface {
	Width() int
	Height() int
	MovementCost(c Coord) float64
	Neighbors8(c Coord) []Coord
}

// Options contains tunable parameters for graph construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// OrthogonalCost is the cost of a N/E/S/W step.
	OrthogonalCost float64
	// DiagonalCost is the cost of a diagonal step.
	DiagonalCost float64
	// Model selects uniform or terrain-weighted edge costs.
	Model CostModel
	// Corners selects the corner-clipping rule for diagonal steps.
	Corners CornerRule
	// Logger receives build and rebuild diagnostics.
	Logger *slog.Logger
}

// Option configures graph construction.
type Option func(*Options)

// DefaultOptions returns Conn8, unit orthogonal cost, √2 diagonal cost,
// uniform cost model, strict corner rule and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Conn:           Conn8,
		OrthogonalCost: 1,
		DiagonalCost:   math.Sqrt2,
		Model:          CostUniform,
		Corners:        CornerStrict,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(conn Connectivity) Option {
	return func(o *Options) { o.Conn = conn }
}

// WithOrthogonalCost sets the cost of an orthogonal step. Panics if cost <= 0.
func WithOrthogonalCost(cost float64) Option {
	return func(o *Options) {
		if cost <= 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
			panic(fmt.Sprintf("gridgraph: orthogonal cost must be positive and finite, got %v", cost))
		}
		o.OrthogonalCost = cost
	}
}

// WithDiagonalCost sets the cost of a diagonal step. Panics if cost <= 0.
func WithDiagonalCost(cost float64) Option {
	return func(o *Options) {
		if cost <= 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
			panic(fmt.Sprintf("gridgraph: diagonal cost must be positive and finite, got %v", cost))
		}
		o.DiagonalCost = cost
	}
}

// WithCostModel selects how edge costs are computed.
func WithCostModel(m CostModel) Option {
	return func(o *Options) { o.Model = m }
}

// WithCornerRule selects the corner-clipping rule for diagonal steps.
func WithCornerRule(r CornerRule) Option {
	return func(o *Options) { o.Corners = r }
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// NavGraph owns the GridNodes for a world. Width and Height mirror the world's
// extent at build time.
type NavGraph struct {
	Width, Height int

	world World
	opts  Options
	nodes map[Coord]*GridNode
	edges int

	// costs counts nodes per movement cost; minCost is its smallest key.
	costs   map[float64]int
	minCost float64
}
