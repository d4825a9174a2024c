package gridgraph

import "errors"

var (
	// ErrNilWorld indicates Build was called without a World.
	ErrNilWorld = errors.New("gridgraph: world is nil")
	// ErrEmptyGrid indicates the world has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNodeNotFound indicates the coordinate has no GridNode (impassable cell).
	ErrNodeNotFound = errors.New("gridgraph: no node at coordinate")
)
