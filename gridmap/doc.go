// Package gridmap provides Map, an in-memory tile world that satisfies
// gridgraph.World.
//
// What:
//
//   - A width×height grid of movement costs (0 = impassable).
//   - Parse builds a Map from ASCII rows using a Legend ('.' = 1, '#' = 0,
//     '1'..'9' = that cost by default).
//   - Load and LoadFile read the same rows from YAML:
//
//     rows:
//     - "....."
//     - ".##.."
//     legend:
//     "~": 3
//
//   - SetCost mutates a cell and notifies every subscriber registered with
//     Subscribe, which is how a navigation engine learns it must rebuild.
//
// Concurrency:
//
//	Map is safe for concurrent use. Subscribers are invoked after the write
//	lock is released, on the goroutine that called SetCost.
//
// Errors:
//
//	ErrEmptyMap, ErrRaggedRows, ErrUnknownTile, ErrBadCost and
//	gridgraph.ErrOutOfBounds (from SetCost and Cost).
package gridmap
