package navengine

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// cellExtent is the side of the square stored per cell. Cells are indexed
// as near-points at their centre so R-tree distances match centre distances.
const cellExtent = 1e-6

// cellEntry wraps one passable cell for R-tree storage.
type cellEntry struct {
	at   gridgraph.Coord
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *cellEntry) Bounds() rtreego.Rect { return e.bbox }

// cellIndex keeps the passable cells of a graph in an R-tree.
type cellIndex struct {
	tree    *rtreego.Rtree
	entries map[gridgraph.Coord]*cellEntry
}

func newCellIndex(g *gridgraph.NavGraph) *cellIndex {
	coords := g.Coords()
	idx := &cellIndex{
		entries: make(map[gridgraph.Coord]*cellEntry, len(coords)),
	}
	objs := make([]rtreego.Spatial, 0, len(coords))
	for _, c := range coords {
		e := newCellEntry(c)
		idx.entries[c] = e
		objs = append(objs, e)
	}
	// Bulk-load: 2D, min 25, max 50 entries per node.
	idx.tree = rtreego.NewTree(2, 25, 50, objs...)
	return idx
}

func newCellEntry(c gridgraph.Coord) *cellEntry {
	return &cellEntry{at: c, bbox: centre(c).ToRect(cellExtent)}
}

// sync adds or removes c so the index mirrors passable.
func (idx *cellIndex) sync(c gridgraph.Coord, passable bool) {
	e, ok := idx.entries[c]
	switch {
	case passable && !ok:
		e = newCellEntry(c)
		idx.entries[c] = e
		idx.tree.Insert(e)
	case !passable && ok:
		idx.tree.Delete(e)
		delete(idx.entries, c)
	}
}

// nearest returns the indexed cell closest to c's centre.
func (idx *cellIndex) nearest(c gridgraph.Coord) (gridgraph.Coord, bool) {
	if e, ok := idx.entries[c]; ok {
		return e.at, true
	}
	obj := idx.tree.NearestNeighbor(centre(c))
	if obj == nil {
		return gridgraph.Coord{}, false
	}
	return obj.(*cellEntry).at, true
}

// within returns the indexed cells at Chebyshev distance <= r from c.
func (idx *cellIndex) within(c gridgraph.Coord, r int) []gridgraph.Coord {
	hits := idx.tree.SearchIntersect(centre(c).ToRect(float64(r) + 0.25))
	out := make([]gridgraph.Coord, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*cellEntry).at)
	}
	return out
}

func (idx *cellIndex) size() int { return idx.tree.Size() }

func centre(c gridgraph.Coord) rtreego.Point {
	return rtreego.Point{float64(c.X) + 0.5, float64(c.Y) + 0.5}
}
