package gridgraph

// Components finds all contiguous regions of passable cells, following the
// graph's edges (so connectivity and corner rules are respected).
// Returns a slice of components; each component lists coordinates in BFS
// discovery order, and components appear in row-major order of their first cell.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (g *NavGraph) Components() [][]Coord {
	seen := make(map[Coord]bool, len(g.nodes))
	var comps [][]Coord

	for _, c0 := range g.Coords() {
		if seen[c0] {
			continue
		}
		// BFS to collect component
		queue := []Coord{c0}
		seen[c0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, e := range g.nodes[queue[qi]].Edges {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
