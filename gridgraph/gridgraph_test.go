package gridgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/gridgraph"
)

//----------------------------------------------------------------------------//
// Build and bounds
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies that Build rejects a nil world and empty extents.
func TestBuild_Errors(t *testing.T) {
	_, err := gridgraph.Build(nil)
	assert.ErrorIs(t, err, gridgraph.ErrNilWorld)

	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Build(&gridWorld{w: tc.w, h: tc.h})
			assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
		})
	}
}

// TestBuild_OpenGridEdgeCounts checks node and edge totals on an open 3×3 grid.
//
//	Conn8: 4 corners×3 + 4 sides×5 + centre×8 = 40
//	Conn4: 4 corners×2 + 4 sides×3 + centre×4 = 24
func TestBuild_OpenGridEdgeCounts(t *testing.T) {
	g8, err := gridgraph.Build(openWorld(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 9, g8.NodeCount())
	assert.Equal(t, 40, g8.EdgeCount())

	g4, err := gridgraph.Build(openWorld(3, 3), gridgraph.WithConnectivity(gridgraph.Conn4))
	require.NoError(t, err)
	assert.Equal(t, 9, g4.NodeCount())
	assert.Equal(t, 24, g4.EdgeCount())
	_, ok := edgeTo(g4, gridgraph.C(0, 0), gridgraph.C(1, 1))
	assert.False(t, ok, "Conn4 must not emit diagonal edges")
}

// TestBuild_FullyBlocked yields an empty graph, not an error.
func TestBuild_FullyBlocked(t *testing.T) {
	g, err := gridgraph.Build(parseWorld("###", "###"))
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Components())
}

// TestBuild_NodeIffPassable checks the node set mirrors movement cost > 0.
func TestBuild_NodeIffPassable(t *testing.T) {
	w := parseWorld(
		".#.",
		"3#.",
	)
	g, err := gridgraph.Build(w)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := gridgraph.C(x, y)
			assert.Equal(t, w.MovementCost(c) > 0, g.HasNode(c), "cell %s", c)
		}
	}
	n, ok := g.Node(gridgraph.C(0, 1))
	require.True(t, ok)
	assert.Equal(t, 3.0, n.Cost)
}

// TestValidate checks in/out of bounds coordinates.
func TestValidate(t *testing.T) {
	g, err := gridgraph.Build(openWorld(3, 2))
	require.NoError(t, err)

	for _, c := range []gridgraph.Coord{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%s)", c)
		assert.NoError(t, g.Validate(c))
	}
	for _, c := range []gridgraph.Coord{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%s)", c)
		assert.ErrorIs(t, g.Validate(c), gridgraph.ErrOutOfBounds)
	}
}

//----------------------------------------------------------------------------//
// Edges and corner clipping
//----------------------------------------------------------------------------//

// TestCornerClipping covers the diagonal (0,0)→(1,1) under both corner rules.
//
//	both shoulders blocked   one shoulder blocked   none blocked
//	  . #                      . #                    . .
//	  # .                      . .                    . .
func TestCornerClipping(t *testing.T) {
	cases := []struct {
		name       string
		rows       []string
		wantStrict bool
		wantLoose  bool
	}{
		{"BothBlocked", []string{".#", "#."}, false, false},
		{"OneBlocked", []string{".#", ".."}, false, true},
		{"NoneBlocked", []string{"..", ".."}, true, true},
	}
	a, b := gridgraph.C(0, 0), gridgraph.C(1, 1)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			strict, err := gridgraph.Build(parseWorld(tc.rows...))
			require.NoError(t, err)
			_, ok := edgeTo(strict, a, b)
			assert.Equal(t, tc.wantStrict, ok, "strict a→b")
			_, ok = edgeTo(strict, b, a)
			assert.Equal(t, tc.wantStrict, ok, "strict b→a")

			loose, err := gridgraph.Build(parseWorld(tc.rows...), gridgraph.WithCornerRule(gridgraph.CornerLoose))
			require.NoError(t, err)
			_, ok = edgeTo(loose, a, b)
			assert.Equal(t, tc.wantLoose, ok, "loose a→b")
			_, ok = edgeTo(loose, b, a)
			assert.Equal(t, tc.wantLoose, ok, "loose b→a")
		})
	}
}

// TestOrthogonalNotClipTested: orthogonal moves next to walls are always kept.
func TestOrthogonalNotClipTested(t *testing.T) {
	g, err := gridgraph.Build(parseWorld(
		"#.#",
		"#.#",
	))
	require.NoError(t, err)
	_, ok := edgeTo(g, gridgraph.C(1, 0), gridgraph.C(1, 1))
	assert.True(t, ok)
	_, ok = edgeTo(g, gridgraph.C(1, 1), gridgraph.C(1, 0))
	assert.True(t, ok)
}

// TestEdgeCosts checks uniform and terrain cost models.
func TestEdgeCosts(t *testing.T) {
	w := parseWorld(
		".3",
		"..",
	)
	g, err := gridgraph.Build(w)
	require.NoError(t, err)
	e, ok := edgeTo(g, gridgraph.C(0, 0), gridgraph.C(1, 0))
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Cost)
	e, ok = edgeTo(g, gridgraph.C(0, 0), gridgraph.C(1, 1))
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, e.Cost, 1e-12)

	gt, err := gridgraph.Build(w,
		gridgraph.WithCostModel(gridgraph.CostTerrain),
		gridgraph.WithOrthogonalCost(10),
		gridgraph.WithDiagonalCost(14))
	require.NoError(t, err)
	e, ok = edgeTo(gt, gridgraph.C(0, 0), gridgraph.C(1, 0))
	require.True(t, ok)
	assert.Equal(t, 30.0, e.Cost)
	e, ok = edgeTo(gt, gridgraph.C(1, 0), gridgraph.C(0, 1))
	require.True(t, ok)
	assert.Equal(t, 14.0, e.Cost)
}

// TestOptions_PanicOnBadCost mirrors the option-constructor validation.
func TestOptions_PanicOnBadCost(t *testing.T) {
	assert.Panics(t, func() { gridgraph.WithOrthogonalCost(0)(&gridgraph.Options{}) })
	assert.Panics(t, func() { gridgraph.WithDiagonalCost(-1)(&gridgraph.Options{}) })
	assert.Panics(t, func() { gridgraph.WithDiagonalCost(math.NaN())(&gridgraph.Options{}) })
}

// TestGenerateEdges_Errors covers out-of-bounds and impassable cells.
func TestGenerateEdges_Errors(t *testing.T) {
	g, err := gridgraph.Build(parseWorld(".#"))
	require.NoError(t, err)
	assert.ErrorIs(t, g.GenerateEdges(gridgraph.C(5, 5)), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.GenerateEdges(gridgraph.C(1, 0)), gridgraph.ErrNodeNotFound)
	assert.NoError(t, g.GenerateEdges(gridgraph.C(0, 0)))
}

//----------------------------------------------------------------------------//
// RebuildAround
//----------------------------------------------------------------------------//

// TestRebuildAround_Transitions toggles one cell and inspects its neighbourhood.
func TestRebuildAround_Transitions(t *testing.T) {
	w := openWorld(3, 3)
	g, err := gridgraph.Build(w)
	require.NoError(t, err)
	centre := gridgraph.C(1, 1)

	// Block the centre: node removed, no edges point at it.
	w.set(centre, 0)
	require.NoError(t, g.RebuildAround(centre))
	assert.False(t, g.HasNode(centre))
	for _, c := range g.Coords() {
		_, ok := edgeTo(g, c, centre)
		assert.False(t, ok, "edge %s→centre survived", c)
	}
	// (1,0)→(0,1) now clips the blocked centre shoulder.
	_, ok := edgeTo(g, gridgraph.C(1, 0), gridgraph.C(0, 1))
	assert.False(t, ok, "shoulder (1,1) is blocked")
	_, ok = edgeTo(g, gridgraph.C(1, 0), gridgraph.C(0, 0))
	assert.True(t, ok)
	_, ok = edgeTo(g, gridgraph.C(0, 0), gridgraph.C(1, 1))
	assert.False(t, ok)

	// Reopen with a higher cost.
	w.set(centre, 2)
	require.NoError(t, g.RebuildAround(centre))
	n, ok := g.Node(centre)
	require.True(t, ok)
	assert.Equal(t, 2.0, n.Cost)
	assert.Len(t, n.Edges, 8)

	fresh, err := gridgraph.Build(w)
	require.NoError(t, err)
	assert.True(t, g.Equal(fresh))
	assert.Equal(t, fresh.EdgeCount(), g.EdgeCount())
}

// TestRebuildAround_OutOfBounds fails fast.
func TestRebuildAround_OutOfBounds(t *testing.T) {
	g, err := gridgraph.Build(openWorld(2, 2))
	require.NoError(t, err)
	assert.ErrorIs(t, g.RebuildAround(gridgraph.C(2, 0)), gridgraph.ErrOutOfBounds)
}

// TestRebuildAround_Equivalence applies random single-cell toggles under every
// option combination and compares the patched graph with a fresh Build.
func TestRebuildAround_Equivalence(t *testing.T) {
	variants := map[string][]gridgraph.Option{
		"Conn8Strict":  nil,
		"Conn8Loose":   {gridgraph.WithCornerRule(gridgraph.CornerLoose)},
		"Conn4":        {gridgraph.WithConnectivity(gridgraph.Conn4)},
		"Conn8Terrain": {gridgraph.WithCostModel(gridgraph.CostTerrain)},
	}
	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			const w, h = 9, 7
			world := openWorld(w, h)
			g, err := gridgraph.Build(world, opts...)
			require.NoError(t, err)

			for step := 0; step < 300; step++ {
				c := gridgraph.C(rng.Intn(w), rng.Intn(h))
				if world.MovementCost(c) > 0 && rng.Intn(3) > 0 {
					world.set(c, 0)
				} else {
					world.set(c, float64(1+rng.Intn(4))/2)
				}
				require.NoError(t, g.RebuildAround(c))
			}

			fresh, err := gridgraph.Build(world, opts...)
			require.NoError(t, err)
			assert.True(t, g.Equal(fresh), "incrementally patched graph differs from rebuild")
			assert.Equal(t, fresh.EdgeCount(), g.EdgeCount())
			assert.Equal(t, fresh.Coords(), g.Coords())
			assert.Equal(t, fresh.MinNodeCost(), g.MinNodeCost())
		})
	}
}

// TestMinNodeCost follows the cheapest cell through build and rebuilds.
func TestMinNodeCost(t *testing.T) {
	w := parseWorld(
		"23#",
		"944",
	)
	g, err := gridgraph.Build(w)
	require.NoError(t, err)
	assert.Equal(t, 2.0, g.MinNodeCost())

	// A cheaper cell appears.
	w.set(gridgraph.C(2, 0), 0.25)
	require.NoError(t, g.RebuildAround(gridgraph.C(2, 0)))
	assert.Equal(t, 0.25, g.MinNodeCost())

	// Repricing the only cheapest cell falls back to the next cheapest.
	w.set(gridgraph.C(2, 0), 5)
	require.NoError(t, g.RebuildAround(gridgraph.C(2, 0)))
	assert.Equal(t, 2.0, g.MinNodeCost())

	// Blocking it does the same.
	w.set(gridgraph.C(0, 0), 0)
	require.NoError(t, g.RebuildAround(gridgraph.C(0, 0)))
	assert.Equal(t, 3.0, g.MinNodeCost())

	blocked, err := gridgraph.Build(parseWorld("##"))
	require.NoError(t, err)
	assert.Zero(t, blocked.MinNodeCost())
}

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

// TestNeighbors8 checks enumeration order and bounds filtering.
func TestNeighbors8(t *testing.T) {
	got := gridgraph.Neighbors8(3, 3, gridgraph.C(0, 0))
	assert.Equal(t, []gridgraph.Coord{{1, 0}, {1, 1}, {0, 1}}, got)

	got = gridgraph.Neighbors8(3, 3, gridgraph.C(1, 1))
	assert.Equal(t, []gridgraph.Coord{
		{1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}, {0, 0},
	}, got)
}

// TestCoordEquality compares by X and Y, never X against Y.
func TestCoordEquality(t *testing.T) {
	assert.True(t, gridgraph.C(2, 3).Equal(gridgraph.C(2, 3)))
	assert.False(t, gridgraph.C(3, 3).Equal(gridgraph.C(2, 3)))
	assert.False(t, gridgraph.C(2, 3).Equal(gridgraph.C(3, 2)))
	assert.Equal(t, "2,3", gridgraph.C(2, 3).String())
	assert.True(t, gridgraph.IsDiagonal(gridgraph.C(1, 1), gridgraph.C(2, 0)))
	assert.False(t, gridgraph.IsDiagonal(gridgraph.C(1, 1), gridgraph.C(1, 0)))
}

// TestEqual_Detects differences in node sets and edge costs.
func TestEqual_Detects(t *testing.T) {
	a, err := gridgraph.Build(parseWorld("..", ".."))
	require.NoError(t, err)
	b, err := gridgraph.Build(parseWorld("..", ".#"))
	require.NoError(t, err)
	c, err := gridgraph.Build(parseWorld("..", ".."), gridgraph.WithDiagonalCost(1.5))
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
