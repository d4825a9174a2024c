package gridmap_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/gridmap"
)

func TestParse_DefaultLegend(t *testing.T) {
	m, err := gridmap.Parse([]string{
		".#3",
		"9..",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 1.0, m.MovementCost(gridgraph.C(0, 0)))
	assert.Equal(t, 0.0, m.MovementCost(gridgraph.C(1, 0)))
	assert.Equal(t, 3.0, m.MovementCost(gridgraph.C(2, 0)))
	assert.Equal(t, 9.0, m.MovementCost(gridgraph.C(0, 1)))
	assert.Equal(t, 0.0, m.MovementCost(gridgraph.C(-1, 0)), "out of bounds is impassable")
	assert.Equal(t, 0.0, m.MovementCost(gridgraph.C(3, 1)), "out of bounds is impassable")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		legend gridmap.Legend
		want   error
	}{
		{"no rows", nil, nil, gridmap.ErrEmptyMap},
		{"empty row", []string{""}, nil, gridmap.ErrEmptyMap},
		{"ragged", []string{"...", ".."}, nil, gridmap.ErrRaggedRows},
		{"unknown tile", []string{".x."}, nil, gridmap.ErrUnknownTile},
		{"negative legend", []string{"~"}, gridmap.Legend{'~': -1}, gridmap.ErrBadCost},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.Parse(tc.rows, tc.legend)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew(t *testing.T) {
	m, err := gridmap.New(4, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2222", "2222"}, m.Rows())

	_, err = gridmap.New(0, 2, 1)
	assert.ErrorIs(t, err, gridmap.ErrEmptyMap)
	_, err = gridmap.New(2, 2, -3)
	assert.ErrorIs(t, err, gridmap.ErrBadCost)
}

func TestRows_RoundTrip(t *testing.T) {
	rows := []string{"..#..", ".2#5.", "....."}
	m := gridmap.MustParse(rows...)
	assert.Equal(t, rows, m.Rows())

	require.NoError(t, m.SetCost(gridgraph.C(0, 0), 1.5))
	assert.Equal(t, "?.#..", m.Rows()[0])
}

func TestNeighbors8(t *testing.T) {
	m := gridmap.MustParse("...", "...")
	got := m.Neighbors8(gridgraph.C(0, 0))
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, got)
}

func TestSetCost_NotifiesOnChange(t *testing.T) {
	m := gridmap.MustParse("...", "...")
	var got []gridgraph.Coord
	m.Subscribe(func(c gridgraph.Coord) { got = append(got, c) })
	m.Subscribe(nil)

	require.NoError(t, m.Block(gridgraph.C(1, 1)))
	require.NoError(t, m.SetCost(gridgraph.C(1, 1), 0), "unchanged value")
	require.NoError(t, m.SetCost(gridgraph.C(2, 0), 4))

	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 1}, {X: 2, Y: 0}}, got)
	assert.Equal(t, []string{"..4", ".#."}, m.Rows())
}

func TestSetCost_Errors(t *testing.T) {
	m := gridmap.MustParse("..")
	assert.ErrorIs(t, m.SetCost(gridgraph.C(2, 0), 1), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, m.SetCost(gridgraph.C(0, 0), -1), gridmap.ErrBadCost)

	_, err := m.Cost(gridgraph.C(0, -1))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	c, err := m.Cost(gridgraph.C(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)
}

func TestSubscriberMayReadMap(t *testing.T) {
	m := gridmap.MustParse("...")
	var seen float64
	m.Subscribe(func(c gridgraph.Coord) { seen = m.MovementCost(c) })
	require.NoError(t, m.SetCost(gridgraph.C(1, 0), 7))
	assert.Equal(t, 7.0, seen)
}

func TestConcurrentAccess(t *testing.T) {
	m, err := gridmap.New(16, 16, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.SetCost(gridgraph.C(i, j%16), float64(j%3))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.MovementCost(gridgraph.C(j%16, j%16))
			}
		}()
	}
	wg.Wait()
}

func TestLoad(t *testing.T) {
	doc := `
rows:
  - "..~"
  - "#.~"
legend:
  "~": 3
  ".": 2
`
	m, err := gridmap.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.MovementCost(gridgraph.C(0, 0)), "legend overrides default")
	assert.Equal(t, 3.0, m.MovementCost(gridgraph.C(2, 1)))
	assert.Equal(t, 0.0, m.MovementCost(gridgraph.C(0, 1)))
}

func TestLoad_Errors(t *testing.T) {
	_, err := gridmap.Load(strings.NewReader("rows: [\"..\"]\nlegend:\n  ab: 1\n"))
	assert.ErrorContains(t, err, "single character")

	_, err = gridmap.Load(strings.NewReader("rows: [\"..\", \".\"]\n"))
	assert.ErrorIs(t, err, gridmap.ErrRaggedRows)

	_, err = gridmap.Load(strings.NewReader("rows: {"))
	assert.ErrorContains(t, err, "decode")
}

func TestLoadFile_MarshalRoundTrip(t *testing.T) {
	src := gridmap.MustParse("..#", "3..")
	data, err := src.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	m, err := gridmap.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.Rows(), m.Rows())

	_, err = gridmap.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
