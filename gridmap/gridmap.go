package gridmap

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// New returns a width×height Map with every cell set to fill.
func New(width, height int, fill float64) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyMap, width, height)
	}
	if err := checkCost(fill); err != nil {
		return nil, err
	}
	costs := make([]float64, width*height)
	for i := range costs {
		costs[i] = fill
	}
	return &Map{width: width, height: height, costs: costs}, nil
}

// Parse builds a Map from ASCII rows. A nil legend means DefaultLegend.
// Row 0 is y = 0; column i of a row is x = i.
func Parse(rows []string, legend Legend) (*Map, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyMap
	}
	if legend == nil {
		legend = DefaultLegend()
	}
	width := utf8.RuneCountInString(rows[0])
	m := &Map{width: width, height: len(rows), costs: make([]float64, 0, width*len(rows))}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedRows, y, n, width)
		}
		x := 0
		for _, r := range row {
			cost, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrUnknownTile, r, x, y)
			}
			if err := checkCost(cost); err != nil {
				return nil, fmt.Errorf("legend %q: %w", r, err)
			}
			m.costs = append(m.costs, cost)
			x++
		}
	}
	return m, nil
}

// MustParse is Parse with the default legend that panics on error.
// Intended for tests and examples.
func MustParse(rows ...string) *Map {
	m, err := Parse(rows, nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// MovementCost returns the cost of entering c; 0 for impassable or
// out-of-bounds cells.
func (m *Map) MovementCost(c gridgraph.Coord) float64 {
	if !m.inBounds(c) {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.costs[c.Y*m.width+c.X]
}

// Neighbors8 returns the in-bounds 8-neighbours of c.
func (m *Map) Neighbors8(c gridgraph.Coord) []gridgraph.Coord {
	return gridgraph.Neighbors8(m.width, m.height, c)
}

// Cost returns the movement cost of c, or an error wrapping
// gridgraph.ErrOutOfBounds.
func (m *Map) Cost(c gridgraph.Coord) (float64, error) {
	if !m.inBounds(c) {
		return 0, m.outOfBounds(c)
	}
	return m.MovementCost(c), nil
}

// SetCost stores cost for c and notifies subscribers if the value changed.
func (m *Map) SetCost(c gridgraph.Coord, cost float64) error {
	if !m.inBounds(c) {
		return m.outOfBounds(c)
	}
	if err := checkCost(cost); err != nil {
		return err
	}

	m.mu.Lock()
	i := c.Y*m.width + c.X
	changed := m.costs[i] != cost
	m.costs[i] = cost
	listeners := m.listeners
	m.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn(c)
		}
	}
	return nil
}

// Block makes c impassable.
func (m *Map) Block(c gridgraph.Coord) error { return m.SetCost(c, 0) }

// Subscribe registers fn to be called with every changed cell.
func (m *Map) Subscribe(fn func(gridgraph.Coord)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// Copy on write so SetCost can iterate a snapshot without the lock.
	m.listeners = append(m.listeners[:len(m.listeners):len(m.listeners)], fn)
}

// Rows renders the map with the default legend symbols. Costs without a
// default symbol render as '?'.
func (m *Map) Rows() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, m.height)
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		sb.Reset()
		for x := 0; x < m.width; x++ {
			sb.WriteRune(symbol(m.costs[y*m.width+x]))
		}
		out[y] = sb.String()
	}
	return out
}

func (m *Map) inBounds(c gridgraph.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.width && c.Y < m.height
}

func (m *Map) outOfBounds(c gridgraph.Coord) error {
	return fmt.Errorf("%w: (%s) not in %dx%d", gridgraph.ErrOutOfBounds, c, m.width, m.height)
}

func symbol(cost float64) rune {
	switch {
	case cost == 0:
		return '#'
	case cost == 1:
		return '.'
	case cost >= 2 && cost <= 9 && cost == math.Trunc(cost):
		return rune('0' + int(cost))
	}
	return '?'
}

func checkCost(cost float64) error {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: got %v", ErrBadCost, cost)
	}
	return nil
}
