package gridmap

import (
	"errors"
	"sync"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Sentinel errors for map construction and mutation.
var (
	// ErrEmptyMap indicates zero rows or zero-width rows.
	ErrEmptyMap = errors.New("gridmap: map is empty")

	// ErrRaggedRows indicates rows of differing length.
	ErrRaggedRows = errors.New("gridmap: rows have different lengths")

	// ErrUnknownTile indicates a rune missing from the legend.
	ErrUnknownTile = errors.New("gridmap: tile not in legend")

	// ErrBadCost indicates a negative, NaN or infinite movement cost.
	ErrBadCost = errors.New("gridmap: movement cost must be finite and >= 0")
)

// Legend maps tile runes to movement costs.
type Legend map[rune]float64

// DefaultLegend returns '.' = 1, '#' = 0 and '1'..'9' = 1..9.
func DefaultLegend() Legend {
	l := Legend{'.': 1, '#': 0}
	for r := '1'; r <= '9'; r++ {
		l[r] = float64(r - '0')
	}
	return l
}

// Map is a mutable tile world.
type Map struct {
	mu        sync.RWMutex
	width     int
	height    int
	costs     []float64
	listeners []func(gridgraph.Coord)
}

// document is the YAML layout accepted by Load.
type document struct {
	Rows   []string           `yaml:"rows"`
	Legend map[string]float64 `yaml:"legend,omitempty"`
}
