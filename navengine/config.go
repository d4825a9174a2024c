package navengine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("navengine: invalid config")

// Config selects graph construction and search behaviour.
type Config struct {
	Connectivity   int     `yaml:"connectivity"`
	OrthogonalCost float64 `yaml:"orthogonal_cost"`
	DiagonalCost   float64 `yaml:"diagonal_cost"`
	TerrainCost    bool    `yaml:"terrain_cost"`
	CornerRule     string  `yaml:"corner_rule"`
	Heuristic      string  `yaml:"heuristic"`
	MaxExpansions  int     `yaml:"max_expansions"`
	EarlyExit      bool    `yaml:"early_exit"`
}

// DefaultConfig returns 8-way connectivity, unit and √2 step costs, uniform
// costs, strict corners, the octile heuristic and no search budget.
func DefaultConfig() Config {
	return Config{
		Connectivity:   8,
		OrthogonalCost: 1,
		DiagonalCost:   math.Sqrt2,
		CornerRule:     "strict",
		Heuristic:      "octile",
	}
}

// LoadConfig decodes and validates a YAML config from r. Keys that are
// absent keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(bytes.NewReader(data))
}

// Validate fills zero fields with defaults and rejects invalid values.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.Connectivity == 0 {
		c.Connectivity = def.Connectivity
	}
	if c.OrthogonalCost == 0 {
		c.OrthogonalCost = def.OrthogonalCost
	}
	if c.DiagonalCost == 0 {
		c.DiagonalCost = def.DiagonalCost
	}
	if c.CornerRule == "" {
		c.CornerRule = def.CornerRule
	}
	if c.Heuristic == "" {
		c.Heuristic = def.Heuristic
	}

	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalidConfig, c.Connectivity)
	}
	if !validCost(c.OrthogonalCost) {
		return fmt.Errorf("%w: orthogonal_cost must be positive, got %v", ErrInvalidConfig, c.OrthogonalCost)
	}
	if !validCost(c.DiagonalCost) {
		return fmt.Errorf("%w: diagonal_cost must be positive, got %v", ErrInvalidConfig, c.DiagonalCost)
	}
	if _, err := c.cornerRule(); err != nil {
		return err
	}
	if _, err := astar.HeuristicByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// GraphOptions translates c into gridgraph build options.
func (c Config) GraphOptions() []gridgraph.Option {
	conn := gridgraph.Conn8
	if c.Connectivity == 4 {
		conn = gridgraph.Conn4
	}
	model := gridgraph.CostUniform
	if c.TerrainCost {
		model = gridgraph.CostTerrain
	}
	rule, _ := c.cornerRule()
	return []gridgraph.Option{
		gridgraph.WithConnectivity(conn),
		gridgraph.WithOrthogonalCost(c.OrthogonalCost),
		gridgraph.WithDiagonalCost(c.DiagonalCost),
		gridgraph.WithCostModel(model),
		gridgraph.WithCornerRule(rule),
	}
}

// SearchOptions translates c into astar options. The named heuristic is
// scaled down to the cheapest step per unit of distance so that it stays
// admissible under custom step costs.
func (c Config) SearchOptions() ([]astar.Option, error) {
	h, err := astar.HeuristicByName(c.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if k := c.heuristicScale(); k != 1 {
		h = astar.Scaled(h, k)
	}
	opts := []astar.Option{
		astar.WithHeuristic(h),
		astar.WithMaxExpansions(c.MaxExpansions),
	}
	if c.EarlyExit {
		opts = append(opts, astar.WithEarlyExit())
	}
	return opts, nil
}

// Admissible reports whether the configured heuristic never overestimates on
// the configured grid. Manhattan overestimates whenever diagonals exist.
// Under terrain_cost the search rescales the heuristic by the cheapest cell of
// the current graph, so cell costs below 1 keep it admissible.
func (c Config) Admissible() bool {
	return !(c.Connectivity == 8 && strings.EqualFold(strings.TrimSpace(c.Heuristic), "manhattan"))
}

func (c Config) heuristicScale() float64 {
	k := c.OrthogonalCost
	if c.Connectivity == 8 {
		k = min(k, c.DiagonalCost/math.Sqrt2)
	}
	return k
}

func (c Config) cornerRule() (gridgraph.CornerRule, error) {
	switch strings.ToLower(strings.TrimSpace(c.CornerRule)) {
	case "strict", "":
		return gridgraph.CornerStrict, nil
	case "loose":
		return gridgraph.CornerLoose, nil
	}
	return 0, fmt.Errorf("%w: corner_rule must be strict or loose, got %q", ErrInvalidConfig, c.CornerRule)
}

func validCost(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
