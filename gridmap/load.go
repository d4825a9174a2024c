package gridmap

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML map document from r. Legend entries extend and
// override DefaultLegend; each key must be a single character.
func Load(r io.Reader) (*Map, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("gridmap: decode: %w", err)
	}

	legend := DefaultLegend()
	for key, cost := range doc.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("gridmap: legend key %q must be a single character", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		legend[r] = cost
	}

	return Parse(doc.Rows, legend)
}

// LoadFile reads a YAML map document from path.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: open: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Marshal encodes m as a YAML document readable by Load. Cells rendered as
// '?' by Rows do not round-trip.
func (m *Map) Marshal() ([]byte, error) {
	return yaml.Marshal(document{Rows: m.Rows()})
}
