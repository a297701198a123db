package domain

import (
	"github.com/vecalc/vector-calculator/pkg/vec2"
)

// VectorPair is one labeled pair of input vectors
type VectorPair struct {
	Name string   `yaml:"name" json:"name"`
	A    vec2.Vec `yaml:"a" json:"a"`
	B    vec2.Vec `yaml:"b" json:"b"`
}

// Settings holds global calculation settings
type Settings struct {
	// AllowFractional permits non-integer components. Off by default:
	// inputs are validated as integer vectors.
	AllowFractional bool `yaml:"allow_fractional" json:"allow_fractional"`
	// Precision controls how many fraction digits formatters render for
	// derived quantities. Zero means exact, untrimmed output.
	Precision int32 `yaml:"precision" json:"precision"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	Pairs    []VectorPair `yaml:"pairs" json:"pairs"`
	Settings Settings     `yaml:"settings" json:"settings"`
}
