package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vecalc/vector-calculator/internal/domain"
	"github.com/vecalc/vector-calculator/pkg/vec2"
)

// maxPrecision bounds the formatter precision setting.
const maxPrecision = 16

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Pairs) == 0 {
		return fmt.Errorf("no vector pairs provided")
	}

	seen := make(map[string]bool, len(config.Pairs))
	for i, pair := range config.Pairs {
		if err := ip.validatePair(&config.Settings, &pair); err != nil {
			return fmt.Errorf("pair %d validation failed: %w", i, err)
		}
		if seen[pair.Name] {
			return fmt.Errorf("duplicate pair name %q", pair.Name)
		}
		seen[pair.Name] = true
	}

	if config.Settings.Precision < 0 || config.Settings.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d", maxPrecision)
	}

	return nil
}

// validatePair validates a single vector pair
func (ip *InputParser) validatePair(settings *domain.Settings, pair *domain.VectorPair) error {
	if pair.Name == "" {
		return fmt.Errorf("pair name is required")
	}
	if !settings.AllowFractional {
		if !pair.A.IsInteger() {
			return fmt.Errorf("vector a %s has fractional components (set allow_fractional to permit them)", pair.A)
		}
		if !pair.B.IsInteger() {
			return fmt.Errorf("vector b %s has fractional components (set allow_fractional to permit them)", pair.B)
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Pairs: []domain.VectorPair{
			{
				Name: "textbook",
				A:    vec2.NewFromInt(1, 2),
				B:    vec2.NewFromInt(3, 4),
			},
			{
				Name: "unit axes",
				A:    vec2.NewFromInt(1, 0),
				B:    vec2.NewFromInt(0, 1),
			},
			{
				Name: "opposed",
				A:    vec2.NewFromInt(2, 3),
				B:    vec2.NewFromInt(-2, -3),
			},
		},
		Settings: domain.Settings{
			AllowFractional: false,
			Precision:       0,
		},
	}
}
