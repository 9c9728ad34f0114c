package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naijatax/paye/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of declaration and rules files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads income declarations from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	// A relative rules file is resolved against the declaration file
	if config.RulesFile != "" && !filepath.IsAbs(config.RulesFile) {
		config.RulesFile = filepath.Join(filepath.Dir(filename), config.RulesFile)
	}
	return config, nil
}

// Parse decodes and validates declaration file content. JSON is valid YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
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
	if len(config.Declarations) == 0 {
		return fmt.Errorf("no declarations provided")
	}

	seen := make(map[string]bool, len(config.Declarations))
	for i := range config.Declarations {
		in := &config.Declarations[i]
		if in.Name == "" {
			return fmt.Errorf("declaration %d: name is required", i)
		}
		if seen[in.Name] {
			return fmt.Errorf("declaration %d: duplicate name %q", i, in.Name)
		}
		seen[in.Name] = true

		if err := in.Validate(); err != nil {
			return fmt.Errorf("declaration %d (%s) validation failed: %w", i, in.Name, err)
		}
	}
	return nil
}
