// Package config loads taxpayer input files. Files are YAML (JSON is a
// YAML subset and parses the same way); monetary fields are decimal-dollar
// strings or numbers, converted to integer cents on the way in. No tax law
// lives here: structural validation happens in the domain package before
// any calculation runs.
package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of taxpayer input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a taxpayer input file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxpayerInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates raw input bytes.
func (ip *InputParser) Parse(data []byte) (*domain.TaxpayerInput, error) {
	var input domain.TaxpayerInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &input, nil
}
