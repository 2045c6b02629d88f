package money

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Cents serializes as a decimal-dollar string so input files and exported
// results read in dollars while the engine computes in integer cents.

// MarshalJSON renders the amount as a dollar string, e.g. "1583.13".
func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a dollar string or a bare JSON number of dollars.
func (c *Cents) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// A bare number arrives as raw digits; parse it the same way.
		s = string(data)
	}
	parsed, err := ParseDollars(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML renders the amount as a dollar string.
func (c Cents) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML accepts a dollar string or a YAML number of dollars.
func (c *Cents) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("dollar amount must be a scalar, got %v", value.Kind)
	}
	parsed, err := ParseDollars(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
