package model

import "fmt"

// Output formats supported by the renderer
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config holds the resolved kapa configuration
type Config struct {
	Data    string `yaml:"data"`    // Explicit catalog path, probed before the default locations
	Output  string `yaml:"output"`  // table, json, yaml
	Verbose bool   `yaml:"verbose"` // Diagnostic logging on stderr
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputTable,
	}
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", c.Output)
	}
}
