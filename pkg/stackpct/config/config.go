// Package config loads chart definitions from YAML files.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/ukaji3/stackpct-go/pkg/stackpct"
	"gopkg.in/yaml.v3"
)

//go:embed example-config.yaml
var exampleConfigYAML string

// OutputConfig controls how a generated chart is written.
type OutputConfig struct {
	// Format is json, svg or png.
	Format string `yaml:"format" json:"format"`
	// Path is the output file. Empty writes to stdout.
	Path   string `yaml:"path" json:"path"`
	Pretty bool   `yaml:"pretty" json:"pretty"`
	// Title, Width and Height apply to image formats only.
	Title  string `yaml:"title" json:"title"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// Config is a complete chart definition.
type Config struct {
	// Input is the workbook path, relative to the working directory.
	Input  string           `yaml:"input" json:"input"`
	Chart  stackpct.Options `yaml:",inline" json:"chart"`
	Output OutputConfig     `yaml:"output" json:"output"`
}

// Default returns a configuration with default chart type and output format.
func Default() Config {
	return Config{
		Chart:  stackpct.DefaultOptions(),
		Output: OutputConfig{Format: "json"},
	}
}

// Example returns an annotated example configuration.
func Example() string {
	return exampleConfigYAML
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Chart.ChartType == "" {
		cfg.Chart.ChartType = stackpct.ChartPercentStackedBar
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Validate checks the chart options and output format.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input", stackpct.ErrMissingParameters)
	}
	switch c.Output.Format {
	case "json", "svg", "png":
	default:
		return fmt.Errorf("invalid output format: %s (must be json, svg, or png)", c.Output.Format)
	}
	return c.Chart.Validate()
}
