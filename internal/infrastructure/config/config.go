package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/thermoparam/internal/parameter"
)

// Config is the root configuration structure for thermoparam.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Device   DeviceConfig    `yaml:"device"`
	Displays []DisplayConfig `yaml:"displays"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// DeviceConfig describes the thermostat controller and its parameters.
type DeviceConfig struct {
	Name       string            `yaml:"name"`
	Parameters []ParameterConfig `yaml:"parameters"`
}

// ParameterConfig is a single named parameter and its raw value.
type ParameterConfig struct {
	Name  string         `yaml:"name"`
	Value ParameterValue `yaml:"value"`
}

// ParameterValue holds a raw parameter value decoded from YAML.
//
// The YAML tag decides the Go type:
//   - !!int   → int
//   - !!float → float64 (so "!!float 140" is an explicit float)
//   - sequence of scalars → parameter.Options
//
// Anything else is kept as decoded by yaml.v3 and rejected later by the
// parameter factory.
type ParameterValue struct {
	Raw any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *ParameterValue) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!int":
		var i int
		if err := node.Decode(&i); err != nil {
			return fmt.Errorf("line %d: decoding integer: %w", node.Line, err)
		}
		v.Raw = i

	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: decoding float: %w", node.Line, err)
		}
		v.Raw = f

	case node.Kind == yaml.SequenceNode:
		opts := make(parameter.Options, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: select options must be scalars", item.Line)
			}
			opts = append(opts, item.Value)
		}
		v.Raw = opts

	default:
		var raw any
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("line %d: decoding value: %w", node.Line, err)
		}
		v.Raw = raw
	}

	return nil
}

// Display types understood by the display factory.
const (
	DisplayTypeConsole = "console"
	DisplayTypeChars   = "chars"
	DisplayTypePanel   = "panel"
)

// DisplayConfig describes one rendering target.
type DisplayConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Capabilities restricts the print methods the display accepts.
	// Empty means all of them.
	// Values: print_float, print_int, print_string, print_delimiter_point
	Capabilities []string `yaml:"capabilities,omitempty"`

	// Panel holds settings used only by the "panel" display type.
	Panel PanelConfig `yaml:"panel,omitempty"`
}

// PanelConfig contains styled panel display settings.
type PanelConfig struct {
	// Width is the inner width of the framed box. 0 sizes to content.
	Width int `yaml:"width"`

	// Colour is the border colour (ANSI number or hex, e.g. "63", "#ff8800").
	Colour string `yaml:"colour"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: THERMOPARAM_SECTION_KEY
// For example: THERMOPARAM_DEVICE_NAME, THERMOPARAM_LOG_LEVEL
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			Name: "thermostat",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: THERMOPARAM_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("THERMOPARAM_DEVICE_NAME"); v != "" {
		cfg.Device.Name = v
	}

	// Logging
	if v := os.Getenv("THERMOPARAM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("THERMOPARAM_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// knownCapabilities lists the capability names accepted in display config.
var knownCapabilities = map[string]bool{
	string(parameter.CapPrintFloat):          true,
	string(parameter.CapPrintInt):            true,
	string(parameter.CapPrintString):         true,
	string(parameter.CapPrintDelimiterPoint): true,
}

// Validate checks the configuration for errors.
//
// Parameter values are not checked here; the parameter factory reports
// unsupported values when the device is built.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Device validation
	if c.Device.Name == "" {
		errs = append(errs, "device.name is required")
	}

	seen := make(map[string]bool, len(c.Device.Parameters))
	for i, p := range c.Device.Parameters {
		switch {
		case p.Name == "":
			errs = append(errs, fmt.Sprintf("device.parameters[%d].name is required", i))
		case seen[p.Name]:
			errs = append(errs, fmt.Sprintf("device.parameters[%d].name %q is duplicated", i, p.Name))
		}
		seen[p.Name] = true
	}

	// Display validation
	if len(c.Displays) == 0 {
		errs = append(errs, "at least one display is required")
	}

	for i, d := range c.Displays {
		switch d.Type {
		case DisplayTypeConsole, DisplayTypeChars, DisplayTypePanel:
		default:
			errs = append(errs, fmt.Sprintf("displays[%d].type %q must be console, chars or panel", i, d.Type))
		}
		for _, capability := range d.Capabilities {
			if !knownCapabilities[capability] {
				errs = append(errs, fmt.Sprintf("displays[%d].capabilities: unknown capability %q", i, capability))
			}
		}
		if d.Panel.Width < 0 {
			errs = append(errs, fmt.Sprintf("displays[%d].panel.width must not be negative", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
