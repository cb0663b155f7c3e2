package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// DefaultConfigFile is looked up in the working directory when no -config
// flag is given.
const DefaultConfigFile = "seam.json"

// Color modes for diagnostics.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ModuleConfig names the module every unit is compiled into.
type ModuleConfig struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Config represents the seam.json configuration
type Config struct {
	Verbose bool         `json:"verbose"`
	Debug   bool         `json:"debug"`
	Jobs    int          `json:"jobs"`
	Color   string       `json:"color"`
	Module  ModuleConfig `json:"module"`
	// Compiler is a semver constraint the running compiler must satisfy,
	// e.g. ">=0.4.0, <1.0.0".
	Compiler string `json:"compiler,omitempty"`
	WorkDir  string `json:"work_dir"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Jobs:    runtime.NumCPU(),
		Color:   ColorAuto,
		Module:  ModuleConfig{Name: "main", Version: "0.0.0"},
		WorkDir: ".",
	}
}

// LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Default config if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

// Validate checks field values and the compiler constraint.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if _, err := semver.NewVersion(c.Module.Version); err != nil {
		return fmt.Errorf("module version %q: %w", c.Module.Version, err)
	}
	return c.CheckCompiler(Version)
}

// CheckCompiler reports an error when version does not satisfy the
// configured compiler constraint. An empty constraint accepts anything.
func (c *Config) CheckCompiler(version string) error {
	if c.Compiler == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Compiler)
	if err != nil {
		return fmt.Errorf("compiler constraint %q: %w", c.Compiler, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("compiler version %q: %w", version, err)
	}
	if ok, reasons := constraint.Validate(v); !ok {
		return fmt.Errorf("compiler %s does not satisfy %q: %v", v, c.Compiler, reasons)
	}
	return nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
