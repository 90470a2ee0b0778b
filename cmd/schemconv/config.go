package main

import (
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/oriumgames/pile/schemconv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a conversion run. Command line flags override
// values read from the config file.
type Config struct {
	Format    string `yaml:"format"`
	OutDir    string `yaml:"out_dir"`
	NoRepair  bool   `yaml:"no_repair"`
	Jobs      int    `yaml:"jobs"`
	Overrides string `yaml:"overrides"`
	Verbose   bool   `yaml:"verbose"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Format: "sponge_v3",
		Jobs:   runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the config for unusable values.
func (c Config) Validate() error {
	if !slices.Contains(schemconv.Formats(), c.Format) {
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

var extensions = map[string]string{
	"sponge_v3":  ".schem",
	"litematica": ".litematic",
}

// Extension returns the file extension of the output format.
func (c Config) Extension() string {
	if ext, ok := extensions[c.Format]; ok {
		return ext
	}
	return "." + c.Format
}
