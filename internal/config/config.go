package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the settings for one conversion run
type Config struct {
	// Input/output settings
	InputFile   string
	OutputFile  string
	NetworkName string

	// Optional road profile YAML overriding the built-in highway tables
	ProfileFile string

	// Path to a memory-mapped node coordinate file. Empty means the
	// coordinates are kept in an in-memory map.
	FlatNodesFile string

	// Logging and metrics
	Verbose         bool
	LogFile         string        // Path to log file (empty = no file logging)
	MetricsInterval time.Duration // Interval for system metrics logging
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		NetworkName:     "Imported Network",
		MetricsInterval: 30 * time.Second,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input file is required")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file is required")
	}
	if strings.HasSuffix(c.InputFile, ".pbf") {
		return fmt.Errorf("PBF input is not supported, convert %s to .osm XML first", c.InputFile)
	}
	return nil
}
