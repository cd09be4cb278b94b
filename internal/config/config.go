package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the settings file picked up from the working directory
// when no --config flag is given.
const DefaultFile = "cc_arrays.yaml"

// Config represents the settings parsed from cc_arrays.yaml.
type Config struct {
	// Output controls naming and rendering of the generated artifacts.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures the generated artifacts.
type OutputConfig struct {
	// RootMarker is the path segment after which the #include path begins.
	RootMarker string `yaml:"root_marker"`
	// Alignment is the alignas value applied to every array.
	Alignment int `yaml:"alignment"`
	// SourceExt is the suffix of definition files.
	SourceExt string `yaml:"source_ext"`
	// HeaderExt is the suffix of declaration files.
	HeaderExt string `yaml:"header_ext"`
	// PreserveDirs keeps the input's relative directory below the output directory.
	PreserveDirs bool `yaml:"preserve_dirs"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// Load reads and parses the settings file at path. A missing file is not
// an error when optional is set; the zero Config is returned instead.
func Load(path string, optional bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for errors.
func Validate(config *Config) error {
	out := config.Output
	if out.Alignment < 0 || out.Alignment&(out.Alignment-1) != 0 {
		return fmt.Errorf("invalid alignment: %d (must be a power of two)", out.Alignment)
	}
	if out.SourceExt != "" && !strings.HasPrefix(out.SourceExt, ".") {
		return fmt.Errorf("invalid source_ext: %q (must start with '.')", out.SourceExt)
	}
	if out.HeaderExt != "" && !strings.HasPrefix(out.HeaderExt, ".") {
		return fmt.Errorf("invalid header_ext: %q (must start with '.')", out.HeaderExt)
	}
	if out.SourceExt != "" && out.SourceExt == out.HeaderExt {
		return fmt.Errorf("source_ext and header_ext must differ (both %q)", out.SourceExt)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Output.RootMarker == "" {
		config.Output.RootMarker = "genfiles/"
	}
	if config.Output.Alignment == 0 {
		config.Output.Alignment = 16
	}
	if config.Output.SourceExt == "" {
		config.Output.SourceExt = ".cc"
	}
	if config.Output.HeaderExt == "" {
		config.Output.HeaderExt = ".h"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}
