package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Manual defaults. docs/manual is the conventional layout for
	// manual source trees.
	DefaultRoot  = "docs/manual"
	DefaultTitle = "Manual"

	// Output defaults
	DefaultFormat         = "html"
	DefaultManifestFormat = "yaml"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".manualgen"
	}
	return filepath.Join(home, ".manualgen")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manual: ManualConfig{
			Root:  DefaultRoot,
			Title: DefaultTitle,
		},
		Output: OutputConfig{
			Format:         DefaultFormat,
			ManifestFormat: DefaultManifestFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
