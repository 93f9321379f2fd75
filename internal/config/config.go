package config

import (
	"github.com/docfold/manualgen/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Manual  ManualConfig  `mapstructure:"manual" yaml:"manual"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ManualConfig contains manual tree settings
type ManualConfig struct {
	Root            string `mapstructure:"root" yaml:"root"`
	Title           string `mapstructure:"title" yaml:"title"`
	StartText       string `mapstructure:"start_text" yaml:"start_text"`
	DecodeItemNames bool   `mapstructure:"decode_item_names" yaml:"decode_item_names"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Path           string `mapstructure:"path" yaml:"path"`
	Format         string `mapstructure:"format" yaml:"format"`
	Manifest       bool   `mapstructure:"manifest" yaml:"manifest"`
	ManifestPath   string `mapstructure:"manifest_path" yaml:"manifest_path"`
	ManifestFormat string `mapstructure:"manifest_format" yaml:"manifest_format"`
	Force          bool   `mapstructure:"force" yaml:"force"`
	DryRun         bool   `mapstructure:"dry_run" yaml:"dry_run"`
	Progress       bool   `mapstructure:"progress" yaml:"progress"`
}

// GitConfig contains git source settings
type GitConfig struct {
	Ref    string `mapstructure:"ref" yaml:"ref"`
	Subdir string `mapstructure:"subdir" yaml:"subdir"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for
// missing values
func (c *Config) Validate() error {
	if c.Manual.Root == "" {
		c.Manual.Root = DefaultRoot
	}
	if c.Manual.Title == "" {
		c.Manual.Title = DefaultTitle
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if !validFormats[c.Output.Format] {
		return domain.NewValidationError("output.format", "must be one of html, markdown, text")
	}
	if c.Output.ManifestFormat == "" {
		c.Output.ManifestFormat = DefaultManifestFormat
	}
	if !validManifestFormats[c.Output.ManifestFormat] {
		return domain.NewValidationError("output.manifest_format", "must be yaml or json")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

var validFormats = map[string]bool{
	"html":     true,
	"markdown": true,
	"text":     true,
}

var validManifestFormats = map[string]bool{
	"yaml": true,
	"json": true,
}
