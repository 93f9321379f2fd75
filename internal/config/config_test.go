package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfold/manualgen/internal/domain"
)

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name:   "empty config gains defaults",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultRoot, c.Manual.Root)
				assert.Equal(t, DefaultTitle, c.Manual.Title)
				assert.Equal(t, DefaultFormat, c.Output.Format)
				assert.Equal(t, DefaultManifestFormat, c.Output.ManifestFormat)
				assert.Equal(t, DefaultLogLevel, c.Logging.Level)
			},
		},
		{
			name: "explicit values survive",
			modify: func(c *Config) {
				c.Manual.Root = "/srv/manual"
				c.Output.Format = "markdown"
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "/srv/manual", c.Manual.Root)
				assert.Equal(t, "markdown", c.Output.Format)
			},
		},
		{
			name: "invalid output format",
			modify: func(c *Config) {
				c.Output.Format = "pdf"
			},
			wantErr: true,
		},
		{
			name: "invalid manifest format",
			modify: func(c *Config) {
				c.Output.ManifestFormat = "toml"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// TestDefault tests the default configuration
func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "docs/manual", cfg.Manual.Root)
	assert.Equal(t, "html", cfg.Output.Format)
	assert.False(t, cfg.Manual.DecodeItemNames)
}

// TestConfigDir tests the config directory fallback
func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, ConfigFilePath(), dir)
}
