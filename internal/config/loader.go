package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (MANUALGEN_*)
	v.SetEnvPrefix("MANUALGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("manual.root", DefaultRoot)
	v.SetDefault("manual.title", DefaultTitle)
	v.SetDefault("manual.start_text", "")
	v.SetDefault("manual.decode_item_names", false)

	v.SetDefault("output.path", "")
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.manifest", false)
	v.SetDefault("output.manifest_path", "")
	v.SetDefault("output.manifest_format", DefaultManifestFormat)
	v.SetDefault("output.force", false)
	v.SetDefault("output.dry_run", false)
	v.SetDefault("output.progress", false)

	v.SetDefault("git.ref", "")
	v.SetDefault("git.subdir", "")

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
