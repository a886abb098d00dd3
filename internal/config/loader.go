package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration for rootDir with the following priority
// (highest to lowest):
//  1. Environment variables (SPELUNK_*)
//  2. Config file (.spelunk/config.yml or .spelunk/config.yaml)
//  3. Default values
//
// A missing config file is not an error; defaults plus env vars apply.
func Load(rootDir string) (*Config, error) {
	v := newViper()

	configDir := filepath.Join(rootDir, ".spelunk")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFile loads configuration from an explicit config file path, with the
// same env-override and default behavior as Load. Unlike Load, a missing
// file is an error: the caller asked for that file specifically.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("SPELUNK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("nav.delim_window")
	v.BindEnv("nav.open_delim")
	v.BindEnv("nav.close_delim")
	v.BindEnv("query.database")

	setDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("nav.exclude", def.Nav.Exclude)
	v.SetDefault("nav.ignore", def.Nav.Ignore)
	v.SetDefault("nav.keywords", def.Nav.Keywords)
	v.SetDefault("nav.open_delim", def.Nav.OpenDelim)
	v.SetDefault("nav.close_delim", def.Nav.CloseDelim)
	v.SetDefault("nav.delim_window", def.Nav.DelimWindow)
	v.SetDefault("query.database", def.Query.Database)
}
