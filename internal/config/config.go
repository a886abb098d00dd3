// Package config loads spelunk configuration from .spelunk/config.yml with
// environment variable overrides (SPELUNK_*).
package config

import "github.com/mvp-joe/spelunk/internal/nav"

// Config represents the complete spelunk configuration.
type Config struct {
	Nav   NavConfig   `yaml:"nav" mapstructure:"nav"`
	Query QueryConfig `yaml:"query" mapstructure:"query"`
}

// NavConfig configures the navigation engine: which directories to skip,
// which paths to ignore, and how declarations and blocks are recognized.
type NavConfig struct {
	Exclude     []string `yaml:"exclude" mapstructure:"exclude"`           // directory names skipped during walks
	Ignore      []string `yaml:"ignore" mapstructure:"ignore"`             // glob patterns to ignore
	Keywords    []string `yaml:"keywords" mapstructure:"keywords"`         // construct keywords for declaration matching
	OpenDelim   string   `yaml:"open_delim" mapstructure:"open_delim"`     // block opening delimiter (single char)
	CloseDelim  string   `yaml:"close_delim" mapstructure:"close_delim"`   // block closing delimiter (single char)
	DelimWindow int      `yaml:"delim_window" mapstructure:"delim_window"` // lines scanned past a declaration for the opening delimiter
}

// QueryConfig configures the read-only data-query collaborator.
type QueryConfig struct {
	Database string `yaml:"database" mapstructure:"database"` // path to the SQLite database; empty disables the query tool
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Nav: NavConfig{
			Exclude:     append([]string(nil), nav.DefaultExcludeDirs...),
			Ignore:      []string{},
			Keywords:    append([]string(nil), nav.DefaultDeclKeywords...),
			OpenDelim:   "{",
			CloseDelim:  "}",
			DelimWindow: nav.DefaultDelimWindow,
		},
		Query: QueryConfig{},
	}
}

// EngineOptions converts the nav section into engine options.
func (c *Config) EngineOptions() nav.Options {
	opts := nav.Options{
		ExcludeDirs:    c.Nav.Exclude,
		IgnorePatterns: c.Nav.Ignore,
		DeclKeywords:   c.Nav.Keywords,
		DelimWindow:    c.Nav.DelimWindow,
	}
	if c.Nav.OpenDelim != "" {
		opts.OpenDelim = []rune(c.Nav.OpenDelim)[0]
	}
	if c.Nav.CloseDelim != "" {
		opts.CloseDelim = []rune(c.Nav.CloseDelim)[0]
	}
	return opts
}
