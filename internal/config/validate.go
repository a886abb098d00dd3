package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

var (
	// ErrEmptyKeywords indicates an empty declaration keyword vocabulary.
	ErrEmptyKeywords = errors.New("empty declaration keywords")

	// ErrInvalidDelimiter indicates a delimiter that is not a single character.
	ErrInvalidDelimiter = errors.New("invalid delimiter")

	// ErrInvalidWindow indicates a non-positive delimiter scan window.
	ErrInvalidWindow = errors.New("invalid delimiter window")

	// ErrInvalidIgnorePattern indicates an ignore glob that does not compile.
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if len(cfg.Nav.Keywords) == 0 {
		errs = append(errs, ErrEmptyKeywords)
	}
	if utf8.RuneCountInString(cfg.Nav.OpenDelim) != 1 {
		errs = append(errs, fmt.Errorf("%w: open_delim %q", ErrInvalidDelimiter, cfg.Nav.OpenDelim))
	}
	if utf8.RuneCountInString(cfg.Nav.CloseDelim) != 1 {
		errs = append(errs, fmt.Errorf("%w: close_delim %q", ErrInvalidDelimiter, cfg.Nav.CloseDelim))
	}
	if cfg.Nav.DelimWindow <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWindow, cfg.Nav.DelimWindow))
	}
	for _, pattern := range cfg.Nav.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidIgnorePattern, pattern, err))
		}
	}

	return errors.Join(errs...)
}
